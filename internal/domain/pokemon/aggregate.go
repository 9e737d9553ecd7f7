package pokemon

import (
	"context"
	"errors"
)

// RecordSource fetches a species record by identifier.
type RecordSource interface {
	Pokemon(ctx context.Context, id Identifier) (*SpeciesRecord, error)
}

// Aggregate fetches each named species in order and builds a StatTable.
// Failed fetches are skipped and listed in Skipped; they never abort the
// aggregation. When nothing could be fetched the empty table is returned
// together with ErrNoData.
func Aggregate(ctx context.Context, src RecordSource, names []string) (StatTable, error) {
	table := StatTable{}
	seen := make(map[string]bool)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return table, err
		}
		id := NameIdentifier(name)
		if id.IsZero() {
			table.Skipped = append(table.Skipped, name)
			continue
		}
		rec, err := src.Pokemon(ctx, id)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return table, err
			}
			table.Skipped = append(table.Skipped, name)
			continue
		}
		table.Rows = append(table.Rows, row(name, rec))
		for _, s := range rec.Stats {
			if !seen[s.Name] {
				seen[s.Name] = true
				table.Columns = append(table.Columns, s.Name)
			}
		}
	}

	if len(table.Rows) == 0 {
		return table, ErrNoData
	}
	return table, nil
}

// row is keyed by the chain's species name, not the record's own name.
func row(name string, rec *SpeciesRecord) StatRow {
	values := make(map[string]int, len(rec.Stats))
	for _, s := range rec.Stats {
		values[s.Name] = s.Value
	}
	return StatRow{Name: name, Values: values}
}
