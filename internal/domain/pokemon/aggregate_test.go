package pokemon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/explorer/internal/domain/pokemon"
	. "github.com/smartystreets/goconvey/convey"
)

type recordSource struct {
	records map[string]*pokemon.SpeciesRecord
	calls   []string
}

func (s *recordSource) Pokemon(_ context.Context, id pokemon.Identifier) (*pokemon.SpeciesRecord, error) {
	s.calls = append(s.calls, id.Key())
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, pokemon.ErrNotFound
	}
	return rec, nil
}

func record(name string, id int, values ...int) *pokemon.SpeciesRecord {
	rec := &pokemon.SpeciesRecord{ID: id, Name: name}
	for i, stat := range pokemon.StandardStats {
		rec.Stats = append(rec.Stats, pokemon.Stat{Name: stat, Value: values[i]})
	}
	return rec
}

func TestAggregate(t *testing.T) {
	Convey("Given a source with the bulbasaur line", t, func() {
		ctx := context.Background()
		src := &recordSource{records: map[string]*pokemon.SpeciesRecord{
			"bulbasaur": record("bulbasaur", 1, 45, 49, 49, 65, 65, 45),
			"ivysaur":   record("ivysaur", 2, 60, 62, 63, 80, 80, 60),
			"venusaur":  record("venusaur", 3, 80, 82, 83, 100, 100, 80),
		}}

		Convey("When all three fetches succeed", func() {
			table, err := pokemon.Aggregate(ctx, src, []string{"bulbasaur", "ivysaur", "venusaur"})

			Convey("Then the table should have three rows in chain order", func() {
				So(err, ShouldBeNil)
				So(table.Rows, ShouldHaveLength, 3)
				So(table.Rows[0].Name, ShouldEqual, "bulbasaur")
				So(table.Rows[1].Name, ShouldEqual, "ivysaur")
				So(table.Rows[2].Name, ShouldEqual, "venusaur")
				So(table.Skipped, ShouldBeEmpty)
				So(table.Columns, ShouldResemble, pokemon.StandardStats)
			})

			Convey("And every row should carry the six standard stats", func() {
				for _, row := range table.Rows {
					for _, stat := range pokemon.StandardStats {
						So(row.Values, ShouldContainKey, stat)
					}
				}
				row, ok := table.Row("venusaur")
				So(ok, ShouldBeTrue)
				So(row.Values["special-attack"], ShouldEqual, 100)
				So(row.Cell("special-attack"), ShouldEqual, "100")
			})
		})

		Convey("When the middle fetch fails", func() {
			delete(src.records, "ivysaur")
			table, err := pokemon.Aggregate(ctx, src, []string{"bulbasaur", "ivysaur", "venusaur"})

			Convey("Then two rows should remain in relative order without a gap", func() {
				So(err, ShouldBeNil)
				So(table.Rows, ShouldHaveLength, 2)
				So(table.Rows[0].Name, ShouldEqual, "bulbasaur")
				So(table.Rows[1].Name, ShouldEqual, "venusaur")
				So(table.Skipped, ShouldResemble, []string{"ivysaur"})
				So(src.calls, ShouldResemble, []string{"bulbasaur", "ivysaur", "venusaur"})
			})
		})

		Convey("When every fetch fails", func() {
			table, err := pokemon.Aggregate(ctx, src, []string{"missingno", "glitch"})

			Convey("Then an empty table should come back with ErrNoData", func() {
				So(errors.Is(err, pokemon.ErrNoData), ShouldBeTrue)
				So(table.Rows, ShouldBeEmpty)
				So(table.Skipped, ShouldResemble, []string{"missingno", "glitch"})
			})
		})

		Convey("When no names are given", func() {
			_, err := pokemon.Aggregate(ctx, src, nil)

			Convey("Then there is no data", func() {
				So(errors.Is(err, pokemon.ErrNoData), ShouldBeTrue)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := pokemon.Aggregate(cctx, src, []string{"bulbasaur"})

			Convey("Then aggregation should stop without fetching", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(src.calls, ShouldBeEmpty)
			})
		})
	})
}

func TestStatRowCell(t *testing.T) {
	Convey("Given a row lacking a stat other rows report", t, func() {
		row := pokemon.StatRow{Name: "shedinja", Values: map[string]int{"hp": 1, "attack": 0}}

		Convey("Then a reported zero should print as 0", func() {
			So(row.Cell("attack"), ShouldEqual, "0")
			So(row.Cell("hp"), ShouldEqual, "1")
		})

		Convey("And a missing stat should print as an empty cell", func() {
			So(row.Cell("speed"), ShouldEqual, "")
		})
	})
}
