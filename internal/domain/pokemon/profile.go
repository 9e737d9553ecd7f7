package pokemon

import (
	"fmt"
	"slices"
)

// Display limits for profiles.
const (
	DefaultMaxMoves = 5
	MaxMovesLimit   = 100
)

// DefaultFocus is the stat selection shown when the caller picks none.
var DefaultFocus = []string{"hp", "attack", "speed"}

// Profile is the explorer's main view of one species.
type Profile struct {
	Record     *SpeciesRecord `json:"record"`
	FocusStats []Stat         `json:"focus_stats"`
	Moves      []string       `json:"moves"`
	TotalMoves int            `json:"total_moves"`
}

// BuildProfile selects the focused stats and the first maxMoves moves.
// Focus order is preserved; stats the record lacks are left out.
func BuildProfile(rec *SpeciesRecord, focus []string, maxMoves int) (Profile, error) {
	if rec == nil {
		return Profile{}, ErrNotFound
	}
	if maxMoves < 1 || maxMoves > MaxMovesLimit {
		return Profile{}, fmt.Errorf("%w: max moves %d outside [1, %d]", ErrInvalidOption, maxMoves, MaxMovesLimit)
	}
	if len(focus) == 0 {
		focus = DefaultFocus
	}

	p := Profile{Record: rec, TotalMoves: len(rec.Moves)}
	for _, name := range focus {
		if v, ok := rec.StatValue(name); ok {
			p.FocusStats = append(p.FocusStats, Stat{Name: name, Value: v})
		}
	}
	p.Moves = slices.Clone(rec.Moves[:min(maxMoves, len(rec.Moves))])
	return p, nil
}

// IsStandardStat reports whether name is one of StandardStats.
func IsStandardStat(name string) bool {
	return slices.Contains(StandardStats, name)
}
