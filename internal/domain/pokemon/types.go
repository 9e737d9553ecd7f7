// Package pokemon holds the Pokémon explorer's records and the pure logic
// that walks evolution chains and aggregates per-species statistics.
package pokemon

import "strconv"

// StandardStats are the six base statistics every species reports, in
// display order.
var StandardStats = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// Stat is one named base statistic.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SpeciesRecord describes one creature. It is built once from an upstream
// payload and never mutated afterwards.
type SpeciesRecord struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	BaseExperience int      `json:"base_experience"`
	Sprite         string   `json:"sprite,omitempty"`
	Types          []string `json:"types"`
	Abilities      []string `json:"abilities"`
	Stats          []Stat   `json:"stats"`
	Moves          []string `json:"moves"`

	// ChainRef locates the evolution chain resource. Empty until the record
	// has been joined with its species metadata.
	ChainRef string `json:"chain_ref,omitempty"`
}

// StatValue returns the named stat.
func (r *SpeciesRecord) StatValue(name string) (int, bool) {
	for _, s := range r.Stats {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// WithChainRef returns a copy of r pointing at the given evolution chain.
func (r *SpeciesRecord) WithChainRef(ref string) *SpeciesRecord {
	cp := *r
	cp.ChainRef = ref
	return &cp
}

// SpeciesMeta is the subset of species metadata the explorer needs.
type SpeciesMeta struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ChainRef string `json:"chain_ref"`
}

// EvolutionNode is one stage of an evolution tree.
type EvolutionNode struct {
	Species   string           `json:"species"`
	EvolvesTo []*EvolutionNode `json:"evolves_to,omitempty"`
}

// EvolutionChain is an evolution tree plus the path the explorer follows
// through it.
type EvolutionChain struct {
	ID   int            `json:"id,omitempty"`
	Root *EvolutionNode `json:"root"`

	// Names runs from the base form along the first listed branch.
	Names []string `json:"names"`

	// Truncated is set when the walk stopped at the depth bound.
	Truncated bool `json:"truncated"`

	// DiscardedBranches counts alternate evolutions passed over on the way.
	DiscardedBranches int `json:"discarded_branches"`
}

// StatRow holds one species' stats keyed by stat name.
type StatRow struct {
	Name   string         `json:"name"`
	Values map[string]int `json:"values"`
}

// Cell formats the named stat for display; stats the species lacks are empty.
func (r StatRow) Cell(stat string) string {
	v, ok := r.Values[stat]
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

// StatTable is the comparative stats table for an evolution chain. Row order
// follows the chain; Columns lists stat names in first-seen order.
type StatTable struct {
	Columns []string  `json:"columns"`
	Rows    []StatRow `json:"rows"`

	// Skipped names the species whose fetch failed.
	Skipped []string `json:"skipped,omitempty"`
}

// Row returns the row for a species.
func (t StatTable) Row(name string) (StatRow, bool) {
	for _, r := range t.Rows {
		if r.Name == name {
			return r, true
		}
	}
	return StatRow{}, false
}

// Location is an encounter area placed on a synthetic map grid.
type Location struct {
	Area string `json:"location_area"`
	Lat  int    `json:"lat"`
	Lon  int    `json:"lon"`
}
