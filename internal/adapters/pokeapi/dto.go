package pokeapi

import (
	"fmt"

	"github.com/okian/explorer/internal/adapters/upstream"
	"github.com/okian/explorer/internal/domain/pokemon"
)

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Sprites        struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int      `json:"slot"`
		Type namedRef `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability namedRef `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move namedRef `json:"move"`
	} `json:"moves"`
}

// record validates the payload and maps it to a SpeciesRecord.
func (d *pokemonDTO) record() (*pokemon.SpeciesRecord, error) {
	if d.ID <= 0 || d.Name == "" {
		return nil, fmt.Errorf("%w: pokemon payload without id or name", upstream.ErrMalformed)
	}
	rec := &pokemon.SpeciesRecord{
		ID:             d.ID,
		Name:           d.Name,
		Height:         d.Height,
		Weight:         d.Weight,
		BaseExperience: d.BaseExperience,
		Sprite:         d.Sprites.FrontDefault,
		Types:          make([]string, 0, len(d.Types)),
		Abilities:      make([]string, 0, len(d.Abilities)),
		Stats:          make([]pokemon.Stat, 0, len(d.Stats)),
		Moves:          make([]string, 0, len(d.Moves)),
	}
	for _, t := range d.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}
	for _, a := range d.Abilities {
		rec.Abilities = append(rec.Abilities, a.Ability.Name)
	}
	if len(d.Stats) == 0 {
		return nil, fmt.Errorf("%w: %s has no stats", upstream.ErrMalformed, d.Name)
	}
	for _, s := range d.Stats {
		if s.Stat.Name == "" {
			return nil, fmt.Errorf("%w: %s has an unnamed stat", upstream.ErrMalformed, d.Name)
		}
		rec.Stats = append(rec.Stats, pokemon.Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	for _, m := range d.Moves {
		rec.Moves = append(rec.Moves, m.Move.Name)
	}
	return rec, nil
}

type speciesDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

func (d *speciesDTO) meta() (*pokemon.SpeciesMeta, error) {
	if d.ID <= 0 || d.Name == "" {
		return nil, fmt.Errorf("%w: species payload without id or name", upstream.ErrMalformed)
	}
	m := &pokemon.SpeciesMeta{ID: d.ID, Name: d.Name}
	if d.EvolutionChain != nil {
		m.ChainRef = d.EvolutionChain.URL
	}
	return m, nil
}

type chainLinkDTO struct {
	Species   namedRef       `json:"species"`
	EvolvesTo []chainLinkDTO `json:"evolves_to"`
}

type chainDTO struct {
	ID    int           `json:"id"`
	Chain *chainLinkDTO `json:"chain"`
}

// maxLinkDepth stops decoding absurdly nested payloads.
const maxLinkDepth = 256

func (d *chainDTO) chain() (*pokemon.EvolutionChain, error) {
	if d.Chain == nil || d.Chain.Species.Name == "" {
		return nil, fmt.Errorf("%w: evolution chain without a root species", upstream.ErrMalformed)
	}
	root, err := d.Chain.node(0)
	if err != nil {
		return nil, err
	}
	return &pokemon.EvolutionChain{ID: d.ID, Root: root}, nil
}

func (l *chainLinkDTO) node(depth int) (*pokemon.EvolutionNode, error) {
	if depth > maxLinkDepth {
		return nil, fmt.Errorf("%w: evolution chain nested deeper than %d", upstream.ErrMalformed, maxLinkDepth)
	}
	n := &pokemon.EvolutionNode{Species: l.Species.Name}
	for i := range l.EvolvesTo {
		child, err := l.EvolvesTo[i].node(depth + 1)
		if err != nil {
			return nil, err
		}
		n.EvolvesTo = append(n.EvolvesTo, child)
	}
	return n, nil
}

type encounterDTO struct {
	LocationArea namedRef `json:"location_area"`
}
