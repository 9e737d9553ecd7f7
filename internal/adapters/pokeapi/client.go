// Package pokeapi adapts PokeAPI v2 resources to the pokemon domain.
package pokeapi

import (
	"context"
	"fmt"

	"github.com/okian/explorer/internal/adapters/upstream"
	"github.com/okian/explorer/internal/domain/pokemon"
)

// APIName labels PokeAPI traffic in logs and metrics.
const APIName = "pokeapi"

// DefaultBaseURL is the public PokeAPI root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client issues uncached PokeAPI requests. Use a Fetcher for memoized access.
type Client struct {
	http *upstream.Client
}

// New builds a client rooted at baseURL.
func New(baseURL string, opts ...upstream.Option) (*Client, error) {
	hc, err := upstream.New(APIName, baseURL, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Pokemon fetches /pokemon/{key}.
func (c *Client) Pokemon(ctx context.Context, id pokemon.Identifier) (*pokemon.SpeciesRecord, error) {
	var dto pokemonDTO
	if err := c.http.GetJSON(ctx, "pokemon", "pokemon/"+id.Key(), nil, &dto); err != nil {
		return nil, notFound(id, err)
	}
	rec, err := dto.record()
	if err != nil {
		return nil, notFound(id, err)
	}
	return rec, nil
}

// Species fetches /pokemon-species/{key}.
func (c *Client) Species(ctx context.Context, id pokemon.Identifier) (*pokemon.SpeciesMeta, error) {
	var dto speciesDTO
	if err := c.http.GetJSON(ctx, "species", "pokemon-species/"+id.Key(), nil, &dto); err != nil {
		return nil, notFound(id, err)
	}
	meta, err := dto.meta()
	if err != nil {
		return nil, notFound(id, err)
	}
	return meta, nil
}

// EvolutionChain fetches the chain resource at ref, an absolute URL on the
// PokeAPI host or a path relative to the base.
func (c *Client) EvolutionChain(ctx context.Context, ref string) (*pokemon.EvolutionChain, error) {
	var dto chainDTO
	if err := c.http.GetJSON(ctx, "evolution_chain", ref, nil, &dto); err != nil {
		return nil, err
	}
	return dto.chain()
}

// Encounters fetches /pokemon/{key}/encounters and returns the area names.
func (c *Client) Encounters(ctx context.Context, id pokemon.Identifier) ([]string, error) {
	var dto []encounterDTO
	if err := c.http.GetJSON(ctx, "encounters", "pokemon/"+id.Key()+"/encounters", nil, &dto); err != nil {
		return nil, notFound(id, err)
	}
	areas := make([]string, 0, len(dto))
	for _, e := range dto {
		areas = append(areas, e.LocationArea.Name)
	}
	return areas, nil
}

func notFound(id pokemon.Identifier, err error) error {
	return fmt.Errorf("%w: %s: %w", pokemon.ErrNotFound, id, err)
}
