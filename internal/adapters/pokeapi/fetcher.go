package pokeapi

import (
	"context"

	"github.com/okian/explorer/internal/domain/memo"
	"github.com/okian/explorer/internal/domain/pokemon"
	"github.com/okian/explorer/pkg/metrics"
)

// Memo key prefixes, one per endpoint.
const (
	keyPokemon    = "pokemon/"
	keySpecies    = "species/"
	keyChain      = "chain/"
	keyEncounters = "encounters/"
)

// Fetcher is a Client whose lookups are memoized in a session cache. A
// Fetcher issues at most one request per distinct endpoint and identifier.
type Fetcher struct {
	client *Client
	cache  *memo.Cache
}

// NewFetcher binds client to cache.
func NewFetcher(client *Client, cache *memo.Cache) *Fetcher {
	return &Fetcher{client: client, cache: cache}
}

// Pokemon returns the memoized species record.
func (f *Fetcher) Pokemon(ctx context.Context, id pokemon.Identifier) (*pokemon.SpeciesRecord, error) {
	return cached(ctx, f.cache, "pokemon", keyPokemon+id.Key(), func(ctx context.Context) (*pokemon.SpeciesRecord, error) {
		return f.client.Pokemon(ctx, id)
	})
}

// Species returns the memoized species metadata.
func (f *Fetcher) Species(ctx context.Context, id pokemon.Identifier) (*pokemon.SpeciesMeta, error) {
	return cached(ctx, f.cache, "species", keySpecies+id.Key(), func(ctx context.Context) (*pokemon.SpeciesMeta, error) {
		return f.client.Species(ctx, id)
	})
}

// Record joins the species record with its chain reference. Both halves are
// memoized separately.
func (f *Fetcher) Record(ctx context.Context, id pokemon.Identifier) (*pokemon.SpeciesRecord, error) {
	rec, err := f.Pokemon(ctx, id)
	if err != nil {
		return nil, err
	}
	meta, err := f.Species(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.WithChainRef(meta.ChainRef), nil
}

// EvolutionChain returns the memoized chain behind ref.
func (f *Fetcher) EvolutionChain(ctx context.Context, ref string) (*pokemon.EvolutionChain, error) {
	return cached(ctx, f.cache, "chain", keyChain+ref, func(ctx context.Context) (*pokemon.EvolutionChain, error) {
		return f.client.EvolutionChain(ctx, ref)
	})
}

// Encounters returns the memoized encounter areas.
func (f *Fetcher) Encounters(ctx context.Context, id pokemon.Identifier) ([]string, error) {
	return cached(ctx, f.cache, "encounters", keyEncounters+id.Key(), func(ctx context.Context) ([]string, error) {
		return f.client.Encounters(ctx, id)
	})
}

func cached[T any](ctx context.Context, c *memo.Cache, resource, key string, fetch func(context.Context) (T, error)) (T, error) {
	v, hit, err := memo.Do(ctx, c, key, fetch)
	if hit {
		metrics.RecordCacheHit(resource)
	} else {
		metrics.RecordCacheMiss(resource)
	}
	return v, err
}
