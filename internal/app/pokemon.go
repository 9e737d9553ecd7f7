package service

import (
	"context"
	"errors"

	"github.com/okian/explorer/internal/domain/pokemon"
	"github.com/okian/explorer/pkg/logger"
	"github.com/okian/explorer/pkg/metrics"
)

// Evolution is a species' evolution line with the comparative stat table.
type Evolution struct {
	Species  string                 `json:"species"`
	Chain    pokemon.EvolutionChain `json:"chain"`
	Branches [][]string             `json:"branches,omitempty"`
	Table    pokemon.StatTable      `json:"table"`
}

// Locations is the encounter map for one species.
type Locations struct {
	Species   string             `json:"species"`
	Locations []pokemon.Location `json:"locations"`
}

// Profile fetches a species and builds its display profile.
func (s *Session) Profile(ctx context.Context, q ProfileQuery) (pokemon.Profile, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return pokemon.Profile{}, err
	}
	id, err := pokemon.ParseIdentifier(q.Pokemon)
	if err != nil {
		return pokemon.Profile{}, invalid(err)
	}
	maxMoves := q.MaxMoves
	if maxMoves == 0 {
		maxMoves = pokemon.DefaultMaxMoves
	}

	rec, err := s.pokemon.Record(ctx, id)
	if err != nil {
		s.logger.Warn(ctx, "species lookup failed", logger.String("pokemon", id.Key()), logger.Error(err))
		return pokemon.Profile{}, err
	}
	return pokemon.BuildProfile(rec, q.Focus, maxMoves)
}

// Evolution walks a species' evolution chain and aggregates the stats of
// every species on it. When no member could be fetched the partial result is
// returned with pokemon.ErrNoData.
func (s *Session) Evolution(ctx context.Context, q PokemonQuery) (Evolution, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return Evolution{}, err
	}
	id, err := pokemon.ParseIdentifier(q.Pokemon)
	if err != nil {
		return Evolution{}, invalid(err)
	}

	rec, err := s.pokemon.Record(ctx, id)
	if err != nil {
		return Evolution{}, err
	}
	chain, err := pokemon.Walk(ctx, s.pokemon, rec.ChainRef, s.svc.chainBound)
	if err != nil {
		s.logger.Warn(ctx, "evolution chain unavailable", logger.String("pokemon", rec.Name), logger.Error(err))
		return Evolution{}, err
	}
	metrics.RecordChainWalk(len(chain.Names), chain.Truncated, chain.DiscardedBranches)
	if chain.Truncated {
		s.logger.Warn(ctx, "evolution chain truncated",
			logger.String("pokemon", rec.Name),
			logger.Int("bound", s.svc.chainBound),
		)
	}

	out := Evolution{Species: rec.Name, Chain: chain}
	if chain.DiscardedBranches > 0 {
		out.Branches = pokemon.Branches(chain.Root, s.svc.chainBound)
	}

	table, err := pokemon.Aggregate(ctx, s.pokemon, chain.Names)
	metrics.RecordAggregation(len(table.Rows), len(table.Skipped))
	out.Table = table
	if len(table.Skipped) > 0 {
		s.logger.Info(ctx, "species skipped during aggregation", logger.Strings("skipped", table.Skipped))
	}
	if err != nil {
		if errors.Is(err, pokemon.ErrNoData) {
			return out, err
		}
		return Evolution{}, err
	}
	return out, nil
}

// Locations places a species' encounter areas on the synthetic map.
func (s *Session) Locations(ctx context.Context, q PokemonQuery) (Locations, error) {
	if err := s.svc.validateQuery(q); err != nil {
		return Locations{}, err
	}
	id, err := pokemon.ParseIdentifier(q.Pokemon)
	if err != nil {
		return Locations{}, invalid(err)
	}
	areas, err := s.pokemon.Encounters(ctx, id)
	if err != nil {
		return Locations{}, err
	}
	locs, err := pokemon.Locations(areas)
	if err != nil {
		return Locations{Species: id.Key()}, err
	}
	return Locations{Species: id.Key(), Locations: locs}, nil
}
