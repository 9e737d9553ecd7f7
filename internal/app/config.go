package service

import (
	"fmt"

	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/adapters/pokeapi"
	"github.com/okian/explorer/internal/adapters/upstream"
	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/pkg/logger"
)

// OptionsFromConfig builds the upstream clients and service options described
// by cfg.
func OptionsFromConfig(cfg *config.Config, log logger.Logger) ([]Option, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if log == nil {
		log = logger.Discard()
	}
	clientOpts := []upstream.Option{
		upstream.WithTimeout(cfg.UpstreamTimeout),
		upstream.WithLogger(log.Named("upstream")),
	}

	pc, err := pokeapi.New(cfg.PokeAPIBaseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("pokeapi client: %w", err)
	}
	nc, err := nbaapi.New(cfg.NBABaseURL, cfg.NBAAPIHost, cfg.NBAAPIKey, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("nba client: %w", err)
	}

	return []Option{
		WithPokeAPI(pc),
		WithNBA(nc),
		WithChainBound(cfg.ChainBound),
		WithDefaultSeason(cfg.DefaultSeason),
		WithLogger(log.Named("service")),
	}, nil
}
