// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"
)

// Config contains process configuration shared by the server and the console.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// PokeAPIBaseURL is the root of the Pokémon REST API.
	PokeAPIBaseURL string `koanf:"pokeapi_base_url"`

	// NBABaseURL is the root of the API-NBA REST API.
	NBABaseURL string `koanf:"nba_base_url"`

	// NBAAPIHost is sent as x-rapidapi-host.
	NBAAPIHost string `koanf:"nba_api_host"`

	// NBAAPIKey is sent as x-rapidapi-key. Falls back to API_KEY.
	NBAAPIKey string `koanf:"nba_api_key"`

	// UpstreamTimeout bounds each upstream request; zero keeps the HTTP client default (none).
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	// ChainBound caps the number of species visited in one evolution chain walk.
	ChainBound int `koanf:"chain_bound"`

	// DefaultSeason is used by NBA queries that do not name a season.
	DefaultSeason int `koanf:"default_season"`

	// HistoryFile is where the console keeps its readline history.
	HistoryFile string `koanf:"history_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		PokeAPIBaseURL:  "https://pokeapi.co/api/v2",
		NBABaseURL:      "https://api-nba-v1.p.rapidapi.com",
		NBAAPIHost:      "api-nba-v1.p.rapidapi.com",
		UpstreamTimeout: 0,
		ChainBound:      50,
		DefaultSeason:   2023,
		HistoryFile:     ".explorer_history",
	}
}
