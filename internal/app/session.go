package service

import (
	"time"

	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/adapters/pokeapi"
	"github.com/okian/explorer/internal/domain/memo"
	"github.com/okian/explorer/pkg/logger"
)

// Session is the scope of one memoization cache. Every Pokémon lookup made
// through a session is fetched at most once. The HTTP API opens one per
// request; the console keeps one until reset.
type Session struct {
	id      string
	svc     *Service
	cache   *memo.Cache
	pokemon *pokeapi.Fetcher
	nba     *nbaapi.Client
	opened  time.Time
	logger  logger.Logger
}

// SessionStats describes a session's cache usage.
type SessionStats struct {
	ID       string    `json:"id"`
	OpenedAt time.Time `json:"opened_at"`
	memo.Stats
}

// ID is the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Stats reports cache usage.
func (s *Session) Stats() SessionStats {
	return SessionStats{ID: s.id, OpenedAt: s.opened, Stats: s.cache.Stats()}
}
