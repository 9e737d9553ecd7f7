// Package service provides the explorer's application service: it owns the
// upstream clients and opens query sessions used by the HTTP API and the
// console.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/okian/explorer/internal/adapters/nbaapi"
	"github.com/okian/explorer/internal/adapters/pokeapi"
	"github.com/okian/explorer/internal/adapters/upstream"
	"github.com/okian/explorer/internal/domain/memo"
	"github.com/okian/explorer/internal/domain/pokemon"
	"github.com/okian/explorer/pkg/logger"
	"github.com/okian/explorer/pkg/metrics"
)

// DefaultSeason is used when a query names no season.
const DefaultSeason = 2023

// Service implements the dependencies required by the HTTP API and console.
type Service struct {
	mu sync.RWMutex

	// Upstream clients
	pokeapi *pokeapi.Client
	nba     *nbaapi.Client

	// Configuration
	chainBound    int
	defaultSeason int

	// State
	started        bool
	startedAt      time.Time
	sessionsOpened atomic.Int64

	validate *validator.Validate
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPokeAPI sets the PokeAPI client.
func WithPokeAPI(c *pokeapi.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.pokeapi = c
		}
	}
}

// WithNBA sets the API-NBA client.
func WithNBA(c *nbaapi.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.nba = c
		}
	}
}

// WithChainBound caps evolution chain walks.
func WithChainBound(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.chainBound = n
		}
	}
}

// WithDefaultSeason sets the season used when a query names none.
func WithDefaultSeason(season int) Option {
	return func(s *Service) {
		if season > 0 {
			s.defaultSeason = season
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		chainBound:    pokemon.DefaultChainBound,
		defaultSeason: DefaultSeason,
		validate:      newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start fills in missing clients with public defaults and marks the service
// ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.pokeapi == nil {
		c, err := pokeapi.New(pokeapi.DefaultBaseURL, upstream.WithLogger(s.logger))
		if err != nil {
			return fmt.Errorf("pokeapi client: %w", err)
		}
		s.pokeapi = c
	}
	if s.nba == nil {
		c, err := nbaapi.New(nbaapi.DefaultBaseURL, nbaapi.DefaultHost, "", upstream.WithLogger(s.logger))
		if err != nil {
			return fmt.Errorf("nba client: %w", err)
		}
		s.nba = c
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "explorer service started",
		logger.Int("chainBound", s.chainBound),
		logger.Int("defaultSeason", s.defaultSeason),
	)
	return nil
}

// Stop marks the service stopped. Open sessions keep working until dropped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "explorer service stopped")
}

// NewSession opens a query session with an empty memoization cache.
func (s *Service) NewSession(ctx context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}

	cache := memo.New(memo.WithRetainedFailures(upstream.Definitive))
	sess := &Session{
		id:      uuid.NewString(),
		svc:     s,
		cache:   cache,
		pokemon: pokeapi.NewFetcher(s.pokeapi, cache),
		nba:     s.nba,
		opened:  time.Now(),
	}
	sess.logger = s.logger.With(logger.String("session", sess.id))

	s.sessionsOpened.Add(1)
	metrics.RecordSessionOpened()
	sess.logger.Debug(ctx, "session opened")
	return sess, nil
}

// ChainBound is the configured evolution chain bound.
func (s *Service) ChainBound() int { return s.chainBound }

// DefaultSeason is the season used when a query names none.
func (s *Service) DefaultSeason() int { return s.defaultSeason }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":        s.started,
		"chainBound":     s.chainBound,
		"defaultSeason":  s.defaultSeason,
		"sessionsOpened": s.sessionsOpened.Load(),
	}
	if s.started {
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	return stats
}

// season resolves an optional season to the default.
func (s *Service) season(season int) int {
	if season == 0 {
		return s.defaultSeason
	}
	return season
}
