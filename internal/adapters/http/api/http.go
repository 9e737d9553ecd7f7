// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/pkg/logger"
)

// Dependencies required by HTTP handlers. Every API request runs in its own
// session so lookups are memoized for the duration of one query.
type Dependencies interface {
	NewSession(ctx context.Context) (*service.Session, error)
}

// Server wires HTTP routes for the explorer API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	pokemonHandler *PokemonHandler
	nbaHandler     *NBAHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	sessions := &sessionOpener{deps: deps, log: log}
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		pokemonHandler: NewPokemonHandler(sessions),
		nbaHandler:     NewNBAHandler(sessions),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	handle := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestID(MetricsMiddleware(h, endpoint)))
	}

	handle("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	handle("GET /metrics", "metrics", s.healthHandler.HandleMetrics)
	handle("GET /stats", "stats", s.statsHandler.HandleStats)

	handle("GET /api/pokemon/{id}", "pokemon", s.pokemonHandler.HandleProfile)
	handle("GET /api/pokemon/{id}/evolution", "pokemon_evolution", s.pokemonHandler.HandleEvolution)
	handle("GET /api/pokemon/{id}/locations", "pokemon_locations", s.pokemonHandler.HandleLocations)

	handle("GET /api/nba/teams", "nba_teams", s.nbaHandler.HandleTeams)
	handle("GET /api/nba/teams/{team}/games", "nba_team_games", s.nbaHandler.HandleTeamGames)
	handle("GET /api/nba/teams/{team}/location", "nba_team_location", s.nbaHandler.HandleTeamLocation)
	handle("GET /api/nba/teams/{team}/leaders", "nba_team_leaders", s.nbaHandler.HandleTeamLeaders)
	handle("GET /api/nba/standings", "nba_standings", s.nbaHandler.HandleStandings)
	handle("GET /api/nba/seasons", "nba_seasons", s.nbaHandler.HandleSeasons)
	handle("GET /api/nba/players", "nba_players", s.nbaHandler.HandlePlayers)
	handle("GET /api/nba/players/{id}/statistics", "nba_player_statistics", s.nbaHandler.HandlePlayerStatistics)
}

// sessionOpener opens the per-request session and reports failures.
type sessionOpener struct {
	deps Dependencies
	log  logger.Logger
}

func (o *sessionOpener) open(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	sess, err := o.deps.NewSession(r.Context())
	if err != nil {
		o.log.Error(r.Context(), "could not open session", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
		return nil, false
	}
	w.Header().Set(headerSessionID, sess.ID())
	return sess, true
}

// fail converts err into the JSON error response.
func (o *sessionOpener) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		o.log.Error(r.Context(), "request failed", logger.String("path", r.URL.Path), logger.Error(err))
	} else {
		o.log.Debug(r.Context(), "request rejected", logger.String("path", r.URL.Path), logger.Error(err))
	}
	writeError(w, status, code, err)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
