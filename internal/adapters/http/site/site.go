// Package site serves the HTML dashboard.
package site

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/okian/explorer/internal/adapters/http/api"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/pkg/logger"
)

// Dependencies required by the dashboard.
type Dependencies interface {
	NewSession(ctx context.Context) (*service.Session, error)
	DefaultSeason() int
}

// Site renders dashboard pages from per-request sessions.
type Site struct {
	deps Dependencies
	log  logger.Logger
}

// New creates the dashboard.
func New(deps Dependencies, log logger.Logger) *Site {
	if log == nil {
		log = logger.Discard()
	}
	return &Site{deps: deps, log: log}
}

// Register attaches the dashboard routes to mux.
func (s *Site) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /{$}", api.MetricsMiddleware(s.handleIndex, "site_index"))
	mux.HandleFunc("GET /pokemon", api.MetricsMiddleware(s.handlePokemon, "site_pokemon"))
	mux.HandleFunc("GET /nba/standings", api.MetricsMiddleware(s.handleStandings, "site_standings"))
}

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, http.StatusOK, indexPage())
}

func (s *Site) handlePokemon(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	view := pokemonView{Query: name}
	if name == "" {
		s.serve(w, r, http.StatusOK, pokemonPage(view))
		return
	}

	sess, err := s.deps.NewSession(r.Context())
	if err != nil {
		view.Err = err
		s.serve(w, r, statusFor(err), pokemonPage(view))
		return
	}

	prof, err := sess.Profile(r.Context(), service.ProfileQuery{Pokemon: name})
	if err != nil {
		view.Err = err
		s.serve(w, r, statusFor(err), pokemonPage(view))
		return
	}
	view.Profile = &prof

	// The profile already warmed the session, so the chain walk starts from cache.
	evo, err := sess.Evolution(r.Context(), service.PokemonQuery{Pokemon: name})
	if err != nil {
		view.EvoErr = err
	}
	if len(evo.Table.Rows) > 0 {
		view.Evolution = &evo
	}
	s.serve(w, r, http.StatusOK, pokemonPage(view))
}

func (s *Site) handleStandings(w http.ResponseWriter, r *http.Request) {
	view := standingsView{Season: s.deps.DefaultSeason()}
	if raw := r.URL.Query().Get("season"); raw != "" {
		season, err := strconv.Atoi(raw)
		if err != nil {
			view.Err = fmt.Errorf("%w: season %q is not a number", service.ErrInvalidQuery, raw)
			s.serve(w, r, http.StatusBadRequest, standingsPage(view))
			return
		}
		view.Season = season
	}

	sess, err := s.deps.NewSession(r.Context())
	if err != nil {
		view.Err = err
		s.serve(w, r, statusFor(err), standingsPage(view))
		return
	}
	standings, err := sess.Standings(r.Context(), service.StandingsQuery{Season: view.Season})
	if err != nil {
		view.Err = err
		s.serve(w, r, statusFor(err), standingsPage(view))
		return
	}
	view.Standings = standings
	s.serve(w, r, http.StatusOK, standingsPage(view))
}

func (s *Site) serve(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	if status >= http.StatusInternalServerError {
		s.log.Warn(r.Context(), "dashboard page degraded", logger.String("path", r.URL.Path), logger.Int("status", status))
	}
	templ.Handler(page,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.log.Error(r.Context(), "render failed", logger.String("path", r.URL.Path), logger.Error(fmt.Errorf("%w: %w", ErrRender, err)))
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, ErrRender.Error(), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
