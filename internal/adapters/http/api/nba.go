package api

import (
	"net/http"

	service "github.com/okian/explorer/internal/app"
)

// NBAHandler serves the NBA explorer endpoints.
type NBAHandler struct {
	sessions *sessionOpener
}

// NewNBAHandler creates a new NBA handler.
func NewNBAHandler(sessions *sessionOpener) *NBAHandler {
	return &NBAHandler{sessions: sessions}
}

// HandleTeams handles GET /api/nba/teams.
func (h *NBAHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	teams, err := sess.Teams(r.Context())
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleTeamGames handles GET /api/nba/teams/{team}/games?season=&date=.
func (h *NBAHandler) HandleTeamGames(w http.ResponseWriter, r *http.Request) {
	season, err := intParam(r, "season")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	out, err := sess.TeamGames(r.Context(), service.GamesQuery{
		Team:   r.PathValue("team"),
		Season: season,
		Date:   r.URL.Query().Get("date"),
	})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTeamLocation handles GET /api/nba/teams/{team}/location.
func (h *NBAHandler) HandleTeamLocation(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	out, err := sess.TeamLocation(r.Context(), service.TeamQuery{Team: r.PathValue("team")})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTeamLeaders handles GET /api/nba/teams/{team}/leaders?season=&category=&limit=.
func (h *NBAHandler) HandleTeamLeaders(w http.ResponseWriter, r *http.Request) {
	season, err := intParam(r, "season")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	out, err := sess.TeamLeaders(r.Context(), service.LeadersQuery{
		Team:     r.PathValue("team"),
		Season:   season,
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
	})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleStandings handles GET /api/nba/standings?season=.
func (h *NBAHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	season, err := intParam(r, "season")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	rows, err := sess.Standings(r.Context(), service.StandingsQuery{Season: season})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleSeasons handles GET /api/nba/seasons.
func (h *NBAHandler) HandleSeasons(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	out, err := sess.Seasons(r.Context())
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandlePlayers handles GET /api/nba/players?search=&team=&season=.
func (h *NBAHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	season, err := intParam(r, "season")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	players, err := sess.SearchPlayers(r.Context(), service.PlayerQuery{
		Search: q.Get("search"),
		Team:   q.Get("team"),
		Season: season,
	})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// HandlePlayerStatistics handles GET /api/nba/players/{id}/statistics?season=.
func (h *NBAHandler) HandlePlayerStatistics(w http.ResponseWriter, r *http.Request) {
	id, err := intPath(r, "id")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	season, err := intParam(r, "season")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	stats, err := sess.PlayerStatistics(r.Context(), service.PlayerStatsQuery{PlayerID: id, Season: season})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
