package api

import (
	"net/http"

	service "github.com/okian/explorer/internal/app"
)

// PokemonHandler serves the Pokémon explorer endpoints.
type PokemonHandler struct {
	sessions *sessionOpener
}

// NewPokemonHandler creates a new Pokémon handler.
func NewPokemonHandler(sessions *sessionOpener) *PokemonHandler {
	return &PokemonHandler{sessions: sessions}
}

// HandleProfile handles GET /api/pokemon/{id}.
func (h *PokemonHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	moves, err := intParam(r, "moves")
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	profile, err := sess.Profile(r.Context(), service.ProfileQuery{
		Pokemon:  r.PathValue("id"),
		Focus:    listParam(r, "focus"),
		MaxMoves: moves,
	})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleEvolution handles GET /api/pokemon/{id}/evolution. A chain with no
// fetchable member is reported as 404 no_data.
func (h *PokemonHandler) HandleEvolution(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	evo, err := sess.Evolution(r.Context(), service.PokemonQuery{Pokemon: r.PathValue("id")})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evo)
}

// HandleLocations handles GET /api/pokemon/{id}/locations.
func (h *PokemonHandler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.open(w, r)
	if !ok {
		return
	}
	locs, err := sess.Locations(r.Context(), service.PokemonQuery{Pokemon: r.PathValue("id")})
	if err != nil {
		h.sessions.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, locs)
}
