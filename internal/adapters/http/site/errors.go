package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/explorer/internal/adapters/upstream"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/nba"
	"github.com/okian/explorer/internal/domain/pokemon"
)

// Error constants
var (
	ErrRender = errors.New("page render failed")
)

// statusFor picks the status of an error page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	case errors.Is(err, upstream.ErrTransport),
		errors.Is(err, upstream.ErrStatus) && !upstream.Definitive(err):
		return http.StatusBadGateway
	case errors.Is(err, pokemon.ErrNotFound),
		errors.Is(err, pokemon.ErrNoData),
		errors.Is(err, pokemon.ErrMalformedChain),
		errors.Is(err, nba.ErrNoData),
		errors.Is(err, upstream.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
