package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/explorer/internal/adapters/upstream"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/nba"
	"github.com/okian/explorer/internal/domain/pokemon"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// Error codes carried in JSON error bodies.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeNoData        = "no_data"
	codeUpstreamError = "upstream_error"
	codeCanceled      = "canceled"
	codeInternal      = "internal_error"
)

// statusClientClosed is reported when the caller went away mid-request.
const statusClientClosed = 499

// classify maps an error to an HTTP status and error code. Transient
// upstream failures are checked before not-found kinds because fetchers wrap
// every failure in their not-found sentinel.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidQuery):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, context.Canceled):
		return statusClientClosed, codeCanceled
	case transient(err):
		return http.StatusBadGateway, codeUpstreamError
	case errors.Is(err, pokemon.ErrMalformedChain),
		errors.Is(err, pokemon.ErrNoData),
		errors.Is(err, pokemon.ErrNoLocations),
		errors.Is(err, nba.ErrNoData),
		errors.Is(err, nba.ErrNoLocation):
		return http.StatusNotFound, codeNoData
	case errors.Is(err, pokemon.ErrNotFound),
		errors.Is(err, nba.ErrTeamNotFound),
		errors.Is(err, upstream.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, upstream.ErrStatus),
		errors.Is(err, upstream.ErrMalformed),
		errors.Is(err, upstream.ErrForeignURL):
		return http.StatusBadGateway, codeUpstreamError
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// transient reports failures that a later retry might not repeat.
func transient(err error) bool {
	return errors.Is(err, upstream.ErrTransport) || (errors.Is(err, upstream.ErrStatus) && !upstream.Definitive(err))
}
