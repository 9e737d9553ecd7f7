package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds for upstream failures.
var (
	ErrNotFound   = errors.New("upstream resource not found")
	ErrStatus     = errors.New("upstream returned an error status")
	ErrMalformed  = errors.New("upstream payload is malformed")
	ErrTransport  = errors.New("upstream request failed")
	ErrForeignURL = errors.New("resource URL is not on the configured host")
	ErrBaseURL    = errors.New("invalid upstream base URL")
)

// StatusError is a non-2xx response. It matches ErrNotFound for 404 and
// ErrStatus otherwise.
type StatusError struct {
	API  string
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: GET %s: %d %s", e.API, e.URL, e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrStatus
}

// Definitive reports whether repeating the request would fail the same way.
// Client errors and bad payloads are definitive; transport failures and 5xx
// responses are not.
func Definitive(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code < http.StatusInternalServerError
	}
	return errors.Is(err, ErrMalformed) || errors.Is(err, ErrForeignURL)
}

// Outcome is the metrics label for a request result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrForeignURL):
		return "foreign_url"
	default:
		return "transport"
	}
}
