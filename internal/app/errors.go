package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidQuery = errors.New("invalid query")
	ErrNotStarted   = errors.New("service not started")
)
