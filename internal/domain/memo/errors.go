package memo

import "errors"

// Sentinel kinds for memo errors.
var (
	ErrTypeMismatch = errors.New("memoized value has unexpected type")
)
