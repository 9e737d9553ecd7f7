package pokemon

import "errors"

// Sentinel kinds for Pokémon explorer errors.
var (
	ErrEmptyIdentifier   = errors.New("species identifier is empty")
	ErrInvalidIdentifier = errors.New("invalid species identifier")
	ErrNotFound          = errors.New("species not found")
	ErrMalformedChain    = errors.New("no evolution chain")
	ErrNoData            = errors.New("no stat data")
	ErrNoLocations       = errors.New("no location data")
	ErrInvalidOption     = errors.New("invalid display option")
)
