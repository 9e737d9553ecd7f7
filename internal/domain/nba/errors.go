package nba

import "errors"

// Sentinel kinds for NBA explorer errors.
var (
	ErrNoData          = errors.New("no data")
	ErrTeamNotFound    = errors.New("team not found")
	ErrNoLocation      = errors.New("location data not available for this team")
	ErrUnknownCategory = errors.New("unknown statistic category")
	ErrInvalidOption   = errors.New("invalid display option")
)
