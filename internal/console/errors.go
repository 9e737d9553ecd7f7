package console

import "errors"

// Sentinel kinds for console errors.
var (
	ErrExit           = errors.New("exit requested")
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
)
