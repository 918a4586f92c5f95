package tsptw

import "errors"

var (
	// ErrMissingField indicates the instance text ended before a required
	// field was read.
	ErrMissingField = errors.New("tsptw: missing field")
	// ErrParseInt indicates a field that should have been an integer
	// count (the city header) failed to parse.
	ErrParseInt = errors.New("tsptw: malformed integer field")
	// ErrParseFloat indicates a distance or time-window coefficient
	// failed to parse as a floating point number.
	ErrParseFloat = errors.New("tsptw: malformed numeric field")
)
