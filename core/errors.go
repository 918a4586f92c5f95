package core

import "errors"

// Sentinel errors for parsing and construction failures.
var (
	// ErrParseToken indicates a non-integer token was found while parsing a Solution.
	ErrParseToken = errors.New("core: solution token is not an integer")
)
