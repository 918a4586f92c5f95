package psp

import "errors"

// Sentinel errors for instance parsing failures.
var (
	// ErrMissingField indicates the input ended before a required field.
	ErrMissingField = errors.New("psp: missing required field")

	// ErrParseInt indicates a token expected to be an integer was not one.
	ErrParseInt = errors.New("psp: expected integer token")

	// ErrTooManyItems indicates nb_items exceeds MaxItems, beyond which the
	// precomputed per-subset spanning-tree table becomes intractable.
	ErrTooManyItems = errors.New("psp: nb_items exceeds MaxItems")
)
