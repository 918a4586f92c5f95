package lns

import "errors"

// Sentinel errors for driver construction failures.
var (
	// ErrMissingCompiler indicates NewDriver was called without a compiler.
	ErrMissingCompiler = errors.New("lns: compiler is required")

	// ErrInvalidWidth indicates a non-positive width cap.
	ErrInvalidWidth = errors.New("lns: width must be positive")

	// ErrInvalidNbVar indicates a non-positive variable count.
	ErrInvalidNbVar = errors.New("lns: nbVar must be positive")
)
