package mdd

import "errors"

// Sentinel errors for compiler construction failures (builder misconfiguration
// must fail fast, before any search begins).
var (
	// ErrNilProblem indicates NewCompiler was called with a nil Problem.
	ErrNilProblem = errors.New("mdd: problem must not be nil")

	// ErrMissingOrdering indicates no VariableOrdering was supplied.
	ErrMissingOrdering = errors.New("mdd: variable ordering is required")

	// ErrMissingHeuristic indicates no NodeSelectionHeuristic was supplied.
	ErrMissingHeuristic = errors.New("mdd: node selection heuristic is required")

	// ErrInvalidWidth indicates a non-positive width cap.
	ErrInvalidWidth = errors.New("mdd: width must be positive")

	// ErrInvalidRetention indicates a retention probability outside [0,1].
	ErrInvalidRetention = errors.New("mdd: retention probability must be in [0,1]")
)
