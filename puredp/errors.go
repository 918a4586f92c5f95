package puredp

import "errors"

// ErrMissingOrdering is returned by NewSolver when no variable ordering was
// supplied via WithOrdering.
var ErrMissingOrdering = errors.New("puredp: ordering is required")
