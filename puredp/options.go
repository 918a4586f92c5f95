package puredp

import (
	"sync/atomic"

	"github.com/mdd-lns/ddlns/core"
)

// config holds resolved construction parameters before NewSolver validates
// and freezes them into a Solver.
type config[S comparable] struct {
	ordering core.VariableOrdering[S]
	kill     *atomic.Bool
}

// Option mutates a Solver's construction config.
type Option[S comparable] func(*config[S])

// WithOrdering supplies the variable ordering used to pick the next
// branching variable at each recursion step. Required.
func WithOrdering[S comparable](ordering core.VariableOrdering[S]) Option[S] {
	return func(c *config[S]) { c.ordering = ordering }
}

// WithKillSwitch wires a shared cancellation flag consulted at the top of
// every recursive call and before recursing into each candidate decision.
func WithKillSwitch[S comparable](kill *atomic.Bool) Option[S] {
	return func(c *config[S]) { c.kill = kill }
}
