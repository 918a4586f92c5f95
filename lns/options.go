package lns

import (
	"math"
	"sync/atomic"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

// config holds resolved construction parameters before NewDriver validates
// and freezes them into a Driver.
type config[S comparable] struct {
	compiler   *mdd.Compiler[S]
	width      int
	initialVal *int
	initialSol *core.Solution
	kill       *atomic.Bool
	nbVar      int
	onIter     func(depth int)
	onImprove  func(value int)
}

func defaultConfig[S comparable]() config[S] {
	return config[S]{
		width: math.MaxInt,
	}
}

// Option mutates a Driver's construction config.
type Option[S comparable] func(*config[S])

// WithCompiler supplies the mdd.Compiler instance the driver repeatedly
// restricts. Required.
func WithCompiler[S comparable](c *mdd.Compiler[S]) Option[S] {
	return func(cfg *config[S]) { cfg.compiler = c }
}

// WithWidth sets the layer width cap passed to every Restricted call.
func WithWidth[S comparable](w int) Option[S] {
	return func(cfg *config[S]) { cfg.width = w }
}

// WithInitialValue seeds the incumbent value. Unset means no incumbent
// value: compilations are bounded by +Inf, and a run that never reaches a
// terminal reports a nil BestValue.
func WithInitialValue[S comparable](v int) Option[S] {
	return func(cfg *config[S]) { cfg.initialVal = &v }
}

// WithInitialSolution seeds the incumbent solution, e.g. from a greedy or
// feasibility-seeding collaborator.
func WithInitialSolution[S comparable](sol core.Solution) Option[S] {
	return func(cfg *config[S]) { cfg.initialSol = &sol }
}

// WithKillSwitch wires the shared cancellation flag consulted at the top of
// every outer iteration.
func WithKillSwitch[S comparable](kill *atomic.Bool) Option[S] {
	return func(cfg *config[S]) { cfg.kill = kill }
}

// WithNbVar sets the problem's variable count, which determines the deepest
// anchor depth (nbVar-2) the cursor resets to on improvement. Required.
func WithNbVar[S comparable](n int) Option[S] {
	return func(cfg *config[S]) { cfg.nbVar = n }
}

// WithDiagnosticHook registers a callback invoked at the top of every outer
// iteration with the anchor depth about to be compiled. Intended for
// logging/tracing the cursor schedule; has no effect on search behavior.
func WithDiagnosticHook[S comparable](hook func(depth int)) Option[S] {
	return func(cfg *config[S]) { cfg.onIter = hook }
}

// WithProgressHook registers a callback invoked each time the incumbent
// value improves, with the new value. Intended for logging/progress
// reporting; has no effect on search behavior.
func WithProgressHook[S comparable](hook func(value int)) Option[S] {
	return func(cfg *config[S]) { cfg.onImprove = hook }
}
