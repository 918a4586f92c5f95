package mdd

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/memguard"
)

// config holds resolved construction parameters before NewCompiler validates
// and freezes them. Unexported, like the teacher's internal Options: public
// entry points consume ...Option and never see the struct directly.
type config[S comparable] struct {
	ordering  core.VariableOrdering[S]
	heuristic core.NodeSelectionHeuristic[S, MiniNode[S]]
	width     int
	retention float64
	seed      int64
	kill      *atomic.Bool
	guard     *memguard.Guard
}

func defaultConfig[S comparable]() config[S] {
	return config[S]{
		width:     math.MaxInt,
		retention: 0,
		seed:      0,
	}
}

// Option mutates a Compiler's construction config. Safe to apply repeatedly.
type Option[S comparable] func(*config[S])

// WithOrdering supplies the variable ordering used to pick the next branching
// variable from the current frontier.
func WithOrdering[S comparable](ordering core.VariableOrdering[S]) Option[S] {
	return func(c *config[S]) { c.ordering = ordering }
}

// WithHeuristic supplies the node-selection heuristic used for restriction
// tie-breaking and mandatory-node retention.
func WithHeuristic[S comparable](h core.NodeSelectionHeuristic[S, MiniNode[S]]) Option[S] {
	return func(c *config[S]) { c.heuristic = h }
}

// WithWidth sets the default layer width cap W. NewCompiler rejects a
// non-positive width with ErrInvalidWidth; builder misconfiguration must
// fail fast, at construction time, not by panicking out of an Option.
func WithWidth[S comparable](w int) Option[S] {
	return func(c *config[S]) { c.width = w }
}

// WithRetention sets the default Bernoulli retention probability p.
// NewCompiler rejects a value outside [0,1] with ErrInvalidRetention.
func WithRetention[S comparable](p float64) Option[S] {
	return func(c *config[S]) { c.retention = p }
}

// WithSeed fixes the RNG seed driving restriction's Bernoulli draws.
func WithSeed[S comparable](seed int64) Option[S] {
	return func(c *config[S]) { c.seed = seed }
}

// WithKillSwitch wires a shared kill flag the compiler polls at the
// designated cancellation points.
func WithKillSwitch[S comparable](kill *atomic.Bool) Option[S] {
	return func(c *config[S]) { c.kill = kill }
}

// WithMemGuard wires a byte-ceiling tracker the compiler charges for the
// arena growth of each layer once that layer is built; a nil guard (the
// default) disables the charge.
func WithMemGuard[S comparable](g *memguard.Guard) Option[S] {
	return func(c *config[S]) { c.guard = g }
}

// rngFromSeed returns a deterministic *rand.Rand, mirroring the teacher's
// seed==0-means-fixed-default policy so a zero-value Option set still yields
// reproducible runs.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = 1
	}
	return rand.New(rand.NewSource(s))
}
