package mdd

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"unsafe"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/memguard"
)

// nodeBytes approximates one arena node's footprint for memguard charging;
// exactness does not matter, only that growth in the arena is reflected as
// growth in the guard's live-byte count.
const nodeBytes = uint64(unsafe.Sizeof(node{}))

// Compiler builds a layered decision diagram in place over a Problem. It is
// a reusable workspace: construct once with NewCompiler, then call Exact or
// Restricted as many times as the caller needs; each call resets the arena.
type Compiler[S comparable] struct {
	problem   core.Problem[S]
	ordering  core.VariableOrdering[S]
	heuristic core.NodeSelectionHeuristic[S, MiniNode[S]]
	rng       *rand.Rand
	retention float64
	width     int
	kill      *atomic.Bool
	guard     *memguard.Guard

	diagram *diagram[S]
	charged uint64
	pruned  bool
}

// NewCompiler validates construction options and returns a ready Compiler,
// or a sentinel error if a required option is missing — builder
// misconfiguration must fail fast, before any search begins.
func NewCompiler[S comparable](problem core.Problem[S], opts ...Option[S]) (*Compiler[S], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	cfg := defaultConfig[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ordering == nil {
		return nil, ErrMissingOrdering
	}
	if cfg.heuristic == nil {
		return nil, ErrMissingHeuristic
	}
	if cfg.width <= 0 {
		return nil, ErrInvalidWidth
	}
	if cfg.retention < 0 || cfg.retention > 1 {
		return nil, ErrInvalidRetention
	}

	return &Compiler[S]{
		problem:   problem,
		ordering:  cfg.ordering,
		heuristic: cfg.heuristic,
		rng:       rngFromSeed(cfg.seed),
		retention: cfg.retention,
		width:     cfg.width,
		kill:      cfg.kill,
		guard:     cfg.guard,
		diagram:   newDiagram[S](),
	}, nil
}

// Path implements core.NodeSource, giving the node-selection heuristic a
// narrow, read-only handle onto the arena for walking best_parent chains
// during IsMandatory checks.
func (c *Compiler[S]) Path(node MiniNode[S]) core.PathIter {
	return c.diagram.path(node.nodeID)
}

// Exact compiles with the compiler's configured width (MaxInt unless
// WithWidth overrode it), no incumbent, and no dive. With the default width
// the resulting diagram is exact unless the kill switch fires mid-compilation
// or no terminal is reached (see IsExact).
func (c *Compiler[S]) Exact() {
	c.Restricted(c.width, nil, nil, 0)
}

// Restricted compiles one diagram: width caps every layer's frontier after
// restriction (except mandatory overflow), bestVal (nil meaning +Inf)
// disables rough-lower-bound pruning when absent, bestSol seeds the dive
// prefix, and anchorDepth is the number of forced dive layers.
func (c *Compiler[S]) Restricted(width int, bestVal *int, bestSol *core.Solution, anchorDepth int) {
	d := c.diagram
	d.reset()
	if c.guard != nil && c.charged > 0 {
		c.guard.Release(c.charged)
	}
	c.charged = 0
	c.pruned = false

	initState := c.problem.InitialState()
	initValue := c.problem.InitialValue()
	d.seedRoot(initState, initValue, c.problem.Estimate(initState))
	c.chargeLayer()

	if bestSol != nil && anchorDepth > 0 {
		c.dive(bestSol, anchorDepth)
		d.isExact = false
	}

	for {
		if len(d.frontier) == 0 {
			return // infeasible restriction: abort cleanly, no terminal
		}
		v, ok := c.ordering.Next(c.frontierStates())
		if !ok {
			break // frontier is terminal
		}

		d.beginLayer()
		for _, m := range d.frontier {
			if c.kill != nil && c.kill.Load() {
				d.isExact = false
				return
			}
			if bestVal != nil {
				rlb := core.SaturatingAdd(m.value, m.estimate)
				if rlb >= *bestVal {
					c.pruned = true
					continue // pruned: provably dominated
				}
			}
			c.expandNode(m, v)
		}
		d.rebuildFrontier(c.problem.Estimate)
		c.chargeLayer()
		c.restrict(width, bestSol, v)
	}

	c.selectTerminal()
}

// dive performs anchorDepth forced layers following bestSol, ignoring the
// kill switch (the dive itself is non-failible per the concurrency model).
func (c *Compiler[S]) dive(bestSol *core.Solution, anchorDepth int) {
	d := c.diagram
	for i := 0; i < anchorDepth; i++ {
		v, ok := c.ordering.Next(c.frontierStates())
		if !ok {
			return
		}
		decision := core.NewDecision(v, bestSol.Value(v))

		d.beginLayer()
		for _, m := range d.frontier {
			w := c.problem.TransitionCost(m.state, decision)
			s2 := c.problem.Transition(m.state, decision)
			t := core.SaturatingAdd(m.value, w)
			d.applyPending(pendingEdge[S]{parent: m.nodeID, state: s2, weight: w, value: t, label: decision})
		}
		d.rebuildFrontier(c.problem.Estimate)
		c.chargeLayer()
	}
}

// expandNode runs two-phase expansion for one frontier node on variable v:
// phase one enumerates and computes candidate (decision, state, cost)
// triples without touching the arena; phase two applies them via branch_on.
// No problem-code call ever observes a half-updated diagram.
func (c *Compiler[S]) expandNode(m MiniNode[S], v core.Var) {
	var pending []pendingEdge[S]
	c.problem.ForEachInDomain(m.state, v, func(dec core.Decision) {
		w := c.problem.TransitionCost(m.state, dec)
		s2 := c.problem.Transition(m.state, dec)
		t := core.SaturatingAdd(m.value, w)
		pending = append(pending, pendingEdge[S]{parent: m.nodeID, state: s2, weight: w, value: t, label: dec})
	})
	for _, p := range pending {
		c.diagram.applyPending(p)
	}
}

// restrict applies the restriction policy to the just-rebuilt frontier: if it
// exceeds width, mandatory nodes and a Bernoulli-p sample of the remainder
// are retained unconditionally, the rest is sorted by the heuristic's
// preference order and trimmed to max(width, retainedCount).
func (c *Compiler[S]) restrict(width int, bestSol *core.Solution, lastVar core.Var) {
	d := c.diagram
	frontier := d.frontier
	if len(frontier) <= width {
		return
	}
	d.isExact = false

	prefixLen := 0
	for i := range frontier {
		if c.heuristic.IsMandatory(c, frontier[i], lastVar, bestSol) {
			frontier[i], frontier[prefixLen] = frontier[prefixLen], frontier[i]
			prefixLen++
		}
	}
	for i := prefixLen; i < len(frontier); i++ {
		if c.rng.Float64() < c.retention {
			frontier[i], frontier[prefixLen] = frontier[prefixLen], frontier[i]
			prefixLen++
		}
	}

	suffix := frontier[prefixLen:]
	sort.Slice(suffix, func(i, j int) bool {
		return c.heuristic.Compare(c, suffix[i], suffix[j])
	})

	target := width
	if prefixLen > target {
		target = prefixLen
	}
	if target < len(frontier) {
		d.frontier = frontier[:target]
	}
}

// selectTerminal scans the final frontier for the node of least value (step
// 5: Select terminal).
func (c *Compiler[S]) selectTerminal() {
	d := c.diagram
	best := -1
	var bestValue int
	for i, m := range d.frontier {
		if best == -1 || m.value < bestValue {
			best = i
			bestValue = m.value
		}
	}
	if best == -1 {
		return
	}
	nid := d.frontier[best].nodeID
	d.bestTerminal = &nid
}

func (c *Compiler[S]) frontierStates() []S {
	states := make([]S, len(c.diagram.frontier))
	for i, m := range c.diagram.frontier {
		states[i] = m.state
	}
	return states
}

// chargeLayer reflects arena growth in the memguard tracker, if one is
// wired; it is a no-op otherwise.
func (c *Compiler[S]) chargeLayer() {
	if c.guard == nil {
		return
	}
	total := uint64(len(c.diagram.nodes)) * nodeBytes
	if total > c.charged {
		c.guard.Reserve(total - c.charged)
		c.charged = total
	}
}

// GetBestValue returns the best terminal's value, or nil if compilation
// found no terminal (infeasible restriction or a kill mid-compilation);
// callers should treat nil as +Inf.
func (c *Compiler[S]) GetBestValue() *int {
	d := c.diagram
	if d.bestTerminal == nil {
		return nil
	}
	v := d.nodes[*d.bestTerminal].value
	return &v
}

// GetBestSolution reconstructs the Solution along the best terminal's
// best_parent chain, or nil if no terminal was found.
func (c *Compiler[S]) GetBestSolution() *core.Solution {
	d := c.diagram
	if d.bestTerminal == nil {
		return nil
	}
	sol := d.solutionFrom(*d.bestTerminal, c.problem.NbVars())
	return &sol
}

// IsExact reports whether the most recent compilation was exact: built
// without dive, restriction, or kill-switch interruption, and either it
// reached a terminal or at least one node was pruned against bestVal (the
// incumbent is then proven optimal). A compilation whose frontier empties
// without any pruning is not exact.
func (c *Compiler[S]) IsExact() bool {
	return c.diagram.isExact && (c.diagram.bestTerminal != nil || c.pruned)
}

// NodeCount returns the number of nodes in the most recent compilation's
// arena, root included. Exposed for tests asserting the dedup and
// best-parent-ordering invariants.
func (c *Compiler[S]) NodeCount() int {
	return len(c.diagram.nodes)
}

// ParentOf reports id's best_parent node, or ok=false for the root.
func (c *Compiler[S]) ParentOf(id NodeId) (parent NodeId, ok bool) {
	n := c.diagram.nodes[id]
	if !n.hasParent {
		return 0, false
	}
	return n.parentEdge.From, true
}

// ValueOf returns the accumulated shortest-path value stored at id.
func (c *Compiler[S]) ValueOf(id NodeId) int {
	return c.diagram.nodes[id].value
}

// FrontierSize returns the size of the frontier as it stood after the most
// recently materialised layer. Exposed for tests asserting restriction's
// truncation behavior.
func (c *Compiler[S]) FrontierSize() int {
	return len(c.diagram.frontier)
}
