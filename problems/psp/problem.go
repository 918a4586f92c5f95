package psp

import (
	"github.com/mdd-lns/ddlns/containers"
	"github.com/mdd-lns/ddlns/core"
)

// Problem is one pigment sequencing instance. Construct via NewProblem or
// Parse; both precompute the per-subset spanning-tree table Estimate needs.
type Problem struct {
	Optimum        *int
	NbPeriods      int
	NbItems        int
	NbOrders       int
	ChangeoverCost *containers.Matrix[int]
	StockingCost   []int
	PrevDemand     *containers.Matrix[int32]

	mst []int
}

// NewProblem validates nbItems against MaxItems, precomputes the
// spanning-tree table, and returns a ready Problem.
func NewProblem(
	nbPeriods, nbItems, nbOrders int,
	changeover *containers.Matrix[int],
	stocking []int,
	prevDemand *containers.Matrix[int32],
	optimum *int,
) (*Problem, error) {
	if nbItems > MaxItems {
		return nil, ErrTooManyItems
	}
	return &Problem{
		Optimum:        optimum,
		NbPeriods:      nbPeriods,
		NbItems:        nbItems,
		NbOrders:       nbOrders,
		ChangeoverCost: changeover,
		StockingCost:   stocking,
		PrevDemand:     prevDemand,
		mst:            precomputeAllSpanningCosts(nbItems, changeover),
	}, nil
}

// NbVars implements core.Problem.
func (p *Problem) NbVars() int { return p.NbPeriods }

// InitialState implements core.Problem: time starts at nbPeriods, no item
// produced yet, and each item's deadline is its last demand at or before
// nbPeriods.
func (p *Problem) InitialState() State {
	var s State
	s.time = p.NbPeriods
	s.k = bot
	col := p.PrevDemand.Col(p.NbPeriods)
	copy(s.u[:p.NbItems], col)
	return s
}

// InitialValue implements core.Problem.
func (p *Problem) InitialValue() int { return 0 }

// ForEachInDomain implements core.Problem: item i is legal at (state, v)
// iff it still has a pending deadline at or after the period v names.
func (p *Problem) ForEachInDomain(state State, v core.Var, sink func(core.Decision)) {
	time := int32(v)
	for i := 0; i < p.NbItems; i++ {
		if state.u[i] >= time {
			sink(core.NewDecision(v, i))
		}
	}
}

// Transition implements core.Problem: scheduling item at the named period
// advances that item's deadline to its prior outstanding demand.
func (p *Problem) Transition(state State, d core.Decision) State {
	item := d.Val
	next := state
	next.time--
	next.k = int32(item)
	next.u[item] = p.PrevDemand.Get(item, int(state.u[item]))
	return next
}

// TransitionCost implements core.Problem: changeover cost from the
// previously scheduled item (zero if none), plus the cost of storing item
// from its deadline back to the period it is actually produced.
func (p *Problem) TransitionCost(state State, d core.Decision) int {
	time := int(d.Var)
	item := d.Val
	changeover := 0
	if state.k != bot {
		changeover = p.ChangeoverCost.Get(int(state.k), item)
	}
	stocking := p.StockingCost[item] * (int(state.u[item]) - time)
	return changeover + stocking
}

// Estimate implements core.Problem: a greedy relaxed stocking-cost schedule
// over the remaining horizon, plus an approximate spanning-tree lower bound
// on the remaining changeover cost over the items with outstanding demand.
func (p *Problem) Estimate(state State) int {
	if state.time == 0 {
		return 0
	}
	u := make([]int32, p.NbItems)
	copy(u, state.u[:p.NbItems])
	stock := computeIdealStocking(state.time, u, p.PrevDemand, p.StockingCost)

	vertices := vertexMask(state.k, state.u, p.NbItems)
	return stock + p.mst[vertices.Bits()]
}

// Evaluate implements core.Problem.
func (p *Problem) Evaluate(ord core.VariableOrdering[State], sol core.Solution) int {
	return core.EvaluateWith[State](p, ord, sol)
}

// Check implements core.Problem.
func (p *Problem) Check(ord core.VariableOrdering[State], sol core.Solution) {
	core.CheckWith[State](p, ord, sol)
}

// OnViolation implements core.Problem as a no-op; callers that need replay
// diagnostics should wrap Problem and override this.
func (p *Problem) OnViolation(State, core.Decision) {}

// DecisionDetails implements core.Problem as a no-op.
func (p *Problem) DecisionDetails(State, core.Decision) {}
