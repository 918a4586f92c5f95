// Package mdd_test provides lightweight testing helpers shared across
// *_test.go files in this package.
package mdd_test

import "github.com/mdd-lns/ddlns/core"

// sumState is a toy problem's state: depth (how many variables have been
// assigned) and the running sum of chosen values. Two different decision
// sequences can reach the same sumState, exercising the diagram's per-layer
// state dedup.
type sumState struct {
	depth int
	sum   int
}

// sumProblem is a minimal core.Problem[sumState]: nbVars binary variables,
// cost of choosing 1 for a variable is its 1-based position, so the unique
// optimum is the all-zero assignment with value 0. Estimate is always 0
// (trivially admissible), so tests can control pruning purely via bestVal.
type sumProblem struct {
	nbVars int
}

func (p sumProblem) NbVars() int            { return p.nbVars }
func (p sumProblem) InitialState() sumState { return sumState{} }
func (p sumProblem) InitialValue() int      { return 0 }

func (p sumProblem) ForEachInDomain(state sumState, v core.Var, sink func(core.Decision)) {
	sink(core.NewDecision(v, 0))
	sink(core.NewDecision(v, 1))
}

func (p sumProblem) Transition(state sumState, d core.Decision) sumState {
	return sumState{depth: state.depth + 1, sum: state.sum + d.Val}
}

func (p sumProblem) TransitionCost(state sumState, d core.Decision) int {
	return d.Val * (int(d.Var) + 1)
}

func (p sumProblem) Estimate(sumState) int { return 0 }

func (p sumProblem) Evaluate(ord core.VariableOrdering[sumState], sol core.Solution) int {
	return core.EvaluateWith[sumState](p, ord, sol)
}

func (p sumProblem) Check(ord core.VariableOrdering[sumState], sol core.Solution) {
	core.CheckWith[sumState](p, ord, sol)
}

func (p sumProblem) OnViolation(sumState, core.Decision)   {}
func (p sumProblem) DecisionDetails(sumState, core.Decision) {}

// depthOrdering reads the next variable straight off the first frontier
// state's depth, the pattern spec.md's reference problems both use.
type depthOrdering struct {
	nbVars int
}

func (o depthOrdering) Next(states []sumState) (core.Var, bool) {
	if len(states) == 0 || states[0].depth >= o.nbVars {
		return 0, false
	}
	return core.Var(states[0].depth), true
}
