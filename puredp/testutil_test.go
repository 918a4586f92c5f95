// Package puredp_test provides a toy problem shared by this package's test
// files: assign nbVars binary variables to minimize their weighted sum.
package puredp_test

import "github.com/mdd-lns/ddlns/core"

type sumState struct {
	depth int
	sum   int
}

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

func (p sumProblem) Estimate(sumState) int { return core.NoEstimate }

func (p sumProblem) Evaluate(ord core.VariableOrdering[sumState], sol core.Solution) int {
	return core.EvaluateWith[sumState](p, ord, sol)
}

func (p sumProblem) Check(ord core.VariableOrdering[sumState], sol core.Solution) {
	core.CheckWith[sumState](p, ord, sol)
}

func (p sumProblem) OnViolation(sumState, core.Decision)     {}
func (p sumProblem) DecisionDetails(sumState, core.Decision) {}

type depthOrdering struct {
	nbVars int
}

func (o depthOrdering) Next(states []sumState) (core.Var, bool) {
	if len(states) == 0 || states[0].depth >= o.nbVars {
		return 0, false
	}
	return core.Var(states[0].depth), true
}
