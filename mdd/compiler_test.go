package mdd_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

// minLPMandatory composes MinLP's ranking with IncumbentMandatory's
// retention rule, the combination both reference problems use in practice
// per core.IncumbentMandatory's doc comment. IsMandatory is forwarded
// explicitly since embedding both heuristics would make it an ambiguous
// selector.
type minLPMandatory struct {
	core.MinLP[sumState, mdd.MiniNode[sumState]]
	mandatory core.IncumbentMandatory[sumState, mdd.MiniNode[sumState]]
}

func (h minLPMandatory) IsMandatory(
	dd core.NodeSource[sumState, mdd.MiniNode[sumState]],
	node mdd.MiniNode[sumState],
	lastVar core.Var,
	bestSol *core.Solution,
) bool {
	return h.mandatory.IsMandatory(dd, node, lastVar, bestSol)
}

func TestExactCompilationIsExactAndOptimal(t *testing.T) {
	c := newExactCompiler(t, 3)
	c.Exact()

	require.True(t, c.IsExact())
	val := c.GetBestValue()
	require.NotNil(t, val)
	assert.Equal(t, 0, *val)
}

func TestConstructorRejectsMissingRequiredOptions(t *testing.T) {
	_, err := mdd.NewCompiler[sumState](nil)
	assert.ErrorIs(t, err, mdd.ErrNilProblem)

	_, err = mdd.NewCompiler[sumState](sumProblem{nbVars: 2})
	assert.ErrorIs(t, err, mdd.ErrMissingOrdering)

	_, err = mdd.NewCompiler[sumState](
		sumProblem{nbVars: 2},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: 2}),
	)
	assert.ErrorIs(t, err, mdd.ErrMissingHeuristic)
}

func TestWidthRestrictionMarksDiagramInexact(t *testing.T) {
	c, err := mdd.NewCompiler[sumState](
		sumProblem{nbVars: 3},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: 3}),
		mdd.WithHeuristic[sumState](core.MinLP[sumState, mdd.MiniNode[sumState]]{}),
		mdd.WithWidth[sumState](1),
	)
	require.NoError(t, err)

	c.Restricted(1, nil, nil, 0)
	assert.False(t, c.IsExact())
	assert.LessOrEqual(t, c.FrontierSize(), 1)
	// MinLP always prefers the cheapest node, so the all-zero path survives
	// every truncation and the optimum is still found despite restriction.
	val := c.GetBestValue()
	require.NotNil(t, val)
	assert.Equal(t, 0, *val)
}

func TestRetentionProbabilityZeroKeepsOnlyMandatory(t *testing.T) {
	sol := core.NewSolution(3, []core.Decision{
		core.NewDecision(0, 1), core.NewDecision(1, 1), core.NewDecision(2, 1),
	})
	c, err := mdd.NewCompiler[sumState](
		sumProblem{nbVars: 3},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: 3}),
		mdd.WithHeuristic[sumState](minLPMandatory{}),
		mdd.WithWidth[sumState](1),
		mdd.WithRetention[sumState](0),
	)
	require.NoError(t, err)

	best := math.MaxInt
	c.Restricted(1, &best, &sol, 0)
	// Exactly one mandatory node (the incumbent's own path) survives each
	// truncated layer, since p=0 retains nothing beyond mandatory nodes.
	assert.Equal(t, 1, c.FrontierSize())
}

func TestDiveForcesIncumbentPrefixAndClearsExactness(t *testing.T) {
	sol := core.NewSolution(3, []core.Decision{
		core.NewDecision(0, 0), core.NewDecision(1, 0), core.NewDecision(2, 0),
	})
	c := newExactCompiler(t, 3)

	best := 100
	c.Restricted(math.MaxInt, &best, &sol, 2)
	assert.False(t, c.IsExact(), "any dive with d>0 clears exactness")

	val := c.GetBestValue()
	require.NotNil(t, val)
	assert.LessOrEqual(t, *val, 100, "best value must not exceed the incumbent")
}

func TestRoughLowerBoundPruningStillFindsOptimum(t *testing.T) {
	c := newExactCompiler(t, 3)
	best := 1
	c.Restricted(math.MaxInt, &best, nil, 0)

	val := c.GetBestValue()
	require.NotNil(t, val)
	assert.Equal(t, 0, *val)
}

func TestKillSwitchAbortsImmediately(t *testing.T) {
	var kill atomic.Bool
	kill.Store(true)

	c, err := mdd.NewCompiler[sumState](
		sumProblem{nbVars: 3},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: 3}),
		mdd.WithHeuristic[sumState](core.MinLP[sumState, mdd.MiniNode[sumState]]{}),
		mdd.WithKillSwitch[sumState](&kill),
	)
	require.NoError(t, err)

	c.Exact()
	assert.False(t, c.IsExact())
	assert.Nil(t, c.GetBestValue())
	assert.Nil(t, c.GetBestSolution())
}

func TestInfeasibleRestrictionYieldsNoTerminal(t *testing.T) {
	// A problem with an empty domain at depth 0 makes the frontier go empty
	// mid-compilation; the compiler must abort cleanly with no terminal.
	c, err := mdd.NewCompiler[sumState](
		emptyDomainProblem{nbVars: 2},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: 2}),
		mdd.WithHeuristic[sumState](core.MinLP[sumState, mdd.MiniNode[sumState]]{}),
	)
	require.NoError(t, err)

	c.Exact()
	assert.Nil(t, c.GetBestValue())
}

// emptyDomainProblem enumerates no decisions at all, so the very first
// expansion empties the frontier.
type emptyDomainProblem struct {
	nbVars int
}

func (p emptyDomainProblem) NbVars() int            { return p.nbVars }
func (p emptyDomainProblem) InitialState() sumState { return sumState{} }
func (p emptyDomainProblem) InitialValue() int      { return 0 }
func (p emptyDomainProblem) ForEachInDomain(sumState, core.Var, func(core.Decision)) {}
func (p emptyDomainProblem) Transition(s sumState, d core.Decision) sumState          { return s }
func (p emptyDomainProblem) TransitionCost(sumState, core.Decision) int               { return 0 }
func (p emptyDomainProblem) Estimate(sumState) int                                    { return 0 }
func (p emptyDomainProblem) Evaluate(ord core.VariableOrdering[sumState], sol core.Solution) int {
	return core.EvaluateWith[sumState](p, ord, sol)
}
func (p emptyDomainProblem) Check(ord core.VariableOrdering[sumState], sol core.Solution) {
	core.CheckWith[sumState](p, ord, sol)
}
func (p emptyDomainProblem) OnViolation(sumState, core.Decision)    {}
func (p emptyDomainProblem) DecisionDetails(sumState, core.Decision) {}
