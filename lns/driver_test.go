package lns_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/lns"
	"github.com/mdd-lns/ddlns/mdd"
)

func newCompiler(t *testing.T, nbVars, width int) *mdd.Compiler[sumState] {
	t.Helper()
	c, err := mdd.NewCompiler[sumState](
		sumProblem{nbVars: nbVars},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: nbVars}),
		mdd.WithHeuristic[sumState](core.MinLP[sumState, mdd.MiniNode[sumState]]{}),
		mdd.WithWidth[sumState](width),
	)
	require.NoError(t, err)
	return c
}

func TestConstructorRejectsMissingRequiredOptions(t *testing.T) {
	_, err := lns.NewDriver[sumState]()
	assert.ErrorIs(t, err, lns.ErrMissingCompiler)

	c := newCompiler(t, 3, math.MaxInt)
	_, err = lns.NewDriver[sumState](lns.WithCompiler(c), lns.WithWidth[sumState](0), lns.WithNbVar[sumState](3))
	assert.ErrorIs(t, err, lns.ErrInvalidWidth)

	_, err = lns.NewDriver[sumState](lns.WithCompiler(c), lns.WithWidth[sumState](1), lns.WithNbVar[sumState](0))
	assert.ErrorIs(t, err, lns.ErrInvalidNbVar)
}

func TestAnchorDescentCyclesUntilKilled(t *testing.T) {
	const nbVars = 3
	sol := core.NewSolution(nbVars, nil) // all-zero: already optimal

	c := newCompiler(t, nbVars, 1) // width 1 forces restriction every layer
	var kill atomic.Bool

	var depths []int
	driver, err := lns.NewDriver[sumState](
		lns.WithCompiler(c),
		lns.WithWidth[sumState](1),
		lns.WithNbVar[sumState](nbVars),
		lns.WithInitialValue[sumState](0),
		lns.WithInitialSolution[sumState](sol),
		lns.WithKillSwitch[sumState](&kill),
		lns.WithDiagnosticHook[sumState](func(depth int) {
			depths = append(depths, depth)
			if len(depths) == 5 {
				kill.Store(true)
			}
		}),
	)
	require.NoError(t, err)

	driver.Minimize()
	// nb_var-2 == 1: the cursor must visit 1, 0, 1, 0, 1, ... cyclically
	// since no improvement is ever found and width=1 keeps every
	// compilation inexact.
	assert.Equal(t, []int{1, 0, 1, 0, 1}, depths)
}

func TestMinimizeMonotonicallyImprovesAndCloses(t *testing.T) {
	const nbVars = 3
	c := newCompiler(t, nbVars, math.MaxInt)

	var observed []int
	driver, err := lns.NewDriver[sumState](
		lns.WithCompiler(c),
		lns.WithWidth[sumState](math.MaxInt),
		lns.WithNbVar[sumState](nbVars),
		lns.WithProgressHook[sumState](func(v int) { observed = append(observed, v) }),
	)
	require.NoError(t, err)

	outcome := driver.Minimize()
	require.NotNil(t, outcome.BestValue)
	assert.Equal(t, 0, *outcome.BestValue)
	assert.True(t, outcome.Status.Closed)

	for i := 1; i < len(observed); i++ {
		assert.LessOrEqual(t, observed[i], observed[i-1], "incumbent sequence must be non-increasing")
	}
}

func TestKilledImmediatelyReturnsInitialIncumbent(t *testing.T) {
	const nbVars = 3
	sol := core.NewSolution(nbVars, nil)

	c := newCompiler(t, nbVars, math.MaxInt)
	var kill atomic.Bool
	kill.Store(true)

	driver, err := lns.NewDriver[sumState](
		lns.WithCompiler(c),
		lns.WithWidth[sumState](math.MaxInt),
		lns.WithNbVar[sumState](nbVars),
		lns.WithInitialValue[sumState](0),
		lns.WithInitialSolution[sumState](sol),
		lns.WithKillSwitch[sumState](&kill),
	)
	require.NoError(t, err)

	outcome := driver.Minimize()
	assert.False(t, outcome.Status.Closed)
	assert.False(t, outcome.Status.Improved)
	require.NotNil(t, outcome.BestValue)
	assert.Equal(t, 0, *outcome.BestValue)
	require.NotNil(t, outcome.BestSol)
	assert.Equal(t, sol.String(), outcome.BestSol.String())
}
