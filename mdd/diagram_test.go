package mdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

func newExactCompiler(t *testing.T, nbVars int) *mdd.Compiler[sumState] {
	t.Helper()
	c, err := mdd.NewCompiler[sumState](
		sumProblem{nbVars: nbVars},
		mdd.WithOrdering[sumState](depthOrdering{nbVars: nbVars}),
		mdd.WithHeuristic[sumState](core.MinLP[sumState, mdd.MiniNode[sumState]]{}),
	)
	require.NoError(t, err)
	return c
}

func TestBestParentIDsStrictlyPrecedeChild(t *testing.T) {
	c := newExactCompiler(t, 3)
	c.Exact()

	for id := 0; id < c.NodeCount(); id++ {
		parent, ok := c.ParentOf(mdd.NodeId(id))
		if !ok {
			assert.Equal(t, 0, id, "only the root may lack a parent")
			continue
		}
		assert.Less(t, int(parent), id, "best_parent must strictly precede its child")
	}
}

func TestStateDedupCollapsesConvergingPaths(t *testing.T) {
	c := newExactCompiler(t, 2)
	c.Exact()

	// 2 binary variables: root(1) + 2 distinct depth-1 states(sum 0,1) +
	// depth-2 states the paths can reach: sum in {0,1,2} but (0,1) and
	// (1,0) both land on sum=1 — dedup must collapse them into one node.
	assert.Equal(t, 1+2+3, c.NodeCount())
}

func TestEvaluateMatchesBestValue(t *testing.T) {
	c := newExactCompiler(t, 4)
	c.Exact()

	sol := c.GetBestSolution()
	require.NotNil(t, sol)
	val := c.GetBestValue()
	require.NotNil(t, val)

	p := sumProblem{nbVars: 4}
	ord := depthOrdering{nbVars: 4}
	assert.Equal(t, *val, p.Evaluate(ord, *sol))
}
