package tsptw

import (
	"github.com/mdd-lns/ddlns/containers"
	"github.com/mdd-lns/ddlns/core"
)

// before precomputes, for every city i, the set of cities that must be
// visited strictly before i: if leaving i at its own window-open time and
// travelling straight to j would already miss j's window close, i cannot
// come before j in any feasible tour, so j must be visited before i
// whenever both remain unvisited.
type before struct {
	pred []containers.BitSet256
}

// newBefore builds the precedence table from the distance matrix and time
// windows.
func newBefore(nbCities int, dist *containers.Matrix[int], tw []TimeWindow) before {
	pred := make([]containers.BitSet256, nbCities)
	for i := 0; i < nbCities; i++ {
		for j := 0; j < nbCities; j++ {
			if i == j {
				continue
			}
			arrival := core.SaturatingAdd(tw[i].Start, dist.Get(i, j))
			if arrival > tw[j].Stop {
				pred[i] = pred[i].Add(j)
			}
		}
	}
	return before{pred: pred}
}

// isBefore reports whether x must be visited before y.
func (b before) isBefore(x, y int) bool {
	return b.pred[y].Contains(x)
}

// anyBefore reports whether any member of bs must be visited before x.
func (b before) anyBefore(bs containers.BitSet256, x int) bool {
	return b.pred[x].Intersects(bs)
}
