package tsptw

import (
	"github.com/mdd-lns/ddlns/containers"
	"github.com/mdd-lns/ddlns/core"
)

// Depot is the fixed start and end city of every tour.
const Depot = 0

// TimeWindow is the half-open-on-neither-end interval [Start, Stop]
// during which a city may be visited. Both bounds are distances scaled by
// 10000 and truncated, matching how Parse reads the instance coefficients.
type TimeWindow struct {
	Start int
	Stop  int
}

// State is a partial tour: the elapsed travel time, the city currently
// occupied, and the set of cities not yet visited. The depot remains a
// member of Visit until the very last decision, which forces the return
// trip.
type State struct {
	time    int
	current int
	visit   containers.BitSet256
}

// LeftToRight assigns tour positions 0..NbCities-1 in order, one per
// remaining unvisited city (including the forced final return to depot).
type LeftToRight struct {
	NbCities int
}

// Next implements core.VariableOrdering.
func (o LeftToRight) Next(states []State) (core.Var, bool) {
	toVisit := states[0].visit.Len()
	varID := o.NbCities - toVisit
	if varID < o.NbCities {
		return core.Var(varID), true
	}
	return 0, false
}
