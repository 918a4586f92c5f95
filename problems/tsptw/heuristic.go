package tsptw

import (
	"math"

	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

// LowerBoundHeuristic ranks frontier nodes by total remaining slack first
// (more slack preferred, i.e. the tightest-looking nodes are shed first
// under restriction), then by rough lower bound, then by a handful of
// per-city tiebreakers, finally by estimate alone.
type LowerBoundHeuristic struct {
	problem *Problem
	core.IncumbentMandatory[State, mdd.MiniNode[State]]
}

// NewLowerBoundHeuristic binds the heuristic to the Problem whose time
// windows it reads when comparing two nodes.
func NewLowerBoundHeuristic(p *Problem) LowerBoundHeuristic {
	return LowerBoundHeuristic{problem: p}
}

// Compare implements core.NodeSelectionHeuristic.
func (h LowerBoundHeuristic) Compare(_ core.NodeSource[State, mdd.MiniNode[State]], na, nb mdd.MiniNode[State]) bool {
	sa, sb := na.State(), nb.State()
	oa, ob := h.totalOpenness(sa), h.totalOpenness(sb)
	if oa != ob {
		return oa > ob
	}

	ta := core.SaturatingAdd(na.Value(), na.Estimate())
	tb := core.SaturatingAdd(nb.Value(), nb.Estimate())
	if ta != tb {
		return ta < tb
	}

	twa, twb := h.problem.TimeWindows[sa.current], h.problem.TimeWindows[sb.current]
	if twa.Stop != twb.Stop {
		return twa.Stop < twb.Stop
	}

	va, vb := na.Value(), nb.Value()
	if va != vb {
		return va < vb
	}

	if twa.Start != twb.Start {
		return twa.Start < twb.Start
	}

	return na.Estimate() < nb.Estimate()
}

// totalOpenness sums, over every city still in state's visit set
// (including the depot), the slack between the earliest possible arrival
// and the window close. Returns math.MinInt the moment any city's window
// is already missed, signalling the node is dead weight.
func (h LowerBoundHeuristic) totalOpenness(state State) int {
	total := 0
	for _, city := range state.visit.Members() {
		tw := h.problem.TimeWindows[city]
		from := tw.Start
		if state.time > from {
			from = state.time
		}
		openness := tw.Stop - from
		if openness < 0 {
			return math.MinInt
		}
		total = core.SaturatingAdd(total, openness)
	}
	return total
}
