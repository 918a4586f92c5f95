package tsptw

import (
	"fmt"
	"math"

	"github.com/mdd-lns/ddlns/containers"
	"github.com/mdd-lns/ddlns/core"
)

// Problem is one traveling-salesman-with-time-windows instance. Construct
// via NewProblem or Parse.
type Problem struct {
	NbCities    int
	Distance    *containers.Matrix[int]
	TimeWindows []TimeWindow

	before before
}

// NewProblem validates the time-window/distance shapes and precomputes
// the precedence table ForEachInDomain relies on.
func NewProblem(nbCities int, distance *containers.Matrix[int], windows []TimeWindow) (*Problem, error) {
	if nbCities <= 0 || len(windows) != nbCities {
		return nil, ErrMissingField
	}
	return &Problem{
		NbCities:    nbCities,
		Distance:    distance,
		TimeWindows: windows,
		before:      newBefore(nbCities, distance, windows),
	}, nil
}

// NbVars implements core.Problem: one decision per tour position,
// including the forced final return to the depot.
func (p *Problem) NbVars() int { return p.NbCities }

// InitialState implements core.Problem: parked at the depot at time 0,
// every city (including the depot itself) still unvisited.
func (p *Problem) InitialState() State {
	visit := containers.EmptyBitSet256()
	for c := 0; c < p.NbCities; c++ {
		visit = visit.Add(c)
	}
	return State{time: 0, current: Depot, visit: visit}
}

// InitialValue implements core.Problem.
func (p *Problem) InitialValue() int { return 0 }

// ForEachInDomain implements core.Problem. Once only the depot remains
// unvisited, the only legal decision is to return to it; otherwise every
// unvisited non-depot city reachable within its time window and with no
// outstanding predecessor obligation is legal.
func (p *Problem) ForEachInDomain(state State, v core.Var, sink func(core.Decision)) {
	if state.visit == containers.SingletonBitSet256(Depot) {
		sink(core.NewDecision(v, Depot))
		return
	}
	for _, next := range state.visit.Members() {
		if next == Depot {
			continue
		}
		if p.canVisit(state, next) {
			sink(core.NewDecision(v, next))
		}
	}
}

// canVisit reports whether next is reachable from state within its time
// window and has no unvisited predecessor still outstanding.
func (p *Problem) canVisit(state State, next int) bool {
	remaining := state.visit.Remove(Depot).Remove(next)
	if p.before.anyBefore(remaining, next) {
		return false
	}
	arrival := state.time + p.Distance.Get(state.current, next)
	return arrival <= p.TimeWindows[next].Stop
}

// Transition implements core.Problem: travel to the decided city, waiting
// out any remaining time-window slack on arrival.
func (p *Problem) Transition(state State, d core.Decision) State {
	destination := d.Val
	arrival := state.time + p.Distance.Get(state.current, destination)
	if p.TimeWindows[destination].Start > arrival {
		arrival = p.TimeWindows[destination].Start
	}
	return State{
		time:    arrival,
		current: destination,
		visit:   state.visit.Remove(destination),
	}
}

// TransitionCost implements core.Problem: the raw travel distance, not
// counting any window-wait time (wait time is not a cost in this model).
func (p *Problem) TransitionCost(state State, d core.Decision) int {
	return p.Distance.Get(state.current, d.Val)
}

// Estimate implements core.Problem: nearest-unvisited-city bound, plus an
// approximate spanning-tree bound over the unvisited set, plus the
// cheapest feasible direct return to the depot from wherever that
// spanning tour would leave us. Saturates to an effectively-infinite
// value the moment no feasible completion can be shown, steering
// restriction and pruning away from that branch.
func (p *Problem) Estimate(state State) int {
	if state.visit == containers.SingletonBitSet256(Depot) {
		return p.Distance.Get(state.current, Depot)
	}
	cities := state.visit.Remove(Depot).Members()

	minDist1, minArr1 := math.MaxInt, math.MaxInt
	for _, city := range cities {
		d := p.Distance.Get(state.current, city)
		arr := state.time + d
		if tw := p.TimeWindows[city]; tw.Start > arr {
			arr = tw.Start
		}
		if d < minDist1 {
			minDist1 = d
		}
		if arr < minArr1 {
			minArr1 = arr
		}
	}

	mst := p.approxSpanningCost(cities, minArr1)

	earlyTime := core.SaturatingAdd(minArr1, mst)
	minDist3 := math.MaxInt
	twDepot := p.TimeWindows[Depot]
	for _, city := range cities {
		tw := p.TimeWindows[city]
		arr := earlyTime
		if tw.Start > arr {
			arr = tw.Start
		}
		d := p.Distance.Get(city, Depot)
		if arr < tw.Stop && core.SaturatingAdd(arr, d) < twDepot.Stop {
			if d < minDist3 {
				minDist3 = d
			}
		}
	}

	return core.SaturatingAdd(core.SaturatingAdd(minDist1, mst), minDist3)
}

// approxSpanningCost is a lower bound on the travel cost of visiting every
// city in cities, computed by greedily pairing each city with its
// cheapest feasible neighbor (in either direction) and summing, rather
// than building an exact minimum spanning tree: cheap enough to compute
// per Estimate call without any precomputed table, since the candidate
// set changes with every partial tour.
func (p *Problem) approxSpanningCost(cities []int, earliestStart int) int {
	done := containers.EmptyBitSet256()
	total := 0
	for _, x := range cities {
		if done.Contains(x) {
			continue
		}
		twx := p.TimeWindows[x]
		boundX := earliestStart
		if twx.Start > boundX {
			boundX = twx.Start
		}
		dist := math.MaxInt
		neighbor := x
		for _, y := range cities {
			if x == y {
				continue
			}
			twy := p.TimeWindows[y]
			boundY := earliestStart
			if twy.Start > boundY {
				boundY = twy.Start
			}
			if dxy := p.Distance.Get(x, y); dxy < dist && core.SaturatingAdd(boundX, dxy) < twy.Stop {
				dist = dxy
				neighbor = y
			}
			if dyx := p.Distance.Get(y, x); dyx < dist && core.SaturatingAdd(boundY, dyx) < twx.Stop {
				dist = dyx
				neighbor = y
			}
		}
		total = core.SaturatingAdd(total, dist)
		done = done.Add(x).Add(neighbor)
	}
	return total
}

// Evaluate implements core.Problem.
func (p *Problem) Evaluate(ord core.VariableOrdering[State], sol core.Solution) int {
	return core.EvaluateWith[State](p, ord, sol)
}

// Check implements core.Problem.
func (p *Problem) Check(ord core.VariableOrdering[State], sol core.Solution) {
	core.CheckWith[State](p, ord, sol)
}

// OnViolation implements core.Problem: prints the infeasible arrival
// against the violated city's window.
func (p *Problem) OnViolation(state State, d core.Decision) {
	dist := p.Distance.Get(state.current, d.Val)
	tw := p.TimeWindows[d.Val]
	arrival := state.time + dist
	if tw.Start > arrival {
		arrival = tw.Start
	}
	fmt.Printf("tsptw: violation city=%d depart=%d dist=%d arrival=%d window=[%d,%d]\n",
		d.Val, state.time, dist, arrival, tw.Start, tw.Stop)
}

// DecisionDetails implements core.Problem: prints the arrival/window for
// a single replayed decision, flagging a violation if the window closed
// before arrival.
func (p *Problem) DecisionDetails(state State, d core.Decision) {
	dist := p.Distance.Get(state.current, d.Val)
	tw := p.TimeWindows[d.Val]
	arrival := state.time + dist
	if tw.Start > arrival {
		arrival = tw.Start
	}
	fmt.Printf("arrival=%d window=[%d,%d] depart=%d dist=%d", arrival, tw.Start, tw.Stop, state.time, dist)
	if arrival > tw.Stop {
		fmt.Println(" !! violation")
	} else {
		fmt.Println()
	}
}
