package tsptw

import (
	"math/rand"

	"github.com/mdd-lns/ddlns/core"
)

// tieBreakSeed is the fixed seed behind nearestNeighbor's tie-breaking
// draws: no time-based seeding anywhere in this solver, so the same
// instance always seeds the same tour.
const tieBreakSeed = 1

// nearestNeighbor builds a feasibility seed by always taking, from the
// current domain, whichever legal next city is cheapest to reach,
// breaking ties uniformly at random among the cheapest candidates.
// Returns ok=false if some step has no legal next city (the instance
// admits no feasible tour from this partial prefix).
func nearestNeighbor(p *Problem, rng *rand.Rand) (order []int, ok bool) {
	state := p.InitialState()
	order = make([]int, 0, p.NbCities)
	for t := 0; t < p.NbCities; t++ {
		v := core.Var(t)
		var candidates []core.Decision
		bestCost := 0
		p.ForEachInDomain(state, v, func(d core.Decision) {
			c := p.TransitionCost(state, d)
			switch {
			case len(candidates) == 0 || c < bestCost:
				candidates = candidates[:0]
				candidates = append(candidates, d)
				bestCost = c
			case c == bestCost:
				candidates = append(candidates, d)
			}
		})
		if len(candidates) == 0 {
			return nil, false
		}
		best := candidates[rng.Intn(len(candidates))]
		order = append(order, best.Val)
		state = p.Transition(state, best)
	}
	return order, true
}

// simulate replays a full tour order (depot implied as the start, the
// final element expected to be Depot) and reports its total distance cost
// and whether every time window along the way is honored.
func simulate(p *Problem, order []int) (cost int, feasible bool) {
	cur := Depot
	time := 0
	for _, next := range order {
		d := p.Distance.Get(cur, next)
		cost = core.SaturatingAdd(cost, d)
		arr := time + d
		tw := p.TimeWindows[next]
		if tw.Start > arr {
			arr = tw.Start
		}
		if arr > tw.Stop {
			return cost, false
		}
		time = arr
		cur = next
	}
	return cost, true
}

// twoOpt repeatedly reverses segments of order (excluding the trailing,
// forced return to the depot) whenever doing so stays feasible and
// shortens the tour, stopping at the first full pass with no improvement.
func twoOpt(p *Problem, order []int) (int, []int) {
	best := append([]int(nil), order...)
	bestCost, _ := simulate(p, best)

	improved := true
	for improved {
		improved = false
		n := len(best)
		for i := 0; i < n-2; i++ {
			for j := i + 1; j < n-1; j++ {
				candidate := append([]int(nil), best...)
				reverseSegment(candidate[i : j+1])
				cost, feasible := simulate(p, candidate)
				if feasible && cost < bestCost {
					best = candidate
					bestCost = cost
					improved = true
				}
			}
		}
	}
	return bestCost, best
}

func reverseSegment(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Greedy produces a nearest-neighbor feasibility seed and polishes it with
// a feasibility-preserving 2-opt local search, returning ok=false if no
// feasible tour could be constructed at all.
func Greedy(p *Problem) (value int, sol *core.Solution, ok bool) {
	rng := rand.New(rand.NewSource(tieBreakSeed))
	order, ok := nearestNeighbor(p, rng)
	if !ok {
		return 0, nil, false
	}
	cost, order := twoOpt(p, order)

	decisions := make([]core.Decision, len(order))
	for t, city := range order {
		decisions[t] = core.NewDecision(core.Var(t), city)
	}
	built := core.NewSolution(p.NbCities, decisions)
	return cost, &built, true
}
