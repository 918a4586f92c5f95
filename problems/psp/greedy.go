package psp

import "github.com/mdd-lns/ddlns/core"

// Greedy produces a Wagner-Whitin-style feasibility seed: at every period,
// from the latest down to the earliest, schedule whichever eligible item is
// most expensive to store, so the priciest items spend the least time
// waiting in stock. Returns ok=false if some period has no eligible item
// (the instance has no feasible schedule at all).
func Greedy(p *Problem) (value int, sol *core.Solution, ok bool) {
	cost := p.InitialValue()
	decisions := make([]core.Decision, 0, p.NbVars())
	state := p.InitialState()

	for t := p.NbVars() - 1; t >= 0; t-- {
		v := core.Var(t)
		var dec *core.Decision
		p.ForEachInDomain(state, v, func(d core.Decision) {
			if dec == nil || p.StockingCost[d.Val] > p.StockingCost[dec.Val] {
				cand := d
				dec = &cand
			}
		})
		if dec == nil {
			return 0, nil, false
		}
		decisions = append(decisions, *dec)
		cost = core.SaturatingAdd(cost, p.TransitionCost(state, *dec))
		state = p.Transition(state, *dec)
	}

	built := core.NewSolution(p.NbVars(), decisions)
	return cost, &built, true
}
