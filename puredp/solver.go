package puredp

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/mdd-lns/ddlns/core"
)

// cacheEntry is the memoized result for one state: the best total cost
// reachable from it, the successor state its best decision leads to, the
// decision itself (nil at a terminal state), and the wall-clock time this
// entry was first computed.
type cacheEntry[S comparable] struct {
	value    int
	via      S
	decision *core.Decision
	elapsed  *time.Duration
}

// Solver is a memoized top-down dynamic-programming solver: every distinct
// state reachable from the root is evaluated at most once.
type Solver[S comparable] struct {
	problem  core.Problem[S]
	ordering core.VariableOrdering[S]
	start    time.Time
	kill     *atomic.Bool
}

// NewSolver validates construction options and returns a ready Solver, or a
// sentinel error if the ordering was never supplied.
func NewSolver[S comparable](problem core.Problem[S], opts ...Option[S]) (*Solver[S], error) {
	var cfg config[S]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ordering == nil {
		return nil, ErrMissingOrdering
	}
	return &Solver[S]{
		problem:  problem,
		ordering: cfg.ordering,
		kill:     cfg.kill,
	}, nil
}

func (s *Solver[S]) killed() bool {
	return s.kill != nil && s.kill.Load()
}

// Minimize exhaustively solves the problem via memoized recursion and
// reconstructs the optimal Solution by walking cached successor links
// forward from the root. Returns a ResolutionOutcome with nil BestValue and
// BestSol if the root itself is already terminal (no variable to branch on),
// mirroring the reference: only states that actually branched get cached.
func (s *Solver[S]) Minimize() core.ResolutionOutcome {
	s.start = time.Now()
	cache := make(map[S]cacheEntry[S])
	initial := s.problem.InitialState()
	s.minimizeRec(initial, cache)

	killed := s.killed()
	status := core.ResolutionStatus{Closed: !killed, Improved: true}

	root, ok := cache[initial]
	if !ok {
		return core.ResolutionOutcome{Status: status}
	}

	var decisions []core.Decision
	cur := initial
	for {
		entry, ok := cache[cur]
		if !ok {
			break
		}
		if entry.decision != nil {
			decisions = append(decisions, *entry.decision)
		}
		cur = entry.via
	}

	bestValue := root.value
	bestSol := core.NewSolution(s.problem.NbVars(), decisions)

	var timeToProve *time.Duration
	if !killed {
		elapsed := time.Since(s.start)
		timeToProve = &elapsed
	}

	return core.ResolutionOutcome{
		Status:      status,
		BestValue:   &bestValue,
		BestSol:     &bestSol,
		TimeToBest:  root.elapsed,
		TimeToProve: timeToProve,
	}
}

// minimizeRec returns the memoized (or freshly computed) best outcome from
// state: the total cost of the best path to a terminal, the state that best
// decision leads to, the decision itself, and when a terminal was first
// reached along that path. A killed call returns an unmemoized sentinel so
// the caller never mistakes a cancelled computation for a real answer.
func (s *Solver[S]) minimizeRec(state S, cache map[S]cacheEntry[S]) cacheEntry[S] {
	if s.killed() {
		return cacheEntry[S]{value: math.MaxInt, via: state}
	}
	if entry, ok := cache[state]; ok {
		return entry
	}

	v, ok := s.ordering.Next([]S{state})
	if !ok {
		elapsed := time.Since(s.start)
		return cacheEntry[S]{value: s.problem.InitialValue(), via: state, elapsed: &elapsed}
	}

	best := cacheEntry[S]{value: math.MaxInt, via: state}
	s.problem.ForEachInDomain(state, v, func(dec core.Decision) {
		if s.killed() {
			return
		}
		next := s.problem.Transition(state, dec)
		cost := s.problem.TransitionCost(state, dec)

		child := s.minimizeRec(next, cache)
		total := core.SaturatingAdd(cost, child.value)
		if total < best.value {
			d := dec
			best = cacheEntry[S]{value: total, via: next, decision: &d, elapsed: child.elapsed}
		}
	})
	cache[state] = best
	return best
}
