// Package ddlns is a discrete-optimization solver for combinatorial
// minimization problems modeled as layered dynamic programs.
//
// Its core contribution is a Large Neighborhood Search driven by restricted
// Multi-valued Decision Diagrams (MDD-LNS): at each iteration a width-bounded
// layered DAG is compiled that represents a restricted view of the state
// space, anchored on a portion of the incumbent solution. The shortest-path
// value through that DAG yields an improving candidate, and successive
// iterations vary the anchor depth until either optimality is proven (the
// diagram turns out exact) or an external kill switch fires.
//
// Packages:
//
//	core/            — Var/Decision/Solution types, the Problem contract,
//	                   variable ordering and node-selection abstractions.
//	containers/       — fixed-width BitSets and a generic dense Matrix.
//	memguard/         — a byte-ceiling high-water tracker that raises the
//	                   shared kill switch on overshoot.
//	mdd/              — the restricted-diagram compiler.
//	lns/              — the LNS driver that schedules restart depths.
//	puredp/           — a memoized exact DP used to validate small instances.
//	problems/psp/     — Pigment Sequencing Problem instantiation.
//	problems/tsptw/   — Travelling Salesman with Time Windows instantiation.
//
// The engine itself never inspects problem state; it is supplied entirely
// through the core.Problem[S] contract (see core/problem.go).
package ddlns
