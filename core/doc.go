// Package core defines the shared vocabulary of the solver: decision
// variables, decisions, solutions, the Problem contract a concrete model
// must honor, and the variable-ordering / node-selection abstractions the
// diagram compiler is polymorphic over.
//
// Design goals:
//   - Deterministic: variable ordering and node selection are pure
//     functions of the frontier they are given.
//   - Opaque state: nothing in this package inspects a problem's State; the
//     engine treats it as a comparable value supplied entirely by the caller.
//   - Strict sentinels: parse/construction failures use package-level
//     sentinel errors, never ad-hoc fmt.Errorf.
package core
