// Package lns implements the Large Neighborhood Search driver: it owns one
// mdd.Compiler instance and repeatedly compiles restricted diagrams at
// varying anchor depths, updating the incumbent until the diagram compiles
// exact or a shared kill switch fires.
//
// Design goals:
//   - One compiler, many compilations: the driver never reallocates the
//     diagram's arena itself; mdd.Compiler.Restricted resets it.
//   - Cyclic anchor schedule: on improvement the cursor resets to its
//     deepest "intensify" setting; otherwise it counts down to 0 ("diversify
//     to a global jump") and wraps back around.
package lns
