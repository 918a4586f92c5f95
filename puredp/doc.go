// Package puredp implements a memoized top-down dynamic-programming solver
// over a core.Problem: brute-force, exact, no width restriction. It exists
// as an oracle for small instances that the mdd/lns engine's answers can be
// checked against, and as a baseline showing what exhaustive search costs
// without any diagram sharing discipline beyond simple state memoization.
package puredp
