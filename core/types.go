package core

import (
	"strconv"
	"strings"
	"time"
)

// Var is an opaque, non-negative index naming a decision variable. The
// total count of variables is fixed per problem (Problem.NbVars).
type Var int

// Decision pairs a variable with the value assigned to it. Val is
// interpreted entirely by the Problem implementation.
type Decision struct {
	Var Var
	Val int
}

// NewDecision returns the Decision (var, val).
func NewDecision(v Var, val int) Decision {
	return Decision{Var: v, Val: val}
}

// Solution maps each Var to its assigned value. Length equals the
// problem's variable count; a missing variable defaults to zero.
//
// Stage 1 (Validate): none — Solution is a plain value type.
// Stage 2 (Access): Value/Iter/String below.
type Solution struct {
	data []int
}

// NewSolution builds a Solution of the given length from an unordered
// collection of Decisions. Each Var should appear at most once; the last
// write for a repeated Var wins. Variables missing from decisions default
// to zero.
//
// Complexity: O(len(decisions) + nbVars).
func NewSolution(nbVars int, decisions []Decision) Solution {
	data := make([]int, nbVars)
	for _, d := range decisions {
		if int(d.Var) >= 0 && int(d.Var) < nbVars {
			data[d.Var] = d.Val
		}
	}
	return Solution{data: data}
}

// Len returns the number of variables covered by this Solution.
func (s Solution) Len() int {
	return len(s.data)
}

// Value returns the value assigned to v. Panics if v is out of range,
// mirroring a plain Go slice index — callers that need a checked variant
// should bounds-check against Len first.
func (s Solution) Value(v Var) int {
	return s.data[v]
}

// Decisions returns the Solution's assignments as a Decision slice, in
// variable order.
//
// Complexity: O(nbVars).
func (s Solution) Decisions() []Decision {
	out := make([]Decision, len(s.data))
	for i, val := range s.data {
		out[i] = Decision{Var: Var(i), Val: val}
	}
	return out
}

// ParseSolution parses a whitespace-separated sequence of decimal integers
// v0 v1 ... v(n-1), one per variable in Var order.
//
// Stage 1 (Validate): every token must parse as an int.
// Stage 2 (Build): data collected in order.
//
// Complexity: O(n).
func ParseSolution(s string) (Solution, error) {
	fields := strings.Fields(s)
	data := make([]int, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Solution{}, ErrParseToken
		}
		data = append(data, v)
	}
	return Solution{data: data}, nil
}

// String renders the Solution in the same whitespace-separated format
// ParseSolution accepts, with one trailing space.
func (s Solution) String() string {
	var b strings.Builder
	for _, v := range s.data {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
	}
	return b.String()
}

// ResolutionStatus reports whether the search proved optimality, and
// whether the reported value improved on the initial incumbent.
type ResolutionStatus struct {
	Closed   bool
	Improved bool
}

// String renders the diagnostic status strings from spec.md §6.
func (r ResolutionStatus) String() string {
	switch {
	case r.Closed && r.Improved:
		return "closed(improved)"
	case r.Closed && !r.Improved:
		return "closed(initial)"
	case !r.Closed && r.Improved:
		return "open(improved)"
	default:
		return "open(initial)"
	}
}

// ResolutionOutcome is the only result surface the engine exposes to its
// host. BestValue/BestSol are nil when no terminal was ever found.
type ResolutionOutcome struct {
	Status       ResolutionStatus
	BestValue    *int
	BestSol      *Solution
	TimeToBest   *time.Duration
	TimeToProve  *time.Duration
}
