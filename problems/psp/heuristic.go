package psp

import (
	"github.com/mdd-lns/ddlns/core"
	"github.com/mdd-lns/ddlns/mdd"
)

// LowerBoundHeuristic orders the frontier by value+estimate ascending
// (best rough lower bound first) and inherits mandatory-retention from
// IncumbentMandatory: a node stays if its incoming decision matches the
// incumbent solution's assignment for the variable just branched on.
type LowerBoundHeuristic struct {
	core.IncumbentMandatory[State, mdd.MiniNode[State]]
}

// Compare reports whether na's rough lower bound is strictly smaller than
// nb's.
func (LowerBoundHeuristic) Compare(_ core.NodeSource[State, mdd.MiniNode[State]], na, nb mdd.MiniNode[State]) bool {
	a := core.SaturatingAdd(na.Value(), na.Estimate())
	b := core.SaturatingAdd(nb.Value(), nb.Estimate())
	return a < b
}
