package psp

import "github.com/mdd-lns/ddlns/core"

// MaxItems bounds the number of distinct items an instance may have. The
// estimate's per-subset spanning-tree table has 2^nbItems entries, so this
// also bounds that table's size (2^24 entries at the ceiling).
const MaxItems = 24

// bot marks "no pending deadline" for an item, or "no item produced yet"
// for the most recently scheduled item.
const bot int32 = -1

// State is a node in the pigment sequencing decision diagram: time is the
// number of periods still to schedule (branching proceeds from nbPeriods
// down to 0), k is the item produced at the period just scheduled (bot if
// none yet), and u holds, per item, the most recent period at or after time
// with outstanding demand (bot if none).
type State struct {
	time int
	k    int32
	u    [MaxItems]int32
}

// LeftToRight schedules periods from nbPeriods-1 down to 0: the next
// variable is always time-1, and the frontier is terminal once time
// reaches 0.
type LeftToRight struct{}

// Next implements core.VariableOrdering.
func (LeftToRight) Next(states []State) (core.Var, bool) {
	time := states[0].time
	if time > 0 {
		return core.Var(time - 1), true
	}
	return 0, false
}
