package mdd

import "github.com/mdd-lns/ddlns/core"

// NodeId is a dense index into a compilation's node arena.
type NodeId int

// Edge is the in-edge recorded on a Node's best_parent; it is never stored
// anywhere else, so reconstructing a path only ever walks backward from a
// terminal through these edges.
type Edge struct {
	From   NodeId
	To     NodeId
	Label  core.Decision
	Weight int
}

// node is the arena-owned representation described in the data model: a
// shortest-path value from the root plus the edge that achieved it. Root has
// hasParent=false.
type node struct {
	value      int
	hasParent  bool
	parentEdge Edge
}

// MiniNode is a frontier entry during compilation: the arena node it
// corresponds to, the problem state it represents, its accumulated value, and
// the problem's lower-bound estimate for the remaining subproblem.
type MiniNode[S comparable] struct {
	nodeID   NodeId
	state    S
	value    int
	estimate int
}

// NodeID returns the arena index backing this frontier entry.
func (m MiniNode[S]) NodeID() NodeId { return m.nodeID }

// State implements core.SelectableNode.
func (m MiniNode[S]) State() S { return m.state }

// Value implements core.SelectableNode.
func (m MiniNode[S]) Value() int { return m.value }

// Estimate implements core.SelectableNode.
func (m MiniNode[S]) Estimate() int { return m.estimate }

// diagram is the compilation workspace: an arena of nodes, the frontier
// produced by the most recently materialised layer, a dedup index for the
// layer under construction, and the exactness/terminal bookkeeping described
// by the data model.
type diagram[S comparable] struct {
	nodes    []node
	frontier []MiniNode[S]

	// layerOrder/layerIndex implement the per-layer state->NodeId dedup map.
	// layerOrder preserves first-insertion order so frontier rebuilding (and
	// therefore every downstream RNG draw and sort) is a deterministic
	// function of branch_on call order, per the ordering guarantees.
	layerOrder []S
	layerIndex map[S]NodeId

	bestTerminal *NodeId
	isExact      bool
}

func newDiagram[S comparable]() *diagram[S] {
	return &diagram[S]{layerIndex: make(map[S]NodeId)}
}

// reset clears the arena for a fresh compilation (step 1: Reset).
func (d *diagram[S]) reset() {
	d.nodes = d.nodes[:0]
	d.frontier = d.frontier[:0]
	d.layerOrder = d.layerOrder[:0]
	for k := range d.layerIndex {
		delete(d.layerIndex, k)
	}
	d.bestTerminal = nil
	d.isExact = true
}

// seedRoot inserts the single root node (step 2: Seed root).
func (d *diagram[S]) seedRoot(initialState S, initialValue, estimate int) {
	d.nodes = append(d.nodes, node{value: initialValue, hasParent: false})
	d.frontier = append(d.frontier[:0], MiniNode[S]{
		nodeID:   0,
		state:    initialState,
		value:    initialValue,
		estimate: estimate,
	})
}

// beginLayer clears the per-layer dedup index ahead of branching a new layer.
func (d *diagram[S]) beginLayer() {
	d.layerOrder = d.layerOrder[:0]
	for k := range d.layerIndex {
		delete(d.layerIndex, k)
	}
}

// pendingEdge is a collected (not yet applied) candidate produced by phase
// one of two-phase expansion: enumerate-and-compute without touching the
// arena. Phase two (applyPending) is the only code that mutates the arena.
type pendingEdge[S comparable] struct {
	parent NodeId
	state  S
	weight int
	value  int
	label  core.Decision
}

// applyPending runs branch_on for one collected candidate: first-writer
// allocates a new node, a cheaper rediscovery relaxes the existing node's
// best_parent, otherwise the edge is dropped. Only the best in-edge per node
// survives, so solution reconstruction is a reverse best_parent walk.
func (d *diagram[S]) applyPending(p pendingEdge[S]) {
	edge := Edge{From: p.parent, Label: p.label, Weight: p.weight}

	existing, ok := d.layerIndex[p.state]
	if !ok {
		nid := NodeId(len(d.nodes))
		edge.To = nid
		d.nodes = append(d.nodes, node{value: p.value, hasParent: true, parentEdge: edge})
		d.layerIndex[p.state] = nid
		d.layerOrder = append(d.layerOrder, p.state)
		return
	}
	if p.value < d.nodes[existing].value {
		edge.To = existing
		d.nodes[existing] = node{value: p.value, hasParent: true, parentEdge: edge}
	}
}

// rebuildFrontier drains the per-layer dedup index, in first-insertion order,
// into a fresh frontier vector, computing each entry's estimate.
func (d *diagram[S]) rebuildFrontier(estimate func(S) int) {
	d.frontier = d.frontier[:0]
	for _, s := range d.layerOrder {
		nid := d.layerIndex[s]
		d.frontier = append(d.frontier, MiniNode[S]{
			nodeID:   nid,
			state:    s,
			value:    d.nodes[nid].value,
			estimate: estimate(s),
		})
	}
}

// pathIter walks best_parent edges backward from a starting node, one
// Decision per step, stopping at the root. It borrows the arena slice but
// never the diagram itself, per the design notes' guidance to expose a
// narrow read-only handle rather than the full arena.
type pathIter struct {
	nodes []node
	cur   NodeId
}

// Next implements core.PathIter.
func (p *pathIter) Next() (core.Decision, bool) {
	if int(p.cur) < 0 || int(p.cur) >= len(p.nodes) || !p.nodes[p.cur].hasParent {
		return core.Decision{}, false
	}
	edge := p.nodes[p.cur].parentEdge
	p.cur = edge.From
	return edge.Label, true
}

func (d *diagram[S]) path(nodeID NodeId) core.PathIter {
	return &pathIter{nodes: d.nodes, cur: nodeID}
}

// solutionFrom reconstructs a Solution by walking best_parent from terminal
// back to the root and indexing the reversed decisions by their Var.
func (d *diagram[S]) solutionFrom(terminal NodeId, nbVars int) core.Solution {
	var decisions []core.Decision
	it := d.path(terminal)
	for {
		dec, ok := it.Next()
		if !ok {
			break
		}
		decisions = append(decisions, dec)
	}
	return core.NewSolution(nbVars, decisions)
}
