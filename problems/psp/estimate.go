package psp

import (
	"sort"

	"github.com/mdd-lns/ddlns/containers"
	"github.com/mdd-lns/ddlns/core"
)

// computeIdealStocking relaxes changeover costs entirely and greedily
// schedules, for each of the remaining `periods` slots (visited latest
// first), whichever eligible item is most expensive to keep in storage —
// storing the priciest item as briefly as possible. u is consumed; it must
// be a scratch copy, not the live state.
func computeIdealStocking(periods int, u []int32, prevDemand *containers.Matrix[int32], stocking []int) int {
	bufferTime := make([]int, periods)
	for t := periods - 1; t >= 0; t-- {
		item := -1
		cost := -1
		var deadline int32
		for i, d := range u {
			if d >= int32(t) {
				if cost == -1 || stocking[i] >= cost {
					item = i
					deadline = d
					cost = stocking[i]
				}
			}
		}
		if item == -1 {
			panic("psp: no eligible item remains for an outstanding period")
		}
		bufferTime[t] = int(deadline-int32(t)) * cost
		u[item] = prevDemand.Get(item, int(deadline))
	}

	total := 0
	for t := range bufferTime {
		total = core.SaturatingAdd(total, bufferTime[t])
		bufferTime[t] = total
	}
	return bufferTime[periods-1]
}

// vertexMask builds the set of items with an outstanding deadline, plus the
// most recently produced item if any, used to index the spanning-tree
// table.
func vertexMask(prev int32, u [MaxItems]int32, nbItems int) containers.BitSet32 {
	vertices := containers.EmptyBitSet32()
	if prev != bot {
		vertices = vertices.Add(int(prev))
	}
	for i := 0; i < nbItems; i++ {
		if u[i] >= 0 {
			vertices = vertices.Add(i)
		}
	}
	return vertices
}

// precomputeAllSpanningCosts computes approxSpanningCost for every subset of
// {0, ..., nbItems-1}, indexed by its bitmask.
func precomputeAllSpanningCosts(nbItems int, changeover *containers.Matrix[int]) []int {
	size := 1 << uint(nbItems)
	out := make([]int, size)
	for mask := 0; mask < size; mask++ {
		out[mask] = approxSpanningCost(containers.BitSet32FromBits(uint32(mask)), changeover)
	}
	return out
}

type spanEdge struct {
	weight, i, j int
}

// approxSpanningCost is a lower bound on the changeover cost of visiting
// every item in vertices, computed by greedily consuming the cheapest
// asymmetric-min edges until every vertex has been touched once, then
// discounting the single most expensive edge used. This is not an exact
// minimum spanning tree (no cycle detection): it is an admissible relaxation
// cheap enough to precompute for every subset up front.
func approxSpanningCost(vertices containers.BitSet32, changeover *containers.Matrix[int]) int {
	members := vertices.Members()
	var edges []spanEdge
	for _, i := range members {
		for _, j := range members {
			if i == j {
				continue
			}
			w := changeover.Get(i, j)
			if alt := changeover.Get(j, i); alt < w {
				w = alt
			}
			edges = append(edges, spanEdge{weight: w, i: i, j: j})
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].weight < edges[b].weight })

	remaining := vertices
	total, edgeMax := 0, 0
	for _, e := range edges {
		if remaining.Len() == 0 {
			break
		}
		if remaining.Contains(e.i) || remaining.Contains(e.j) {
			if e.weight > edgeMax {
				edgeMax = e.weight
			}
			total += e.weight
			remaining = remaining.Remove(e.i).Remove(e.j)
		}
	}
	return total - edgeMax
}
