// File: articulation.go
// Role: articulation-point pre-pass over the induced subgraph of the
// current allocation, so the swap family can decide in one linear pass
// which allocated nodes may be removed without disconnecting the rest
// (spec §4.3 "Performance target... amortize the BFS... via an
// articulation-point pre-pass").
//
// Grounded on lvlath/dfs's three-color (White/Gray/Black) DFS state
// machine (dfs/cycle.go), adapted from cycle detection to Tarjan's
// low-link articulation-point rule: a non-root node u is a cut vertex iff
// it has a child v in the DFS tree with low[v] >= disc[u]; the root is a
// cut vertex iff it has more than one DFS-tree child.

package mutation

import "github.com/ashgrove-forge/passiveopt/tree"

const (
	white = 0
	gray  = 1
	black = 2
)

// articulationPoints returns the set of node IDs within allocated whose
// removal would disconnect the remainder of allocated, when walked from
// root. Nodes unreachable from root within allocated (a state that should
// not arise given the connectivity invariant the optimizer maintains) are
// simply never visited and never reported.
func articulationPoints(g *tree.Graph, allocated map[int]struct{}, root int) map[int]struct{} {
	state := make(map[int]int, len(allocated))
	disc := make(map[int]int, len(allocated))
	low := make(map[int]int, len(allocated))
	result := make(map[int]struct{})
	timer := 0

	var visit func(u, parent int, hasParent bool)
	visit = func(u, parent int, hasParent bool) {
		state[u] = gray
		timer++
		disc[u] = timer
		low[u] = timer
		children := 0

		for _, v := range g.Neighbors(u) {
			if _, ok := allocated[v]; !ok {
				continue
			}
			switch state[v] {
			case white:
				children++
				visit(v, u, true)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if hasParent && low[v] >= disc[u] {
					result[u] = struct{}{}
				}
			default:
				if hasParent && v == parent {
					continue
				}
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
			}
		}

		if !hasParent && children > 1 {
			result[u] = struct{}{}
		}
		state[u] = black
	}

	if _, ok := allocated[root]; ok {
		visit(root, 0, false)
	}
	return result
}

// removableNodes returns every allocated node, other than root, that is not
// an articulation point of the induced subgraph — i.e. every node the swap
// family may legally propose as the removed half of a mutation (spec §4.3
// "for every currently allocated node r that can be removed without
// disconnecting the remaining allocation... Never proposes the class-start
// as r").
func removableNodes(g *tree.Graph, allocated map[int]struct{}, root int) map[int]struct{} {
	cuts := articulationPoints(g, allocated, root)
	removable := make(map[int]struct{}, len(allocated))
	for id := range allocated {
		if id == root {
			continue
		}
		if _, isCut := cuts[id]; isCut {
			continue
		}
		removable[id] = struct{}{}
	}
	return removable
}
