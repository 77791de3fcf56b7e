// File: generator.go
// Role: Generate, the NeighborGenerator's single entry point (spec §4.3
// "NeighborGenerator").

package mutation

import (
	"sort"

	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/budget"
	"github.com/ashgrove-forge/passiveopt/tree"
)

// DefaultCap is the candidate ceiling used when callers do not need a
// different bound, within the range spec §4.3 names (50-200 per
// iteration).
const DefaultCap = 100

// Generate returns a capped, priority-ordered list of legal one-step moves
// out of data's current allocation, given the current budget state.
// Candidates are collected adds-first, then swaps; the combined list is
// stable-sorted by (-value, added node id), so adds and swaps interleave by
// value and an add precedes a swap only on equal keys. The sorted list is
// truncated to cap entries. An empty
// result is not an error; it signals "no legal move" (spec §4.3 "Failure
// semantics").
func Generate(g *tree.Graph, data *build.Data, state budget.State, cap int) ([]TreeMutation, error) {
	if cap <= 0 {
		cap = DefaultCap
	}

	classStart, err := g.ClassStart(data.Class)
	if err != nil {
		return nil, err
	}

	var candidates []TreeMutation

	if state.UnallocatedUsed < state.UnallocatedAvailable {
		candidates = append(candidates, generateAdds(g, data.Allocated)...)
	}

	// A swap's add is paid for by its own remove (TreeMutation.Cost nets
	// them to zero on the free-point axis), so only the respec axis gates
	// it here (spec §4.3 "the add replaces a removed one").
	canSwap := state.RespecUnlimited || state.RespecUsed+1 <= state.RespecAvailable
	if canSwap {
		candidates = append(candidates, generateSwaps(g, data.Allocated, classStart)...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.value != b.value {
			return a.value > b.value
		}
		return addedID(a) < addedID(b)
	})

	if len(candidates) > cap {
		candidates = candidates[:cap]
	}
	return candidates, nil
}

// generateAdds proposes, for every unallocated node adjacent to at least
// one allocated node, a mutation that allocates it alone (spec §4.3
// "Add-node").
func generateAdds(g *tree.Graph, allocated map[int]struct{}) []TreeMutation {
	targets := make(map[int]struct{})
	for id := range allocated {
		for _, nbr := range g.Neighbors(id) {
			if _, ok := allocated[nbr]; ok {
				continue
			}
			targets[nbr] = struct{}{}
		}
	}

	ids := sortedKeys(targets)
	out := make([]TreeMutation, 0, len(ids))
	for _, target := range ids {
		node := g.Node(target)
		if node == nil {
			continue
		}
		out = append(out, TreeMutation{
			Added: map[int]struct{}{target: {}},
			value: nodeValue(node),
		})
	}
	return out
}

// generateSwaps proposes, for every removable allocated node r and every
// unallocated node a adjacent to allocated∖{r}, a mutation removing r and
// adding a (spec §4.3 "Swap-node").
func generateSwaps(g *tree.Graph, allocated map[int]struct{}, classStart int) []TreeMutation {
	removable := removableNodes(g, allocated, classStart)
	removableIDs := sortedKeys(removable)

	var out []TreeMutation
	for _, r := range removableIDs {
		reduced := make(map[int]struct{}, len(allocated))
		for id := range allocated {
			if id == r {
				continue
			}
			reduced[id] = struct{}{}
		}

		targets := make(map[int]struct{})
		for id := range reduced {
			for _, nbr := range g.Neighbors(id) {
				if nbr == r {
					continue
				}
				if _, ok := reduced[nbr]; ok {
					continue
				}
				targets[nbr] = struct{}{}
			}
		}

		for _, a := range sortedKeys(targets) {
			node := g.Node(a)
			if node == nil {
				continue
			}
			out = append(out, TreeMutation{
				Added:   map[int]struct{}{a: {}},
				Removed: map[int]struct{}{r: {}},
				value:   nodeValue(node),
			})
		}
	}
	return out
}

func addedID(m TreeMutation) int {
	for id := range m.Added {
		return id
	}
	return 0
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
