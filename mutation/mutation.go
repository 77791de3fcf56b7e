// File: mutation.go
// Role: TreeMutation, the value object describing a single candidate move
// (spec §4.3 "TreeMutation").

package mutation

import (
	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/budget"
)

// TreeMutation describes a single 1-hop move: a set of nodes added and a
// set of nodes removed. An add-node mutation has Removed empty; a
// swap-node mutation has exactly one entry in each set (spec §4.3).
type TreeMutation struct {
	Added   map[int]struct{}
	Removed map[int]struct{}

	// value is the priority score of the node gained by this mutation
	// (spec §4.3 "assign a value score to every candidate target node").
	value int
}

// Cost reports the budget this mutation would spend. A removed node frees
// the allocation slot a corresponding added node fills, so the free-point
// axis only charges the net new allocations: an add-only mutation spends
// one free point, a swap spends none (respec alone accounts for it). This
// resolves spec §9's open question ("whether a swap should instead be
// zero-cost on the free axis") in favor of zero-cost, matching the
// worked "pure swap" scenario's expected unallocated_used/respec_used.
func (m TreeMutation) Cost() budget.Cost {
	net := len(m.Added) - len(m.Removed)
	if net < 0 {
		net = 0
	}
	return budget.Cost{Unallocated: net, Respec: len(m.Removed)}
}

// IsIdentity reports whether m changes nothing.
func (m TreeMutation) IsIdentity() bool {
	return len(m.Added) == 0 && len(m.Removed) == 0
}

// Apply returns a new *build.Data reflecting m against data's current
// allocation, never mutating data (spec §3 "copy-on-write").
func (m TreeMutation) Apply(data *build.Data) *build.Data {
	next := make(map[int]struct{}, len(data.Allocated)+len(m.Added))
	for id := range data.Allocated {
		next[id] = struct{}{}
	}
	for id := range m.Removed {
		delete(next, id)
	}
	for id := range m.Added {
		next[id] = struct{}{}
	}
	return data.WithAllocation(next)
}
