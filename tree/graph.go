// File: graph.go
// Role: Graph type, construction, and queries (loading is in loader.go). Grounded on lvlath's
// core.Graph (vertex/edge storage shape) and lvlath/builder (constructing a
// topology programmatically for tests), simplified to this domain's fixed
// shape: always undirected, always simple (no multi-edges, no self-loops,
// no weights) — the passive tree has no product reason to support any of
// the generality core.Graph carries for arbitrary callers.
//
// AI-HINT (file):
//   - Graph is mutable only while being assembled (NewGraph + AddNode/AddEdge,
//     or Load); once handed to the optimizer it is treated as read-only and
//     requires no locking (spec §3 "Lifecycle: loaded once, process-wide,
//     immutable").

package tree

import "sort"

// Graph is the immutable (once built) passive-tree topology.
type Graph struct {
	nodes      map[int]*PassiveNode
	adjacency  map[int]map[int]struct{}
	classStart map[string]int
	treeVersion string
}

// NewGraph returns an empty Graph ready for AddNode/AddEdge, primarily for
// tests and for callers assembling a tree without going through Load.
func NewGraph(treeVersion string) *Graph {
	return &Graph{
		nodes:       make(map[int]*PassiveNode),
		adjacency:   make(map[int]map[int]struct{}),
		classStart:  make(map[string]int),
		treeVersion: treeVersion,
	}
}

// AddNode inserts or replaces a node. Complexity: O(1).
func (g *Graph) AddNode(n *PassiveNode) {
	g.nodes[n.ID] = n
	if g.adjacency[n.ID] == nil {
		g.adjacency[n.ID] = make(map[int]struct{})
	}
}

// AddEdge adds an undirected edge between a and b, symmetrizing both
// directions. Self-loops are silently ignored: the tree has none by
// construction (spec §3 "self-loops forbidden"). Complexity: O(1).
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		return
	}
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[int]struct{})
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[int]struct{})
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
}

// SetClassStart registers the anchor node for a character class. It does
// not validate that id exists in the node table; Load performs that
// validation once, at the end of parsing, so partially-built graphs (tests)
// may set anchors before or after adding the target node.
func (g *Graph) SetClassStart(className string, id int) {
	g.classStart[className] = id
}

// TreeVersion returns the opaque version tag carried through from Load.
func (g *Graph) TreeVersion() string {
	return g.treeVersion
}

// HasNode reports whether id is a known node.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id, or nil if unknown.
func (g *Graph) Node(id int) *PassiveNode {
	return g.nodes[id]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}
	return total / 2
}

// Neighbors returns the sorted node IDs adjacent to id. Returns an empty
// (nil) slice for an unknown id; never errors, per spec §4.1.
func (g *Graph) Neighbors(id int) []int {
	nbrs := g.adjacency[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// ClassStart returns the anchor node ID for className.
// Returns ErrUnknownClass if the class has no configured anchor.
func (g *Graph) ClassStart(className string) (int, error) {
	id, ok := g.classStart[className]
	if !ok {
		return 0, ErrUnknownClass
	}
	return id, nil
}

// ClassNames returns the sorted list of configured class names, useful for
// error messages and tests.
func (g *Graph) ClassNames() []string {
	out := make([]string, 0, len(g.classStart))
	for name := range g.classStart {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
