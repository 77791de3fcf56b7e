// Package tree owns the immutable passive-skill-tree topology: nodes,
// undirected adjacency, class-start anchors, and the connectivity queries
// the rest of the optimizer core is built on.
//
// What
//
//   - Graph is loaded once from a JSON-equivalent data blob (a nodes map
//     plus a groups array, mirroring the game engine's own tree.json shape)
//     and is immutable thereafter.
//   - Neighbors answers adjacency in O(1) amortized.
//   - IsConnected and ValidateTreeConnectivity answer reachability questions
//     with a single BFS bounded by the size of the allocated set, never the
//     whole tree.
//
// Why
//
//   - Every candidate mutation the optimizer considers must be re-validated
//     against the tree's topology; this package is the single source of
//     truth for "is this allocation legal" so that budget and neighbor
//     generation logic never re-derive graph semantics themselves.
//
// Determinism
//
//	Neighbors returns node IDs sorted ascending, the same
//	discipline lvlath's core.Neighbors/NeighborIDs apply by sorting on
//	Edge.ID — callers that fold or hash the result get reproducible output.
//
// Concurrency
//
//	A *Graph is read-only once Load returns; concurrent callers may share a
//	single instance without locking. Registry (registry.go) exists only to
//	make "construct once, share everywhere" (spec §5, §9 "Global state")
//	explicit and testable, via sync.Once behind a small factory rather than
//	a bare package-level global.
//
// Errors
//
//   - ErrDataUnavailable  if the blob is missing required fields, a node
//     connection names a node absent from the blob, or a configured
//     class-start node does not exist in the loaded node table.
//   - ErrUnknownClass     if a query names a class with no configured anchor.
//
// Queries never fail for unknown node IDs; they return an empty/false result.
package tree
