// Package mutation enumerates the legal one-step moves out of a current
// allocation (spec §4.3 "NeighborGenerator"): adding an unallocated node
// adjacent to the tree, or swapping one removable node for a newly
// reachable one.
//
// What
//
//   - TreeMutation is a plain value describing the nodes added/removed and
//     the budget.Cost it would spend; Apply returns a new *build.Data
//     rather than mutating its input, the same copy-on-write contract
//     build.Data itself documents.
//   - Generate produces candidates in priority order (Keystone > Notable >
//     small/travel), stable-sorted by (-value, node id) and capped, exactly
//     the ordering spec §4.3 "Cap and prioritization" specifies.
//   - Swap candidates are validated for connectivity via an articulation-
//     point pre-pass (articulation.go), grounded on lvlath/dfs's three-color
//     (White/Gray/Black) DFS state machine: rather than re-running BFS from
//     class-start once per removal candidate, a single linear-time pass
//     identifies every node whose removal would disconnect the tree, and
//     those cut vertices are never proposed for removal; no BFS is run.
//
// Non-goals: this package never decides whether a mutation is worth taking;
// that is the optimizer's job once it has scored each candidate via an
// Evaluator.
package mutation
