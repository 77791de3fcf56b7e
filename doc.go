// Package passiveopt is an in-memory hill-climbing optimizer for passive
// skill trees.
//
// 🚀 What is passiveopt?
//
//	A single-process, dependency-light core that brings together:
//
//	  • Tree loading: parse a passive tree graph once, serve it from a
//	    process-wide registry
//	  • Budget-aware local search: generate legal add/swap moves under a
//	    free-point and respec-point budget
//	  • Pluggable scoring: DPS, EHP, or a balanced blend, via a caller-supplied
//	    Evaluator
//
// ✨ Why choose passiveopt?
//
//   - Deterministic    — every enumeration sorts by node id; same inputs,
//     same output
//   - Budget-honest     — a mutation is never proposed unless it is legal
//     under the current BudgetState
//   - Pure Go           — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under eight subpackages:
//
//	tree/        — PassiveNode/Graph loading, BFS connectivity, the process registry
//	build/       — BuildData/BuildStats and the Evaluator contract
//	budget/      — BudgetState/BudgetTracker, the free-point and respec-point ledger
//	mutation/    — TreeMutation and the neighbor generator (add-node, swap-node)
//	metric/      — DPS/EHP/Balanced scoring
//	convergence/ — patience-based convergence detection
//	progress/    — iteration progress reporting
//	optimizer/   — OptimizationConfiguration/OptimizationResult and the hill climber
//
// Quick shape of a run:
//
//	graph, _  := tree.Load(treeJSON, treeVersion, classStarts)
//	cfg, _    := optimizer.NewConfiguration(buildData, metric.DPS, 20)
//	result, _ := optimizer.OptimizeBuild(ctx, graph, myEvaluator, cfg)
//
// See DESIGN.md for the grounding ledger behind each package.
package passiveopt
