// Package build defines the mutable artifact the optimizer searches over
// (BuildData), the external evaluator's output (BuildStats), and the
// Evaluator interface the optimizer core consumes as an injected, opaque
// collaborator (spec §1 "Build stat evaluator... is an opaque oracle to the
// core", §6 "Consumed: calculate_build_stats").
//
// What
//
//   - BuildData is copy-on-write: Clone/WithAllocation never mutate the
//     receiver, mirroring lvlath/core's view.go convention that derived
//     graphs never touch their source.
//   - BuildStats validates its own numeric fields at construction (no NaN,
//     no infinity) the same way lvlath/tsp validates distance matrices
//     before running local search on them.
//   - Evaluator is a one-method interface so any external stat simulator —
//     a game-engine scripting runtime, a test stub, a golden-fixture
//     replay — can stand in for it without the core importing anything
//     about how stats are actually computed.
//
// Non-goals (spec §1): this package never computes damage formulas; Items,
// Skills, and Config are opaque payloads the core forwards to Evaluator
// unchanged and never inspects.
package build
