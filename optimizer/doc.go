// Package optimizer wires together tree, build, budget, mutation, metric,
// convergence, and progress into the single entry point an external caller
// uses: OptimizeBuild (spec §4.7 "HillClimber (the orchestrator)").
//
// What
//
//   - Configuration is the input contract: a starting build, a metric tag,
//     both point budgets, limits, and an optional progress callback.
//     NewConfiguration validates it once, at construction, returning
//     ErrConfiguration for anything malformed — the same "fail fast at the
//     boundary" posture build.NewStats and tree.Load already follow.
//   - Result is the output contract, with a ToMap projection shaped exactly
//     as spec §6 "Data interchange with the outside world" describes.
//   - OptimizeBuild runs the steepest-ascent loop: evaluate every neighbor,
//     take the strict best if it beats the incumbent, otherwise count it as
//     no improvement. No randomness is introduced anywhere in this package.
//
// Non-goals: no retry policy around Evaluator failures beyond what spec §7
// names (reject the candidate, keep going); no persistence of a Result
// between runs.
package optimizer
