// Package convergence decides when the hill-climbing loop should stop for
// algorithmic reasons, as opposed to hitting an iteration or time limit
// (spec §4.5 "ConvergenceDetector"), ported line-for-line in semantics from
// the reference convergence detector: a pure, stateful counter with no
// external dependencies.
//
// What
//
//   - Detector.Update is called once per iteration with the current best
//     score; Detector.HasConverged is a pure predicate over accumulated
//     state.
//   - The "diminishing_returns" reason is sticky: once set it is never
//     cleared, even if a later iteration resets the no-improvement counter
//     via a fresh significant improvement.
//   - NaN scores are treated identically to "no improvement", never as an
//     error — math.IsNaN is checked explicitly since Go has no implicit
//     None/NaN conflation.
package convergence
