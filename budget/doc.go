// Package budget tracks the dual free-point/respec-point allowance a
// hill-climbing run spends as it accepts mutations (spec §4.2 "BudgetState
// and BudgetTracker").
//
// What
//
//   - State is an immutable snapshot of the two counter pairs; Tracker
//     advances it one mutation at a time, the same copy-on-write shape
//     lvlath/core uses for its graph views.
//   - CanApply is a pure predicate; Apply panics on violation, since by the
//     time a mutation reaches Apply the neighbor generator should already
//     have filtered it out — a panic here means an algorithm bug, not bad
//     input (spec §7 "BudgetViolation... indicates a caller bug").
//
// Respec points may be configured unlimited, in which case respec_used
// still increments but is never compared against a cap.
package budget
