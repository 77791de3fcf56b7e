// File: errors.go
// Role: sentinel errors for the optimizer package (spec §7 "Error taxonomy").

package optimizer

import "errors"

var (
	// ErrConfiguration is returned by NewConfiguration when the supplied
	// configuration violates an invariant (spec §3 "Invariants: metric ∈
	// {DPS, EHP, BALANCED}; all budgets ≥ 0; all limits > 0").
	ErrConfiguration = errors.New("optimizer: invalid configuration")

	// ErrBaselineEvaluation is returned by OptimizeBuild when the starting
	// build itself fails to evaluate (spec §4.7 "Failure semantics... (ii)
	// baseline evaluation failure").
	ErrBaselineEvaluation = errors.New("optimizer: baseline evaluation failed")

	// ErrNeighborGeneration is returned by OptimizeBuild when the neighbor
	// generator itself fails (e.g. an unknown class), as opposed to an
	// individual candidate merely failing to evaluate.
	ErrNeighborGeneration = errors.New("optimizer: neighbor generation failed")
)
