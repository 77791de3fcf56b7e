// File: evaluator.go
// Role: the opaque external oracle the optimizer consumes (spec §1 "Build
// stat evaluator... is an opaque oracle to the core", grounded on lvlath's
// use of small, single-method collaborator interfaces such as
// dtw.DistanceFunc, which the core calls without knowing its internals).

package build

import "context"

// Evaluator computes Stats for a Data snapshot. Implementations may wrap
// a game-engine scripting runtime, a fixture replay, or a test stub; the
// optimizer core never imports anything about how the computation works.
//
// Evaluate must not mutate data. A failing calculation returns a nil
// Stats and a non-nil error; implementations should wrap ErrCalculationFailed
// or ErrCalculationTimeout so callers can use errors.Is to distinguish a
// hard failure from a deadline overrun.
type Evaluator interface {
	Evaluate(ctx context.Context, data *Data) (*Stats, error)
}
