// File: errors.go
// Role: sentinel errors for the build package.

package build

import "errors"

var (
	// ErrInvalidStat is returned by NewStats when a numeric field is NaN or
	// infinite (spec §3 "BuildStats... Invariant: all fields finite").
	ErrInvalidStat = errors.New("build: invalid stat value")

	// ErrCalculationFailed is returned by an Evaluator implementation when
	// the underlying simulator fails for reasons other than a timeout
	// (spec §6 "a 'calculation error' (invalid build, evaluator internal
	// failure)").
	ErrCalculationFailed = errors.New("build: calculation failed")

	// ErrCalculationTimeout is returned by an Evaluator implementation when
	// the underlying simulator exceeds its own internal deadline (spec §6
	// "a 'calculation timeout'").
	ErrCalculationTimeout = errors.New("build: calculation timed out")
)
