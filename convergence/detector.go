// File: detector.go
// Role: Detector, the stateful convergence predicate (spec §4.5
// "State... Update rule... Convergence predicate... Reported strings").

package convergence

import (
	"fmt"
	"math"
)

const (
	reasonNone              = ""
	reasonDiminishingReturns = "diminishing_returns"
	reasonNoImprovement      = "no_improvement"
)

// DefaultPatience and DefaultMinImprovement mirror the reference detector's
// constructor defaults (spec §4.5 "patience... default is 3", "min_improvement
// default is 0.001").
const (
	DefaultPatience       = 3
	DefaultMinImprovement = 0.001
)

// Detector tracks improvement history across iterations and decides when
// the search has converged. Its zero value is not usable; construct with
// NewDetector.
type Detector struct {
	patience       int
	minImprovement float64

	hasBest  bool
	best     float64
	noImprov int
	reason   string
}

// NewDetector returns a Detector with the given patience and minimum
// relative improvement threshold.
func NewDetector(patience int, minImprovement float64) *Detector {
	return &Detector{patience: patience, minImprovement: minImprovement}
}

// Update records the current iteration's best score (spec §4.5 "Update
// rule"). The first call establishes the baseline and never signals
// convergence. A NaN score is treated identically to no improvement.
func (d *Detector) Update(score float64) {
	if math.IsNaN(score) {
		d.noImprov++
		return
	}

	if !d.hasBest {
		d.hasBest = true
		d.best = score
		d.noImprov = 0
		return
	}

	delta := score - d.best
	if delta <= 0 {
		d.noImprov++
		return
	}

	rel := delta
	if d.best != 0 {
		rel = delta / math.Abs(d.best)
	}

	if rel >= d.minImprovement {
		d.best = score
		d.noImprov = 0
		return
	}

	d.noImprov++
	if d.reason == reasonNone {
		d.reason = reasonDiminishingReturns
	}
}

// HasConverged reports whether the no-improvement counter has reached
// patience. The first time it observes convergence with no reason already
// set, it records "no_improvement" (spec §4.5 "Convergence predicate").
// Idempotent across repeated calls.
func (d *Detector) HasConverged() bool {
	if d.noImprov < d.patience {
		return false
	}
	if d.reason == reasonNone {
		d.reason = reasonNoImprovement
	}
	return true
}

// Reason returns the human-readable convergence explanation, or "" if
// convergence has not yet been observed (spec §4.5 "Reported strings").
func (d *Detector) Reason() string {
	switch d.reason {
	case reasonNoImprovement:
		return fmt.Sprintf("Converged: no improvement for %d iterations", d.patience)
	case reasonDiminishingReturns:
		return fmt.Sprintf("Converged: diminishing returns (<%.1f%% improvement)", d.minImprovement*100)
	default:
		return ""
	}
}

// BestScore returns the best score observed so far, and false if Update
// has never been called with a non-NaN value.
func (d *Detector) BestScore() (float64, bool) {
	return d.best, d.hasBest
}
