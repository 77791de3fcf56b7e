// File: tracker.go
// Role: Tracker, the progress-reporting state machine (spec §4.6).

package progress

import (
	"time"

	"github.com/ashgrove-forge/passiveopt/budget"
)

// Report is the payload delivered to a Callback (spec §4.6 "Callback
// payload").
type Report struct {
	Iteration      int
	BestScore      float64
	ImprovementPct float64
	Budget         budget.Snapshot
	ElapsedSeconds float64
}

// Callback receives a Report at each reporting point. Implementations must
// not assume they run on any particular goroutine; Tracker invokes them
// synchronously from Update.
type Callback func(Report)

// Tracker tracks the best score seen so far and reports it to an optional
// Callback at iteration 1 and every multiple of 100.
type Tracker struct {
	callback  Callback
	startedAt time.Time

	iteration int
	hasBest   bool
	best      float64
	baseline  float64
	hasBaseline bool
}

// NewTracker returns a Tracker whose clock starts now. callback may be nil;
// absence of a callback is not an error (spec §4.6 "Absence of callback is
// not an error").
func NewTracker(callback Callback) *Tracker {
	return &Tracker{callback: callback, startedAt: time.Now()}
}

// SetBaseline records the pre-optimization score used for the reported
// improvement percentage (spec §4.6 "improvement percentage vs. baseline").
func (t *Tracker) SetBaseline(baseline float64) {
	t.baseline = baseline
	t.hasBaseline = true
}

// Update advances the tracker to iteration, folds score into the
// monotonic best, and reports via the callback if this iteration is a
// reporting point.
func (t *Tracker) Update(iteration int, score float64, state budget.State) {
	t.iteration = iteration
	if !t.hasBest || score > t.best {
		t.hasBest = true
		t.best = score
	}

	if !t.ShouldReport() {
		return
	}
	t.report(state)
}

// ShouldReport reports whether the current iteration is a reporting point:
// iteration 1, or any multiple of 100 (spec §4.6).
func (t *Tracker) ShouldReport() bool {
	return t.iteration == 1 || t.iteration%100 == 0
}

func (t *Tracker) report(state budget.State) {
	improvementPct := 0.0
	if t.hasBaseline && t.baseline != 0 {
		improvementPct = (t.best - t.baseline) / t.baseline * 100
	}

	rep := Report{
		Iteration:      t.iteration,
		BestScore:      t.best,
		ImprovementPct: improvementPct,
		Budget:         state.Snapshot(),
		ElapsedSeconds: time.Since(t.startedAt).Seconds(),
	}

	if t.callback == nil {
		return
	}
	t.invokeSafely(rep)
}

// invokeSafely calls the callback and recovers from any panic, isolating
// the optimizer from a misbehaving caller (spec §4.6 "Callback exceptions
// are isolated: they must not abort the optimizer").
func (t *Tracker) invokeSafely(rep Report) {
	defer func() {
		_ = recover()
	}()
	t.callback(rep)
}
