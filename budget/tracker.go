// File: tracker.go
// Role: Tracker, the stateful accountant that admits or rejects mutation
// costs against the current State (spec §4.2 "can_apply" / "apply").

package budget

import "fmt"

// Cost is the two-axis price of a mutation: unallocated (free) points and
// respec points it would consume. mutation.TreeMutation satisfies this via
// its Cost method, keeping this package free of a dependency on mutation.
type Cost struct {
	Unallocated int
	Respec      int
}

// Tracker advances a State one mutation at a time. A Tracker's zero value
// is usable with an explicit initial State passed to NewTracker.
type Tracker struct {
	state State
}

// NewTracker returns a Tracker seeded with the given initial State.
func NewTracker(initial State) *Tracker {
	return &Tracker{state: initial}
}

// State returns the current budget snapshot.
func (t *Tracker) State() State {
	return t.state
}

// CanApply reports whether cost fits within the remaining budget (spec
// §4.2 "can_apply"): false iff the unallocated axis would overrun, or,
// when respec is bounded, the respec axis would overrun.
func (t *Tracker) CanApply(cost Cost) bool {
	if t.state.UnallocatedUsed+cost.Unallocated > t.state.UnallocatedAvailable {
		return false
	}
	if !t.state.RespecUnlimited && t.state.RespecUsed+cost.Respec > t.state.RespecAvailable {
		return false
	}
	return true
}

// Apply advances the tracker by cost and returns the resulting State. It
// panics with ErrBudgetViolation if cost would overrun either axis — by
// contract the caller (the neighbor generator) must never offer a mutation
// CanApply would reject, so reaching this panic means an algorithm bug
// upstream (spec §4.2, §7 "BudgetViolation").
func (t *Tracker) Apply(cost Cost) State {
	if !t.CanApply(cost) {
		panic(fmt.Errorf("%w: unallocated %d/%d, respec %d/%d (unlimited=%v), cost %+v",
			ErrBudgetViolation,
			t.state.UnallocatedUsed, t.state.UnallocatedAvailable,
			t.state.RespecUsed, t.state.RespecAvailable, t.state.RespecUnlimited,
			cost))
	}
	t.state.UnallocatedUsed += cost.Unallocated
	t.state.RespecUsed += cost.Respec
	return t.state
}
