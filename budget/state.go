// File: state.go
// Role: State, the immutable snapshot of both budget axes, and the
// unbounded-respec sentinel value used when reporting "unlimited" (spec
// §4.2 "available for 'unlimited' is reported as a sentinel").

package budget

import "math"

// Unbounded is the sentinel reported in a Snapshot's RespecAvailable field
// when respec points are configured unlimited.
const Unbounded = math.MaxInt64

// State is a point-in-time view of both budget axes.
type State struct {
	UnallocatedAvailable int
	UnallocatedUsed      int

	RespecAvailable int
	RespecUsed      int
	RespecUnlimited bool
}

// Snapshot is State projected for progress reporting, with Unbounded
// standing in for "no cap" on the respec axis.
type Snapshot struct {
	UnallocatedAvailable int
	UnallocatedUsed      int
	RespecAvailable      int
	RespecUsed           int
}

// Snapshot returns a display-friendly view of s (spec §4.2
// "progress_snapshot").
func (s State) Snapshot() Snapshot {
	avail := s.RespecAvailable
	if s.RespecUnlimited {
		avail = Unbounded
	}
	return Snapshot{
		UnallocatedAvailable: s.UnallocatedAvailable,
		UnallocatedUsed:      s.UnallocatedUsed,
		RespecAvailable:      avail,
		RespecUsed:           s.RespecUsed,
	}
}

// UnallocatedRemaining returns how many free points are still spendable.
func (s State) UnallocatedRemaining() int {
	remaining := s.UnallocatedAvailable - s.UnallocatedUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RespecRemaining returns how many respec points are still spendable, or
// Unbounded when respec is unlimited.
func (s State) RespecRemaining() int {
	if s.RespecUnlimited {
		return Unbounded
	}
	remaining := s.RespecAvailable - s.RespecUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
