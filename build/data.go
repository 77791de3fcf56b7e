// File: data.go
// Role: BuildData, the mutable-by-replacement artifact the optimizer
// searches over, plus its opaque Item/Skill payload shapes (spec §9
// "Dynamic/opaque payloads" — modeled here as typed structures the core
// constructs and forwards but never inspects, per the design note's
// guidance for a systems-language rewrite).

package build

// Item is an opaque equipment entry, forwarded to Evaluator unchanged.
type Item struct {
	Slot     string
	Name     string
	Rarity   string
	ItemLevel int
	Stats    map[string]interface{}
}

// Skill is an opaque active-skill entry, forwarded to Evaluator unchanged.
type Skill struct {
	Name        string
	Level       int
	Quality     int
	Enabled     bool
	SupportGems []string
}

// Data is a single build configuration: class, level, allocated passive
// nodes, and opaque equipment/skill/config payloads (spec §3 "BuildData").
//
// Data is treated as copy-on-write by every method in this package: no
// method mutates the receiver, mirroring lvlath/core's UnweightedView and
// InducedSubgraph, which always return a fresh value rather than touch
// their source.
type Data struct {
	Class      string
	Level      int
	Ascendancy string // empty means "none"

	Allocated map[int]struct{}

	Items  []Item
	Skills []Skill
	Config map[string]interface{}

	TreeVersion string
	Name        string
	Notes       string
}

// TotalPointsAvailable returns level + 23: (level-1) leveling points plus a
// fixed quest reward of 24 (spec §3 "total_points_available").
func (d *Data) TotalPointsAvailable() int {
	return d.Level + 23
}

// UnallocatedPoints returns max(0, TotalPointsAvailable - |Allocated|)
// (spec §3 "unallocated_points").
func (d *Data) UnallocatedPoints() int {
	remaining := d.TotalPointsAvailable() - len(d.Allocated)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clone returns a deep-enough copy for the optimizer's purposes: Allocated
// is copied (it is the only component that changes between search
// siblings); Items, Skills, and Config are shared by reference, since the
// core never mutates or inspects them (spec §9 "opaque blobs the core
// forwards... never inspects").
func (d *Data) Clone() *Data {
	allocCopy := make(map[int]struct{}, len(d.Allocated))
	for id := range d.Allocated {
		allocCopy[id] = struct{}{}
	}
	return &Data{
		Class:       d.Class,
		Level:       d.Level,
		Ascendancy:  d.Ascendancy,
		Allocated:   allocCopy,
		Items:       d.Items,
		Skills:      d.Skills,
		Config:      d.Config,
		TreeVersion: d.TreeVersion,
		Name:        d.Name,
		Notes:       d.Notes,
	}
}

// WithAllocation returns a clone of d with Allocated replaced by allocated.
// The input set is copied defensively, so callers may keep mutating their
// own set afterward without affecting the returned Data.
func (d *Data) WithAllocation(allocated map[int]struct{}) *Data {
	clone := d.Clone()
	allocCopy := make(map[int]struct{}, len(allocated))
	for id := range allocated {
		allocCopy[id] = struct{}{}
	}
	clone.Allocated = allocCopy
	return clone
}
