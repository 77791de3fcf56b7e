// File: result.go
// Role: Result, the optimizer's output contract (spec §3
// "OptimizationResult"), plus its ToMap wire projection (spec §6
// "Data interchange with the outside world").

package optimizer

import (
	"sort"

	"github.com/ashgrove-forge/passiveopt/build"
)

// Result is everything OptimizeBuild reports about a completed run.
type Result struct {
	OptimizedBuild *build.Data

	BaselineStats  *build.Stats
	OptimizedStats *build.Stats
	ImprovementPct float64

	UnallocatedUsed int
	RespecUsed      int

	IterationsRun     int
	ConvergenceReason string
	ElapsedSeconds    float64

	NodesAdded   map[int]struct{}
	NodesRemoved map[int]struct{}
	NodesSwapped int
}

// ToMap projects Result into the shape spec §6 describes: top-level
// improvement_pct, baseline_stats, optimized_stats, a budget_usage object,
// a convergence object, and a node_changes object.
func (r Result) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"improvement_pct": r.ImprovementPct,
		"baseline_stats":  r.BaselineStats.ToMap(),
		"optimized_stats": r.OptimizedStats.ToMap(),
		"budget_usage": map[string]interface{}{
			"unallocatedUsed": r.UnallocatedUsed,
			"respecUsed":      r.RespecUsed,
		},
		"convergence": map[string]interface{}{
			"reason":        r.ConvergenceReason,
			"iterationsRun": r.IterationsRun,
			"elapsedSeconds": r.ElapsedSeconds,
		},
		"node_changes": map[string]interface{}{
			"added":        setToSlice(r.NodesAdded),
			"removed":      setToSlice(r.NodesRemoved),
			"swapsApplied": r.NodesSwapped,
		},
	}
}

func setToSlice(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
