// File: baseline.go
// Role: BaselineContext, a once-computed cache of the baseline build's DPS
// and EHP so the balanced metric never re-evaluates the baseline per
// neighbor (spec §9 "Metric baseline caching").

package metric

import "github.com/ashgrove-forge/passiveopt/build"

// BaselineContext holds the two baseline values the balanced metric
// normalizes against. Construct it once per optimization run, immediately
// after evaluating the starting build.
type BaselineContext struct {
	dps float64
	ehp float64
}

// NewBaselineContext captures dps/ehp from stats for later normalization.
func NewBaselineContext(stats *build.Stats) *BaselineContext {
	return &BaselineContext{dps: dpsOf(stats), ehp: ehpOf(stats)}
}

// DPS returns the cached baseline DPS.
func (b *BaselineContext) DPS() float64 {
	return b.dps
}

// EHP returns the cached baseline EHP.
func (b *BaselineContext) EHP() float64 {
	return b.ehp
}
