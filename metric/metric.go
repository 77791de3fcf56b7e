// File: metric.go
// Role: Kind enum and Score dispatch (spec §4.4 "DPS... EHP... BALANCED").

package metric

import "github.com/ashgrove-forge/passiveopt/build"

// Kind selects which optimization objective Score computes.
type Kind int

const (
	// DPS scores raw total damage output.
	DPS Kind = iota
	// EHP scores survivability as life + energy shield.
	EHP
	// Balanced blends normalized DPS and EHP deltas from a baseline.
	Balanced
)

// String renders k for logging and error messages.
func (k Kind) String() string {
	switch k {
	case DPS:
		return "dps"
	case EHP:
		return "ehp"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// ParseKind maps the lowercase config tag to a Kind. Returns ErrUnknownKind
// for anything else.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "dps":
		return DPS, nil
	case "ehp":
		return EHP, nil
	case "balanced":
		return Balanced, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Result is Score's full output: the score itself plus whether the
// balanced metric had to fall back to its unnormalized form.
type Result struct {
	Score        float64
	UsedFallback bool
}

// Score reduces stats to a single comparable value for kind. baseline may
// be nil; Balanced falls back to an unnormalized weighted sum when it is
// (spec §4.4 "When no baseline is supplied, fall back to an unnormalized
// weighted sum of raw values").
func Score(kind Kind, stats *build.Stats, baseline *BaselineContext) (Result, error) {
	switch kind {
	case DPS:
		return Result{Score: dpsOf(stats)}, nil
	case EHP:
		return Result{Score: ehpOf(stats)}, nil
	case Balanced:
		return scoreBalanced(stats, baseline), nil
	default:
		return Result{}, ErrUnknownKind
	}
}

func dpsOf(stats *build.Stats) float64 {
	return stats.DPS
}

// ehpOf computes the EHP metric's own MVP formula (life + energy shield),
// deliberately independent of the evaluator-reported Stats.EffectiveHP
// field, which may come from a fuller defense-engine computation (spec §4.4
// "EHP = life + energy_shield").
func ehpOf(stats *build.Stats) float64 {
	return stats.Life + stats.ES
}

func scoreBalanced(stats *build.Stats, baseline *BaselineContext) Result {
	dps := dpsOf(stats)
	ehp := ehpOf(stats)

	if baseline == nil {
		return Result{Score: 0.6*dps + 0.4*ehp, UsedFallback: true}
	}

	normalizedDPS := normalize(dps, baseline.DPS())
	normalizedEHP := normalize(ehp, baseline.EHP())
	return Result{Score: 0.6*normalizedDPS + 0.4*normalizedEHP}
}

// normalize computes (current-baseline)/baseline, or current/1000 when
// baseline is zero or negative, keeping the scale comparable to a percentage delta
// (spec §4.4 "If a baseline component is zero, substitute current/1000").
func normalize(current, baseline float64) float64 {
	if baseline > 0 {
		return (current - baseline) / baseline
	}
	return current / 1000.0
}
