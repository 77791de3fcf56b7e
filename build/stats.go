// File: stats.go
// Role: BuildStats, the Evaluator's output, validated at construction
// (grounded on lvlath/tsp's distance-matrix validation: reject bad input
// once, at the boundary, rather than re-checking on every read).

package build

import (
	"fmt"
	"math"
)

// Resistance keys read and written by Stats; any key absent from a raw
// resistances map defaults to 0 (spec §3 "missing resistance keys default
// to 0").
const (
	ResistFire      = "fire"
	ResistCold      = "cold"
	ResistLightning = "lightning"
	ResistChaos     = "chaos"
)

// Stats is the evaluator's report on a single Data snapshot (spec §3
// "BuildStats": total DPS, life, energy shield, mana, effective HP, armour,
// evasion, block %, spell-block %, movement-speed %, plus resistances). All
// numeric fields are guaranteed finite by NewStats.
//
// EffectiveHP is the evaluator's own reported figure (the full
// defense-engine computation), distinct from the simplistic life+ES formula
// the EHP metric uses as its "MVP formula" (spec §4.4) — the two are
// intentionally allowed to diverge.
type Stats struct {
	DPS         float64
	Life        float64
	ES          float64
	Mana        float64
	EffectiveHP float64

	Resistances map[string]float64

	Armour           float64
	Evasion          float64
	BlockChance      float64
	DodgeChance      float64
	SpellBlockChance float64
	MovementSpeed    float64
}

// NewStats builds a Stats, filling any of the four canonical resistance
// keys absent from resistances with 0, and rejects NaN or infinite values
// in any numeric field with ErrInvalidStat.
func NewStats(
	dps, effectiveHP, life, es, mana float64,
	resistances map[string]float64,
	armour, evasion, block, dodge, spellBlock, moveSpeed float64,
) (*Stats, error) {
	resolved := map[string]float64{
		ResistFire:      0,
		ResistCold:      0,
		ResistLightning: 0,
		ResistChaos:     0,
	}
	for k, v := range resistances {
		resolved[k] = v
	}

	s := &Stats{
		DPS:              dps,
		EffectiveHP:       effectiveHP,
		Life:             life,
		ES:               es,
		Mana:             mana,
		Resistances:      resolved,
		Armour:           armour,
		Evasion:          evasion,
		BlockChance:      block,
		DodgeChance:      dodge,
		SpellBlockChance: spellBlock,
		MovementSpeed:    moveSpeed,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stats) validate() error {
	fields := map[string]float64{
		"dps":              s.DPS,
		"effectiveHP":      s.EffectiveHP,
		"life":             s.Life,
		"es":               s.ES,
		"mana":             s.Mana,
		"armour":           s.Armour,
		"evasion":          s.Evasion,
		"blockChance":      s.BlockChance,
		"dodgeChance":      s.DodgeChance,
		"spellBlockChance": s.SpellBlockChance,
		"movementSpeed":    s.MovementSpeed,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: field %q = %v", ErrInvalidStat, name, v)
		}
	}
	for name, v := range s.Resistances {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: resistance %q = %v", ErrInvalidStat, name, v)
		}
	}
	return nil
}

// ToMap projects Stats into a plain map, the shape used when reporting
// baseline_stats/optimized_stats in an OptimizationResult (spec §6).
func (s *Stats) ToMap() map[string]interface{} {
	resist := make(map[string]interface{}, len(s.Resistances))
	for k, v := range s.Resistances {
		resist[k] = v
	}
	return map[string]interface{}{
		"dps":              s.DPS,
		"effectiveHP":      s.EffectiveHP,
		"life":             s.Life,
		"energyShield":     s.ES,
		"mana":             s.Mana,
		"resistances":      resist,
		"armour":           s.Armour,
		"evasion":          s.Evasion,
		"blockChance":      s.BlockChance,
		"dodgeChance":      s.DodgeChance,
		"spellBlockChance": s.SpellBlockChance,
		"movementSpeed":    s.MovementSpeed,
	}
}
