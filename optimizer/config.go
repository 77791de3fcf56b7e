// File: config.go
// Role: Configuration, the optimizer's input contract (spec §3
// "OptimizationConfiguration"), built with the teacher's functional-options
// idiom (dijkstra.Option / dijkstra.DefaultOptions).

package optimizer

import (
	"fmt"

	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/metric"
	"github.com/ashgrove-forge/passiveopt/mutation"
	"github.com/ashgrove-forge/passiveopt/progress"
)

// Default limits, mirroring the reference implementation's defaults (spec
// §3 "maximum iterations (default 600), wall-clock timeout in seconds
// (default 300), convergence patience (default 3 iterations)").
const (
	DefaultMaxIterations       = 600
	DefaultMaxTimeSeconds      = 300.0
	DefaultConvergencePatience = 3
)

// Configuration is the validated input to OptimizeBuild.
type Configuration struct {
	Build  *build.Data
	Metric metric.Kind

	UnallocatedPoints int
	RespecPoints      int
	RespecUnlimited   bool

	MaxIterations       int
	MaxTimeSeconds       float64
	ConvergencePatience int
	NeighborCap         int

	ProgressCallback progress.Callback
}

// Option configures a Configuration under construction.
type Option func(*Configuration)

// WithRespecPoints bounds the respec budget to n (≥ 0), overriding the
// unlimited default. Panics on a negative n: a negative literal is a
// caller-bug-class mistake, not a runtime condition (mirroring
// dijkstra.WithMaxDistance's panic for a negative literal).
func WithRespecPoints(n int) Option {
	return func(c *Configuration) {
		if n < 0 {
			panic(fmt.Sprintf("optimizer: WithRespecPoints requires n >= 0, got %d", n))
		}
		c.RespecPoints = n
		c.RespecUnlimited = false
	}
}

// WithUnlimitedRespec marks the respec budget as uncapped (spec §3
// "optional respec-point budget (absent ⇒ unlimited)"); this is the
// default, so the option exists mainly for callers that want to make the
// choice explicit.
func WithUnlimitedRespec() Option {
	return func(c *Configuration) {
		c.RespecUnlimited = true
	}
}

// WithMaxIterations overrides the default iteration ceiling.
func WithMaxIterations(n int) Option {
	return func(c *Configuration) {
		c.MaxIterations = n
	}
}

// WithMaxTimeSeconds overrides the default wall-clock timeout.
func WithMaxTimeSeconds(s float64) Option {
	return func(c *Configuration) {
		c.MaxTimeSeconds = s
	}
}

// WithConvergencePatience overrides the default no-improvement patience.
func WithConvergencePatience(n int) Option {
	return func(c *Configuration) {
		c.ConvergencePatience = n
	}
}

// WithNeighborCap overrides the per-iteration neighbor ceiling passed to
// mutation.Generate (default mutation.DefaultCap).
func WithNeighborCap(n int) Option {
	return func(c *Configuration) {
		c.NeighborCap = n
	}
}

// WithProgressCallback registers the optional progress callback (spec §3
// "optional progress callback").
func WithProgressCallback(cb progress.Callback) Option {
	return func(c *Configuration) {
		c.ProgressCallback = cb
	}
}

// NewConfiguration builds and validates a Configuration for data under the
// given metric and free-point budget, applying opts over the documented
// defaults. Returns ErrConfiguration if the result violates an invariant
// (spec §3 "Invariants: metric ∈ {DPS, EHP, BALANCED}; all budgets ≥ 0; all
// limits > 0").
func NewConfiguration(data *build.Data, kind metric.Kind, unallocatedPoints int, opts ...Option) (Configuration, error) {
	cfg := Configuration{
		Build:               data,
		Metric:              kind,
		UnallocatedPoints:   unallocatedPoints,
		RespecUnlimited:     true,
		MaxIterations:       DefaultMaxIterations,
		MaxTimeSeconds:      DefaultMaxTimeSeconds,
		ConvergencePatience: DefaultConvergencePatience,
		NeighborCap:         mutation.DefaultCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func (c Configuration) validate() error {
	if c.Build == nil {
		return fmt.Errorf("%w: build is required", ErrConfiguration)
	}
	switch c.Metric {
	case metric.DPS, metric.EHP, metric.Balanced:
	default:
		return fmt.Errorf("%w: unknown metric %v", ErrConfiguration, c.Metric)
	}
	if c.UnallocatedPoints < 0 {
		return fmt.Errorf("%w: unallocated points must be >= 0, got %d", ErrConfiguration, c.UnallocatedPoints)
	}
	if !c.RespecUnlimited && c.RespecPoints < 0 {
		return fmt.Errorf("%w: respec points must be >= 0, got %d", ErrConfiguration, c.RespecPoints)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be > 0, got %d", ErrConfiguration, c.MaxIterations)
	}
	if c.MaxTimeSeconds <= 0 {
		return fmt.Errorf("%w: max time seconds must be > 0, got %v", ErrConfiguration, c.MaxTimeSeconds)
	}
	if c.ConvergencePatience <= 0 {
		return fmt.Errorf("%w: convergence patience must be > 0, got %d", ErrConfiguration, c.ConvergencePatience)
	}
	return nil
}
