// File: optimizer.go
// Role: OptimizeBuild, the steepest-ascent hill-climbing loop (spec §4.7
// "HillClimber (the orchestrator)").

package optimizer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/budget"
	"github.com/ashgrove-forge/passiveopt/convergence"
	"github.com/ashgrove-forge/passiveopt/metric"
	"github.com/ashgrove-forge/passiveopt/mutation"
	"github.com/ashgrove-forge/passiveopt/progress"
	"github.com/ashgrove-forge/passiveopt/tree"
)

const (
	reasonMaxIterations   = "max_iterations"
	reasonTimeout         = "timeout"
	reasonNoValidNeighbors = "no_valid_neighbors"
	reasonConverged       = "converged"
)

// OptimizeBuild runs steepest-ascent hill climbing against graph, starting
// from cfg.Build, scoring every candidate with eval. ctx is checked
// cooperatively at the top of every iteration (mirroring lvlath/bfs's
// walker loop); a cancelled or expired ctx ends the run with the "timeout"
// reason, the same as exceeding cfg.MaxTimeSeconds.
//
// The only fatal errors are a graph lookup failure for cfg.Build.Class and
// a baseline evaluation failure (spec §4.7 "Failure semantics"); every
// other per-candidate failure is absorbed as a rejected neighbor.
func OptimizeBuild(ctx context.Context, graph *tree.Graph, eval build.Evaluator, cfg Configuration) (Result, error) {
	startedAt := time.Now()

	baselineStats, err := eval.Evaluate(ctx, cfg.Build)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBaselineEvaluation, err)
	}

	var baselineCtx *metric.BaselineContext
	if cfg.Metric == metric.Balanced {
		baselineCtx = metric.NewBaselineContext(baselineStats)
	}

	baselineResult, err := metric.Score(cfg.Metric, baselineStats, baselineCtx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBaselineEvaluation, err)
	}
	baselineScore := baselineResult.Score

	current := cfg.Build
	currentStats := baselineStats
	currentScore := baselineScore
	best := current
	bestStats := baselineStats
	bestScore := baselineScore

	tracker := budget.NewTracker(budget.State{
		UnallocatedAvailable: cfg.UnallocatedPoints,
		RespecAvailable:      cfg.RespecPoints,
		RespecUnlimited:      cfg.RespecUnlimited,
	})

	nodesAdded := make(map[int]struct{})
	nodesRemoved := make(map[int]struct{})
	swaps := 0

	detector := convergence.NewDetector(cfg.ConvergencePatience, convergence.DefaultMinImprovement)
	progressTracker := progress.NewTracker(cfg.ProgressCallback)
	progressTracker.SetBaseline(baselineScore)

	iterations := 0
	reason := ""

	progressTracker.Update(iterations, bestScore, tracker.State())

loop:
	for {
		select {
		case <-ctx.Done():
			reason = reasonTimeout
			break loop
		default:
		}

		if iterations >= cfg.MaxIterations {
			reason = reasonMaxIterations
			break loop
		}
		if time.Since(startedAt).Seconds() >= cfg.MaxTimeSeconds {
			reason = reasonTimeout
			break loop
		}

		candidates, err := mutation.Generate(graph, current, tracker.State(), cfg.NeighborCap)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrNeighborGeneration, err)
		}
		if len(candidates) == 0 {
			reason = reasonNoValidNeighbors
			break loop
		}

		bestCandidateIdx := -1
		bestCandidateScore := math.Inf(-1)
		var bestCandidateBuild *build.Data
		var bestCandidateStats *build.Stats

		for i, m := range candidates {
			trial := m.Apply(current)
			stats, err := eval.Evaluate(ctx, trial)
			if err != nil {
				continue
			}
			result, err := metric.Score(cfg.Metric, stats, baselineCtx)
			if err != nil {
				continue
			}
			if result.Score > bestCandidateScore {
				bestCandidateScore = result.Score
				bestCandidateIdx = i
				bestCandidateBuild = trial
				bestCandidateStats = stats
			}
		}

		if bestCandidateIdx >= 0 && bestCandidateScore > currentScore {
			chosen := candidates[bestCandidateIdx]
			for id := range chosen.Added {
				nodesAdded[id] = struct{}{}
			}
			for id := range chosen.Removed {
				nodesRemoved[id] = struct{}{}
			}
			if len(chosen.Added) > 0 && len(chosen.Removed) > 0 {
				swaps++
			}
			tracker.Apply(chosen.Cost())

			current = bestCandidateBuild
			currentStats = bestCandidateStats
			currentScore = bestCandidateScore
			best = current
			bestStats = currentStats
			bestScore = currentScore

			detector.Update(bestScore)
		} else {
			detector.Update(currentScore)
		}

		if detector.HasConverged() {
			reason = reasonConverged
			break loop
		}

		iterations++
		progressTracker.Update(iterations, bestScore, tracker.State())
	}

	progressTracker.Update(iterations, bestScore, tracker.State())

	improvementPct := 0.0
	if baselineScore != 0 {
		improvementPct = (bestScore - baselineScore) / baselineScore * 100
	}

	finalState := tracker.State()
	return Result{
		OptimizedBuild:    best,
		BaselineStats:     baselineStats,
		OptimizedStats:    bestStats,
		ImprovementPct:    improvementPct,
		UnallocatedUsed:   finalState.UnallocatedUsed,
		RespecUsed:        finalState.RespecUsed,
		IterationsRun:     iterations,
		ConvergenceReason: reason,
		ElapsedSeconds:    time.Since(startedAt).Seconds(),
		NodesAdded:        nodesAdded,
		NodesRemoved:      nodesRemoved,
		NodesSwapped:      swaps,
	}, nil
}
