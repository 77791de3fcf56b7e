package optimizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove-forge/passiveopt/build"
	"github.com/ashgrove-forge/passiveopt/metric"
	"github.com/ashgrove-forge/passiveopt/optimizer"
	"github.com/ashgrove-forge/passiveopt/tree"
)

// weightedEvaluator scores a build by summing a fixed per-node weight over
// the allocated set, which is enough to drive the hill climber through
// deterministic, hand-checkable scenarios without a real game-stat model.
type weightedEvaluator struct {
	weights map[int]float64
}

func (e weightedEvaluator) Evaluate(_ context.Context, data *build.Data) (*build.Stats, error) {
	var dps float64
	for id := range data.Allocated {
		dps += e.weights[id]
	}
	return build.NewStats(dps, 0, 1000, 0, 0, nil, 0, 0, 0, 0, 0, 0)
}

// chainGraph builds a 0-1-2-...-n path, anchored at 0 for "Witch", every
// node worth weight 1 (so each added point is an equally strictly-improving
// move and the frontier is always exactly one candidate wide).
func chainGraph(n int) (*tree.Graph, map[int]float64) {
	g := tree.NewGraph("t")
	weights := make(map[int]float64, n+1)
	for id := 0; id <= n; id++ {
		g.AddNode(&tree.PassiveNode{ID: id, Name: "node", Stats: []string{"+1"}})
		weights[id] = 1
		if id > 0 {
			g.AddEdge(id-1, id)
		}
	}
	g.SetClassStart("Witch", 0)
	return g, weights
}

func TestOptimizeBuild_NoBudgetYieldsNoValidNeighbors(t *testing.T) {
	g, weights := chainGraph(10)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}

	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 0, optimizer.WithRespecPoints(0))
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "no_valid_neighbors", result.ConvergenceReason)
	assert.Equal(t, 0, result.IterationsRun)
	assert.Equal(t, 0.0, result.ImprovementPct)
	assert.Equal(t, 0, result.UnallocatedUsed)
	assert.Equal(t, 0, result.RespecUsed)
}

func TestOptimizeBuild_PureAddSpendsExactlyItsFreeBudget(t *testing.T) {
	g, weights := chainGraph(30)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}

	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 20, optimizer.WithRespecPoints(0))
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "no_valid_neighbors", result.ConvergenceReason, "budget exhausts before the detector ever sees stagnation")
	assert.Equal(t, 20, result.IterationsRun)
	assert.Equal(t, 20, result.UnallocatedUsed)
	assert.Equal(t, 0, result.RespecUsed)
	assert.Equal(t, 0, result.NodesSwapped)
	assert.Len(t, result.NodesAdded, 20)
	assert.Empty(t, result.NodesRemoved)
}

// diamondWithKeystoneSpur builds a small cut-vertex diamond (root 0, sole
// cut vertex 1, parallel branches 2 and 4 meeting at 3) with one
// high-value keystone spur hanging off node 2, reachable only by a swap
// that keeps 2 allocated and removes 3 or 4 instead.
func diamondWithKeystoneSpur() (*tree.Graph, map[int]float64) {
	g := tree.NewGraph("t")
	for _, id := range []int{0, 1, 2, 3, 4} {
		g.AddNode(&tree.PassiveNode{ID: id, Name: "core", Stats: []string{"+1"}})
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 4)
	g.AddEdge(4, 3)
	g.AddNode(&tree.PassiveNode{ID: 5, Name: "keystone spur", IsKeystone: true})
	g.AddEdge(2, 5)
	g.SetClassStart("Witch", 0)

	weights := map[int]float64{0: 1, 1: 1, 2: 1, 3: 1, 4: 1, 5: 100}
	return g, weights
}

func TestOptimizeBuild_PureSwapIsZeroCostOnFreeAxis(t *testing.T) {
	g, weights := diamondWithKeystoneSpur()
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}}

	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 0, optimizer.WithUnlimitedRespec())
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "converged", result.ConvergenceReason)
	assert.Equal(t, 1, result.NodesSwapped)
	assert.Equal(t, 0, result.UnallocatedUsed, "a swap's add is funded by its own remove")
	assert.Equal(t, 1, result.RespecUsed)
	assert.Contains(t, result.NodesAdded, 5)
}

func TestOptimizeBuild_SwapRespectsBoundedRespecBudget(t *testing.T) {
	g, weights := diamondWithKeystoneSpur()
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}}

	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 0, optimizer.WithRespecPoints(0))
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "no_valid_neighbors", result.ConvergenceReason)
	assert.Equal(t, 0, result.RespecUsed)
	assert.Equal(t, 0, result.IterationsRun)
}

// plateauEvaluator always reports the same score, so no candidate ever
// improves: the first detector update seeds the best score and the second
// counts as no improvement.
type plateauEvaluator struct{ score float64 }

func (e plateauEvaluator) Evaluate(context.Context, *build.Data) (*build.Stats, error) {
	return build.NewStats(e.score, 0, 1000, 0, 0, nil, 0, 0, 0, 0, 0, 0)
}

func TestOptimizeBuild_PatienceOneConvergesOnFirstStagnantIteration(t *testing.T) {
	g, _ := chainGraph(10)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}

	cfg, err := optimizer.NewConfiguration(
		data, metric.DPS, 5,
		optimizer.WithConvergencePatience(1),
	)
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, plateauEvaluator{score: 42}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "converged", result.ConvergenceReason)
	assert.Equal(t, 1, result.IterationsRun, "the first Update call only seeds the baseline; the second observes the stagnation")
	assert.Empty(t, result.NodesAdded, "no candidate ever beats the current plateau score")
}

type erroringEvaluator struct{ calls int }

func (e *erroringEvaluator) Evaluate(context.Context, *build.Data) (*build.Stats, error) {
	e.calls++
	return nil, assert.AnError
}

func TestOptimizeBuild_BaselineEvaluationFailureIsFatal(t *testing.T) {
	g, _ := chainGraph(5)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}
	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 5)
	require.NoError(t, err)

	_, err = optimizer.OptimizeBuild(context.Background(), g, &erroringEvaluator{}, cfg)
	require.ErrorIs(t, err, optimizer.ErrBaselineEvaluation)
}

// flakyEvaluator succeeds once for the baseline, then fails for every
// neighbor, so the run must report no improving move was ever found rather
// than erroring out (spec: per-candidate evaluation failures are rejected
// neighbors, not fatal errors).
type flakyEvaluator struct{ n int }

func (e *flakyEvaluator) Evaluate(_ context.Context, data *build.Data) (*build.Stats, error) {
	e.n++
	if e.n == 1 {
		return build.NewStats(1, 0, 1000, 0, 0, nil, 0, 0, 0, 0, 0, 0)
	}
	return nil, assert.AnError
}

func TestOptimizeBuild_AllNeighborFailuresLeaveBuildUnchanged(t *testing.T) {
	g, _ := chainGraph(10)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}
	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 5, optimizer.WithConvergencePatience(1))
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, &flakyEvaluator{}, cfg)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.ImprovementPct)
	assert.Empty(t, result.NodesAdded)
	assert.Equal(t, data.Allocated, result.OptimizedBuild.Allocated)
}

func TestOptimizeBuild_ContextCancellationEndsWithTimeoutReason(t *testing.T) {
	g, weights := chainGraph(30)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}
	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 20)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := optimizer.OptimizeBuild(ctx, g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "timeout", result.ConvergenceReason)
	assert.Equal(t, 0, result.IterationsRun)
}

func TestOptimizeBuild_MaxIterationsStopsTheLoop(t *testing.T) {
	g, weights := chainGraph(100)
	data := &build.Data{Class: "Witch", Allocated: map[int]struct{}{0: {}}}
	cfg, err := optimizer.NewConfiguration(data, metric.DPS, 50, optimizer.WithMaxIterations(3))
	require.NoError(t, err)

	result, err := optimizer.OptimizeBuild(context.Background(), g, weightedEvaluator{weights}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "max_iterations", result.ConvergenceReason)
	assert.Equal(t, 3, result.IterationsRun)
}
