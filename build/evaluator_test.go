package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove-forge/passiveopt/build"
)

// stubEvaluator reports a fixed Stats, scaled by the number of allocated
// nodes, so tests can assert on the exact value the optimizer sees without
// depending on a real simulator.
type stubEvaluator struct {
	perNode float64
}

func (e stubEvaluator) Evaluate(_ context.Context, data *build.Data) (*build.Stats, error) {
	if data == nil {
		return nil, build.ErrCalculationFailed
	}
	dps := e.perNode * float64(len(data.Allocated))
	return build.NewStats(dps, 100, 100, 0, 0, nil, 0, 0, 0, 0, 0, 1.0)
}

func TestEvaluator_StubContract(t *testing.T) {
	var e build.Evaluator = stubEvaluator{perNode: 10}
	data := &build.Data{Allocated: map[int]struct{}{1: {}, 2: {}}}

	s, err := e.Evaluate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.DPS)
}

func TestEvaluator_FailureIsSentinel(t *testing.T) {
	var e build.Evaluator = stubEvaluator{perNode: 10}
	_, err := e.Evaluate(context.Background(), nil)
	require.ErrorIs(t, err, build.ErrCalculationFailed)
}
