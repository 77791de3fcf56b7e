package convergence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashgrove-forge/passiveopt/convergence"
)

func TestFirstUpdate_NeverConverges(t *testing.T) {
	d := convergence.NewDetector(3, 0.001)
	d.Update(100)
	assert.False(t, d.HasConverged())
	best, ok := d.BestScore()
	assert.True(t, ok)
	assert.Equal(t, 100.0, best)
}

func TestNoImprovement_ConvergesAtPatience(t *testing.T) {
	d := convergence.NewDetector(2, 0.001)
	d.Update(100)
	d.Update(100)
	assert.False(t, d.HasConverged())
	d.Update(100)
	assert.True(t, d.HasConverged())
	assert.Equal(t, "Converged: no improvement for 2 iterations", d.Reason())
}

func TestPatienceOne_ConvergesImmediatelyOnStagnation(t *testing.T) {
	d := convergence.NewDetector(1, 0.001)
	d.Update(100)
	d.Update(100)
	assert.True(t, d.HasConverged())
}

func TestSignificantImprovement_ResetsCounter(t *testing.T) {
	d := convergence.NewDetector(2, 0.001)
	d.Update(100)
	d.Update(100) // no improvement, counter=1
	d.Update(200) // +100% improvement, resets counter
	assert.False(t, d.HasConverged())
	best, _ := d.BestScore()
	assert.Equal(t, 200.0, best)
}

func TestDiminishingReturns_StickyReason(t *testing.T) {
	d := convergence.NewDetector(5, 0.10) // 10% threshold
	d.Update(100)
	d.Update(100.5) // +0.5%, below threshold: diminishing returns, counter=1
	d.Update(100.6) // still below threshold: counter=2
	d.Update(200)   // +98%, above threshold: resets counter but reason stays sticky
	assert.Equal(t, "Converged: diminishing returns (<10.0% improvement)", d.Reason())
}

func TestRegression_CountsAsNoImprovement(t *testing.T) {
	d := convergence.NewDetector(1, 0.001)
	d.Update(100)
	d.Update(50)
	assert.True(t, d.HasConverged())
}

func TestNaN_TreatedAsNoImprovement(t *testing.T) {
	d := convergence.NewDetector(1, 0.001)
	d.Update(100)
	d.Update(math.NaN())
	assert.True(t, d.HasConverged())
}

func TestZeroBestScore_UsesAbsoluteDelta(t *testing.T) {
	d := convergence.NewDetector(3, 0.001)
	d.Update(0)
	d.Update(0.002) // with best=0, rel=delta directly; 0.002 >= 0.001 threshold
	best, _ := d.BestScore()
	assert.Equal(t, 0.002, best)
}

func TestHasConverged_Idempotent(t *testing.T) {
	d := convergence.NewDetector(1, 0.001)
	d.Update(100)
	d.Update(100)
	first := d.HasConverged()
	second := d.HasConverged()
	assert.Equal(t, first, second)
	assert.Equal(t, d.Reason(), d.Reason())
}

func TestReason_EmptyBeforeConvergence(t *testing.T) {
	d := convergence.NewDetector(5, 0.001)
	d.Update(100)
	assert.Equal(t, "", d.Reason())
}
