package gridnoise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_DeterministicAndBounded(t *testing.T) {
	k := NewValue(1337, Hermite)
	for i := 0; i < 2000; i++ {
		x := float64(i) * 0.137
		y := float64(i) * 0.071
		v := k.Eval(x, y, 0)
		require.Equal(t, v, k.Eval(x, y, 0))
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestValue_SeedChangesField(t *testing.T) {
	a := NewValue(1, Hermite)
	b := NewValue(2, Hermite)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.39
		if a.Eval(x, 0.5, 0) == b.Eval(x, 0.5, 0) {
			same++
		}
	}
	assert.Less(t, same, 3)
}

func TestGradient_ZeroAtLatticePoints(t *testing.T) {
	// Gradient noise vanishes exactly on lattice corners.
	k := NewGradient(42, Quintic)
	for x := int32(-5); x <= 5; x++ {
		for y := int32(-5); y <= 5; y++ {
			assert.Zero(t, k.Eval(float64(x), float64(y), 0))
		}
	}
}

func TestGradient_Bounded(t *testing.T) {
	k := NewGradient(7, Quintic)
	for i := 0; i < 5000; i++ {
		v := k.Eval(float64(i)*0.173, float64(i)*0.059, float64(i)*0.023)
		assert.LessOrEqual(t, math.Abs(v), math.Sqrt2)
	}
}

func TestFadeCurves(t *testing.T) {
	for _, f := range []Fade{Linear, Hermite, Quintic} {
		assert.InDelta(t, 0.0, f(0), 1e-15)
		assert.InDelta(t, 1.0, f(1), 1e-15)
		assert.InDelta(t, 0.5, f(0.5), 1e-15)
	}
	assert.Zero(t, Step(0.99))
}

func TestValue_InterpolationModesDiffer(t *testing.T) {
	lin := NewValue(5, Linear)
	qnt := NewValue(5, Quintic)
	diff := 0
	for i := 0; i < 100; i++ {
		x := 0.1 + float64(i)*0.217
		if lin.Eval(x, 0.3, 0) != qnt.Eval(x, 0.3, 0) {
			diff++
		}
	}
	assert.Greater(t, diff, 50)
}
