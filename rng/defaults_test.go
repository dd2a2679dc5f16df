package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestReseedDefault_Deterministic(t *testing.T) {
	ReseedDefault(1234)
	first := []float64{Double(), Double(), Double()}

	ReseedDefault(1234)
	second := []float64{Double(), Double(), Double()}

	require.Equal(t, first, second)
}

func TestPackageAccessors_RouteThroughDefault(t *testing.T) {
	ReseedDefault(55)
	ref, err := NewGenerator(Mersenne, 55)
	require.NoError(t, err)

	assert.Equal(t, ref.Int(100), Int(100))
	assert.Equal(t, ref.Long(1000), Long(1000))
	assert.Equal(t, ref.Float(), Float())
	assert.Equal(t, ref.Double(2, 5), Double(2, 5))
	assert.Equal(t, ref.Gaussian(3, 2), Gaussian(3, 2))
	assert.Equal(t, ref.Bool(0.3), Bool(0.3))
}

func TestParams_NumericTolerance(t *testing.T) {
	p := Params{"a": 1, "b": int32(2), "c": int64(3), "d": float32(4.5), "e": 5.5}
	assert.Equal(t, 1.0, p.Float("a", 0))
	assert.Equal(t, 2.0, p.Float("b", 0))
	assert.Equal(t, 3.0, p.Float("c", 0))
	assert.Equal(t, 4.5, p.Float("d", 0))
	assert.Equal(t, 5.5, p.Float("e", 0))
	assert.Equal(t, 9.0, p.Float("missing", 9))

	assert.Equal(t, 3, p.Int("c", 0))
	assert.Equal(t, 7, p.Int("missing", 7))

	seed, ok := Params{"seed": 11}.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(11), seed)
	_, ok = Params{}.Seed()
	assert.False(t, ok)
}
