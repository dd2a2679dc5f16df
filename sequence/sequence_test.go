package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randkit/internal/errors"
	"randkit/internal/statkit"
	"randkit/rng"
)

func collect(t *testing.T, kind Kind, dim, n int) [][]float64 {
	t.Helper()
	factory, err := New(kind, dim)
	require.NoError(t, err)

	var pts [][]float64
	for p := range factory() {
		pts = append(pts, p)
		if len(pts) == n {
			break
		}
	}
	require.Len(t, pts, n)
	return pts
}

func TestNew_UnknownKind(t *testing.T) {
	factory, err := New("fibonacci", 2)
	require.Error(t, err)
	assert.Nil(t, factory)
	assert.Equal(t, errors.CodeUnknownGeneratorKind, errors.GetCode(err))
}

func TestHalton_GoldenPrefix(t *testing.T) {
	got := collect(t, Halton, 2, 4)
	want := [][]float64{
		{1.0 / 2, 1.0 / 3},
		{1.0 / 4, 2.0 / 3},
		{3.0 / 4, 1.0 / 9},
		{1.0 / 8, 4.0 / 9},
	}
	for i := range want {
		for d := range want[i] {
			assert.InDelta(t, want[i][d], got[i][d], 1e-12, "point %d dim %d", i, d)
		}
	}
}

func TestSobol_GoldenPrefix(t *testing.T) {
	got := collect(t, Sobol, 2, 4)
	want := [][]float64{
		{0.5, 0.5},
		{0.75, 0.25},
		{0.25, 0.75},
		{0.375, 0.375},
	}
	assert.Equal(t, want, got)
}

func TestDeterministicKinds_RestartFromOrigin(t *testing.T) {
	for _, kind := range []Kind{Halton, Sobol} {
		t.Run(string(kind), func(t *testing.T) {
			factory, err := New(kind, 3)
			require.NoError(t, err)

			run := func() [][]float64 {
				var pts [][]float64
				for p := range factory() {
					pts = append(pts, p)
					if len(pts) == 20 {
						break
					}
				}
				return pts
			}
			assert.Equal(t, run(), run())
		})
	}
}

func TestDimensionClamp(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		wantLen int
	}{
		{name: "zero clamps to one", dim: 0, wantLen: 1},
		{name: "negative clamps to one", dim: -3, wantLen: 1},
		{name: "within range", dim: 3, wantLen: 3},
		{name: "above max clamps to four", dim: 9, wantLen: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := collect(t, Halton, tt.dim, 3)
			for _, p := range pts {
				assert.Len(t, p, tt.wantLen)
			}
		})
	}

	// A clamped dimension is indistinguishable from the boundary one.
	assert.Equal(t, collect(t, Sobol, 4, 10), collect(t, Sobol, 99, 10))
}

func TestSphere_UnitNorm(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		pts := collect(t, Sphere, dim, 200)
		for i, p := range pts {
			var norm float64
			for _, c := range p {
				norm += c * c
			}
			assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-12, "point %d", i)
		}
	}
}

func TestSphere_OneDimensionIsSignFlip(t *testing.T) {
	pts := collect(t, Sphere, 1, 200)
	for _, p := range pts {
		assert.InDelta(t, 1.0, math.Abs(p[0]), 1e-12)
	}
}

func TestUnitRangeKinds(t *testing.T) {
	for _, kind := range []Kind{Halton, Sobol, Default} {
		t.Run(string(kind), func(t *testing.T) {
			for _, p := range collect(t, kind, 4, 500) {
				for _, c := range p {
					assert.GreaterOrEqual(t, c, 0.0)
					assert.Less(t, c, 1.0)
				}
			}
		})
	}
}

func TestGaussian_CoordinatesCenterOnZero(t *testing.T) {
	rng.ReseedDefault(statkit.DeriveSeed("gaussian-points", 2024))
	var coords []float64
	for _, p := range collect(t, Gaussian, 2, 2000) {
		coords = append(coords, p...)
	}
	assert.InDelta(t, 0.0, statkit.Mean(coords), 0.05)
	assert.InDelta(t, 1.0, statkit.Variance(coords), 0.1)
}

func TestScalars_MatchesDimensionOne(t *testing.T) {
	scalars, err := Scalars(Halton)
	require.NoError(t, err)

	var got []float64
	for v := range scalars() {
		got = append(got, v)
		if len(got) == 10 {
			break
		}
	}

	for i, p := range collect(t, Halton, 1, 10) {
		assert.Equal(t, p[0], got[i])
	}
}

func TestScalars_UnknownKind(t *testing.T) {
	_, err := Scalars("latin-hypercube")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnknownGeneratorKind, errors.GetCode(err))
}

func TestPoints_AreRetainable(t *testing.T) {
	pts := collect(t, Sobol, 2, 3)
	// Fresh allocation per point: later iteration must not overwrite
	// earlier points.
	assert.NotEqual(t, pts[0], pts[1])
	assert.NotEqual(t, pts[1], pts[2])
}
