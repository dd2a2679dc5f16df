// Package sequence produces infinite lazy streams of points in 1 to 4
// dimensions: low-discrepancy sequences (halton, sobol), uniform points
// on the unit sphere, and iid gaussian or uniform coordinates.
//
// A factory is restartable; the stream it returns is not. Each factory
// invocation restarts a deterministic sequence from its origin, while
// the stochastic kinds draw from the shared default generator.
package sequence

import (
	"iter"
	"math"

	"randkit/internal/errors"
	"randkit/rng"
)

// Kind names a point-sequence family.
type Kind string

const (
	// Halton is the radical-inverse low-discrepancy sequence with
	// prime bases 2, 3, 5, 7.
	Halton Kind = "halton"
	// Sobol is the Gray-code Sobol sequence with Joe-Kuo direction
	// numbers.
	Sobol Kind = "sobol"
	// Sphere draws points uniformly on the surface of the unit sphere.
	Sphere Kind = "sphere"
	// Gaussian draws each coordinate independently from N(0,1).
	Gaussian Kind = "gaussian"
	// Default draws each coordinate independently from U[0,1).
	Default Kind = "default"
)

const maxDim = 4

// clampDim forces the dimension into [1,4]. Out-of-range requests are
// silently clamped, matching the range-mapping layer's permissive edge
// policy.
func clampDim(dim int) int {
	if dim < 1 {
		return 1
	}
	if dim > maxDim {
		return maxDim
	}
	return dim
}

// New returns a restartable factory of dim-component point streams.
// Every returned point is a freshly allocated slice of length dim
// (after clamping), so consumers may retain points.
func New(kind Kind, dim int) (func() iter.Seq[[]float64], error) {
	dim = clampDim(dim)

	switch kind {
	case Halton:
		return func() iter.Seq[[]float64] { return haltonSeq(dim) }, nil
	case Sobol:
		return func() iter.Seq[[]float64] { return sobolSeq(dim) }, nil
	case Sphere:
		return func() iter.Seq[[]float64] { return sphereSeq(dim) }, nil
	case Gaussian:
		return func() iter.Seq[[]float64] { return drawSeq(dim, func() float64 { return rng.Gaussian() }) }, nil
	case Default:
		return func() iter.Seq[[]float64] { return drawSeq(dim, func() float64 { return rng.Double() }) }, nil
	}
	return nil, errors.UnknownGeneratorKind(string(kind))
}

// Scalars is the dimension-1 view: streams of bare scalars instead of
// one-element vectors.
func Scalars(kind Kind) (func() iter.Seq[float64], error) {
	points, err := New(kind, 1)
	if err != nil {
		return nil, err
	}
	return func() iter.Seq[float64] {
		return func(yield func(float64) bool) {
			for p := range points() {
				if !yield(p[0]) {
					return
				}
			}
		}
	}, nil
}

// drawSeq assembles points coordinate-wise from independent scalar
// draws.
func drawSeq(dim int, draw func() float64) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for {
			p := make([]float64, dim)
			for i := range p {
				p[i] = draw()
			}
			if !yield(p) {
				return
			}
		}
	}
}

// sphereSeq yields points with unit Euclidean norm, via normalized
// gaussian vectors (Marsaglia's method in any dimension).
func sphereSeq(dim int) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for {
			p := make([]float64, dim)
			var norm float64
			for i := range p {
				p[i] = rng.Gaussian()
				norm += p[i] * p[i]
			}
			if norm == 0 {
				continue
			}
			norm = math.Sqrt(norm)
			for i := range p {
				p[i] /= norm
			}
			if !yield(p) {
				return
			}
		}
	}
}

// haltonBases are the first four primes, one base per dimension.
var haltonBases = [maxDim]uint64{2, 3, 5, 7}

// radicalInverse reflects the base-b digits of n around the radix
// point.
func radicalInverse(n, b uint64) float64 {
	var inv float64
	f := 1.0 / float64(b)
	for n > 0 {
		inv += f * float64(n%b)
		n /= b
		f /= float64(b)
	}
	return inv
}

func haltonSeq(dim int) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for n := uint64(1); ; n++ {
			p := make([]float64, dim)
			for i := range p {
				p[i] = radicalInverse(n, haltonBases[i])
			}
			if !yield(p) {
				return
			}
		}
	}
}
