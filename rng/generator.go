package rng

import (
	"iter"
	"math/rand/v2"

	"randkit/internal/bitgen"
)

// generator adapts a bitgen.Source to the Generator contract. The
// math/rand/v2 Rand wrapper supplies bounded and floating draws without
// buffering, so reseeding the underlying source takes effect on the
// next draw.
type generator struct {
	kind Kind
	src  bitgen.Source
	rnd  *rand.Rand
}

func newGeneratorSource(kind Kind, src bitgen.Source) *generator {
	return &generator{kind: kind, src: src, rnd: rand.New(src)}
}

func (g *generator) Kind() Kind { return g.kind }

func (g *generator) Uint64() uint64 { return g.src.Uint64() }

func (g *generator) Int(bounds ...int32) int32 {
	return remap(bounds,
		func() int32 { return int32(g.rnd.Uint32()) },
		func(n int32) int32 {
			if n <= 0 {
				return 0
			}
			return g.rnd.Int32N(n)
		})
}

func (g *generator) Long(bounds ...int64) int64 {
	return remap(bounds,
		func() int64 { return int64(g.rnd.Uint64()) },
		func(n int64) int64 {
			if n <= 0 {
				return 0
			}
			return g.rnd.Int64N(n)
		})
}

func (g *generator) Float(bounds ...float32) float32 {
	return remap(bounds,
		g.rnd.Float32,
		func(n float32) float32 { return g.rnd.Float32() * n })
}

func (g *generator) Double(bounds ...float64) float64 {
	return remap(bounds,
		g.rnd.Float64,
		func(n float64) float64 { return g.rnd.Float64() * n })
}

func (g *generator) Gaussian(params ...float64) float64 {
	switch len(params) {
	case 0:
		return g.rnd.NormFloat64()
	case 1:
		return g.rnd.NormFloat64() * params[0]
	default:
		// mean + N(0,std); the second parameter is spread, not a bound.
		return params[0] + g.rnd.NormFloat64()*params[1]
	}
}

func (g *generator) Bool(threshold ...float64) bool {
	p := 0.5
	if len(threshold) > 0 {
		p = threshold[0]
	}
	return g.rnd.Float64() < p
}

func (g *generator) Reseed(seed int64) Source {
	g.src.Seed(seed)
	return g
}

func (g *generator) Sequence(n ...int) iter.Seq[float64] {
	limit := -1
	if len(n) > 0 {
		limit = n[0]
	}
	return func(yield func(float64) bool) {
		for i := 0; limit < 0 || i < limit; i++ {
			if !yield(g.Double()) {
				return
			}
		}
	}
}
