package rng

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"randkit/internal/errors"
)

// rander is the canonical single-draw capability every distribution
// sampler provides (distuv's Rander shape).
type rander interface {
	Rand() float64
}

type withMoments interface {
	Mean() float64
	Variance() float64
}

type withCDF interface {
	CDF(x float64) float64
}

// distribution adapts a sampler to the Source contract. The typed
// accessors all route through the single canonical draw, cast to the
// requested primitive; bounds are ignored by design.
type distribution struct {
	kind Kind
	r    rander
	gen  Generator
}

func newDistributionSource(kind Kind, r rander, gen Generator) *distribution {
	return &distribution{kind: kind, r: r, gen: gen}
}

func (d *distribution) Kind() Kind { return d.kind }

func (d *distribution) Sample() float64 { return d.r.Rand() }

func (d *distribution) Int(_ ...int32) int32 { return int32(d.r.Rand()) }

func (d *distribution) Long(_ ...int64) int64 { return int64(d.r.Rand()) }

func (d *distribution) Float(_ ...float32) float32 { return float32(d.r.Rand()) }

func (d *distribution) Double(_ ...float64) float64 { return d.r.Rand() }

func (d *distribution) Mean() float64 {
	if m, ok := d.r.(withMoments); ok {
		return m.Mean()
	}
	return math.NaN()
}

func (d *distribution) Variance() float64 {
	if m, ok := d.r.(withMoments); ok {
		return m.Variance()
	}
	return math.NaN()
}

func (d *distribution) CDF(x float64) float64 {
	if c, ok := d.r.(withCDF); ok {
		return c.CDF(x)
	}
	return math.NaN()
}

// Reseed reseeds the underlying bit source; the distribution's
// parameters are immutable.
func (d *distribution) Reseed(seed int64) Source {
	d.gen.Reseed(seed)
	return d
}

func (d *distribution) Sequence(n ...int) iter.Seq[float64] {
	limit := -1
	if len(n) > 0 {
		limit = n[0]
	}
	return func(yield func(float64) bool) {
		for i := 0; limit < 0 || i < limit; i++ {
			if !yield(d.r.Rand()) {
				return
			}
		}
	}
}

// NewDistribution builds a distribution source for the given family.
// Every parameter has a documented default, so a nil map constructs.
// The "rng" parameter injects the underlying bit source; absent, the
// shared Default generator is used. Continuous families accept an
// "accuracy" inverse-CDF tolerance (default 1e-9) and discrete
// iterative families accept "epsilon" and "max-iterations"; the
// samplers here are closed-form or exact, so these keys are accepted
// without altering results.
func NewDistribution(kind Kind, params Params) (Distribution, error) {
	gen := params.Generator("rng")
	if gen == nil {
		gen = Default()
	}

	var r rander
	switch kind {
	case Normal:
		r = distuv.Normal{
			Mu:    params.Float("mu", 0),
			Sigma: params.Float("sd", 1),
			Src:   gen,
		}
	case Uniform:
		r = distuv.Uniform{
			Min: params.Float("lower", 0),
			Max: params.Float("upper", 1),
			Src: gen,
		}
	case Exponential:
		// Parameterized by mean, matching the simulation-library
		// convention rather than distuv's rate.
		r = distuv.Exponential{
			Rate: 1 / params.Float("mean", 1),
			Src:  gen,
		}
	case Gamma:
		// shape/scale parameters; distuv's Beta field is the rate.
		r = distuv.Gamma{
			Alpha: params.Float("shape", 2),
			Beta:  1 / params.Float("scale", 2),
			Src:   gen,
		}
	case Beta:
		r = distuv.Beta{
			Alpha: params.Float("alpha", 2),
			Beta:  params.Float("beta", 5),
			Src:   gen,
		}
	case Chi:
		r = distuv.Chi{
			K:   params.Float("nu", 1),
			Src: gen,
		}
	case ChiSquared:
		r = distuv.ChiSquared{
			K:   params.Float("nu", 1),
			Src: gen,
		}
	case F:
		r = distuv.F{
			D1:  params.Float("df1", 1),
			D2:  params.Float("df2", 1),
			Src: gen,
		}
	case StudentsT:
		r = distuv.StudentsT{
			Mu:    0,
			Sigma: 1,
			Nu:    params.Float("degrees-of-freedom", 1),
			Src:   gen,
		}
	case Laplace:
		r = distuv.Laplace{
			Mu:    params.Float("mu", 0),
			Scale: params.Float("beta", 1),
			Src:   gen,
		}
	case LogNormal:
		r = distuv.LogNormal{
			Mu:    params.Float("scale", 1),
			Sigma: params.Float("shape", 1),
			Src:   gen,
		}
	case Pareto:
		r = distuv.Pareto{
			Xm:    params.Float("scale", 1),
			Alpha: params.Float("shape", 2),
			Src:   gen,
		}
	case Weibull:
		r = distuv.Weibull{
			K:      params.Float("alpha", 2),
			Lambda: params.Float("beta", 1),
			Src:    gen,
		}
	case Gumbel:
		r = distuv.GumbelRight{
			Mu:   params.Float("mu", 1),
			Beta: params.Float("beta", 2),
			Src:  gen,
		}
	case InverseGamma:
		r = distuv.InverseGamma{
			Alpha: params.Float("alpha", 2),
			Beta:  params.Float("beta", 1),
			Src:   gen,
		}
	case Triangular:
		a := params.Float("a", -1)
		c := params.Float("c", 0)
		b := params.Float("b", 1)
		if !(a <= c && c <= b && a < b) {
			return nil, errors.InvalidParam("triangular requires a <= c <= b with a < b")
		}
		r = distuv.NewTriangle(a, b, c, gen)
	case Bernoulli:
		r = distuv.Bernoulli{
			P:   params.Float("p", 0.5),
			Src: gen,
		}
	case Binomial:
		r = distuv.Binomial{
			N:   float64(params.Int("trials", 20)),
			P:   params.Float("p", 0.5),
			Src: gen,
		}
	case Poisson:
		r = distuv.Poisson{
			Lambda: params.Float("p", 0.5),
			Src:    gen,
		}
	case Geometric:
		p := params.Float("p", 0.5)
		if p <= 0 || p > 1 {
			return nil, errors.InvalidParam("geometric requires p in (0,1]")
		}
		r = geometricDist{p: p, gen: gen}
	case Pascal:
		size := params.Float("r", 5)
		p := params.Float("p", 0.5)
		if size <= 0 || p <= 0 || p >= 1 {
			return nil, errors.InvalidParam("pascal requires r > 0 and p in (0,1)")
		}
		r = pascalDist{
			r:     size,
			p:     p,
			gen:   gen,
			gamma: distuv.Gamma{Alpha: size, Beta: p / (1 - p), Src: gen},
		}
	case Cauchy:
		r = cauchyDist{
			mu:    params.Float("mean", 0),
			scale: params.Float("scale", 1),
			gen:   gen,
		}
	case Levy:
		r = levyDist{
			mu:  params.Float("mu", 0),
			c:   params.Float("c", 1),
			gen: gen,
		}
	case Logistic:
		r = logisticDist{
			mu:  params.Float("mu", 0),
			s:   params.Float("s", 1),
			gen: gen,
		}
	case Nakagami:
		m := params.Float("mu", 1)
		omega := params.Float("omega", 1)
		if m < 0.5 || omega <= 0 {
			return nil, errors.InvalidParam("nakagami requires mu >= 0.5 and omega > 0")
		}
		r = nakagamiDist{
			m:     m,
			omega: omega,
			gamma: distuv.Gamma{Alpha: m, Beta: m / omega, Src: gen},
		}
	case Zipf:
		var err error
		r, err = newZipfDist(params.Int("n", 20), params.Float("s", 2), gen)
		if err != nil {
			return nil, err
		}
	case EnumeratedInt, EnumeratedReal:
		var err error
		r, err = newEnumeratedDist(params.Floats("data"), params.Floats("probabilities"), gen)
		if err != nil {
			return nil, err
		}
	case Empirical:
		r = newEmpiricalDist(params.Floats("data"), gen)
	default:
		return nil, errors.UnknownGeneratorKind(string(kind))
	}

	return newDistributionSource(kind, r, gen), nil
}
