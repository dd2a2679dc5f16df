package rng

import (
	"math"
	mrand "math/rand"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"randkit/internal/errors"
)

// Families gonum's distuv does not ship. Each one samples through the
// injected Generator (directly or via a distuv building block), so
// reseeding the generator reproduces the stream like any other
// distribution.

// cauchyDist samples by inverting the CDF. Mean and variance are
// undefined, so the adapter reports NaN for both.
type cauchyDist struct {
	mu    float64
	scale float64
	gen   Generator
}

func (c cauchyDist) Rand() float64 {
	return c.mu + c.scale*math.Tan(math.Pi*(c.gen.Double()-0.5))
}

func (c cauchyDist) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-c.mu)/c.scale)/math.Pi
}

// levyDist samples X = mu + c/Z^2 with Z a half-normal quantile.
type levyDist struct {
	mu  float64
	c   float64
	gen Generator
}

func (l levyDist) Rand() float64 {
	u := l.gen.Double()
	if u == 0 {
		u = math.SmallestNonzeroFloat64
	}
	z := distuv.UnitNormal.Quantile(1 - u/2)
	return l.mu + l.c/(z*z)
}

func (l levyDist) Mean() float64 { return math.Inf(1) }

func (l levyDist) Variance() float64 { return math.Inf(1) }

func (l levyDist) CDF(x float64) float64 {
	if x <= l.mu {
		return 0
	}
	return math.Erfc(math.Sqrt(l.c / (2 * (x - l.mu))))
}

// geometricDist counts failures before the first success (support 0,1,...).
type geometricDist struct {
	p   float64
	gen Generator
}

func (g geometricDist) Rand() float64 {
	if g.p == 1 {
		return 0
	}
	u := g.gen.Double()
	if u == 0 {
		u = math.SmallestNonzeroFloat64
	}
	return math.Floor(math.Log(u) / math.Log1p(-g.p))
}

func (g geometricDist) Mean() float64 { return (1 - g.p) / g.p }

func (g geometricDist) Variance() float64 { return (1 - g.p) / (g.p * g.p) }

func (g geometricDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Pow(1-g.p, math.Floor(x)+1)
}

// pascalDist is the negative binomial (number of failures before the
// r-th success), sampled as a gamma-mixed Poisson.
type pascalDist struct {
	r     float64
	p     float64
	gen   Generator
	gamma distuv.Gamma
}

func (d pascalDist) Rand() float64 {
	lambda := d.gamma.Rand()
	return distuv.Poisson{Lambda: lambda, Src: d.gen}.Rand()
}

func (d pascalDist) Mean() float64 { return d.r * (1 - d.p) / d.p }

func (d pascalDist) Variance() float64 { return d.r * (1 - d.p) / (d.p * d.p) }

// logisticDist samples by inverting the CDF.
type logisticDist struct {
	mu  float64
	s   float64
	gen Generator
}

func (l logisticDist) Rand() float64 {
	u := l.gen.Double()
	if u == 0 {
		u = math.SmallestNonzeroFloat64
	}
	return l.mu + l.s*math.Log(u/(1-u))
}

func (l logisticDist) Mean() float64 { return l.mu }

func (l logisticDist) Variance() float64 { return l.s * l.s * math.Pi * math.Pi / 3 }

func (l logisticDist) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-l.mu)/l.s))
}

// nakagamiDist is the square root of a gamma variate.
type nakagamiDist struct {
	m     float64
	omega float64
	gamma distuv.Gamma
}

func (n nakagamiDist) Rand() float64 {
	return math.Sqrt(n.gamma.Rand())
}

func (n nakagamiDist) Mean() float64 {
	return math.Gamma(n.m+0.5) / math.Gamma(n.m) * math.Sqrt(n.omega/n.m)
}

func (n nakagamiDist) Variance() float64 {
	mean := n.Mean()
	// E[X^2] = omega.
	return n.omega - mean*mean
}

func (n nakagamiDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return n.gamma.CDF(x * x)
}

// v1Source bridges a Generator to math/rand's v1 Source64, which the
// stdlib Zipf sampler still requires.
type v1Source struct {
	gen Generator
}

func (s v1Source) Int63() int64 { return int64(s.gen.Uint64() >> 1) }

func (s v1Source) Uint64() uint64 { return s.gen.Uint64() }

func (s v1Source) Seed(seed int64) { s.gen.Reseed(seed) }

// zipfDist draws ranks 1..n with probability proportional to k^-s.
type zipfDist struct {
	n        int
	s        float64
	z        *mrand.Zipf
	mean     float64
	variance float64
}

func newZipfDist(n int, s float64, gen Generator) (rander, error) {
	if n < 1 {
		return nil, errors.InvalidParam("zipf requires n >= 1")
	}
	if s <= 1 {
		return nil, errors.InvalidParam("zipf requires exponent s > 1")
	}
	z := mrand.NewZipf(mrand.New(v1Source{gen: gen}), s, 1, uint64(n-1))

	// Moments from generalized harmonic numbers.
	var h, h1, h2 float64
	for k := 1; k <= n; k++ {
		fk := float64(k)
		h += math.Pow(fk, -s)
		h1 += math.Pow(fk, 1-s)
		h2 += math.Pow(fk, 2-s)
	}
	mean := h1 / h
	return zipfDist{
		n:        n,
		s:        s,
		z:        z,
		mean:     mean,
		variance: h2/h - mean*mean,
	}, nil
}

func (d zipfDist) Rand() float64 { return float64(d.z.Uint64() + 1) }

func (d zipfDist) Mean() float64 { return d.mean }

func (d zipfDist) Variance() float64 { return d.variance }

// enumeratedDist draws from an explicit value set with weights
// (uniform when omitted), backing both enumerated-int and
// enumerated-real.
type enumeratedDist struct {
	vals  []float64
	probs []float64
	cat   distuv.Categorical
}

func newEnumeratedDist(vals, weights []float64, gen Generator) (rander, error) {
	if len(vals) == 0 {
		// Documented default: ranks 0..9, uniform.
		vals = make([]float64, 10)
		for i := range vals {
			vals[i] = float64(i)
		}
	}
	if len(weights) == 0 {
		weights = make([]float64, len(vals))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(vals) {
		return nil, errors.InvalidParam("enumerated distribution needs one probability per value")
	}

	var total float64
	for _, w := range weights {
		if w < 0 {
			return nil, errors.InvalidParam("enumerated probabilities must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return nil, errors.InvalidParam("enumerated probabilities must not all be zero")
	}
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / total
	}

	return enumeratedDist{
		vals:  vals,
		probs: probs,
		cat:   distuv.NewCategorical(weights, gen),
	}, nil
}

func (e enumeratedDist) Rand() float64 {
	return e.vals[int(e.cat.Rand())]
}

func (e enumeratedDist) Mean() float64 {
	var m float64
	for i, v := range e.vals {
		m += e.probs[i] * v
	}
	return m
}

func (e enumeratedDist) Variance() float64 {
	mean := e.Mean()
	var m2 float64
	for i, v := range e.vals {
		m2 += e.probs[i] * v * v
	}
	return m2 - mean*mean
}

func (e enumeratedDist) CDF(x float64) float64 {
	var c float64
	for i, v := range e.vals {
		if v <= x {
			c += e.probs[i]
		}
	}
	return c
}

// empiricalDist inverts the sample quantile function of a data set.
type empiricalDist struct {
	data []float64
	gen  Generator
}

func newEmpiricalDist(data []float64, gen Generator) rander {
	if len(data) == 0 {
		// Documented default: the unit grid.
		data = make([]float64, 101)
		for i := range data {
			data[i] = float64(i) / 100
		}
	}
	return empiricalDist{data: data, gen: gen}
}

func (e empiricalDist) Rand() float64 {
	u := e.gen.Double()
	if u == 0 {
		u = math.SmallestNonzeroFloat64
	}
	q, err := stats.Percentile(e.data, u*100)
	if err != nil {
		return e.data[0]
	}
	return q
}

func (e empiricalDist) Mean() float64 {
	m, err := stats.Mean(e.data)
	if err != nil {
		return math.NaN()
	}
	return m
}

func (e empiricalDist) Variance() float64 {
	v, err := stats.PopulationVariance(e.data)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (e empiricalDist) CDF(x float64) float64 {
	var c int
	for _, v := range e.data {
		if v <= x {
			c++
		}
	}
	return float64(c) / float64(len(e.data))
}
