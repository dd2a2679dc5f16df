package rng

import (
	"time"

	"randkit/internal/bitgen"
	"randkit/internal/errors"
)

// Create builds a Source for any registered kind. Bit-generator kinds
// read an optional "seed" parameter; distribution kinds read their
// family's named parameters with documented defaults. Unknown kinds
// fail with CodeUnknownGeneratorKind.
func Create(kind Kind, params Params) (Source, error) {
	if isGeneratorKind(kind) {
		if seed, ok := params.Seed(); ok {
			g, err := NewGenerator(kind, seed)
			return g, err
		}
		g, err := NewGenerator(kind)
		return g, err
	}
	d, err := NewDistribution(kind, params)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func isGeneratorKind(kind Kind) bool {
	switch kind {
	case Mersenne, ISAAC, Well512a, Well1024a, JDK, PCG, SplitMix, Lehmer, Taus:
		return true
	}
	return false
}

// NewGenerator builds a bit-generator source. An omitted seed means
// default construction: the algorithm is seeded from the wall clock.
func NewGenerator(kind Kind, seed ...int64) (Generator, error) {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}

	var src bitgen.Source
	switch kind {
	case Mersenne:
		src = bitgen.NewMT19937(s)
	case ISAAC:
		src = bitgen.NewISAAC(s)
	case Well512a:
		src = bitgen.NewWell512(s)
	case Well1024a:
		src = bitgen.NewWell1024(s)
	case JDK:
		src = bitgen.NewJDK(s)
	case PCG:
		src = bitgen.NewPCG(s)
	case SplitMix:
		src = bitgen.NewSplitMix(s)
	case Lehmer:
		src = bitgen.NewLehmer(s)
	case Taus:
		src = bitgen.NewTaus(s)
	default:
		return nil, errors.UnknownGeneratorKind(string(kind))
	}
	return newGeneratorSource(kind, src), nil
}

// GeneratorKinds enumerates the closed set of bit-generator kinds.
func GeneratorKinds() []Kind {
	return []Kind{Mersenne, ISAAC, Well512a, Well1024a, JDK, PCG, SplitMix, Lehmer, Taus}
}

// DistributionKinds enumerates the closed set of distribution kinds.
func DistributionKinds() []Kind {
	return []Kind{
		Normal, Uniform, Exponential, Gamma, Beta, Chi, ChiSquared, F,
		StudentsT, Laplace, LogNormal, Pareto, Weibull, Gumbel,
		InverseGamma, Triangular, Bernoulli, Binomial, Poisson,
		Geometric, Pascal, Cauchy, Levy, Logistic, Nakagami, Zipf,
		EnumeratedInt, EnumeratedReal, Empirical,
	}
}
