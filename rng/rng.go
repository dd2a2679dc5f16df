// Package rng provides a uniform sampling contract over heterogeneous
// pseudo-random bit generators and probability distributions. Every
// source, whatever its algorithm, exposes the same typed accessors with
// shared range-remapping rules, reseeding, and lazy sequence
// production. Concrete bit generators live in internal/bitgen;
// distribution math comes from gonum's distuv.
//
// Sources are stateful and not safe for concurrent use; callers sharing
// one instance across goroutines must serialize access themselves.
package rng

import "iter"

// Kind identifies a bit-generator algorithm or a distribution family.
// The set is closed: new kinds are added here, not registered at
// runtime.
type Kind string

// Bit-generator kinds.
const (
	Mersenne  Kind = "mersenne"
	ISAAC     Kind = "isaac"
	Well512a  Kind = "well512a"
	Well1024a Kind = "well1024a"
	JDK       Kind = "jdk"
	PCG       Kind = "pcg"
	SplitMix  Kind = "splitmix"
	Lehmer    Kind = "lehmer"
	Taus      Kind = "taus"
)

// Distribution kinds.
const (
	Normal         Kind = "normal"
	Uniform        Kind = "uniform"
	Exponential    Kind = "exponential"
	Gamma          Kind = "gamma"
	Beta           Kind = "beta"
	Chi            Kind = "chi"
	ChiSquared     Kind = "chi-squared"
	F              Kind = "f"
	StudentsT      Kind = "t"
	Laplace        Kind = "laplace"
	LogNormal      Kind = "log-normal"
	Pareto         Kind = "pareto"
	Weibull        Kind = "weibull"
	Gumbel         Kind = "gumbel"
	InverseGamma   Kind = "inverse-gamma"
	Triangular     Kind = "triangular"
	Bernoulli      Kind = "bernoulli"
	Binomial       Kind = "binomial"
	Poisson        Kind = "poisson"
	Geometric      Kind = "geometric"
	Pascal         Kind = "pascal"
	Cauchy         Kind = "cauchy"
	Levy           Kind = "levy"
	Logistic       Kind = "logistic"
	Nakagami       Kind = "nakagami"
	Zipf           Kind = "zipf"
	EnumeratedInt  Kind = "enumerated-int"
	EnumeratedReal Kind = "enumerated-real"
	Empirical      Kind = "empirical"
)

// Source is the capability set shared by every bit generator and every
// distribution: typed primitive draws with arity-driven range
// remapping, in-place reseeding, and lazy sequence production.
//
// The variadic bounds carry the three accessor forms. No bounds draws
// the source's natural range (full integer range for Int/Long, [0,1)
// for Float/Double). One bound mx remaps to [0,mx). Two bounds mn,mx
// remap to [mn,mx); a zero-width range returns mn exactly without
// consuming a draw.
type Source interface {
	// Kind reports the algorithm or distribution identity.
	Kind() Kind

	Int(bounds ...int32) int32
	Long(bounds ...int64) int64
	Float(bounds ...float32) float32
	Double(bounds ...float64) float64

	// Reseed resets internal state and returns the same handle, so
	// configuration can be chained.
	Reseed(seed int64) Source

	// Sequence returns a lazy stream of raw double draws: infinite with
	// no argument, exactly n elements with one. The stream is a live
	// view over the source's state, not a buffered snapshot; a fresh
	// call is needed for a fresh view, and interleaved streams share
	// the underlying draw sequence.
	Sequence(n ...int) iter.Seq[float64]
}

// Generator is a Source backed by a raw bit generator. It adds the
// draws that make no sense for distributions, and exposes its raw
// 64-bit stream so it can serve as the bit source of a distribution
// (it satisfies math/rand/v2 rand.Source).
type Generator interface {
	Source

	// Uint64 returns the next raw 64-bit word.
	Uint64() uint64

	// Gaussian draws from a normal distribution. No parameters is
	// N(0,1); one parameter std scales to N(0,std); two parameters
	// compute mean + N(0,std). The second parameter is added spread,
	// not an upper bound - the uniform accessors' [mn,mx) convention
	// deliberately does not apply here.
	Gaussian(params ...float64) float64

	// Bool flips a coin: fair with no argument, true with probability
	// threshold otherwise. The threshold is compared against a uniform
	// double draw.
	Bool(threshold ...float64) bool
}

// Distribution is a Source whose canonical draw follows a probability
// law. Int, Long, Float and Double all route through Sample, cast to
// the requested primitive type; range bounds are not part of the
// distribution contract and are ignored.
type Distribution interface {
	Source

	// Sample returns the canonical double draw.
	Sample() float64

	// Mean returns the distribution mean (NaN or Inf where undefined).
	Mean() float64

	// Variance returns the distribution variance (NaN or Inf where
	// undefined).
	Variance() float64

	// CDF evaluates the cumulative distribution function at x, or NaN
	// when the family exposes no closed form here.
	CDF(x float64) float64
}
