// Package statkit provides deterministic seed derivation and
// sample-moment helpers shared by the package tests.
package statkit

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DeriveSeed folds a stream name into a base seed so that every named
// test stream gets its own reproducible seed.
func DeriveSeed(name string, base int64) int64 {
	var hash uint32 = 5381
	for _, c := range name {
		hash = ((hash << 5) + hash) + uint32(c) // djb2
	}
	return base + int64(hash)
}

// Mean is the sample mean, NaN for an empty sample.
func Mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Variance is the population variance, NaN for an empty sample.
func Variance(xs []float64) float64 {
	v, err := stats.PopulationVariance(xs)
	if err != nil {
		return math.NaN()
	}
	return v
}
