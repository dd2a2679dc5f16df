package rng

import (
	"sync"
	"time"
)

var (
	defaultOnce sync.Once
	defaultGen  Generator
)

// Default returns the shared process-wide generator, building a
// time-seeded Mersenne Twister on first use. The instance is never
// replaced, only mutated by ReseedDefault, so reseeding changes every
// subsequent draw made through the convenience accessors
// deterministically.
//
// Like every Source, it is not internally synchronized; concurrent
// callers must serialize access.
func Default() Generator {
	defaultOnce.Do(func() {
		g, _ := NewGenerator(Mersenne, time.Now().UnixNano())
		defaultGen = g
	})
	return defaultGen
}

// ReseedDefault reseeds the shared generator in place.
func ReseedDefault(seed int64) {
	Default().Reseed(seed)
}

// Convenience accessors drawing from the shared generator.

// Int draws an int32 through the shared generator.
func Int(bounds ...int32) int32 { return Default().Int(bounds...) }

// Long draws an int64 through the shared generator.
func Long(bounds ...int64) int64 { return Default().Long(bounds...) }

// Float draws a float32 through the shared generator.
func Float(bounds ...float32) float32 { return Default().Float(bounds...) }

// Double draws a float64 through the shared generator.
func Double(bounds ...float64) float64 { return Default().Double(bounds...) }

// Gaussian draws a normal variate through the shared generator.
func Gaussian(params ...float64) float64 { return Default().Gaussian(params...) }

// Bool flips a coin through the shared generator.
func Bool(threshold ...float64) bool { return Default().Bool(threshold...) }
