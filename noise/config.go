// Package noise synthesizes continuous scalar fields by driving a
// coherent base-noise kernel across octaves. Four blend strategies
// (Single, FBM, Billow, RidgedMulti) share one configuration record and
// one octave loop; kernels are pluggable (lattice value/gradient noise,
// simplex, classic Perlin).
//
// A Field is a pure function of its coordinates: configurations are
// immutable and the engine holds no shared mutable state, so fields are
// safe for concurrent use.
package noise

import (
	"fmt"

	"randkit/internal/errors"
)

// KernelKind selects the elementary coherent-noise kernel.
type KernelKind string

const (
	// KernelValue interpolates hashed lattice values.
	KernelValue KernelKind = "value"
	// KernelGradient interpolates dot products with hashed lattice
	// gradients (Perlin-style).
	KernelGradient KernelKind = "gradient"
	// KernelSimplex evaluates OpenSimplex noise; interpolation does not
	// apply.
	KernelSimplex KernelKind = "simplex"
	// KernelPerlin evaluates the classic library-backed Perlin kernel;
	// interpolation does not apply.
	KernelPerlin KernelKind = "perlin"
)

// Interpolation selects the lattice fade curve for value and gradient
// kernels. It is ignored for simplex and perlin kernels.
type Interpolation string

const (
	InterpNone    Interpolation = "none"
	InterpLinear  Interpolation = "linear"
	InterpHermite Interpolation = "hermite"
	InterpQuintic Interpolation = "quintic"
)

// Config describes a noise field. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Seed determines the kernel's lattice content.
	Seed int64
	// Kernel selects the base-noise kernel.
	Kernel KernelKind
	// Interp selects the fade curve for value/gradient kernels.
	Interp Interpolation
	// Octaves is the number of combination iterations, at least 1.
	Octaves int
	// Lacunarity multiplies the frequency each octave, typically > 1.
	Lacunarity float64
	// Gain multiplies the amplitude each octave, typically in (0,1].
	Gain float64
	// Normalize rescales output from its theoretical range into [0,1].
	Normalize bool
}

// DefaultConfig returns the canonical fractal setup: gradient kernel,
// hermite interpolation, 6 octaves, lacunarity 2, gain 0.5, normalized.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		Kernel:     KernelGradient,
		Interp:     InterpHermite,
		Octaves:    6,
		Lacunarity: 2.0,
		Gain:       0.5,
		Normalize:  true,
	}
}

// Validate fails fast on structurally invalid values. Unlike the
// permissive clamping in the sampling layers, silent repair here would
// corrupt numerical results in ways that are hard to detect.
func (c Config) Validate() error {
	if c.Octaves < 1 {
		return errors.InvalidNoiseConfiguration(fmt.Sprintf("octaves must be >= 1, got %d", c.Octaves))
	}
	if !(c.Lacunarity > 0) {
		return errors.InvalidNoiseConfiguration(fmt.Sprintf("lacunarity must be positive, got %v", c.Lacunarity))
	}
	if !(c.Gain > 0) {
		return errors.InvalidNoiseConfiguration(fmt.Sprintf("gain must be positive, got %v", c.Gain))
	}
	switch c.Kernel {
	case KernelValue, KernelGradient, KernelSimplex, KernelPerlin:
	default:
		return errors.InvalidNoiseConfiguration(fmt.Sprintf("unknown kernel kind %q", c.Kernel))
	}
	switch c.Kernel {
	case KernelValue, KernelGradient:
		switch c.Interp {
		case InterpNone, InterpLinear, InterpHermite, InterpQuintic:
		default:
			return errors.InvalidNoiseConfiguration(fmt.Sprintf("unknown interpolation %q", c.Interp))
		}
	}
	return nil
}
