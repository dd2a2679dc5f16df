package noise

import (
	"math"

	"randkit/rng"
)

// Field evaluates a scalar noise field at 1 to 3 coordinates. Missing
// trailing coordinates are treated as zero.
type Field func(coords ...float64) float64

func splitCoords(coords []float64) (x, y, z float64) {
	switch len(coords) {
	case 0:
	case 1:
		x = coords[0]
	case 2:
		x, y = coords[0], coords[1]
	default:
		x, y, z = coords[0], coords[1], coords[2]
	}
	return x, y, z
}

// clampUnit pins a kernel sample into [-1,1]. Kernels only promise an
// approximate range, and the coarse fade curves can extrapolate corner
// gradients past it; the octave math needs the exact bound.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// maxAmplitude is the theoretical peak of an octave sum: each octave
// contributes at most gain^i.
func maxAmplitude(octaves int, gain float64) float64 {
	total, amp := 0.0, 1.0
	for i := 0; i < octaves; i++ {
		total += amp
		amp *= gain
	}
	return total
}

// Single evaluates the kernel once at the base frequency, with no
// octave loop.
func Single(c Config) (Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	k := newKernel(c)
	normalize := c.Normalize
	return func(coords ...float64) float64 {
		x, y, z := splitCoords(coords)
		v := clampUnit(k.Eval(x, y, z))
		if normalize {
			return 0.5*v + 0.5
		}
		return v
	}, nil
}

// FBM accumulates plain kernel values across octaves: fractal Brownian
// motion.
func FBM(c Config) (Field, error) {
	return octaveField(c, func(v float64) float64 { return v })
}

// Billow folds each octave through 2|v|-1 before weighting, turning
// ridges and valleys into rounded billows.
func Billow(c Config) (Field, error) {
	return octaveField(c, func(v float64) float64 { return 2*math.Abs(v) - 1 })
}

// octaveField runs the shared octave loop with a per-octave transform.
// The transform must map [-1,1] into [-1,1] so the amplitude-sum
// normalization bound holds.
func octaveField(c Config, transform func(float64) float64) (Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	k := newKernel(c)
	maxAmp := maxAmplitude(c.Octaves, c.Gain)
	octaves, lacunarity, gain, normalize := c.Octaves, c.Lacunarity, c.Gain, c.Normalize

	return func(coords ...float64) float64 {
		x, y, z := splitCoords(coords)
		sum, freq, amp := 0.0, 1.0, 1.0
		for i := 0; i < octaves; i++ {
			sum += amp * transform(clampUnit(k.Eval(x*freq, y*freq, z*freq)))
			freq *= lacunarity
			amp *= gain
		}
		if normalize {
			return (sum + maxAmp) / (2 * maxAmp)
		}
		return sum
	}, nil
}

// RidgedMulti sharpens each octave into a ridge, signal = (1-|v|)^2,
// and feeds the previous octave's signal forward as the next octave's
// weight (clamped to [0,1], feedback factor 1/gain), so detail
// concentrates near the ridge lines. The raw sum is non-negative,
// bounded by the octave amplitude sum.
func RidgedMulti(c Config) (Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	k := newKernel(c)
	maxAmp := maxAmplitude(c.Octaves, c.Gain)
	octaves, lacunarity, gain, normalize := c.Octaves, c.Lacunarity, c.Gain, c.Normalize

	return func(coords ...float64) float64 {
		x, y, z := splitCoords(coords)
		sum, freq := 0.0, 1.0
		weight, spectral := 1.0, 1.0
		for i := 0; i < octaves; i++ {
			signal := 1 - math.Abs(clampUnit(k.Eval(x*freq, y*freq, z*freq)))
			signal *= signal
			signal *= weight

			weight = signal / gain
			if weight > 1 {
				weight = 1
			}
			if weight < 0 {
				weight = 0
			}

			sum += signal * spectral
			spectral *= gain
			freq *= lacunarity
		}
		if normalize {
			return sum / maxAmp
		}
		return sum
	}, nil
}

// Convenience fields: fixed FBM setups (6 octaves, lacunarity 2, gain
// 0.5, normalized) differing only in kernel kind and interpolation.
// The seed is drawn from the shared default generator.

// Perlin returns a gradient-kernel FBM field with hermite
// interpolation.
func Perlin() Field {
	f, _ := FBM(DefaultConfig(rng.Long()))
	return f
}

// ValueNoise returns a value-kernel FBM field with hermite
// interpolation.
func ValueNoise() Field {
	c := DefaultConfig(rng.Long())
	c.Kernel = KernelValue
	f, _ := FBM(c)
	return f
}

// SimplexNoise returns a simplex-kernel FBM field.
func SimplexNoise() Field {
	c := DefaultConfig(rng.Long())
	c.Kernel = KernelSimplex
	f, _ := FBM(c)
	return f
}
