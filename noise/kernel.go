package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"randkit/internal/gridnoise"
)

// kernel is the boundary contract with the elementary coherent-noise
// collaborators: deterministic per (seed, coordinate) tuple, range
// approximately [-1,1]. Unused trailing axes are passed as zero.
type kernel interface {
	Eval(x, y, z float64) float64
}

// newKernel instantiates the configured kernel. Config must already be
// validated.
func newKernel(c Config) kernel {
	switch c.Kernel {
	case KernelValue:
		return gridnoise.NewValue(c.Seed, fadeFor(c.Interp))
	case KernelGradient:
		return gridnoise.NewGradient(c.Seed, fadeFor(c.Interp))
	case KernelSimplex:
		return simplexKernel{n: opensimplex.New(c.Seed)}
	default: // KernelPerlin
		return perlinKernel{p: perlin.NewPerlin(2, 2, 3, c.Seed)}
	}
}

func fadeFor(i Interpolation) gridnoise.Fade {
	switch i {
	case InterpNone:
		return gridnoise.Step
	case InterpLinear:
		return gridnoise.Linear
	case InterpQuintic:
		return gridnoise.Quintic
	default:
		return gridnoise.Hermite
	}
}

type simplexKernel struct {
	n opensimplex.Noise
}

func (k simplexKernel) Eval(x, y, z float64) float64 {
	return k.n.Eval3(x, y, z)
}

type perlinKernel struct {
	p *perlin.Perlin
}

func (k perlinKernel) Eval(x, y, z float64) float64 {
	return k.p.Noise3D(x, y, z)
}
