// Package gridnoise implements seeded lattice noise kernels: value
// noise (interpolated lattice hashes) and gradient noise (interpolated
// dot products with hashed lattice gradients). Both return a scalar in
// roughly [-1,1] for 1-3 coordinates and are deterministic per
// (seed, coordinate) tuple.
package gridnoise

import "math"

// Fade shapes the interpolation parameter within a lattice cell.
type Fade func(t float64) float64

// The four interpolation modes. Step disables interpolation entirely
// (nearest lattice corner), Linear is a plain lerp, Hermite is the
// classic 3t^2-2t^3 smoothstep, Quintic is Perlin's improved
// 6t^5-15t^4+10t^3 curve.
var (
	Step    Fade = func(t float64) float64 { return 0 }
	Linear  Fade = func(t float64) float64 { return t }
	Hermite Fade = func(t float64) float64 { return t * t * (3 - 2*t) }
	Quintic Fade = func(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }
)

// hash3 mixes lattice coordinates and the seed into 32 well-distributed
// bits. Large odd constants decorrelate the axes.
func hash3(seed int64, x, y, z int32) uint32 {
	h := uint32(seed) ^ uint32(uint64(seed)>>32)
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	h ^= uint32(z) * 0xc2b2ae35
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

// cornerValue maps a lattice hash to a value in [-1,1].
func cornerValue(seed int64, x, y, z int32) float64 {
	return float64(hash3(seed, x, y, z))/2147483647.5 - 1.0
}

// grad3 is the Perlin gradient set: midpoints of cube edges.
var grad3 = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func floorInt(v float64) (int32, float64) {
	f := math.Floor(v)
	return int32(f), v - f
}

// Value is a seeded value-noise kernel.
type Value struct {
	seed int64
	fade Fade
}

// NewValue creates a value-noise kernel with the given interpolation.
func NewValue(seed int64, fade Fade) *Value {
	return &Value{seed: seed, fade: fade}
}

// Eval returns value noise at (x,y,z) in [-1,1]. Callers evaluating
// 1D or 2D fields pass zero for the unused axes.
func (v *Value) Eval(x, y, z float64) float64 {
	x0, tx := floorInt(x)
	y0, ty := floorInt(y)
	z0, tz := floorInt(z)
	sx, sy, sz := v.fade(tx), v.fade(ty), v.fade(tz)

	c := func(dx, dy, dz int32) float64 {
		return cornerValue(v.seed, x0+dx, y0+dy, z0+dz)
	}

	front := lerp(lerp(c(0, 0, 0), c(1, 0, 0), sx), lerp(c(0, 1, 0), c(1, 1, 0), sx), sy)
	back := lerp(lerp(c(0, 0, 1), c(1, 0, 1), sx), lerp(c(0, 1, 1), c(1, 1, 1), sx), sy)
	return lerp(front, back, sz)
}

// Gradient is a seeded gradient-noise (Perlin-style) kernel.
type Gradient struct {
	seed int64
	fade Fade
}

// NewGradient creates a gradient-noise kernel with the given
// interpolation.
func NewGradient(seed int64, fade Fade) *Gradient {
	return &Gradient{seed: seed, fade: fade}
}

// Eval returns gradient noise at (x,y,z) in roughly [-1,1].
func (g *Gradient) Eval(x, y, z float64) float64 {
	x0, tx := floorInt(x)
	y0, ty := floorInt(y)
	z0, tz := floorInt(z)
	sx, sy, sz := g.fade(tx), g.fade(ty), g.fade(tz)

	dot := func(dx, dy, dz int32) float64 {
		gr := grad3[hash3(g.seed, x0+dx, y0+dy, z0+dz)&15]
		return gr[0]*(tx-float64(dx)) + gr[1]*(ty-float64(dy)) + gr[2]*(tz-float64(dz))
	}

	front := lerp(lerp(dot(0, 0, 0), dot(1, 0, 0), sx), lerp(dot(0, 1, 0), dot(1, 1, 0), sx), sy)
	back := lerp(lerp(dot(0, 0, 1), dot(1, 0, 1), sx), lerp(dot(0, 1, 1), dot(1, 1, 1), sx), sy)
	return lerp(front, back, sz)
}
