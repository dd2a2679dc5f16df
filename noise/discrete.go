package noise

// DiscreteNoise hashes integer coordinates to a deterministic double in
// [0,1]. There is no seed parameter: the hash constants are the seed.
// Unlike the coherent kernels, neighboring coordinates are entirely
// decorrelated.
//
// The arithmetic is 32-bit with wraparound, so results are
// bit-reproducible across platforms. The y coordinate defaults to 0.
func DiscreteNoise(x int32, y ...int32) float64 {
	var yy int32
	if len(y) > 0 {
		yy = y[0]
	}
	n := x + yy*57
	n ^= n << 13
	h := n*(n*n*15731+789221) + 1376312589
	return float64(h&0x7fffffff) / 2147483647.0
}
