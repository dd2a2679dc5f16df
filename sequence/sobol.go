package sequence

import (
	"iter"
	"math/bits"
)

// Gray-code Sobol sequence, 32-bit precision, up to 4 dimensions.
// Direction numbers follow Joe & Kuo's new-joe-kuo-6 table: dimension 1
// is the van der Corput sequence; dimensions 2-4 use the primitive
// polynomials (s, a, m) = (1, 0, [1]), (2, 1, [1,3]), (3, 1, [1,3,1]).

const sobolBits = 32

type sobolParam struct {
	s uint
	a uint32
	m []uint32
}

var sobolParams = [maxDim - 1]sobolParam{
	{s: 1, a: 0, m: []uint32{1}},
	{s: 2, a: 1, m: []uint32{1, 3}},
	{s: 3, a: 1, m: []uint32{1, 3, 1}},
}

// sobolDirections expands a parameter set into the 32 per-bit direction
// numbers for one dimension.
func sobolDirections(p sobolParam) [sobolBits]uint32 {
	var v [sobolBits]uint32
	if p.s == 0 {
		// First dimension: v_j = 2^(32-j).
		for j := uint(0); j < sobolBits; j++ {
			v[j] = 1 << (sobolBits - 1 - j)
		}
		return v
	}
	for j := uint(0); j < p.s && j < sobolBits; j++ {
		v[j] = p.m[j] << (sobolBits - 1 - j)
	}
	for j := p.s; j < sobolBits; j++ {
		v[j] = v[j-p.s] ^ (v[j-p.s] >> p.s)
		for k := uint(1); k < p.s; k++ {
			if (p.a>>(p.s-1-k))&1 == 1 {
				v[j] ^= v[j-k]
			}
		}
	}
	return v
}

// sobolSeq yields successive Sobol points in [0,1)^dim, restarting
// from the sequence origin. Point n is derived from point n-1 by
// XOR-ing the direction number indexed by the lowest zero bit of n-1
// (Antonov-Saleev).
func sobolSeq(dim int) iter.Seq[[]float64] {
	dirs := make([][sobolBits]uint32, dim)
	dirs[0] = sobolDirections(sobolParam{})
	for d := 1; d < dim; d++ {
		dirs[d] = sobolDirections(sobolParams[d-1])
	}

	return func(yield func([]float64) bool) {
		x := make([]uint32, dim)
		const scale = 1.0 / (1 << sobolBits)
		for n := uint32(0); ; n++ {
			c := uint(bits.TrailingZeros32(^n))
			if c >= sobolBits {
				return // 2^32 points exhausted
			}
			p := make([]float64, dim)
			for d := range x {
				x[d] ^= dirs[d][c]
				p[d] = float64(x[d]) * scale
			}
			if !yield(p) {
				return
			}
		}
	}
}
