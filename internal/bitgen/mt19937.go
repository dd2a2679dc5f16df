package bitgen

const (
	mtN       = 624
	mtM       = 397
	mtMatrixA = 0x9908b0df
	mtUpper   = 0x80000000
	mtLower   = 0x7fffffff
)

// MT19937 is the classic 32-bit Mersenne Twister.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates a Mersenne Twister seeded with the given value.
func NewMT19937(seed int64) *MT19937 {
	g := &MT19937{}
	g.Seed(seed)
	return g
}

// Seed resets the state using Knuth's multiplicative initialization.
func (g *MT19937) Seed(seed int64) {
	// Fold the 64-bit seed into the 32-bit init word.
	g.mt[0] = uint32(seed) ^ uint32(uint64(seed)>>32)
	for i := 1; i < mtN; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.mti = mtN
}

// Uint32 produces the next tempered 32-bit word.
func (g *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, mtMatrixA}

	if g.mti >= mtN {
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (g.mt[kk] & mtUpper) | (g.mt[kk+1] & mtLower)
			g.mt[kk] = g.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (g.mt[kk] & mtUpper) | (g.mt[kk+1] & mtLower)
			g.mt[kk] = g.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (g.mt[mtN-1] & mtUpper) | (g.mt[0] & mtLower)
		g.mt[mtN-1] = g.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		g.mti = 0
	}

	y = g.mt[g.mti]
	g.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}

// Uint64 concatenates two 32-bit words, high word first.
func (g *MT19937) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}
