package bitgen

// WELL512a, 16-word state, period 2^512-1 (Panneton, L'Ecuyer &
// Matsumoto; compact form due to Lomont).
type Well512 struct {
	state [16]uint32
	index uint32
}

// NewWell512 creates a WELL512a generator seeded with the given value.
func NewWell512(seed int64) *Well512 {
	g := &Well512{}
	g.Seed(seed)
	return g
}

// Seed expands the seed to fill the 16-word state.
func (g *Well512) Seed(seed int64) {
	ss := newSeedStream(seed)
	for i := range g.state {
		g.state[i] = ss.next32()
	}
	g.index = 0
}

// Uint32 advances the recurrence by one word.
func (g *Well512) Uint32() uint32 {
	a := g.state[g.index]
	c := g.state[(g.index+13)&15]
	b := a ^ c ^ (a << 16) ^ (c << 15)
	c = g.state[(g.index+9)&15]
	c ^= c >> 11
	a = b ^ c
	g.state[g.index] = a
	d := a ^ ((a << 5) & 0xda442d24)
	g.index = (g.index + 15) & 15
	a = g.state[g.index]
	g.state[g.index] = a ^ b ^ d ^ (a << 2) ^ (b << 18) ^ (c << 28)
	return g.state[g.index]
}

// Uint64 concatenates two 32-bit words, high word first.
func (g *Well512) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Well1024 is WELL1024a, 32-word state, period 2^1024-1.
type Well1024 struct {
	state [32]uint32
	index uint32
}

// NewWell1024 creates a WELL1024a generator seeded with the given value.
func NewWell1024(seed int64) *Well1024 {
	g := &Well1024{}
	g.Seed(seed)
	return g
}

// Seed expands the seed to fill the 32-word state.
func (g *Well1024) Seed(seed int64) {
	ss := newSeedStream(seed)
	for i := range g.state {
		g.state[i] = ss.next32()
	}
	g.index = 0
}

// Uint32 advances the recurrence by one word.
func (g *Well1024) Uint32() uint32 {
	// M1=3, M2=24, M3=10 per the reference parameterization.
	z0 := g.state[(g.index+31)&31]
	v1 := g.state[(g.index+3)&31]
	z1 := g.state[g.index] ^ (v1 ^ (v1 >> 8))
	v2 := g.state[(g.index+24)&31]
	v3 := g.state[(g.index+10)&31]
	z2 := (v2 ^ (v2 << 19)) ^ (v3 ^ (v3 << 14))
	g.state[g.index] = z1 ^ z2
	g.state[(g.index+31)&31] = (z0 ^ (z0 << 11)) ^ (z1 ^ (z1 << 7)) ^ (z2 ^ (z2 << 13))
	g.index = (g.index + 31) & 31
	return g.state[g.index]
}

// Uint64 concatenates two 32-bit words, high word first.
func (g *Well1024) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}
