package bitgen

import "math/bits"

// SplitMix is the splitmix64 generator: a Weyl sequence pushed through
// an avalanching finalizer. One word of state, trivially seedable.
type SplitMix struct {
	state uint64
}

// NewSplitMix creates a splitmix64 generator seeded with the given value.
func NewSplitMix(seed int64) *SplitMix {
	g := &SplitMix{}
	g.Seed(seed)
	return g
}

// Seed resets the Weyl counter.
func (g *SplitMix) Seed(seed int64) {
	g.state = mix64(uint64(seed))
}

// Uint64 advances the counter and finalizes it.
func (g *SplitMix) Uint64() uint64 {
	g.state += 0x9e3779b97f4a7c15
	return mix64(g.state)
}

// Lehmer is the 128-bit multiplicative Lehmer generator
// (lemire's lehmer64): state *= M, output the high 64 bits.
type Lehmer struct {
	hi uint64
	lo uint64
}

const lehmerMultiplier = 0xda942042e4dd58b5

// NewLehmer creates a lehmer64 generator seeded with the given value.
func NewLehmer(seed int64) *Lehmer {
	g := &Lehmer{}
	g.Seed(seed)
	return g
}

// Seed fills the 128-bit state from the seed. The state must be odd.
func (g *Lehmer) Seed(seed int64) {
	ss := newSeedStream(seed)
	g.hi = ss.next()
	g.lo = ss.next() | 1
}

// Uint64 multiplies the 128-bit state by the Lehmer constant and
// returns the high half.
func (g *Lehmer) Uint64() uint64 {
	carry, lo := bits.Mul64(g.lo, lehmerMultiplier)
	hi := g.hi*lehmerMultiplier + carry
	g.hi, g.lo = hi, lo
	return hi
}

// Taus is the three-component combined Tausworthe generator
// (L'Ecuyer taus88), operating on 32-bit words.
type Taus struct {
	s0 uint32
	s1 uint32
	s2 uint32
}

// NewTaus creates a taus88 generator seeded with the given value.
func NewTaus(seed int64) *Taus {
	g := &Taus{}
	g.Seed(seed)
	return g
}

// Seed expands the seed into three state words. Each component has a
// minimum-seed constraint (low bits of the word must not all be zero),
// so the expansion words are OR-ed with safe floors.
func (g *Taus) Seed(seed int64) {
	ss := newSeedStream(seed)
	g.s0 = ss.next32() | 0x10
	g.s1 = ss.next32() | 0x10
	g.s2 = ss.next32() | 0x20
}

// Uint32 advances the three shift registers and combines them.
func (g *Taus) Uint32() uint32 {
	g.s0 = ((g.s0 & 0xfffffffe) << 12) ^ (((g.s0 << 13) ^ g.s0) >> 19)
	g.s1 = ((g.s1 & 0xfffffff8) << 4) ^ (((g.s1 << 2) ^ g.s1) >> 25)
	g.s2 = ((g.s2 & 0xfffffff0) << 17) ^ (((g.s2 << 3) ^ g.s2) >> 11)
	return g.s0 ^ g.s1 ^ g.s2
}

// Uint64 concatenates two 32-bit words, high word first.
func (g *Taus) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}
