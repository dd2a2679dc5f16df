package bitgen

import "math/rand/v2"

// PCG wraps the standard library's PCG-XSL-RR implementation behind the
// package's reseedable contract.
type PCG struct {
	pcg *rand.PCG
}

// NewPCG creates a PCG generator seeded with the given value.
func NewPCG(seed int64) *PCG {
	g := &PCG{pcg: rand.NewPCG(0, 0)}
	g.Seed(seed)
	return g
}

// Seed derives the two 64-bit PCG seed words from the single seed.
func (g *PCG) Seed(seed int64) {
	g.pcg.Seed(uint64(seed), mix64(uint64(seed)))
}

// Uint64 returns the next 64-bit draw.
func (g *PCG) Uint64() uint64 {
	return g.pcg.Uint64()
}
