package bitgen

const (
	jdkMultiplier = 0x5deece66d
	jdkAddend     = 0xb
	jdkMask       = (1 << 48) - 1
)

// JDK is the 48-bit linear congruential generator used by
// java.util.Random. Kept for cross-runtime reproducibility of legacy
// simulation seeds.
type JDK struct {
	state uint64
}

// NewJDK creates a JDK generator seeded with the given value.
func NewJDK(seed int64) *JDK {
	g := &JDK{}
	g.Seed(seed)
	return g
}

// Seed applies the java.util.Random seed scramble.
func (g *JDK) Seed(seed int64) {
	g.state = (uint64(seed) ^ jdkMultiplier) & jdkMask
}

// next returns the top bits of the advanced 48-bit state.
func (g *JDK) next(bits uint) uint32 {
	g.state = (g.state*jdkMultiplier + jdkAddend) & jdkMask
	return uint32(g.state >> (48 - bits))
}

// Uint32 returns the next 32-bit draw.
func (g *JDK) Uint32() uint32 {
	return g.next(32)
}

// Uint64 concatenates two 32-bit draws, high word first.
func (g *JDK) Uint64() uint64 {
	hi := uint64(g.next(32))
	lo := uint64(g.next(32))
	return hi<<32 | lo
}
