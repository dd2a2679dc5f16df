package bitgen

// ISAAC is Bob Jenkins' ISAAC generator (32-bit words, 256-word state).
type ISAAC struct {
	mm  [256]uint32
	out [256]uint32
	aa  uint32
	bb  uint32
	cc  uint32
	idx int
}

// NewISAAC creates an ISAAC generator seeded with the given value.
func NewISAAC(seed int64) *ISAAC {
	g := &ISAAC{}
	g.Seed(seed)
	return g
}

// Seed expands the seed into the 256-word key and runs the standard
// golden-ratio initialization.
func (g *ISAAC) Seed(seed int64) {
	*g = ISAAC{}
	ss := newSeedStream(seed)
	for i := range g.out {
		g.out[i] = ss.next32()
	}

	var a, b, c, d, e, f, h, k uint32
	a, b, c, d = 0x9e3779b9, 0x9e3779b9, 0x9e3779b9, 0x9e3779b9
	e, f, h, k = 0x9e3779b9, 0x9e3779b9, 0x9e3779b9, 0x9e3779b9

	mix := func() {
		a ^= b << 11
		d += a
		b += c
		b ^= c >> 2
		e += b
		c += d
		c ^= d << 8
		f += c
		d += e
		d ^= e >> 16
		h += d
		e += f
		e ^= f << 10
		k += e
		f += h
		f ^= h >> 4
		a += f
		h += k
		h ^= k << 8
		b += h
		k += a
		k ^= a >> 9
		c += k
		a += b
	}

	for i := 0; i < 4; i++ {
		mix()
	}

	// Two passes so every bit of the key affects every bit of mm.
	for i := 0; i < 256; i += 8 {
		a += g.out[i]
		b += g.out[i+1]
		c += g.out[i+2]
		d += g.out[i+3]
		e += g.out[i+4]
		f += g.out[i+5]
		h += g.out[i+6]
		k += g.out[i+7]
		mix()
		g.mm[i], g.mm[i+1], g.mm[i+2], g.mm[i+3] = a, b, c, d
		g.mm[i+4], g.mm[i+5], g.mm[i+6], g.mm[i+7] = e, f, h, k
	}
	for i := 0; i < 256; i += 8 {
		a += g.mm[i]
		b += g.mm[i+1]
		c += g.mm[i+2]
		d += g.mm[i+3]
		e += g.mm[i+4]
		f += g.mm[i+5]
		h += g.mm[i+6]
		k += g.mm[i+7]
		mix()
		g.mm[i], g.mm[i+1], g.mm[i+2], g.mm[i+3] = a, b, c, d
		g.mm[i+4], g.mm[i+5], g.mm[i+6], g.mm[i+7] = e, f, h, k
	}

	g.generate()
}

// generate refills the 256-word output block.
func (g *ISAAC) generate() {
	g.cc++
	g.bb += g.cc
	for i := 0; i < 256; i++ {
		x := g.mm[i]
		switch i & 3 {
		case 0:
			g.aa ^= g.aa << 13
		case 1:
			g.aa ^= g.aa >> 6
		case 2:
			g.aa ^= g.aa << 2
		case 3:
			g.aa ^= g.aa >> 16
		}
		g.aa += g.mm[(i+128)&255]
		y := g.mm[(x>>2)&255] + g.aa + g.bb
		g.mm[i] = y
		g.bb = g.mm[(y>>10)&255] + x
		g.out[i] = g.bb
	}
	g.idx = 0
}

// Uint32 returns the next word, refilling the block when exhausted.
func (g *ISAAC) Uint32() uint32 {
	if g.idx >= 256 {
		g.generate()
	}
	v := g.out[g.idx]
	g.idx++
	return v
}

// Uint64 concatenates two 32-bit words, high word first.
func (g *ISAAC) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}
