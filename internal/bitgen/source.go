// Package bitgen holds the concrete pseudo-random bit generators behind
// the minimal contract the rest of the module consumes: produce 64
// random bits, reset state from a seed. Every implementation also
// satisfies math/rand/v2 rand.Source, so a generator can be handed
// directly to gonum's distuv samplers.
package bitgen

// Source is a reseedable stream of raw 64-bit draws.
type Source interface {
	Uint64() uint64
	Seed(seed int64)
}

// mix64 is the splitmix64 finalizer, used to expand a single int64 seed
// into as many well-distributed words as an algorithm's state needs.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// seedStream yields successive expansion words for a seed.
type seedStream struct {
	state uint64
}

func newSeedStream(seed int64) *seedStream {
	return &seedStream{state: uint64(seed)}
}

func (s *seedStream) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	return mix64(s.state)
}

func (s *seedStream) next32() uint32 {
	return uint32(s.next() >> 32)
}
