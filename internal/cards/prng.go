package cards

// rng is a mulberry32 stream. Cards must regenerate bit-identically from
// (seed, player ID) across reconnects and server restarts within a round, so
// the exact algorithm is load-bearing and not interchangeable with math/rand.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	return &rng{state: seed}
}

// next returns the next value in [0, 1).
func (r *rng) next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// intn returns a value in [0, n).
func (r *rng) intn(n int) int {
	return int(r.next() * float64(n))
}

// hashString folds a player identity into 32 bits for seeding.
func hashString(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}
