package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Float64Source yields values in [0, 1). Both *RNG and *rand.Rand satisfy it.
type Float64Source interface {
	Float64() float64
}

// FillBernoulli sets each byte of buf to 1 with probability p and to 0
// otherwise. A p of 0 never sets a byte and a p of 1 always does.
func FillBernoulli(r Float64Source, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
