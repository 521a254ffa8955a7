package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Every image generation constructs its own instance, so concurrent
// runs never share generator state.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Uint8 returns a random channel value in [0, 255].
func (r *RNG) Uint8() uint8 {
	return uint8(r.r.IntN(256))
}

// FillBinary fills the buffer with 0/1 values, each alive with probability 0.5.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
