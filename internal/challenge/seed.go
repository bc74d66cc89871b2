package challenge

import "math/bits"

// Seeding algorithm v1. The constants below are part of the on-calendar
// contract: changing any of them changes every generated challenge, so they
// are versioned rather than tuned.
const (
	seedBasis uint32 = 0x9e3779b9
	seedPrime uint32 = 0x01000193
	seedRot          = 13
)

// Seed hashes s into a 32-bit generator seed. The hash is order-sensitive
// and mixes character by character, so nearby inputs ("2024-03-01easy" vs
// "2024-03-02easy") diverge immediately.
func Seed(s string) uint32 {
	h := seedBasis
	for _, b := range []byte(s) {
		h ^= uint32(b)
		h *= seedPrime
		h = bits.RotateLeft32(h, seedRot)
	}
	if h == 0 {
		// xorshift state must never be zero.
		h = seedBasis
	}
	return h
}

// RNG is a xorshift32 generator. Identical seeds yield identical draw
// sequences on every platform.
type RNG struct {
	state uint32
}

// NewRNG creates a generator from a non-zero seed produced by Seed.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = seedBasis
	}
	return &RNG{state: seed}
}

// Next advances the generator and returns the next 32-bit value.
func (r *RNG) Next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a draw in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Next() % uint32(n))
}

// Shuffle permutes n elements with Fisher-Yates, drawing from the
// generator stream. Consumes exactly n-1 draws, which makes the stream
// position after a shuffle part of the reproducibility contract.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
