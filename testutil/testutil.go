// Package testutil provides deterministic generators for codec tests:
// seeded random values, random raw bit patterns (which cover NaN payloads
// and subnormals far better than uniform values do), and the canonical
// special-value ladders.
package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG is a seeded random generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Slice returns n pseudo-random values in [-1, 1).
func (r *RNG) Float64Slice(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()*2 - 1
	}
	return out
}

// Float32Slice returns n pseudo-random values in [-1, 1).
func (r *RNG) Float32Slice(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rand.Float32()*2 - 1
	}
	return out
}

// BitPatterns64 returns n float64 values built from uniformly random bit
// patterns. Roughly 1 in 2048 of these is a NaN or infinity and a similar
// share is subnormal, so slices of a few thousand exercise every class.
func (r *RNG) BitPatterns64(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(r.rand.Uint64())
	}
	return out
}

// BitPatterns32 returns n float32 values built from uniformly random bit
// patterns.
func (r *RNG) BitPatterns32(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(uint32(r.rand.Uint64()))
	}
	return out
}

// Specials64 returns the canonical special-value ladder for binary64,
// already in totalOrder sequence: -NaN, -Inf, -1, -0, +0, +1, +Inf, +NaN,
// plus subnormal and extreme-normal boundaries.
func Specials64() []float64 {
	return []float64{
		math.Float64frombits(0xFFF8000000000000), // -quiet NaN
		math.Inf(-1),
		-math.MaxFloat64,
		-1.0,
		-math.SmallestNonzeroFloat64, // -minimum subnormal
		math.Copysign(0, -1),
		0.0,
		math.SmallestNonzeroFloat64,
		1.0,
		math.MaxFloat64,
		math.Inf(1),
		math.Float64frombits(0x7FF8000000000000), // +quiet NaN
	}
}

// Specials32 returns the canonical special-value ladder for binary32 in
// totalOrder sequence.
func Specials32() []float32 {
	return []float32{
		math.Float32frombits(0xFFC00000), // -quiet NaN
		float32(math.Inf(-1)),
		-math.MaxFloat32,
		-1.0,
		-math.SmallestNonzeroFloat32,
		float32(math.Copysign(0, -1)),
		0.0,
		math.SmallestNonzeroFloat32,
		1.0,
		math.MaxFloat32,
		float32(math.Inf(1)),
		math.Float32frombits(0x7FC00000), // +quiet NaN
	}
}
