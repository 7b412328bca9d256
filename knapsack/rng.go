// Package knapsack - RNG utilities for instance generation.
//
// Policy:
//   - seed == 0 ⇒ a fresh seed is drawn, so runs are not reproducible
//     unless the caller pins a seed.
//   - seed != 0 ⇒ deterministic: same seed, same instances.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every trial derives its own
//     stream with DeriveRNG and never shares it.
package knapsack

import "math/rand"

// ResolveSeed returns seed unchanged when it is non-zero and a freshly drawn
// non-zero seed otherwise.
func ResolveSeed(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int63()
	}
	return seed
}

// NewRNG returns a *rand.Rand for seed under the ResolveSeed policy.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// deriveSeed gives trial number stream of a batch seeded with parent its
// own seed. Consecutive trial indices land on unrelated sequences, and the
// same (parent, stream) pair always yields the same instance.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates the independent stream number stream of parent.
// parent must already be resolved (non-zero) for the streams to be
// reproducible; a zero parent is resolved here.
//
// Usage:
//   - Call once per trial during setup, not in hot loops.
func DeriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(ResolveSeed(parent), stream)))
}

// uniform draws from the inclusive range r. r must be ordered.
func uniform(rng *rand.Rand, r Range) uint32 {
	return r.Min + uint32(rng.Int63n(int64(r.Max-r.Min)+1))
}
