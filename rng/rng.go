// SPDX-License-Identifier: MIT
// Package: gossipsim/rng
//
// rng.go - random sources shared by the instability models, the protocol
// variants and the graph builder.
//
// Goals:
//   - Injectable: every stochastic component takes a Source, never a global.
//   - Determinism: FromSeed(seed) ⇒ identical draws for identical call order.
//   - Independence: Derive splits one trial seed into per-component streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The simulation is sequential; do not
//     share one Source across goroutines.
package rng

import (
	"math/rand"
	"time"
)

// Source is the minimal random surface the simulation consumes.
// *math/rand.Rand satisfies it.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0,1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0,n). Panics if n <= 0.
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Fresh returns a time-seeded *rand.Rand for production runs that do not ask
// for reproducibility.
func Fresh() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream id.
// If base==nil, defaultSeed is the parent. Otherwise base.Int63() is consumed
// once, so two Derive calls with the same stream id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// Bernoulli flips a coin that succeeds when the draw is <= p.
// p >= 1 always succeeds; p <= 0 succeeds only on an exact zero draw.
func Bernoulli(src Source, p float64) bool {
	return src.Float64() <= p
}

// ShuffleStrings performs an in-place shuffle of a using src.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleStrings(src Source, a []string) {
	if len(a) <= 1 {
		return
	}
	src.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}
