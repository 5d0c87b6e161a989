// Package route - RNG utilities for the routing heuristics.
//
// This file centralizes deterministic random generation for routing.
//
// Goals:
//   - Determinism: same seed ⇒ identical routed circuits across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independent streams for multi-attempt routing via a SplitMix64 mix.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; each routing attempt
// derives its own stream.
package route

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style finalizer (canonical multipliers; strong bit
// diffusion). Multi-attempt routing uses it to give every attempt an
// independent, reproducible tie-break stream.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
