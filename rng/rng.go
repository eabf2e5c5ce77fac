// Package rng centralizes deterministic random generation for parcelopt's
// metaheuristics.
//
// Goals:
//   - Determinism: same seed => identical results across runs and platforms.
//   - Encapsulation: one RNG factory, no hidden time-based sources.
//   - Independent sub-streams: aco needs one RNG per ant so ants can run
//     concurrently without sharing a *rand.Rand (which is not
//     goroutine-safe) while still being reproducible. ga uses a single
//     FromSeed stream.
//
// Ported from the teacher library's tsp/rng.go helpers.
package rng

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand. seed == 0 maps to
// defaultSeed so a caller never accidentally gets a zero-entropy stream.
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche finalizer, so nearby stream IDs
// produce well-decorrelated sub-streams.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Sub returns an independent deterministic RNG stream derived from a base
// seed and a stream identifier (e.g. iteration*ants + antIndex). Callers
// use this to hand each concurrently-running ant/individual its own
// *rand.Rand without any shared mutable state.
func Sub(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(baseSeed, stream)))
}

// WeightedChoice samples an index in [0, len(weights)) proportionally to
// weights. If the total is at or below underflowThreshold, it falls back
// to a uniform distribution over all candidates instead of dividing by a
// near-zero denominator.
func WeightedChoice(r *rand.Rand, weights []float64, underflowThreshold float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= underflowThreshold {
		return r.Intn(len(weights))
	}

	x := r.Float64() * sum
	var cum float64
	for i, w := range weights {
		cum += w
		if x < cum {
			return i
		}
	}
	return len(weights) - 1
}
