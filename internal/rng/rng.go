// Package rng provides the deterministic random source shared by map
// generation, encounters and combat.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the game logic draws from.
// Tests substitute scripted sources to pin individual rolls.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// RNG wraps math/rand.Rand and counts draws so a run can be reproduced
// from its seed and position.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a deterministic RNG from a seed.
// A seed of 0 picks one from the clock.
func New(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a value in [0, n). Non-positive n yields 0 instead of
// panicking, so empty ranges such as rand[0,0) are a zero roll.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.pos++
	return r.src.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.pos++
	return r.src.Float64()
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Intn draws from src in [0, n), treating an empty range as 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.Intn(n)
}

// OneIn reports whether a 1-in-n roll succeeds. n <= 1 always succeeds.
func OneIn(src Source, n int) bool {
	if n <= 1 {
		return true
	}
	return src.Intn(n) == 0
}

// Range returns a value in [lo, hi).
func Range(src Source, lo, hi int) int {
	return lo + Intn(src, hi-lo)
}
