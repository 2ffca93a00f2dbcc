package main

import (
	"math/rand/v2"
	"slices"
)

// RandWithSeed builds the deterministic session rng. Replaying a seed
// reproduces the trial order and the mask sequence of a session.
func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Shuffled returns a shuffled copy of values, the input stays untouched.
func Shuffled[T any](rng *rand.Rand, values []T) []T {
	values = slices.Clone(values)

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return values
}
