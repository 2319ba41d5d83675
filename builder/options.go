// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// options.go: functional options for the builder package.
// Option constructors panic on meaningless input; constructors never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before a constructor runs.
type BuilderOption func(*builderConfig)

// WithAlphabet sets the letters used by generated words.
// Panics on an empty alphabet.
func WithAlphabet(letters string) BuilderOption {
	if letters == "" {
		panic("builder: WithAlphabet(\"\")")
	}
	return func(c *builderConfig) {
		c.alphabet = []rune(letters)
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
