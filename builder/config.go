// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • alphabet = "abcdefghijklmnopqrstuvwxyz"
//   • rng      = nil (pure unless seeded)

package builder

import "math/rand"

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	alphabet []rune     // letters used for generated words
	rng      *rand.Rand // nil means "no randomness"
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{alphabet: []rune(defaultAlphabet)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
