// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// api.go: Constructor type, Build entry point and the vocabulary shapes.

package builder

import (
	"fmt"
	"strings"
)

// Constructor produces a vocabulary from a resolved config.
type Constructor func(cfg builderConfig) ([]string, error)

// Build resolves opts and runs c.
func Build(c Constructor, opts ...BuilderOption) ([]string, error) {
	return c(newBuilderConfig(opts...))
}

const (
	methodChain  = "Chain"
	methodLadder = "Ladder"
	methodRandom = "Random"
	minWords     = 1
)

// Chain returns n words made of the alphabet's first letter, of lengths 1..n.
// Consecutive words differ by one insertion, so the graph is a path.
func Chain(n int) Constructor {
	return func(cfg builderConfig) ([]string, error) {
		if n < minWords {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minWords, ErrTooFewWords)
		}
		letter := string(cfg.alphabet[0])
		out := make([]string, n)
		for i := range out {
			out[i] = strings.Repeat(letter, i+1)
		}

		return out, nil
	}
}

// Ladder returns from, the intermediate words, and to, changing the first
// differing rune on each step. from == to yields a single word.
func Ladder(from, to string) Constructor {
	return func(builderConfig) ([]string, error) {
		cur, dst := []rune(from), []rune(to)
		if len(cur) != len(dst) {
			return nil, fmt.Errorf("%s(%q, %q): %w", methodLadder, from, to, ErrLengthMismatch)
		}
		out := []string{from}
		for i := range cur {
			if cur[i] != dst[i] {
				cur[i] = dst[i]
				out = append(out, string(cur))
			}
		}

		return out, nil
	}
}

// Neighborhood returns w followed by every distinct word one substitution,
// insertion or deletion away from w over the alphabet, in generation order.
func Neighborhood(w string) Constructor {
	return func(cfg builderConfig) ([]string, error) {
		base := []rune(w)
		seen := map[string]struct{}{w: {}}
		out := []string{w}
		add := func(r []rune) {
			s := string(r)
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}

		// deletions
		for i := range base {
			add(append(append([]rune{}, base[:i]...), base[i+1:]...))
		}
		for _, letter := range cfg.alphabet {
			// substitutions
			for i := range base {
				r := append([]rune{}, base...)
				r[i] = letter
				add(r)
			}
			// insertions
			for i := 0; i <= len(base); i++ {
				r := make([]rune, 0, len(base)+1)
				r = append(r, base[:i]...)
				r = append(r, letter)
				r = append(r, base[i:]...)
				add(r)
			}
		}

		return out, nil
	}
}

// Random returns n words with lengths uniform in 1..maxLen over the alphabet.
// Requires WithSeed or WithRand.
func Random(n, maxLen int) Constructor {
	return func(cfg builderConfig) ([]string, error) {
		if n < minWords || maxLen < 1 {
			return nil, fmt.Errorf("%s: n=%d maxLen=%d: %w", methodRandom, n, maxLen, ErrTooFewWords)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		out := make([]string, n)
		r := make([]rune, maxLen)
		var k int
		for i := range out {
			k = 1 + cfg.rng.Intn(maxLen)
			for j := 0; j < k; j++ {
				r[j] = cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
			}
			out[i] = string(r[:k])
		}

		return out, nil
	}
}
