// SPDX-License-Identifier: MIT
// Package builder generates word vocabularies with known ladder structure,
// for tests, examples and benchmarks of word-ladder graphs.
//
// Constructors return a Constructor; Build runs it with a resolved config:
//
//	words, err := builder.Build(builder.Chain(100))
//	words, err := builder.Build(builder.Random(500, 4), builder.WithSeed(42))
//	words, err := builder.Build(builder.Ladder("cold", "warm"))
//	words, err := builder.Build(builder.Neighborhood("pan"), builder.WithAlphabet("ps"))
//
// Shapes:
//
//   - Chain(n):         x, xx, xxx, ...: a path graph of n words, one component.
//   - Ladder(from, to): equal-length words, one substitution per step, left to
//     right; the result is a path of Hamming(from, to)+1 words.
//   - Neighborhood(w):  w plus every one-edit variant over the alphabet;
//     every generated word is adjacent to w.
//   - Random(n, maxLen): n words of length 1..maxLen drawn from the alphabet
//     (duplicates possible); requires WithSeed or WithRand.
//
// Determinism: every constructor except Random is pure. Random is
// reproducible for a fixed seed.
package builder
