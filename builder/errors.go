// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewWords indicates a size parameter below the constructor's minimum.
var ErrTooFewWords = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrLengthMismatch indicates Ladder endpoints of different lengths.
var ErrLengthMismatch = errors.New("builder: ladder endpoints differ in length")
