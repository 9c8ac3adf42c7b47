// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Constructors attach context with %w and never panic.
//   - Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewSpecies indicates a size parameter below the constructor's minimum.
var ErrTooFewSpecies = errors.New("builder: too few species")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a model mutation failed or a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")
