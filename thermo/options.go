// SPDX-License-Identifier: MIT

package thermo

import (
	"math"

	"github.com/katalvlaran/rxnet/matrix"
)

const (
	// DefaultTolerance is the absolute log-space tolerance of compatibility checks.
	DefaultTolerance = 1e-9

	// DefaultRankTolerance is the pivot tolerance for the constraint basis.
	DefaultRankTolerance = matrix.DefaultEpsilon
)

const (
	panicToleranceInvalid     = "thermo: WithTolerance: tol must be finite, non-negative"
	panicRankToleranceInvalid = "thermo: WithRankTolerance: tol must be finite, non-negative"
)

// Option configures the checker. Applied left to right; last writer wins.
type Option func(*Options)

// Options is the effective checker configuration.
type Options struct {
	tol     float64
	rankTol float64
}

// WithTolerance sets the absolute tolerance on log-space comparisons.
// Panics when tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithRankTolerance sets the pivot tolerance of the null-space computation.
// Panics when tol is negative, NaN or Inf.
func WithRankTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// Tolerance reports the effective log-space tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// RankTolerance reports the effective pivot tolerance.
func (o Options) RankTolerance() float64 { return o.rankTol }

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, rankTol: DefaultRankTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
