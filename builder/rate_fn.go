// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// rate_fn.go - rate constant distributions.
//
// Contract:
//   - Every RateFn returns a strictly positive finite value.
//   - A nil rng falls back to DefaultRate, so deterministic builds need no seed.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultRate is the constant returned by DefaultRateFn.
const DefaultRate float64 = 1

// RateFn draws one rate constant.
type RateFn func(rng *rand.Rand) float64

// DefaultRateFn always returns DefaultRate.
func DefaultRateFn(_ *rand.Rand) float64 {
	return DefaultRate
}

// ConstantRateFn returns value on every call. Panics unless value > 0.
func ConstantRateFn(value float64) RateFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantRateFn: value must be > 0 and finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformRateFn samples U[min,max]. Panics unless 0 < min ≤ max.
func UniformRateFn(min, max float64) RateFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformRateFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRate
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// LogUniformRateFn samples exp(U[ln min, ln max]), spreading constants over
// orders of magnitude. Panics unless 0 < min ≤ max.
func LogUniformRateFn(min, max float64) RateFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("LogUniformRateFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	lo, hi := math.Log(min), math.Log(max)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRate
		}
		if max == min {
			return min
		}
		return math.Exp(lo + rng.Float64()*(hi-lo))
	}
}
