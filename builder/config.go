// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	idFn           IDFn
	reactionPrefix string
	rng            *rand.Rand
	rateFn         RateFn
	reversible     bool
	thermo         bool
	concentration  float64
}

const (
	defaultReactionPrefix = "R"
	defaultConcentration  = 1.0
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:           DefaultIDFn,
		reactionPrefix: defaultReactionPrefix,
		rateFn:         DefaultRateFn,
		concentration:  defaultConcentration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rate draws one constant from the configured distribution.
func (c builderConfig) rate() float64 {
	return c.rateFn(c.rng)
}
