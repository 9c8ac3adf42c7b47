// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// options.go - BuilderOption constructors. Invalid arguments panic here so
// that constructors only deal with runtime errors.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption mutates a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the species ID scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithDefaultIDs restores DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs uses SymbolIDFn ("A".."Z").
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs uses ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithReactionPrefix sets the prefix of generated reaction IDs.
// Panics unless prefix starts with a letter.
func WithReactionPrefix(prefix string) BuilderOption {
	if prefix == "" || !isLetter(prefix[0]) {
		panic(fmt.Sprintf("builder: WithReactionPrefix(%q)", prefix))
	}
	return func(c *builderConfig) {
		c.reactionPrefix = prefix
	}
}

// WithRand shares r across constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh deterministic source.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRateFn sets the rate constant distribution. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) {
		c.rateFn = fn
	}
}

// WithReversible makes generated reactions reversible.
func WithReversible(reversible bool) BuilderOption {
	return func(c *builderConfig) {
		c.reversible = reversible
	}
}

// WithThermo attaches K_eq_R = kf_R/kr_R to every reversible reaction.
func WithThermo(thermo bool) BuilderOption {
	return func(c *builderConfig) {
		c.thermo = thermo
	}
}

// WithInitialConcentration sets the initial concentration of new species.
// Panics on negative or non-finite values.
func WithInitialConcentration(v float64) BuilderOption {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: WithInitialConcentration(%g)", v))
	}
	return func(c *builderConfig) {
		c.concentration = v
	}
}
