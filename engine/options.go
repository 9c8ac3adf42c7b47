// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/rxnet/thermo"

// Option configures an Engine. Applied left to right; last writer wins.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	reporter Reporter
	thermo   []thermo.Option
}

// WithReporter sets the diagnostic sink. A nil reporter restores NopReporter.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r == nil {
			r = NopReporter{}
		}
		o.reporter = r
	}
}

// WithTolerance sets the log-space tolerance of KineticThermoCompatibility.
// Panics when tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	set := thermo.WithTolerance(tol)

	return func(o *Options) { o.thermo = append(o.thermo, set) }
}

// WithRankTolerance sets the pivot tolerance of the closure-constraint basis.
// Panics when tol is negative, NaN or Inf.
func WithRankTolerance(tol float64) Option {
	set := thermo.WithRankTolerance(tol)

	return func(o *Options) { o.thermo = append(o.thermo, set) }
}

func gatherOptions(user ...Option) Options {
	o := Options{reporter: NopReporter{}}
	for _, set := range user {
		set(&o)
	}

	return o
}
