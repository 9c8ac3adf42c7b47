// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// api.go - public entry point.
//
// Contract:
//   - One orchestrator: BuildNetwork(id, bopts, cons...). Creates the model,
//     resolves cfg once, runs cons in order.
//   - Constructors compose: species already present are reused, reaction IDs
//     continue numbering from the reactions already in the model.
//   - Determinism: same options, seed and constructor order give identical models.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

// Constructor adds one topology to m using the resolved configuration.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(m *core.Model, cfg builderConfig) error

// BuildNetwork creates core.NewModel(id), resolves bopts and applies cons in order.
// The first constructor error is returned as "BuildNetwork: %w"; the partial
// model is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a rejected model mutation.
//   - Constructor sentinels (ErrTooFewSpecies, ErrInvalidProbability, ErrNeedRandSource).
func BuildNetwork(id string, bopts []BuilderOption, cons ...Constructor) (*core.Model, error) {
	m := core.NewModel(id)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return m, nil
}

// Apply runs cons against an existing model. On error m keeps the entities
// added before the failing step.
func Apply(m *core.Model, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: %w", core.ErrNoModel)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return err
		}
	}

	return nil
}
