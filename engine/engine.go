// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: model slot and public queries.
//
// Policy:
//   - Queries never mutate the model and never cache results.
//   - Every failure is reported at LevelError and returned wrapped as
//     "Engine.<Op>: <cause>"; sentinels stay reachable through errors.Is.

package engine

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/kinetics"
	"github.com/katalvlaran/rxnet/matrix"
	"github.com/katalvlaran/rxnet/thermo"
)

// Engine answers queries about the loaded model.
type Engine struct {
	mu    sync.RWMutex
	model *core.Model
	opts  Options
}

// New returns an Engine with no model loaded.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Load replaces the current model with m.
// Errors: core.ErrNoModel when m is nil (the previous model stays loaded).
func (e *Engine) Load(m *core.Model) error {
	if m == nil {
		return e.fail("Load", core.ErrNoModel)
	}
	e.mu.Lock()
	e.model = m
	e.mu.Unlock()

	e.opts.reporter.Report(LevelInfo, fmt.Sprintf("loaded model %q: %d species, %d reactions",
		m.ID(), len(m.Species()), len(m.Reactions())))

	return nil
}

// Unload drops the current model.
func (e *Engine) Unload() {
	e.mu.Lock()
	e.model = nil
	e.mu.Unlock()
}

// Loaded reports whether a model is loaded.
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.model != nil
}

// Model returns the loaded model.
func (e *Engine) Model() (*core.Model, error) {
	return query(e, "Model", func(m *core.Model) (*core.Model, error) { return m, nil })
}

// StoichiometricMatrix returns S (species × reactions).
func (e *Engine) StoichiometricMatrix() (*matrix.StoichiometricMatrix, error) {
	return query(e, "StoichiometricMatrix", func(m *core.Model) (*matrix.StoichiometricMatrix, error) {
		return matrix.NewStoichiometricMatrix(m)
	})
}

// ForwardStoichiometricMatrix returns F, the reactant-side magnitudes.
func (e *Engine) ForwardStoichiometricMatrix() (*matrix.StoichiometricMatrix, error) {
	return query(e, "ForwardStoichiometricMatrix", func(m *core.Model) (*matrix.StoichiometricMatrix, error) {
		return matrix.NewForwardStoichiometricMatrix(m)
	})
}

// ReverseStoichiometricMatrix returns R, the product-side magnitudes.
func (e *Engine) ReverseStoichiometricMatrix() (*matrix.StoichiometricMatrix, error) {
	return query(e, "ReverseStoichiometricMatrix", func(m *core.Model) (*matrix.StoichiometricMatrix, error) {
		return matrix.NewReverseStoichiometricMatrix(m)
	})
}

// StoichiometricPart returns the matrix selected by part.
func (e *Engine) StoichiometricPart(part matrix.Part) (*matrix.StoichiometricMatrix, error) {
	return query(e, "StoichiometricPart", func(m *core.Model) (*matrix.StoichiometricMatrix, error) {
		return matrix.NewStoichiometricPart(m, part)
	})
}

// RowNames returns the species IDs in matrix row order.
func (e *Engine) RowNames() ([]string, error) {
	return query(e, "RowNames", func(m *core.Model) ([]string, error) { return m.SpeciesIDs(), nil })
}

// ColumnNames returns the reaction IDs in matrix column order.
func (e *Engine) ColumnNames() ([]string, error) {
	return query(e, "ColumnNames", func(m *core.Model) ([]string, error) { return m.ReactionIDs(), nil })
}

// ElementInfo returns cell (i, j) of S with its labels and role.
// Errors: core.ErrNoModel, core.ErrEmptyList, matrix.ErrOutOfRange.
func (e *Engine) ElementInfo(i, j int) (matrix.Element, error) {
	return query(e, "ElementInfo", func(m *core.Model) (matrix.Element, error) {
		sm, err := matrix.NewStoichiometricMatrix(m)
		if err != nil {
			return matrix.Element{}, err
		}
		return sm.ElementInfo(i, j)
	})
}

// KineticRateConstantsVector returns [kf(R1), kr(R1) if reversible, ...].
func (e *Engine) KineticRateConstantsVector() ([]float64, error) {
	return query(e, "KineticRateConstantsVector", kinetics.KineticRateConstantsVector)
}

// KineticConstants returns the resolved constants with their symbols and sources.
func (e *Engine) KineticConstants() ([]kinetics.ReactionConstants, error) {
	return query(e, "KineticConstants", kinetics.ResolveReactionConstants)
}

// VectorLabels returns the labels aligned with KineticRateConstantsVector.
func (e *Engine) VectorLabels() ([]string, error) {
	return query(e, "VectorLabels", kinetics.VectorLabels)
}

// ThermoConversionMatrix returns the conversion matrix G.
func (e *Engine) ThermoConversionMatrix() (*thermo.Conversion, error) {
	return query(e, "ThermoConversionMatrix", thermo.ConversionMatrix)
}

// KineticThermoCompatibility checks the kinetic constants against
// thermodynamic closure with the engine's tolerances.
func (e *Engine) KineticThermoCompatibility() (*thermo.Verdict, error) {
	return query(e, "KineticThermoCompatibility", func(m *core.Model) (*thermo.Verdict, error) {
		return thermo.KineticThermoCompatibility(m, e.opts.thermo...)
	})
}

// CheckModelReversibility reports whether every reaction is reversible.
// The irreversible IDs are returned only when returnIrreversibles is set.
func (e *Engine) CheckModelReversibility(returnIrreversibles bool) (bool, []string, error) {
	type result struct {
		all   bool
		irrev []string
	}
	res, err := query(e, "CheckModelReversibility", func(m *core.Model) (result, error) {
		all, irrev, err := core.CheckReversibility(m)
		return result{all: all, irrev: irrev}, err
	})
	if err != nil {
		return false, nil, err
	}
	if !returnIrreversibles {
		return res.all, nil, nil
	}

	return res.all, res.irrev, nil
}

// Rates evaluates every rate law at the initial state.
func (e *Engine) Rates() ([]float64, error) {
	return query(e, "Rates", kinetics.Rates)
}

// query runs fn on the loaded model, reporting and wrapping failures.
func query[T any](e *Engine, op string, fn func(*core.Model) (T, error)) (T, error) {
	var zero T

	e.mu.RLock()
	m := e.model
	e.mu.RUnlock()
	if m == nil {
		return zero, e.fail(op, core.ErrNoModel)
	}

	out, err := fn(m)
	if err != nil {
		return zero, e.fail(op, err)
	}

	return out, nil
}

// fail reports err and returns it wrapped with op.
func (e *Engine) fail(op string, err error) error {
	err = fmt.Errorf("Engine.%s: %w", op, err)
	e.opts.reporter.Report(LevelError, err.Error())

	return err
}
