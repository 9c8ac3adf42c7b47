// SPDX-License-Identifier: MIT

package kinetics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rxnet/core"
)

// Rates evaluates every rate law at the initial state of m, in reaction order.
//
// Bindings, later entries shadowing earlier ones:
//   - species initial concentrations and compartment sizes; the boundary
//     sentinel is 1 unless the model declares it;
//   - global parameters (reconstructed from locals when the model has none);
//   - the reaction's local parameters.
//
// Errors:
//   - core.ErrNoModel if m is nil.
//   - ErrLocalParameterConflict if global reconstruction is ambiguous.
//   - ErrExpressionParse for unparsable laws.
//   - ErrEvaluation for empty laws, unbound symbols and non-finite results.
func Rates(m *core.Model) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Rates: %w", core.ErrNoModel)
	}
	globals, err := globalTable(m)
	if errors.Is(err, core.ErrEmptyList) {
		globals, err = map[string]float64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Rates: %w", err)
	}

	base := make(map[string]float64)
	for _, s := range m.Species() {
		base[s.ID()] = s.InitialConcentration()
	}
	if _, ok := base[core.BoundarySpeciesID]; !ok {
		base[core.BoundarySpeciesID] = 1
	}
	for _, c := range m.Compartments() {
		base[c.ID()] = c.Size()
	}
	for id, v := range globals {
		base[id] = v
	}

	reactions := m.Reactions()
	out := make([]float64, 0, len(reactions))
	for _, r := range reactions {
		if strings.TrimSpace(r.KineticLaw()) == "" {
			return nil, fmt.Errorf("Rates: reaction %q: empty kinetic law: %w", r.ID(), ErrEvaluation)
		}
		law, err := ParseRateLaw(r.KineticLaw())
		if err != nil {
			return nil, fmt.Errorf("Rates: reaction %q: %w", r.ID(), err)
		}
		bindings := base
		if locals := r.LocalParameters(); len(locals) > 0 {
			bindings = make(map[string]float64, len(base)+len(locals))
			for k, v := range base {
				bindings[k] = v
			}
			for _, p := range locals {
				bindings[p.ID()] = p.Value()
			}
		}
		v, err := law.Evaluate(bindings)
		if err != nil {
			return nil, fmt.Errorf("Rates: reaction %q: %w", r.ID(), err)
		}
		out = append(out, v)
	}

	return out, nil
}
