// SPDX-License-Identifier: MIT

package kinetics

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

// ReconcileGlobalParameters synthesizes a global parameter list from the local
// parameters of reactions.
//
// The result is the union of all local parameters in reaction order, each
// keeping its value. A parameter ID declared by two or more distinct reactions
// is ambiguous and aborts reconciliation.
//
// Errors:
//   - ErrLocalParameterConflict if an ID repeats across reactions.
//   - core.ErrEmptyList if no reaction declares a local parameter.
//
// Complexity:
//   - Time O(L), Space O(L), L = total local parameters.
func ReconcileGlobalParameters(reactions []*core.Reaction) ([]*core.Parameter, error) {
	owner := make(map[string]string)
	out := make([]*core.Parameter, 0)
	for _, r := range reactions {
		for _, p := range r.LocalParameters() {
			if prev, seen := owner[p.ID()]; seen {
				return nil, fmt.Errorf("ReconcileGlobalParameters: %q declared by %q and %q: %w",
					p.ID(), prev, r.ID(), ErrLocalParameterConflict)
			}
			owner[p.ID()] = r.ID()
			gp, err := core.NewParameter(p.ID(), p.Value())
			if err != nil {
				return nil, fmt.Errorf("ReconcileGlobalParameters: %w", err)
			}
			out = append(out, gp)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ReconcileGlobalParameters: no local parameters: %w", core.ErrEmptyList)
	}

	return out, nil
}

// globalTable returns the model's global parameters by ID, reconstructed from
// local parameters when the model declares none.
func globalTable(m *core.Model) (map[string]float64, error) {
	params := m.Parameters()
	if len(params) == 0 {
		var err error
		if params, err = ReconcileGlobalParameters(m.Reactions()); err != nil {
			return nil, err
		}
	}
	table := make(map[string]float64, len(params))
	for _, p := range params {
		table[p.ID()] = p.Value()
	}

	return table, nil
}
