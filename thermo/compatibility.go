// SPDX-License-Identifier: MIT
//
// File: compatibility.go
// Role: kinetic vs. thermodynamic compatibility verdict.
//
// Flow:
//   - resolve kinetic constants (kinetics.ResolveReactionConstants);
//   - resolve thermodynamic constants per reaction (numeric value, else
//     local then global parameter lookup of the symbol);
//   - rule 1 on every reversible reaction with thermodynamic constants;
//   - rule 2 on every closure constraint of G (boundary reactions excluded),
//     evaluated as W·ln k against W·ln K.

package thermo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/kinetics"
	"github.com/katalvlaran/rxnet/matrix"
)

// ViolationKind tells which rule a Violation breaks.
type ViolationKind int

const (
	// ViolationEquilibrium: ln(k⁺/k⁻) differs from ln K_eq for one reaction.
	ViolationEquilibrium ViolationKind = iota
	// ViolationCycle: a closure constraint is not met.
	ViolationCycle
)

// String returns a lowercase label of the kind.
func (k ViolationKind) String() string {
	if k == ViolationCycle {
		return "cycle"
	}

	return "equilibrium"
}

// MarshalText encodes the kind as its String form.
func (k ViolationKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Violation describes one failed check.
type Violation struct {
	Kind       ViolationKind `json:"kind"`
	Reactions  []string      `json:"reactions"`
	Weights    []float64     `json:"weights,omitempty"`
	KineticLog float64       `json:"kinetic_log"`
	ThermoLog  float64       `json:"thermo_log"`
}

// Verdict is the outcome of KineticThermoCompatibility.
type Verdict struct {
	Compatible bool        `json:"compatible"`
	Cycles     []Cycle     `json:"cycles"`
	Violations []Violation `json:"violations"`
}

// ViolatingReactions returns the union of reactions named by violations, in first-seen order.
func (v *Verdict) ViolatingReactions() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, vi := range v.Violations {
		for _, id := range vi.Reactions {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// KineticThermoCompatibility reports whether the kinetic constants of m are
// compatible with its thermodynamic constants and closure constraints.
//
// Errors:
//   - core.ErrNoModel if m is nil.
//   - core.ErrEmptyList if m has no species or no reactions.
//   - kinetics errors from constant resolution (ErrUnresolvedConstant, ...).
//   - kinetics.ErrUnresolvedConstant for a thermodynamic symbol without a value.
//   - ErrNonPositiveConstant when a constant whose logarithm is needed is <= 0.
func KineticThermoCompatibility(m *core.Model, opts ...Option) (*Verdict, error) {
	if m == nil {
		return nil, fmt.Errorf("KineticThermoCompatibility: %w", core.ErrNoModel)
	}
	o := gatherOptions(opts...)

	conv, err := ConversionMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("KineticThermoCompatibility: %w", err)
	}
	constants, err := kinetics.ResolveReactionConstants(m)
	if err != nil {
		return nil, fmt.Errorf("KineticThermoCompatibility: %w", err)
	}
	reactions := m.Reactions()

	// ln(k⁺/k⁻) and ln K_eq per reversible reaction.
	kinLog := make(map[string]float64, len(reactions))
	eqLog := make(map[string]float64, len(reactions))
	for j, r := range reactions {
		rc := constants[j]
		if rc.Reverse == nil {
			continue
		}
		if kinLog[r.ID()], err = logRatio(rc.Forward.Value, rc.Reverse.Value); err != nil {
			return nil, fmt.Errorf("KineticThermoCompatibility: reaction %q kinetic: %w", r.ID(), err)
		}
		lk, ok, err := equilibriumLog(m, r)
		if err != nil {
			return nil, fmt.Errorf("KineticThermoCompatibility: reaction %q thermodynamic: %w", r.ID(), err)
		}
		if ok {
			eqLog[r.ID()] = lk
		}
	}

	verdict := &Verdict{Violations: make([]Violation, 0)}

	// Rule 1: per-reaction equilibrium.
	for _, r := range reactions {
		lk, ok := eqLog[r.ID()]
		if !ok {
			continue
		}
		if math.Abs(kinLog[r.ID()]-lk) > o.tol {
			verdict.Violations = append(verdict.Violations, Violation{
				Kind:       ViolationEquilibrium,
				Reactions:  []string{r.ID()},
				KineticLog: kinLog[r.ID()],
				ThermoLog:  lk,
			})
		}
	}

	// Rule 2: closure constraints.
	if verdict.Cycles, err = Constraints(conv, opts...); err != nil {
		return nil, fmt.Errorf("KineticThermoCompatibility: %w", err)
	}
	cycleViolations, err := checkCycles(conv, constants, eqLog, verdict.Cycles, o.tol)
	if err != nil {
		return nil, fmt.Errorf("KineticThermoCompatibility: %w", err)
	}
	verdict.Violations = append(verdict.Violations, cycleViolations...)
	verdict.Compatible = len(verdict.Violations) == 0

	return verdict, nil
}

// checkCycles evaluates every closure constraint at once.
//
// With W the matrix of cycle vectors (one row per cycle, one column per row
// of G), the kinetic side is W·ln k and the thermodynamic side is W·ln K, where
// ln K carries ln K_eq on forward rows and 0 elsewhere. Since w(reverse) =
// −w(forward) for every reaction, W·ln k sums w·ln(k⁺/k⁻). The thermodynamic
// side counts only when every reaction of the cycle has K_eq, else it is 0.
func checkCycles(
	conv *Conversion,
	constants []kinetics.ReactionConstants,
	eqLog map[string]float64,
	cycles []Cycle,
	tol float64,
) ([]Violation, error) {
	out := make([]Violation, 0)
	if len(cycles) == 0 {
		return out, nil
	}

	kRows := conv.G.Rows()
	lnK := make([]float64, kRows)
	lnEq := make([]float64, kRows)
	for row, j := range conv.rowReaction {
		rc := constants[j]
		if rc.Reverse == nil {
			continue // irreversible rows carry zero weight in every cycle
		}
		v := rc.Forward.Value
		if conv.rowReverse[row] {
			v = rc.Reverse.Value
		} else if lk, ok := eqLog[conv.reactionIDs[j]]; ok {
			lnEq[row] = lk
		}
		if v <= 0 {
			return nil, fmt.Errorf("reaction %q: %v: %w", conv.reactionIDs[j], v, ErrNonPositiveConstant)
		}
		lnK[row] = math.Log(v)
	}

	vectors := make([][]float64, len(cycles))
	for c, cy := range cycles {
		vectors[c] = cy.Vector
	}
	w, err := matrix.NewDenseFromRows(vectors)
	if err != nil {
		return nil, err
	}
	sumKin, err := matrix.MatVec(w, lnK)
	if err != nil {
		return nil, err
	}
	sumEq, err := matrix.MatVec(w, lnEq)
	if err != nil {
		return nil, err
	}

	for c, cy := range cycles {
		if len(cy.Reactions) == 0 {
			continue
		}
		eq := sumEq[c]
		for _, id := range cy.Reactions {
			if _, ok := eqLog[id]; !ok {
				eq = 0
				break
			}
		}
		if math.Abs(sumKin[c]-eq) > tol {
			out = append(out, Violation{
				Kind:       ViolationCycle,
				Reactions:  append([]string(nil), cy.Reactions...),
				Weights:    append([]float64(nil), cy.Weights...),
				KineticLog: sumKin[c],
				ThermoLog:  eq,
			})
		}
	}

	return out, nil
}

// logRatio returns ln(a/b) for positive a and b.
func logRatio(a, b float64) (float64, error) {
	if a <= 0 {
		return 0, fmt.Errorf("%v: %w", a, ErrNonPositiveConstant)
	}
	if b <= 0 {
		return 0, fmt.Errorf("%v: %w", b, ErrNonPositiveConstant)
	}

	return math.Log(a) - math.Log(b), nil
}

// equilibriumLog returns ln K_eq of r and whether r carries thermodynamic constants.
// An absent reverse constant counts as 1.
func equilibriumLog(m *core.Model, r *core.Reaction) (float64, bool, error) {
	tf, tr := r.ThermoForward(), r.ThermoReverse()
	if tf.IsZero() {
		return 0, false, nil
	}
	fv, err := thermoValue(m, r, tf)
	if err != nil {
		return 0, false, err
	}
	rv := 1.0
	if !tr.IsZero() {
		if rv, err = thermoValue(m, r, tr); err != nil {
			return 0, false, err
		}
	}
	lk, err := logRatio(fv, rv)
	if err != nil {
		return 0, false, err
	}

	return lk, true, nil
}

// thermoValue resolves a thermodynamic constant: own value, else local, else global parameter.
func thermoValue(m *core.Model, r *core.Reaction, c core.RateConstant) (float64, error) {
	if c.HasValue() {
		return c.Value, nil
	}
	if p, ok := r.LocalParameter(c.Symbol); ok {
		return p.Value(), nil
	}
	if p, ok := m.ParameterByID(c.Symbol); ok {
		return p.Value(), nil
	}

	return 0, fmt.Errorf("%q: %w", c.Symbol, kinetics.ErrUnresolvedConstant)
}
