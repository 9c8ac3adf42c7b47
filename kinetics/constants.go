// SPDX-License-Identifier: MIT
//
// File: constants.go
// Role: forward/reverse rate-constant resolution and the kinetic vector.
//
// Resolution per reaction:
//   - pinned numeric constant → used as is;
//   - pinned symbol           → looked up (locals, then globals);
//   - otherwise               → first parameter symbol of the first term of the
//     required sign in the parsed rate law.
//
// The rate law is parsed only when some constant is not pinned.

package kinetics

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rxnet/core"
)

// Source tells where a resolved constant came from.
type Source int

const (
	// SourcePinned marks a numeric value carried by the reaction itself.
	SourcePinned Source = iota
	// SourceLocal marks a reaction-scoped parameter.
	SourceLocal
	// SourceGlobal marks a model-scoped (or reconciled) parameter.
	SourceGlobal
)

// String returns a lowercase label of the source.
func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceGlobal:
		return "global"
	default:
		return "pinned"
	}
}

// MarshalText encodes the source as its String form.
func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Constant is a resolved rate constant.
type Constant struct {
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	Source Source  `json:"source"`
}

// ReactionConstants holds the resolved constants of one reaction.
// Reverse is nil for irreversible reactions.
type ReactionConstants struct {
	ReactionID string    `json:"reaction"`
	Reversible bool      `json:"reversible"`
	Forward    Constant  `json:"forward"`
	Reverse    *Constant `json:"reverse,omitempty"`
}

// Direction labels used by VectorLabels.
const (
	LabelForward = "forward"
	LabelReverse = "reverse"
)

// ResolveReactionConstants resolves the forward (and, for reversible reactions,
// reverse) rate constant of every reaction, in reaction order.
//
// Errors:
//   - core.ErrNoModel if m is nil.
//   - core.ErrEmptyList if m has no reactions, or has neither global nor local parameters.
//   - ErrLocalParameterConflict if global reconstruction is ambiguous.
//   - ErrExpressionParse if a rate law that must be analysed does not parse.
//   - ErrUnresolvedConstant if no parameter matches.
func ResolveReactionConstants(m *core.Model) ([]ReactionConstants, error) {
	if m == nil {
		return nil, fmt.Errorf("ResolveReactionConstants: %w", core.ErrNoModel)
	}
	reactions := m.Reactions()
	if len(reactions) == 0 {
		return nil, fmt.Errorf("ResolveReactionConstants: reactions: %w", core.ErrEmptyList)
	}
	globals, err := globalTable(m)
	if err != nil {
		return nil, fmt.Errorf("ResolveReactionConstants: %w", err)
	}

	out := make([]ReactionConstants, 0, len(reactions))
	for _, r := range reactions {
		rc, err := resolveReaction(r, globals)
		if err != nil {
			return nil, fmt.Errorf("ResolveReactionConstants: reaction %q: %w", r.ID(), err)
		}
		out = append(out, rc)
	}

	return out, nil
}

// KineticRateConstantsVector returns [kf(R1), kr(R1) if reversible, kf(R2), ...]
// aligned with the reaction order of m. Errors as ResolveReactionConstants.
func KineticRateConstantsVector(m *core.Model) ([]float64, error) {
	constants, err := ResolveReactionConstants(m)
	if err != nil {
		return nil, fmt.Errorf("KineticRateConstantsVector: %w", err)
	}

	return Flatten(constants), nil
}

// Flatten lays resolved constants out as the kinetic vector.
func Flatten(constants []ReactionConstants) []float64 {
	out := make([]float64, 0, 2*len(constants))
	for _, rc := range constants {
		out = append(out, rc.Forward.Value)
		if rc.Reverse != nil {
			out = append(out, rc.Reverse.Value)
		}
	}

	return out
}

// VectorLabels returns the labels aligned with KineticRateConstantsVector:
// "R1:forward", "R1:reverse", "R2:forward", ...
func VectorLabels(m *core.Model) ([]string, error) {
	if m == nil {
		return nil, fmt.Errorf("VectorLabels: %w", core.ErrNoModel)
	}
	reactions := m.Reactions()
	out := make([]string, 0, 2*len(reactions))
	for _, r := range reactions {
		out = append(out, r.ID()+":"+LabelForward)
		if r.Reversible() {
			out = append(out, r.ID()+":"+LabelReverse)
		}
	}

	return out, nil
}

// resolveReaction resolves the constants of a single reaction.
func resolveReaction(r *core.Reaction, globals map[string]float64) (ReactionConstants, error) {
	rc := ReactionConstants{ReactionID: r.ID(), Reversible: r.Reversible()}
	lookup := func(symbol string) (Constant, bool) {
		if p, ok := r.LocalParameter(symbol); ok {
			return Constant{Symbol: symbol, Value: p.Value(), Source: SourceLocal}, true
		}
		if v, ok := globals[symbol]; ok {
			return Constant{Symbol: symbol, Value: v, Source: SourceGlobal}, true
		}

		return Constant{}, false
	}

	var law *RateLaw
	pinnedFwd, pinnedRev := r.KineticForward(), r.KineticReverse()
	if pinnedFwd.IsZero() || (r.Reversible() && pinnedRev.IsZero()) {
		if strings.TrimSpace(r.KineticLaw()) == "" {
			return rc, fmt.Errorf("no kinetic law and no pinned constant: %w", ErrUnresolvedConstant)
		}
		var err error
		if law, err = ParseRateLaw(r.KineticLaw()); err != nil {
			return rc, err
		}
	}

	fwd, err := resolveOne(LabelForward, pinnedFwd, law, 1, lookup)
	if err != nil {
		return rc, err
	}
	rc.Forward = fwd
	if !r.Reversible() {
		return rc, nil
	}
	rev, err := resolveOne(LabelReverse, pinnedRev, law, -1, lookup)
	if err != nil {
		return rc, err
	}
	rc.Reverse = &rev

	return rc, nil
}

// resolveOne resolves one direction. sign selects positive (+1) or negative (-1) terms.
func resolveOne(
	direction string,
	pinned core.RateConstant,
	law *RateLaw,
	sign int,
	lookup func(string) (Constant, bool),
) (Constant, error) {
	if pinned.HasValue() {
		return Constant{Symbol: pinned.Symbol, Value: pinned.Value, Source: SourcePinned}, nil
	}
	if pinned.Symbol != "" {
		c, ok := lookup(pinned.Symbol)
		if !ok {
			return Constant{}, fmt.Errorf("%s constant %q: %w", direction, pinned.Symbol, ErrUnresolvedConstant)
		}
		return c, nil
	}
	for _, t := range law.terms {
		if t.Sign != sign {
			continue
		}
		for _, s := range t.Symbols {
			if c, ok := lookup(s); ok {
				return c, nil
			}
		}
	}

	return Constant{}, fmt.Errorf("%s constant in %q: %w", direction, law.source, ErrUnresolvedConstant)
}
