// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/rxnet/core"
)

// Build turns a decoded document into a model.
//
// Entities are added in document order: compartments, species, parameters,
// functions, reactions. The first failure aborts the build.
//
// Errors:
//   - *core.ValidationError (errors.Is-compatible with the core sentinels).
func Build(doc *Network) (*core.Model, error) {
	if doc == nil {
		return nil, fmt.Errorf("Build: nil document: %w", ErrInvalidDocument)
	}
	id := doc.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	m := core.NewModel(id)

	for _, c := range doc.Compartments {
		if _, err := m.AddCompartment(c.ID, valueOr(c.Size, 1)); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	for _, s := range doc.Species {
		if _, err := m.AddSpecies(s.ID,
			core.WithName(s.Name),
			core.WithInitialConcentration(s.InitialConcentration),
			core.WithCompartment(s.Compartment),
			core.WithCharge(s.Charge),
			core.WithSpeciesAnnotations(s.Annotations...),
		); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	for _, p := range doc.Parameters {
		if _, err := m.AddParameter(p.ID, p.Value); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	for _, f := range doc.Functions {
		if _, err := m.AddFunctionDefinition(f.ID, f.Formula); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	for _, r := range doc.Reactions {
		if _, err := m.AddReaction(r.ID, reactionOptions(r)...); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// reactionOptions maps a document reaction onto core options.
func reactionOptions(r Reaction) []core.ReactionOption {
	opts := []core.ReactionOption{
		core.WithReversible(r.Reversible),
		core.WithKineticLaw(r.KineticLaw),
		core.WithKineticLawType(r.KineticLawType),
		core.WithKappa(r.Kappa),
		core.WithReactionAnnotations(r.Annotations...),
	}
	for _, ref := range r.Reactants {
		opts = append(opts, core.WithReactant(ref.Species, valueOr(ref.Stoichiometry, 1)))
	}
	for _, ref := range r.Products {
		opts = append(opts, core.WithProduct(ref.Species, valueOr(ref.Stoichiometry, 1)))
	}
	for _, p := range r.LocalParameters {
		opts = append(opts, core.WithLocalParameter(p.ID, p.Value))
	}
	if r.Kinetic != nil {
		opts = append(opts, core.WithPinnedKineticConstants(r.Kinetic.Forward.rate(), r.Kinetic.Reverse.rate()))
	}
	if r.Thermo != nil {
		opts = append(opts, core.WithThermoConstants(r.Thermo.Forward.rate(), r.Thermo.Reverse.rate()))
	}

	return opts
}

// rate converts a document constant; nil means unspecified.
func (c *Constant) rate() core.RateConstant {
	switch {
	case c == nil:
		return core.RateConstant{}
	case c.Value != nil:
		return core.NumericConstant(c.Symbol, *c.Value)
	default:
		return core.SymbolicConstant(c.Symbol)
	}
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}

// FromModel converts m back into its document form.
// Entities keep model order; the detached boundary sentinel is written by ID.
func FromModel(m *core.Model) (*Network, error) {
	if m == nil {
		return nil, fmt.Errorf("FromModel: %w", core.ErrNoModel)
	}
	doc := &Network{ID: m.ID()}
	for _, c := range m.Compartments() {
		size := c.Size()
		doc.Compartments = append(doc.Compartments, Compartment{ID: c.ID(), Size: &size})
	}
	for _, s := range m.Species() {
		doc.Species = append(doc.Species, Species{
			ID:                   s.ID(),
			Name:                 s.Name(),
			InitialConcentration: s.InitialConcentration(),
			Compartment:          s.Compartment(),
			Charge:               s.Charge(),
			Annotations:          s.Annotations(),
		})
	}
	for _, p := range m.Parameters() {
		doc.Parameters = append(doc.Parameters, Parameter{ID: p.ID(), Value: p.Value()})
	}
	for _, f := range m.FunctionDefinitions() {
		doc.Functions = append(doc.Functions, Function{ID: f.ID(), Formula: f.Formula()})
	}
	for _, r := range m.Reactions() {
		doc.Reactions = append(doc.Reactions, fromReaction(r))
	}

	return doc, nil
}

func fromReaction(r *core.Reaction) Reaction {
	out := Reaction{
		ID:             r.ID(),
		Reversible:     r.Reversible(),
		KineticLaw:     r.KineticLaw(),
		KineticLawType: r.KineticLawType(),
		Kappa:          r.Kappa(),
		Annotations:    r.Annotations(),
		Kinetic:        fromPair(r.KineticForward(), r.KineticReverse()),
		Thermo:         fromPair(r.ThermoForward(), r.ThermoReverse()),
	}
	for _, ref := range r.Reactants() {
		out.Reactants = append(out.Reactants, fromReference(ref))
	}
	for _, ref := range r.Products() {
		out.Products = append(out.Products, fromReference(ref))
	}
	for _, p := range r.LocalParameters() {
		out.LocalParameters = append(out.LocalParameters, Parameter{ID: p.ID(), Value: p.Value()})
	}

	return out
}

func fromReference(ref *core.SpeciesReference) Reference {
	out := Reference{Species: ref.SpeciesID()}
	if st := ref.Stoichiometry(); st != 1 {
		out.Stoichiometry = &st
	}

	return out
}

func fromPair(fwd, rev core.RateConstant) *ConstantPair {
	if fwd.IsZero() && rev.IsZero() {
		return nil
	}

	return &ConstantPair{Forward: fromConstant(fwd), Reverse: fromConstant(rev)}
}

func fromConstant(c core.RateConstant) *Constant {
	if c.IsZero() {
		return nil
	}
	out := &Constant{Symbol: c.Symbol}
	if c.HasValue() {
		v := c.Value
		out.Value = &v
	}

	return out
}
