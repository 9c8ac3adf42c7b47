// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for Species and Reaction construction.
//
// Policy:
//   - Options only record intent; validation runs in AddSpecies / AddReaction so
//     that every failure surfaces as a *ValidationError with the entity ID attached.
//   - Options are applied left-to-right; later options win for scalar fields and
//     append for list fields (references, local parameters, annotations).

package core

// SpeciesOption configures a Species before it is added to a Model.
type SpeciesOption func(*Species)

// WithName sets the human-readable species name.
func WithName(name string) SpeciesOption {
	return func(s *Species) { s.name = name }
}

// WithInitialConcentration sets the initial concentration.
func WithInitialConcentration(c float64) SpeciesOption {
	return func(s *Species) { s.initialConcentration = c }
}

// WithCompartment sets the compartment reference.
func WithCompartment(id string) SpeciesOption {
	return func(s *Species) { s.compartment = id }
}

// WithCharge sets the species charge.
func WithCharge(z float64) SpeciesOption {
	return func(s *Species) { s.charge = z }
}

// WithSpeciesAnnotations appends free-form annotations.
func WithSpeciesAnnotations(a ...string) SpeciesOption {
	return func(s *Species) { s.annotations = append(s.annotations, a...) }
}

// ReactionOption configures a Reaction before it is added to a Model.
type ReactionOption func(*reactionSpec)

// refSpec is an unresolved species reference (species looked up by ID on add).
type refSpec struct {
	speciesID     string
	stoichiometry float64
}

// reactionSpec accumulates option values for AddReaction.
type reactionSpec struct {
	reversible     bool
	kineticLaw     string
	kineticLawType string
	locals         []Parameter
	reactants      []refSpec
	products       []refSpec
	annotations    []string

	kineticForward RateConstant
	kineticReverse RateConstant
	thermoForward  RateConstant
	thermoReverse  RateConstant
	kappa          float64
}

// WithReversible marks the reaction as reversible (default false).
func WithReversible(reversible bool) ReactionOption {
	return func(r *reactionSpec) { r.reversible = reversible }
}

// WithKineticLaw sets the raw rate-law expression text.
func WithKineticLaw(formula string) ReactionOption {
	return func(r *reactionSpec) { r.kineticLaw = formula }
}

// WithKineticLawType sets a free-form tag such as "mass_action".
func WithKineticLawType(tag string) ReactionOption {
	return func(r *reactionSpec) { r.kineticLawType = tag }
}

// WithLocalParameter declares a parameter scoped to the reaction.
func WithLocalParameter(id string, value float64) ReactionOption {
	return func(r *reactionSpec) { r.locals = append(r.locals, Parameter{id: id, value: value}) }
}

// WithReactant appends a consumed species with its stoichiometric coefficient.
func WithReactant(speciesID string, stoichiometry float64) ReactionOption {
	return func(r *reactionSpec) {
		r.reactants = append(r.reactants, refSpec{speciesID: speciesID, stoichiometry: stoichiometry})
	}
}

// WithProduct appends a produced species with its stoichiometric coefficient.
func WithProduct(speciesID string, stoichiometry float64) ReactionOption {
	return func(r *reactionSpec) {
		r.products = append(r.products, refSpec{speciesID: speciesID, stoichiometry: stoichiometry})
	}
}

// WithKineticConstants pins the parameter symbols used as forward and reverse
// kinetic rate constants. Empty strings leave the choice to rate-law analysis.
func WithKineticConstants(forward, reverse string) ReactionOption {
	return func(r *reactionSpec) {
		r.kineticForward = SymbolicConstant(forward)
		r.kineticReverse = SymbolicConstant(reverse)
	}
}

// WithPinnedKineticConstants pins the forward and reverse kinetic constants
// directly. A constant with a value is used as is; a symbolic one is looked up.
func WithPinnedKineticConstants(forward, reverse RateConstant) ReactionOption {
	return func(r *reactionSpec) {
		r.kineticForward = forward
		r.kineticReverse = reverse
	}
}

// WithThermoConstants sets the thermodynamic forward and reverse rate constants.
// Their ratio is the equilibrium constant of the reaction.
func WithThermoConstants(forward, reverse RateConstant) ReactionOption {
	return func(r *reactionSpec) {
		r.thermoForward = forward
		r.thermoReverse = reverse
	}
}

// WithKappa sets the reaction capacity κ of the thermokinetic formalism.
func WithKappa(kappa float64) ReactionOption {
	return func(r *reactionSpec) { r.kappa = kappa }
}

// WithReactionAnnotations appends free-form annotations.
func WithReactionAnnotations(a ...string) ReactionOption {
	return func(r *reactionSpec) { r.annotations = append(r.annotations, a...) }
}

// SymbolicConstant returns a RateConstant that must be resolved through the
// parameter tables.
func SymbolicConstant(symbol string) RateConstant {
	return RateConstant{Symbol: symbol}
}

// NumericConstant returns a RateConstant carrying its own value.
func NumericConstant(symbol string, value float64) RateConstant {
	return RateConstant{Symbol: symbol, Value: value, hasValue: true}
}

// HasValue reports whether the constant carries a numeric value.
func (c RateConstant) HasValue() bool { return c.hasValue }

// IsZero reports whether the constant was left unspecified.
func (c RateConstant) IsZero() bool { return c.Symbol == "" && !c.hasValue }
