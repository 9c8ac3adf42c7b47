// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: model population (ingestion side). Every Add* validates its input
// completely before touching the catalogs, so a failed Add leaves the model
// and its index allocators unchanged.
//
// Concurrency:
//   - All Add* take the model write lock for their full duration.

package core

import (
	"fmt"
	"math"
)

// AddSpecies validates and appends a species; its index comes from the species allocator.
//
// Implementation:
//   - Stage 1: validate ID, uniqueness and numeric fields.
//   - Stage 2: allocate the index and register the species.
//
// Errors:
//   - *ValidationError wrapping ErrEmptyID, ErrDuplicateID or ErrInvalidValue.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func (m *Model) AddSpecies(id string, opts ...SpeciesOption) (*Species, error) {
	if err := checkID(EntitySpecies, id); err != nil {
		return nil, err
	}
	s := &Species{id: id}
	for _, opt := range opts {
		opt(s)
	}
	if err := checkFinite(EntitySpecies, id, "initial_concentration", s.initialConcentration); err != nil {
		return nil, err
	}
	if err := checkFinite(EntitySpecies, id, "charge", s.charge); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.speciesByID[id]; dup {
		return nil, invalid(EntitySpecies, id, "id", ErrDuplicateID)
	}
	s.index = m.speciesIndex.Next()
	m.species = append(m.species, s)
	m.speciesByID[id] = s

	return s, nil
}

// AddParameter validates and appends a global parameter.
func (m *Model) AddParameter(id string, value float64) (*Parameter, error) {
	p, err := NewParameter(id, value)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.parameterByID[id]; dup {
		return nil, invalid(EntityParameter, id, "id", ErrDuplicateID)
	}
	m.parameters = append(m.parameters, p)
	m.parameterByID[id] = p

	return p, nil
}

// AddCompartment validates and appends a compartment.
func (m *Model) AddCompartment(id string, size float64) (*Compartment, error) {
	if err := checkID(EntityCompartment, id); err != nil {
		return nil, err
	}
	if err := checkFinite(EntityCompartment, id, "size", size); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, invalid(EntityCompartment, id, "size", ErrInvalidValue)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.compartments {
		if c.id == id {
			return nil, invalid(EntityCompartment, id, "id", ErrDuplicateID)
		}
	}
	c := &Compartment{id: id, size: size}
	m.compartments = append(m.compartments, c)

	return c, nil
}

// AddFunctionDefinition validates and appends a function definition.
func (m *Model) AddFunctionDefinition(id, formula string) (*FunctionDefinition, error) {
	if err := checkID(EntityFunctionDefinition, id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.functionDefinitions {
		if f.id == id {
			return nil, invalid(EntityFunctionDefinition, id, "id", ErrDuplicateID)
		}
	}
	f := &FunctionDefinition{id: id, formula: formula}
	m.functionDefinitions = append(m.functionDefinitions, f)

	return f, nil
}

// AddReaction validates and appends a reaction.
//
// Implementation:
//   - Stage 1: apply options and validate ID, local parameters, constants and κ.
//   - Stage 2: under the write lock, resolve species references (the sentinel
//     BoundarySpeciesID resolves to the declared sentinel or a detached one).
//   - Stage 3: take an index: prior := Peek(), index := Next().
//   - Stage 4: boundary reactions reset their index to prior and Rewind(prior),
//     so indices of normal reactions stay contiguous.
//
// Errors:
//   - *ValidationError wrapping ErrEmptyID, ErrDuplicateID, ErrInvalidValue or
//     ErrSpeciesNotFound.
//
// Complexity:
//   - Time O(len(opts) + #refs + #locals²), Space O(#refs + #locals).
func (m *Model) AddReaction(id string, opts ...ReactionOption) (*Reaction, error) {
	if err := checkID(EntityReaction, id); err != nil {
		return nil, err
	}
	var spec reactionSpec
	for _, opt := range opts {
		opt(&spec)
	}
	if err := validateReactionSpec(id, &spec); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.reactionByID[id]; dup {
		return nil, invalid(EntityReaction, id, "id", ErrDuplicateID)
	}

	r := &Reaction{
		id:             id,
		reversible:     spec.reversible,
		kineticLaw:     spec.kineticLaw,
		kineticLawType: spec.kineticLawType,
		annotations:    spec.annotations,
		kineticForward: spec.kineticForward,
		kineticReverse: spec.kineticReverse,
		thermoForward:  spec.thermoForward,
		thermoReverse:  spec.thermoReverse,
		kappa:          spec.kappa,
	}
	for i := range spec.locals {
		p := spec.locals[i]
		r.localParameters = append(r.localParameters, &p)
	}

	var err error
	if r.reactants, err = m.resolveRefs(id, spec.reactants, RoleReactant); err != nil {
		return nil, err
	}
	if r.products, err = m.resolveRefs(id, spec.products, RoleProduct); err != nil {
		return nil, err
	}

	prior := m.reactionIndex.Peek()
	r.index = m.reactionIndex.Next()
	if hasBoundaryRef(r.reactants) || hasBoundaryRef(r.products) {
		r.boundary = true
		r.index = prior
		if err = m.reactionIndex.Rewind(prior); err != nil {
			return nil, fmt.Errorf("AddReaction(%q): %w", id, err)
		}
	}

	m.reactions = append(m.reactions, r)
	m.reactionByID[id] = r

	return r, nil
}

// resolveRefs binds refSpecs to species. Caller holds m.mu.
func (m *Model) resolveRefs(reactionID string, refs []refSpec, role Role) ([]*SpeciesReference, error) {
	out := make([]*SpeciesReference, 0, len(refs))
	for _, rs := range refs {
		s, ok := m.speciesByID[rs.speciesID]
		if !ok {
			if rs.speciesID != BoundarySpeciesID {
				return nil, &ValidationError{
					Entity: EntitySpeciesReference,
					ID:     reactionID,
					Field:  "species " + rs.speciesID,
					Err:    ErrSpeciesNotFound,
				}
			}
			s = BoundarySpecies()
		}
		out = append(out, &SpeciesReference{
			species:       s,
			stoichiometry: rs.stoichiometry,
			reactionID:    reactionID,
			role:          role,
		})
	}

	return out, nil
}

// validateReactionSpec checks option values that do not need the model.
func validateReactionSpec(id string, spec *reactionSpec) error {
	seen := make(map[string]struct{}, len(spec.locals))
	for _, p := range spec.locals {
		if p.id == "" {
			return invalid(EntityReaction, id, "local parameter id", ErrEmptyID)
		}
		if _, dup := seen[p.id]; dup {
			return invalid(EntityReaction, id, "local parameter "+p.id, ErrDuplicateID)
		}
		seen[p.id] = struct{}{}
		if err := checkFinite(EntityReaction, id, "local parameter "+p.id, p.value); err != nil {
			return err
		}
	}
	for _, refs := range [][]refSpec{spec.reactants, spec.products} {
		for _, rs := range refs {
			if rs.speciesID == "" {
				return invalid(EntitySpeciesReference, id, "species", ErrEmptyID)
			}
			if err := checkPositive(EntitySpeciesReference, id, "stoichiometry of "+rs.speciesID, rs.stoichiometry); err != nil {
				return err
			}
		}
	}
	constants := []struct {
		field string
		c     RateConstant
	}{
		{"kinetic forward constant", spec.kineticForward},
		{"kinetic reverse constant", spec.kineticReverse},
		{"thermodynamic forward constant", spec.thermoForward},
		{"thermodynamic reverse constant", spec.thermoReverse},
	}
	for _, kc := range constants {
		if kc.c.hasValue {
			if err := checkFinite(EntityReaction, id, kc.field, kc.c.Value); err != nil {
				return err
			}
		}
	}
	if math.IsNaN(spec.kappa) || math.IsInf(spec.kappa, 0) || spec.kappa < 0 {
		return invalid(EntityReaction, id, "kappa", ErrInvalidValue)
	}

	return nil
}

// hasBoundaryRef reports whether any reference targets the sentinel species.
func hasBoundaryRef(refs []*SpeciesReference) bool {
	for _, r := range refs {
		if r.species.IsBoundary() {
			return true
		}
	}

	return false
}
