// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: constructors and read-only getters for Model and its entities.
// Policy:
//   - No algorithms here; getters return copies of slices so callers cannot
//     alter model structure.
//   - Model getters take the read lock; entity getters need none (entities are
//     immutable after construction).

package core

// NewModel creates an empty Model with its own species and reaction allocators.
// Complexity: O(1).
func NewModel(id string) *Model {
	return &Model{
		id:            id,
		speciesByID:   make(map[string]*Species),
		reactionByID:  make(map[string]*Reaction),
		parameterByID: make(map[string]*Parameter),
		speciesIndex:  NewIndexAllocator(),
		reactionIndex: NewIndexAllocator(),
	}
}

// ID returns the model identifier.
func (m *Model) ID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.id
}

// Species returns the species in insertion (row) order.
// Complexity: O(N).
func (m *Model) Species() []*Species {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Species, len(m.species))
	copy(out, m.species)

	return out
}

// Reactions returns the reactions in insertion (column) order.
// Complexity: O(M).
func (m *Model) Reactions() []*Reaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Reaction, len(m.reactions))
	copy(out, m.reactions)

	return out
}

// Parameters returns the global parameters in insertion order.
func (m *Model) Parameters() []*Parameter {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Parameter, len(m.parameters))
	copy(out, m.parameters)

	return out
}

// Compartments returns the compartments in insertion order.
func (m *Model) Compartments() []*Compartment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Compartment, len(m.compartments))
	copy(out, m.compartments)

	return out
}

// FunctionDefinitions returns the function definitions in insertion order.
func (m *Model) FunctionDefinitions() []*FunctionDefinition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*FunctionDefinition, len(m.functionDefinitions))
	copy(out, m.functionDefinitions)

	return out
}

// SpeciesIDs returns species IDs in row order.
func (m *Model) SpeciesIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, len(m.species))
	for i, s := range m.species {
		ids[i] = s.id
	}

	return ids
}

// ReactionIDs returns reaction IDs in column order.
func (m *Model) ReactionIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, len(m.reactions))
	for j, r := range m.reactions {
		ids[j] = r.id
	}

	return ids
}

// SpeciesByID looks up a species. Complexity: O(1).
func (m *Model) SpeciesByID(id string) (*Species, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.speciesByID[id]

	return s, ok
}

// ReactionByID looks up a reaction. Complexity: O(1).
func (m *Model) ReactionByID(id string) (*Reaction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reactionByID[id]

	return r, ok
}

// ParameterByID looks up a global parameter. Complexity: O(1).
func (m *Model) ParameterByID(id string) (*Parameter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.parameterByID[id]

	return p, ok
}

// ---------- Species ----------

// ID returns the species identifier.
func (s *Species) ID() string { return s.id }

// Index returns the creation-order index (matrix row). Detached sentinels report -1.
func (s *Species) Index() int { return s.index }

// Name returns the optional display name.
func (s *Species) Name() string { return s.name }

// InitialConcentration returns the initial concentration.
func (s *Species) InitialConcentration() float64 { return s.initialConcentration }

// Compartment returns the compartment reference.
func (s *Species) Compartment() string { return s.compartment }

// Charge returns the species charge.
func (s *Species) Charge() float64 { return s.charge }

// Annotations returns a copy of the annotations.
func (s *Species) Annotations() []string { return cloneStrings(s.annotations) }

// IsBoundary reports whether the species is the "no species" sentinel.
func (s *Species) IsBoundary() bool { return s != nil && s.id == BoundarySpeciesID }

// BoundarySpecies returns a detached sentinel species, used when a reaction
// references BoundarySpeciesID in a model that does not declare it.
func BoundarySpecies() *Species { return &Species{id: BoundarySpeciesID, index: -1} }

// ---------- SpeciesReference ----------

// Species returns the referenced species (non-owning).
func (r *SpeciesReference) Species() *Species { return r.species }

// SpeciesID returns the ID of the referenced species.
func (r *SpeciesReference) SpeciesID() string { return r.species.id }

// Stoichiometry returns the (positive) stoichiometric coefficient.
func (r *SpeciesReference) Stoichiometry() float64 { return r.stoichiometry }

// ReactionID returns the ID of the owning reaction.
func (r *SpeciesReference) ReactionID() string { return r.reactionID }

// Role reports whether the reference is a reactant or a product.
func (r *SpeciesReference) Role() Role { return r.role }

// ---------- Parameter ----------

// NewParameter builds a validated Parameter.
func NewParameter(id string, value float64) (*Parameter, error) {
	if err := checkID(EntityParameter, id); err != nil {
		return nil, err
	}
	if err := checkFinite(EntityParameter, id, "value", value); err != nil {
		return nil, err
	}

	return &Parameter{id: id, value: value}, nil
}

// ID returns the parameter identifier.
func (p *Parameter) ID() string { return p.id }

// Value returns the parameter value.
func (p *Parameter) Value() float64 { return p.value }

// ---------- Compartment & FunctionDefinition ----------

// ID returns the compartment identifier.
func (c *Compartment) ID() string { return c.id }

// Size returns the compartment size.
func (c *Compartment) Size() float64 { return c.size }

// ID returns the function identifier.
func (f *FunctionDefinition) ID() string { return f.id }

// Formula returns the function body text.
func (f *FunctionDefinition) Formula() string { return f.formula }

// ---------- Reaction ----------

// ID returns the reaction identifier.
func (r *Reaction) ID() string { return r.id }

// Index returns the allocator index. Boundary reactions share the index of the
// next normal reaction.
func (r *Reaction) Index() int { return r.index }

// Reversible reports the reversibility flag.
func (r *Reaction) Reversible() bool { return r.reversible }

// KineticLaw returns the raw rate-law text.
func (r *Reaction) KineticLaw() string { return r.kineticLaw }

// KineticLawType returns the rate-law tag.
func (r *Reaction) KineticLawType() string { return r.kineticLawType }

// BoundaryCondition reports whether the reaction exchanges with the environment.
func (r *Reaction) BoundaryCondition() bool { return r.boundary }

// KineticForward returns the pinned forward kinetic constant, if any.
func (r *Reaction) KineticForward() RateConstant { return r.kineticForward }

// KineticReverse returns the pinned reverse kinetic constant, if any.
func (r *Reaction) KineticReverse() RateConstant { return r.kineticReverse }

// ThermoForward returns the thermodynamic forward constant, if any.
func (r *Reaction) ThermoForward() RateConstant { return r.thermoForward }

// ThermoReverse returns the thermodynamic reverse constant, if any.
func (r *Reaction) ThermoReverse() RateConstant { return r.thermoReverse }

// Kappa returns the reaction capacity κ.
func (r *Reaction) Kappa() float64 { return r.kappa }

// Annotations returns a copy of the annotations.
func (r *Reaction) Annotations() []string { return cloneStrings(r.annotations) }

// Reactants returns the reactant references in declaration order.
func (r *Reaction) Reactants() []*SpeciesReference {
	out := make([]*SpeciesReference, len(r.reactants))
	copy(out, r.reactants)

	return out
}

// Products returns the product references in declaration order.
func (r *Reaction) Products() []*SpeciesReference {
	out := make([]*SpeciesReference, len(r.products))
	copy(out, r.products)

	return out
}

// LocalParameters returns the reaction-scoped parameters in declaration order.
func (r *Reaction) LocalParameters() []*Parameter {
	out := make([]*Parameter, len(r.localParameters))
	copy(out, r.localParameters)

	return out
}

// LocalParameter looks up a reaction-scoped parameter. Complexity: O(#locals).
func (r *Reaction) LocalParameter(id string) (*Parameter, bool) {
	for _, p := range r.localParameters {
		if p.id == id {
			return p, true
		}
	}

	return nil, false
}
