// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
)

func TestAddSpecies_IndicesAndFields(t *testing.T) {
	m := core.NewModel("m")
	a, err := m.AddSpecies(SpeciesA,
		core.WithName("alpha"),
		core.WithInitialConcentration(2.5),
		core.WithCompartment("cell"),
		core.WithCharge(-1),
		core.WithSpeciesAnnotations("chebi:1"),
	)
	require.NoError(t, err)
	b, err := m.AddSpecies(SpeciesB)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, "alpha", a.Name())
	assert.Equal(t, 2.5, a.InitialConcentration())
	assert.Equal(t, "cell", a.Compartment())
	assert.Equal(t, -1.0, a.Charge())
	assert.Equal(t, []string{"chebi:1"}, a.Annotations())
	assert.Equal(t, []string{SpeciesA, SpeciesB}, m.SpeciesIDs())
}

func TestAddSpecies_Validation(t *testing.T) {
	m := core.NewModel("m")
	_, err := m.AddSpecies(SpeciesA)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   string
		opts []core.SpeciesOption
		want error
	}{
		{"EmptyID", "", nil, core.ErrEmptyID},
		{"Duplicate", SpeciesA, nil, core.ErrDuplicateID},
		{"NaNConcentration", "X", []core.SpeciesOption{core.WithInitialConcentration(math.NaN())}, core.ErrInvalidValue},
		{"InfCharge", "Y", []core.SpeciesOption{core.WithCharge(math.Inf(1))}, core.ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.AddSpecies(tc.id, tc.opts...)
			require.ErrorIs(t, err, tc.want)

			var verr *core.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, core.EntitySpecies, verr.Entity)
		})
	}
	assert.Len(t, m.Species(), 1, "failed adds must not register species")
}

func TestAddReaction_FieldsAndReferences(t *testing.T) {
	m := newToyModel(t)
	r, ok := m.ReactionByID(ReactionR1)
	require.True(t, ok)

	assert.True(t, r.Reversible())
	assert.Equal(t, "k1*A - k2*B", r.KineticLaw())
	assert.False(t, r.BoundaryCondition())
	assert.Equal(t, 0, r.Index())

	reactants := r.Reactants()
	require.Len(t, reactants, 1)
	assert.Equal(t, SpeciesA, reactants[0].SpeciesID())
	assert.Equal(t, 1.0, reactants[0].Stoichiometry())
	assert.Equal(t, ReactionR1, reactants[0].ReactionID())
	assert.Equal(t, core.RoleReactant, reactants[0].Role())

	products := r.Products()
	require.Len(t, products, 1)
	assert.Equal(t, core.RoleProduct, products[0].Role())

	// The reference points at the model's species, not a copy.
	a, _ := m.SpeciesByID(SpeciesA)
	assert.Same(t, a, reactants[0].Species())
}

func TestAddReaction_Constants(t *testing.T) {
	m := core.NewModel("m")
	_, err := m.AddSpecies(SpeciesA)
	require.NoError(t, err)

	r, err := m.AddReaction(ReactionR1,
		core.WithReactant(SpeciesA, 2),
		core.WithKineticConstants("kf", "kr"),
		core.WithThermoConstants(core.NumericConstant("Kf", 4), core.SymbolicConstant("Kr")),
		core.WithKappa(0.3),
		core.WithKineticLawType("mass_action"),
		core.WithLocalParameter("kf", 1),
		core.WithReactionAnnotations("ec:1.1.1.1"),
	)
	require.NoError(t, err)

	assert.Equal(t, "kf", r.KineticForward().Symbol)
	assert.False(t, r.KineticForward().HasValue())
	assert.True(t, r.ThermoForward().HasValue())
	assert.Equal(t, 4.0, r.ThermoForward().Value)
	assert.Equal(t, "Kr", r.ThermoReverse().Symbol)
	assert.Equal(t, 0.3, r.Kappa())
	assert.Equal(t, "mass_action", r.KineticLawType())
	assert.Equal(t, []string{"ec:1.1.1.1"}, r.Annotations())

	p, ok := r.LocalParameter("kf")
	require.True(t, ok)
	assert.Equal(t, 1.0, p.Value())
	_, ok = r.LocalParameter("missing")
	assert.False(t, ok)
}

func TestAddReaction_Validation(t *testing.T) {
	m := core.NewModel("m")
	_, err := m.AddSpecies(SpeciesA)
	require.NoError(t, err)
	_, err = m.AddReaction(ReactionR1, core.WithReactant(SpeciesA, 1))
	require.NoError(t, err)

	tests := []struct {
		name string
		id   string
		opts []core.ReactionOption
		want error
	}{
		{"EmptyID", "", nil, core.ErrEmptyID},
		{"Duplicate", ReactionR1, nil, core.ErrDuplicateID},
		{"UnknownSpecies", "Rx", []core.ReactionOption{core.WithProduct("Z", 1)}, core.ErrSpeciesNotFound},
		{"ZeroStoichiometry", "Rx", []core.ReactionOption{core.WithReactant(SpeciesA, 0)}, core.ErrInvalidValue},
		{"NegativeStoichiometry", "Rx", []core.ReactionOption{core.WithReactant(SpeciesA, -1)}, core.ErrInvalidValue},
		{"DuplicateLocal", "Rx", []core.ReactionOption{
			core.WithLocalParameter("k", 1), core.WithLocalParameter("k", 2),
		}, core.ErrDuplicateID},
		{"NaNLocal", "Rx", []core.ReactionOption{core.WithLocalParameter("k", math.NaN())}, core.ErrInvalidValue},
		{"NegativeKappa", "Rx", []core.ReactionOption{core.WithKappa(-1)}, core.ErrInvalidValue},
		{"InfThermo", "Rx", []core.ReactionOption{
			core.WithThermoConstants(core.NumericConstant("K", math.Inf(1)), core.RateConstant{}),
		}, core.ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.AddReaction(tc.id, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Equal(t, []string{ReactionR1}, m.ReactionIDs())

	// Failed adds must not consume an index.
	r, err := m.AddReaction("R2", core.WithReactant(SpeciesA, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Index())
}

func TestAddReaction_BoundaryIndexRewind(t *testing.T) {
	m := core.NewModel("m")
	_, err := m.AddSpecies(SpeciesA)
	require.NoError(t, err)
	_, err = m.AddSpecies(SpeciesB)
	require.NoError(t, err)

	r1, err := m.AddReaction(ReactionR1, core.WithReactant(SpeciesA, 1), core.WithProduct(SpeciesB, 1))
	require.NoError(t, err)
	ex1, err := m.AddReaction(ReactionEx, core.WithReactant(SpeciesA, 1), core.WithProduct(core.BoundarySpeciesID, 1))
	require.NoError(t, err)
	ex2, err := m.AddReaction("EX_B", core.WithReactant(core.BoundarySpeciesID, 1), core.WithProduct(SpeciesB, 1))
	require.NoError(t, err)
	r2, err := m.AddReaction(ReactionR2, core.WithReactant(SpeciesB, 1), core.WithProduct(SpeciesA, 1))
	require.NoError(t, err)

	assert.Equal(t, 0, r1.Index())
	assert.Equal(t, 1, r2.Index(), "normal indices stay contiguous across boundary reactions")
	assert.True(t, ex1.BoundaryCondition())
	assert.True(t, ex2.BoundaryCondition())
	assert.False(t, r2.BoundaryCondition())
	assert.Equal(t, 1, ex1.Index(), "boundary reaction keeps the allocator value seen before creation")
	assert.Equal(t, 1, ex2.Index())

	// Boundary reactions stay in the reaction sequence.
	assert.Equal(t, []string{ReactionR1, ReactionEx, "EX_B", ReactionR2}, m.ReactionIDs())

	// The sentinel is detached when the model does not declare it.
	sentinel := ex1.Products()[0].Species()
	assert.True(t, sentinel.IsBoundary())
	assert.Equal(t, -1, sentinel.Index())
}

func TestAddReaction_DeclaredSentinel(t *testing.T) {
	m := core.NewModel("m")
	_, err := m.AddSpecies(SpeciesA)
	require.NoError(t, err)
	empty, err := m.AddSpecies(core.BoundarySpeciesID)
	require.NoError(t, err)

	ex, err := m.AddReaction(ReactionEx, core.WithReactant(SpeciesA, 1), core.WithProduct(core.BoundarySpeciesID, 1))
	require.NoError(t, err)

	assert.True(t, ex.BoundaryCondition())
	assert.Same(t, empty, ex.Products()[0].Species())
}

func TestModel_GettersReturnCopies(t *testing.T) {
	m := newToyModel(t)

	species := m.Species()
	species[0] = nil
	assert.NotNil(t, m.Species()[0])

	reactions := m.Reactions()
	reactions[0] = nil
	assert.NotNil(t, m.Reactions()[0])

	r := m.Reactions()[0]
	refs := r.Reactants()
	refs[0] = nil
	assert.NotNil(t, r.Reactants()[0])
}

func TestModel_ParametersCompartmentsFunctions(t *testing.T) {
	m := newToyModel(t)

	_, err := m.AddParameter("k1", 3)
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	_, err = m.AddParameter("", 3)
	assert.ErrorIs(t, err, core.ErrEmptyID)

	p, ok := m.ParameterByID("k2")
	require.True(t, ok)
	assert.Equal(t, 0.5, p.Value())

	c, err := m.AddCompartment("cell", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.Size())
	_, err = m.AddCompartment("cell", 1)
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	_, err = m.AddCompartment("neg", -1)
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	f, err := m.AddFunctionDefinition("mm", "vmax*s/(km+s)")
	require.NoError(t, err)
	assert.Equal(t, "vmax*s/(km+s)", f.Formula())
	_, err = m.AddFunctionDefinition("mm", "x")
	assert.ErrorIs(t, err, core.ErrDuplicateID)

	assert.Len(t, m.Compartments(), 1)
	assert.Len(t, m.FunctionDefinitions(), 1)
	assert.Len(t, m.Parameters(), 2)
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "none", core.RoleNone.String())
	assert.Equal(t, "reactant", core.RoleReactant.String())
	assert.Equal(t, "product", core.RoleProduct.String())
	assert.Equal(t, "both", core.RoleBoth.String())
}
