// SPDX-License-Identifier: MIT

package kinetics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/kinetics"
)

func TestKineticRateConstantsVector_RoundTrip(t *testing.T) {
	m := newToyModel(t)

	vec, err := kinetics.KineticRateConstantsVector(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0, 0.5}, vec)

	labels, err := kinetics.VectorLabels(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1:forward", "R1:reverse"}, labels)
}

func TestResolveReactionConstants_Detail(t *testing.T) {
	m := newToyModel(t)

	got, err := kinetics.ResolveReactionConstants(m)
	require.NoError(t, err)

	want := []kinetics.ReactionConstants{{
		ReactionID: "R1",
		Reversible: true,
		Forward:    kinetics.Constant{Symbol: "k1", Value: 2, Source: kinetics.SourceGlobal},
		Reverse:    &kinetics.Constant{Symbol: "k2", Value: 0.5, Source: kinetics.SourceGlobal},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveReactionConstants mismatch (-want +got):\n%s", diff)
	}
}

func TestKineticRateConstantsVector_LocalsOnly(t *testing.T) {
	m := core.NewModel("locals")
	mustSpecies(t, m, "A", 1)
	mustSpecies(t, m, "B", 0)
	mustReaction(t, m, "R1",
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithLocalParameter("k1", 2),
		core.WithLocalParameter("k2", 0.5),
	)
	mustReaction(t, m, "R2", core.WithKineticLaw("k3*B"), core.WithLocalParameter("k3", 4))

	vec, err := kinetics.KineticRateConstantsVector(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0.5, 4}, vec)

	labels, err := kinetics.VectorLabels(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1:forward", "R1:reverse", "R2:forward"}, labels)
}

func TestKineticRateConstantsVector_ReconcileConflict(t *testing.T) {
	m := core.NewModel("conflict")
	mustSpecies(t, m, "A", 1)
	mustSpecies(t, m, "B", 0)
	mustReaction(t, m, "R1", core.WithKineticLaw("k1*A"), core.WithLocalParameter("k1", 1))
	mustReaction(t, m, "R2", core.WithKineticLaw("k1*B"), core.WithLocalParameter("k1", 2))

	_, err := kinetics.KineticRateConstantsVector(m)
	assert.ErrorIs(t, err, kinetics.ErrLocalParameterConflict)
}

func TestResolveReactionConstants_LocalShadowsGlobal(t *testing.T) {
	m := core.NewModel("shadow")
	mustSpecies(t, m, "A", 1)
	mustSpecies(t, m, "B", 0)
	_, err := m.AddParameter("k1", 2)
	require.NoError(t, err)
	mustReaction(t, m, "R1", core.WithKineticLaw("k1*A"), core.WithLocalParameter("k1", 5))

	got, err := kinetics.ResolveReactionConstants(m)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, kinetics.Constant{Symbol: "k1", Value: 5, Source: kinetics.SourceLocal}, got[0].Forward)
	assert.Nil(t, got[0].Reverse)
}

func TestResolveReactionConstants_PinnedSymbols(t *testing.T) {
	m := newToyModel(t)
	_, err := m.AddReaction("R2",
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithKineticConstants("k2", "k1"),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	)
	require.NoError(t, err)

	vec, err := kinetics.KineticRateConstantsVector(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0.5, 0.5, 2}, vec)
}

func TestResolveReactionConstants_PinnedWithoutLaw(t *testing.T) {
	m := newToyModel(t)
	_, err := m.AddReaction("R2",
		core.WithKineticConstants("k1", ""),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	)
	require.NoError(t, err)

	vec, err := kinetics.KineticRateConstantsVector(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0.5, 2}, vec)
}

func TestResolveReactionConstants_SpeciesAreNotConstants(t *testing.T) {
	m := newToyModel(t)
	_, err := m.AddReaction("R2",
		core.WithKineticLaw("A*k2"),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	)
	require.NoError(t, err)

	got, err := kinetics.ResolveReactionConstants(m)
	require.NoError(t, err)
	assert.Equal(t, "k2", got[1].Forward.Symbol)
}

func TestResolveReactionConstants_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []core.ReactionOption
		wantErr error
	}{
		{"UnknownSymbol", []core.ReactionOption{core.WithKineticLaw("kx*A")}, kinetics.ErrUnresolvedConstant},
		{"NoNegativeTerm", []core.ReactionOption{core.WithReversible(true), core.WithKineticLaw("k1*A")}, kinetics.ErrUnresolvedConstant},
		{"EmptyLaw", nil, kinetics.ErrUnresolvedConstant},
		{"UnknownPinned", []core.ReactionOption{core.WithKineticConstants("kz", "")}, kinetics.ErrUnresolvedConstant},
		{"ParseError", []core.ReactionOption{core.WithKineticLaw("k1*(A")}, kinetics.ErrExpressionParse},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := newToyModel(t)
			mustReaction(t, m, "R2", tc.opts...)

			_, err := kinetics.ResolveReactionConstants(m)
			assert.ErrorIs(t, err, tc.wantErr)
			_, err = kinetics.KineticRateConstantsVector(m)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestKinetics_NoModel(t *testing.T) {
	_, err := kinetics.ResolveReactionConstants(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)
	_, err = kinetics.KineticRateConstantsVector(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)
	_, err = kinetics.VectorLabels(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)
	_, err = kinetics.Rates(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)
}

func TestResolveReactionConstants_NoReactions(t *testing.T) {
	m := core.NewModel("empty")
	_, err := kinetics.ResolveReactionConstants(m)
	assert.ErrorIs(t, err, core.ErrEmptyList)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "pinned", kinetics.SourcePinned.String())
	assert.Equal(t, "local", kinetics.SourceLocal.String())
	assert.Equal(t, "global", kinetics.SourceGlobal.String())
}

func TestResolveReactionConstants_PinnedValues(t *testing.T) {
	m := newToyModel(t)
	_, err := m.AddReaction("R2",
		core.WithReversible(true),
		core.WithPinnedKineticConstants(core.NumericConstant("kf", 3), core.SymbolicConstant("k2")),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	)
	require.NoError(t, err)

	got, err := kinetics.ResolveReactionConstants(m)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, kinetics.Constant{Symbol: "kf", Value: 3, Source: kinetics.SourcePinned}, got[1].Forward)
	require.NotNil(t, got[1].Reverse)
	assert.Equal(t, kinetics.Constant{Symbol: "k2", Value: 0.5, Source: kinetics.SourceGlobal}, *got[1].Reverse)
}
