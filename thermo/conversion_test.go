// SPDX-License-Identifier: MIT

package thermo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/thermo"
)

func TestConversionMatrix_RoundTrip(t *testing.T) {
	conv, err := thermo.ConversionMatrix(newRoundTripModel(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"R1:forward", "R1:reverse"}, conv.RowLabels)
	assert.Equal(t, []string{"kappa:R1", "C:A", "C:B"}, conv.ColumnLabels)
	assert.Equal(t, [][]float64{{1, 1, 0}, {1, 0, 1}}, conv.G.RawRows())
	assert.Equal(t, []string{"R1"}, conv.ReactionIDs())

	r, c := conv.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestConversionMatrix_MixedReversibility(t *testing.T) {
	m := newTriangleModel(t, [3]triangleEdge{
		{kf: 1, kr: 1, reversible: true},
		{kf: 1, reversible: false},
		{kf: 1, kr: 1, reversible: true},
	})

	conv, err := thermo.ConversionMatrix(m)
	require.NoError(t, err)

	assert.Equal(t, []string{"R1:forward", "R1:reverse", "R2:forward", "R3:forward", "R3:reverse"}, conv.RowLabels)
	assert.Equal(t, [][]float64{
		// kR1 kR2 kR3 A  B  C
		{1, 0, 0, 1, 0, 0},
		{1, 0, 0, 0, 1, 0},
		{0, 1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 1},
		{0, 0, 1, 1, 0, 0},
	}, conv.G.RawRows())
}

func TestConversionMatrix_StoichiometryMagnitudes(t *testing.T) {
	m := core.NewModel("dimer")
	for _, id := range []string{"A", "A2"} {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	_, err := m.AddReaction("D", core.WithReversible(true), core.WithReactant("A", 2), core.WithProduct("A2", 1))
	require.NoError(t, err)

	conv, err := thermo.ConversionMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 0}, {1, 0, 1}}, conv.G.RawRows())
}

func TestConversionMatrix_Errors(t *testing.T) {
	_, err := thermo.ConversionMatrix(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)

	_, err = thermo.ConversionMatrix(core.NewModel("empty"))
	assert.ErrorIs(t, err, core.ErrEmptyList)
}

func TestConstraints(t *testing.T) {
	conv, err := thermo.ConversionMatrix(newRoundTripModel(t))
	require.NoError(t, err)
	cycles, err := thermo.Constraints(conv)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	tri := newTriangleModel(t, [3]triangleEdge{
		{kf: 1, kr: 1, reversible: true},
		{kf: 1, kr: 1, reversible: true},
		{kf: 1, kr: 1, reversible: true},
	})
	conv, err = thermo.ConversionMatrix(tri)
	require.NoError(t, err)
	cycles, err = thermo.Constraints(conv)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.InDeltaSlice(t, []float64{1, -1, 1, -1, 1, -1}, cycles[0].Vector, 1e-12)
	assert.Equal(t, []string{"R1", "R2", "R3"}, cycles[0].Reactions)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, cycles[0].Weights, 1e-12)

	_, err = thermo.Constraints(nil)
	assert.ErrorIs(t, err, thermo.ErrNilConversion)
}

func TestConstraints_IrreversibleBreaksCycle(t *testing.T) {
	tri := newTriangleModel(t, [3]triangleEdge{
		{kf: 1, kr: 1, reversible: true},
		{kf: 1, kr: 1, reversible: true},
		{kf: 1, reversible: false},
	})
	conv, err := thermo.ConversionMatrix(tri)
	require.NoError(t, err)

	cycles, err := thermo.Constraints(conv)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}
