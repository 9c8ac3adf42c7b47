// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/matrix"
)

func TestStoichiometricMatrix_Chain(t *testing.T) {
	m := newChainModel(t)

	s, err := matrix.NewStoichiometricMatrix(m)
	require.NoError(t, err)
	rows, cols := s.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols, "boundary reaction EX stays a column")
	assert.Equal(t, [][]float64{
		{-1, 1, 0},
		{2, -1, 0},
		{0, -1, -1},
	}, s.Mat.RawRows())
	assert.Equal(t, []string{"A", "B", "C"}, s.RowNames())
	assert.Equal(t, []string{"R1", "R2", "EX"}, s.ColumnNames())
	assert.Equal(t, matrix.PartFull, s.Part)
}

func TestStoichiometricMatrix_ForwardReverseDecomposition(t *testing.T) {
	m := newChainModel(t)

	s, err := matrix.NewStoichiometricMatrix(m)
	require.NoError(t, err)
	f, err := matrix.NewForwardStoichiometricMatrix(m)
	require.NoError(t, err)
	r, err := matrix.NewReverseStoichiometricMatrix(m)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 1, 1}}, f.Mat.RawRows())
	assert.Equal(t, [][]float64{{0, 1, 0}, {2, 0, 0}, {0, 0, 0}}, r.Mat.RawRows())

	diff, err := matrix.Sub(r.Mat, f.Mat)
	require.NoError(t, err)
	ok, err := matrix.AllClose(diff, s.Mat, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "S must equal R - F exactly")
}

func TestStoichiometricMatrix_ColumnSums(t *testing.T) {
	m := core.NewModel("sums")
	for _, id := range []string{"A", "B", "C"} {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	_, err := m.AddReaction("R1", core.WithReactant("A", 2), core.WithReactant("B", 1), core.WithProduct("C", 3))
	require.NoError(t, err)
	_, err = m.AddReaction("R2", core.WithReactant("C", 1.5), core.WithProduct("A", 0.5))
	require.NoError(t, err)

	f, err := matrix.NewForwardStoichiometricMatrix(m)
	require.NoError(t, err)
	r, err := matrix.NewReverseStoichiometricMatrix(m)
	require.NoError(t, err)

	fs := colSums(t, f.Mat)
	rs := colSums(t, r.Mat)
	assert.Equal(t, []float64{3, 1.5}, fs, "total reactant stoichiometry per reaction")
	assert.Equal(t, []float64{3, 0.5}, rs, "total product stoichiometry per reaction")
}

func TestStoichiometricMatrix_DeclaredSentinelRowIsZero(t *testing.T) {
	m := core.NewModel("sentinel")
	_, err := m.AddSpecies("A")
	require.NoError(t, err)
	_, err = m.AddSpecies(core.BoundarySpeciesID)
	require.NoError(t, err)
	_, err = m.AddReaction("IN", core.WithReactant(core.BoundarySpeciesID, 1), core.WithProduct("A", 1))
	require.NoError(t, err)

	s, err := matrix.NewStoichiometricMatrix(m)
	require.NoError(t, err)
	row, err := s.SpeciesRow(core.BoundarySpeciesID)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, row)
	col, err := s.ReactionColumn("IN")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, col)

	e, err := s.ElementInfo(1, 0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Element{Row: 1, Col: 0, Coefficient: 0, SpeciesID: core.BoundarySpeciesID, ReactionID: "IN", Role: core.RoleNone}, e)
}

func TestStoichiometricMatrix_ElementInfo(t *testing.T) {
	m := core.NewModel("autocatalytic")
	_, err := m.AddSpecies("A")
	require.NoError(t, err)
	_, err = m.AddSpecies("B")
	require.NoError(t, err)
	_, err = m.AddReaction("R1", core.WithReactant("A", 1), core.WithReactant("B", 1), core.WithProduct("A", 2))
	require.NoError(t, err)

	s, err := matrix.NewStoichiometricMatrix(m)
	require.NoError(t, err)

	e, err := s.ElementInfo(0, 0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Element{Row: 0, Col: 0, Coefficient: 1, SpeciesID: "A", ReactionID: "R1", Role: core.RoleBoth}, e)

	e, err = s.ElementInfo(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, e.Coefficient)
	assert.Equal(t, core.RoleReactant, e.Role)

	// Labels agree with ElementInfo for every cell.
	names, reactions := s.RowNames(), s.ColumnNames()
	for i := range names {
		for j := range reactions {
			e, err = s.ElementInfo(i, j)
			require.NoError(t, err)
			assert.Equal(t, names[i], e.SpeciesID)
			assert.Equal(t, reactions[j], e.ReactionID)
		}
	}

	_, err = s.ElementInfo(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = s.ElementInfo(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilMatrix *matrix.StoichiometricMatrix
	_, err = nilMatrix.ElementInfo(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStoichiometricMatrix_Errors(t *testing.T) {
	_, err := matrix.NewStoichiometricMatrix(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)
	_, err = matrix.NewReverseStoichiometricMatrix(nil)
	assert.ErrorIs(t, err, core.ErrNoModel)

	empty := core.NewModel("empty")
	_, err = matrix.NewForwardStoichiometricMatrix(empty)
	assert.ErrorIs(t, err, core.ErrEmptyList)

	_, err = empty.AddSpecies("A")
	require.NoError(t, err)
	_, err = matrix.NewStoichiometricMatrix(empty)
	assert.ErrorIs(t, err, core.ErrEmptyList, "species without reactions")

	s, err := matrix.NewStoichiometricMatrix(newChainModel(t))
	require.NoError(t, err)
	_, err = s.SpeciesRow("Z")
	assert.ErrorIs(t, err, matrix.ErrUnknownLabel)
	_, err = s.ReactionColumn("Z")
	assert.ErrorIs(t, err, matrix.ErrUnknownLabel)
}

func TestBuildDenseStoichiometry_UnknownSpecies(t *testing.T) {
	m := newChainModel(t)
	// Drop C from the row set: R2 and EX now reference an unknown species.
	species := m.Species()[:2]

	_, _, err := matrix.BuildDenseStoichiometry(species, m.Reactions(), matrix.PartFull, matrix.NewMatrixOptions())
	assert.ErrorIs(t, err, matrix.ErrUnknownLabel)

	dup := append(m.Species(), m.Species()[0])
	_, _, err = matrix.BuildDenseStoichiometry(dup, m.Reactions(), matrix.PartFull, matrix.NewMatrixOptions())
	assert.ErrorIs(t, err, core.ErrDuplicateID)
}

func TestNewStoichiometricPart(t *testing.T) {
	m := newChainModel(t)
	for _, name := range []string{"full", "forward", "reverse"} {
		part, ok := matrix.ParsePart(name)
		require.True(t, ok)
		sm, err := matrix.NewStoichiometricPart(m, part)
		require.NoError(t, err)
		assert.Equal(t, name, sm.Part.String())
	}
	_, ok := matrix.ParsePart("sideways")
	assert.False(t, ok)
}
