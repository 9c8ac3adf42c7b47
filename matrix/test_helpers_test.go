// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic matrices and reaction networks for builders/kernels.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the generic
// (non-*Dense) code paths in kernels.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustRows reads any Matrix back into [][]float64.
func mustRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// newChainModel builds {A, B, C} with
//
//	R1: A -> 2B (reversible)
//	R2: B + C -> A
//	EX: C -> EmptySet (boundary, detached sentinel)
func newChainModel(t *testing.T) *core.Model {
	t.Helper()
	m := core.NewModel("chain")
	for _, id := range []string{"A", "B", "C"} {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	_, err := m.AddReaction("R1", core.WithReversible(true),
		core.WithReactant("A", 1), core.WithProduct("B", 2))
	require.NoError(t, err)
	_, err = m.AddReaction("R2",
		core.WithReactant("B", 1), core.WithReactant("C", 1), core.WithProduct("A", 1))
	require.NoError(t, err)
	_, err = m.AddReaction("EX",
		core.WithReactant("C", 1), core.WithProduct(core.BoundarySpeciesID, 1))
	require.NoError(t, err)

	return m
}

// colSums returns the per-column sums of m as mᵀ·1.
func colSums(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	ones := make([]float64, m.Rows())
	for i := range ones {
		ones[i] = 1
	}
	sums, err := matrix.MatVec(mt, ones)
	require.NoError(t, err)

	return sums
}
