// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
)

// Common identifiers used across core tests.
const (
	SpeciesA = "A"
	SpeciesB = "B"
	SpeciesC = "C"

	ReactionR1 = "R1"
	ReactionR2 = "R2"
	ReactionR3 = "R3"
	ReactionEx = "EX_A"
)

// newToyModel builds {A, B}, R1: A <-> B with law k1*A - k2*B and globals k1, k2.
func newToyModel(t *testing.T) *core.Model {
	t.Helper()

	m := core.NewModel("toy")
	_, err := m.AddSpecies(SpeciesA, core.WithInitialConcentration(1))
	require.NoError(t, err)
	_, err = m.AddSpecies(SpeciesB)
	require.NoError(t, err)
	_, err = m.AddParameter("k1", 2.0)
	require.NoError(t, err)
	_, err = m.AddParameter("k2", 0.5)
	require.NoError(t, err)
	_, err = m.AddReaction(ReactionR1,
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithReactant(SpeciesA, 1),
		core.WithProduct(SpeciesB, 1),
	)
	require.NoError(t, err)

	return m
}
