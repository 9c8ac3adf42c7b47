// SPDX-License-Identifier: MIT
// Package kinetics_test contains fixtures shared by kinetics tests.

package kinetics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
)

// newToyModel builds {A=1, B=0}, R1: A <-> B, law k1*A - k2*B, globals k1=2, k2=0.5.
func newToyModel(t *testing.T) *core.Model {
	t.Helper()

	m := core.NewModel("toy")
	mustSpecies(t, m, "A", 1)
	mustSpecies(t, m, "B", 0)
	_, err := m.AddParameter("k1", 2.0)
	require.NoError(t, err)
	_, err = m.AddParameter("k2", 0.5)
	require.NoError(t, err)
	_, err = m.AddReaction("R1",
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	)
	require.NoError(t, err)

	return m
}

// mustSpecies adds a species with the given initial concentration.
func mustSpecies(t *testing.T, m *core.Model, id string, c float64) {
	t.Helper()
	_, err := m.AddSpecies(id, core.WithInitialConcentration(c))
	require.NoError(t, err)
}

// mustReaction adds a reaction A -> B with the given options.
func mustReaction(t *testing.T, m *core.Model, id string, opts ...core.ReactionOption) {
	t.Helper()
	opts = append([]core.ReactionOption{core.WithReactant("A", 1), core.WithProduct("B", 1)}, opts...)
	_, err := m.AddReaction(id, opts...)
	require.NoError(t, err)
}
