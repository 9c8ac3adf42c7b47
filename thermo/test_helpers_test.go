// SPDX-License-Identifier: MIT
// Package thermo_test contains fixtures shared by thermo tests.

package thermo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
)

// newRoundTripModel builds {A=1, B=0}, R1: A <-> B, law k1*A - k2*B,
// k1=2, k2=0.5, with extra reaction options (thermodynamic constants).
func newRoundTripModel(t *testing.T, opts ...core.ReactionOption) *core.Model {
	t.Helper()

	m := core.NewModel("roundtrip")
	for _, id := range []string{"A", "B"} {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	_, err := m.AddParameter("k1", 2.0)
	require.NoError(t, err)
	_, err = m.AddParameter("k2", 0.5)
	require.NoError(t, err)
	opts = append([]core.ReactionOption{
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
	}, opts...)
	_, err = m.AddReaction("R1", opts...)
	require.NoError(t, err)

	return m
}

// triangleEdge is one reaction of the A -> B -> C -> A triangle.
type triangleEdge struct {
	kf, kr     float64
	reversible bool
	keq        float64 // 0 = no thermodynamic constants
}

// newTriangleModel builds R1: A<->B, R2: B<->C, R3: C<->A with mass-action laws
// kfN*X - krN*Y and global parameters kfN, krN.
func newTriangleModel(t *testing.T, edges [3]triangleEdge) *core.Model {
	t.Helper()

	m := core.NewModel("triangle")
	species := []string{"A", "B", "C"}
	for _, id := range species {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	for n, e := range edges {
		from, to := species[n], species[(n+1)%3]
		kf, kr := "kf"+string(rune('1'+n)), "kr"+string(rune('1'+n))
		_, err := m.AddParameter(kf, e.kf)
		require.NoError(t, err)
		_, err = m.AddParameter(kr, e.kr)
		require.NoError(t, err)

		law := kf + "*" + from
		if e.reversible {
			law += " - " + kr + "*" + to
		}
		opts := []core.ReactionOption{
			core.WithReversible(e.reversible),
			core.WithKineticLaw(law),
			core.WithReactant(from, 1),
			core.WithProduct(to, 1),
		}
		if e.keq != 0 {
			opts = append(opts, core.WithThermoConstants(core.NumericConstant("K"+string(rune('1'+n)), e.keq), core.RateConstant{}))
		}
		_, err = m.AddReaction("R"+string(rune('1'+n)), opts...)
		require.NoError(t, err)
	}

	return m
}

// exchange is a reversible boundary reaction EmptySet <-> species (or the
// reverse direction when out is set) with local constants kf, kr.
type exchange struct {
	id, species string
	out         bool
	kf, kr      float64
}

// addExchange adds e to m with law kf_<id> - kr_<id>*species (inflow) or
// kf_<id>*species - kr_<id> (outflow).
func addExchange(t *testing.T, m *core.Model, e exchange) {
	t.Helper()

	kf, kr := "kf_"+e.id, "kr_"+e.id
	opts := []core.ReactionOption{
		core.WithReversible(true),
		core.WithLocalParameter(kf, e.kf),
		core.WithLocalParameter(kr, e.kr),
	}
	if e.out {
		opts = append(opts,
			core.WithReactant(e.species, 1),
			core.WithProduct(core.BoundarySpeciesID, 1),
			core.WithKineticLaw(kf+"*"+e.species+" - "+kr))
	} else {
		opts = append(opts,
			core.WithReactant(core.BoundarySpeciesID, 1),
			core.WithProduct(e.species, 1),
			core.WithKineticLaw(kf+" - "+kr+"*"+e.species))
	}
	_, err := m.AddReaction(e.id, opts...)
	require.NoError(t, err)
}

// newOpenChainModel builds IN: EmptySet <-> A, R1: A <-> B, OUT: B <-> EmptySet
// with local constants 10/1, 2/0.5 and 3/1. No closed cycle exists.
func newOpenChainModel(t *testing.T) *core.Model {
	t.Helper()

	m := core.NewModel("open-chain")
	for _, id := range []string{"A", "B"} {
		_, err := m.AddSpecies(id)
		require.NoError(t, err)
	}
	addExchange(t, m, exchange{id: "IN", species: "A", kf: 10, kr: 1})
	_, err := m.AddReaction("R1",
		core.WithReversible(true),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
		core.WithLocalParameter("kf1", 2),
		core.WithLocalParameter("kr1", 0.5),
		core.WithKineticLaw("kf1*A - kr1*B"))
	require.NoError(t, err)
	addExchange(t, m, exchange{id: "OUT", species: "B", out: true, kf: 3, kr: 1})

	return m
}
