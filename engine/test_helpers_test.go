// SPDX-License-Identifier: MIT

package engine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/engine"
)

// report is one captured Reporter call.
type report struct {
	level   engine.Level
	message string
}

// recorder is a Reporter that keeps every call.
type recorder struct {
	mu      sync.Mutex
	reports []report
}

func (r *recorder) Report(level engine.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report{level: level, message: message})
}

func (r *recorder) levels() []engine.Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.Level, len(r.reports))
	for i, rep := range r.reports {
		out[i] = rep.level
	}

	return out
}

// newRoundTripModel builds {A=1, B}, R1: A <-> B (k1*A - k2*B, k1=2, k2=0.5,
// K_eq=4) and R2: B -> EmptySet (irreversible, kd*B, kd=0.1).
func newRoundTripModel(t *testing.T) *core.Model {
	t.Helper()

	m := core.NewModel("roundtrip")
	_, err := m.AddSpecies("A", core.WithInitialConcentration(1))
	require.NoError(t, err)
	_, err = m.AddSpecies("B")
	require.NoError(t, err)
	for id, v := range map[string]float64{"k1": 2, "k2": 0.5, "kd": 0.1} {
		_, err = m.AddParameter(id, v)
		require.NoError(t, err)
	}
	_, err = m.AddReaction("R1",
		core.WithReversible(true),
		core.WithKineticLaw("k1*A - k2*B"),
		core.WithReactant("A", 1),
		core.WithProduct("B", 1),
		core.WithThermoConstants(core.NumericConstant("K1", 4), core.RateConstant{}),
	)
	require.NoError(t, err)
	_, err = m.AddReaction("R2",
		core.WithKineticLaw("kd*B"),
		core.WithReactant("B", 1),
		core.WithProduct(core.BoundarySpeciesID, 1),
	)
	require.NoError(t, err)

	return m
}
