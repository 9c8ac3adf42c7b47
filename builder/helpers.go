// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// helpers.go - shared model mutations for the constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/rxnet/core"
)

// Parameter and constant prefixes of generated reactions.
const (
	ForwardRatePrefix = "kf_"
	ReverseRatePrefix = "kr_"
	EquilibriumPrefix = "Keq_"
	ExchangePrefix    = "EX_"
)

// ensureSpecies adds species idFn(0..n-1) that are not in m yet.
func ensureSpecies(method string, m *core.Model, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, ok := m.SpeciesByID(id); ok {
			continue
		}
		if _, err := m.AddSpecies(id, core.WithInitialConcentration(cfg.concentration)); err != nil {
			return fmt.Errorf("%s: AddSpecies(%s): %w: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// nextReactionID numbers reactions after those already in m.
func nextReactionID(m *core.Model, cfg builderConfig) string {
	return cfg.reactionPrefix + strconv.Itoa(len(m.Reactions())+1)
}

// massActionLaw returns the kinetic law of from → to with rate symbols kf and kr.
// A boundary side contributes no concentration factor; kr == "" drops the reverse term.
func massActionLaw(from, to, kf, kr string) string {
	law := kf
	if from != core.BoundarySpeciesID {
		law += "*" + from
	}
	if kr == "" {
		return law
	}
	law += " - " + kr
	if to != core.BoundarySpeciesID {
		law += "*" + to
	}

	return law
}

// addMassAction adds reaction id: from → to with unit stoichiometry, local
// rate parameters drawn from cfg.rateFn and, with WithThermo, K_eq = kf/kr.
func addMassAction(method string, m *core.Model, cfg builderConfig, id, from, to string) error {
	kfID := ForwardRatePrefix + id
	kf := cfg.rate()
	opts := []core.ReactionOption{
		core.WithReversible(cfg.reversible),
		core.WithReactant(from, 1),
		core.WithProduct(to, 1),
		core.WithLocalParameter(kfID, kf),
	}

	krID := ""
	if cfg.reversible {
		krID = ReverseRatePrefix + id
		kr := cfg.rate()
		opts = append(opts, core.WithLocalParameter(krID, kr))
		if cfg.thermo {
			opts = append(opts, core.WithThermoConstants(
				core.NumericConstant(EquilibriumPrefix+id, kf/kr),
				core.RateConstant{},
			))
		}
	}
	opts = append(opts,
		core.WithKineticLaw(massActionLaw(from, to, kfID, krID)),
		core.WithKineticConstants(kfID, krID),
	)

	if _, err := m.AddReaction(id, opts...); err != nil {
		return fmt.Errorf("%s: AddReaction(%s): %w: %w", method, id, err, ErrConstructFailed)
	}

	return nil
}
