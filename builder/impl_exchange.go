// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// impl_exchange.go - Exchange(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewSpecies).
//   - One boundary reaction "EX_"+idFn(i): EmptySet → idFn(i) per species.
//   - Boundary reactions do not consume reaction indices in the model.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const (
	methodExchange   = "Exchange"
	minExchangeNodes = 1
)

// Exchange returns a Constructor adding an inflow for each of n species.
func Exchange(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minExchangeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodExchange, n, minExchangeNodes, ErrTooFewSpecies)
		}
		if err := ensureSpecies(methodExchange, m, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := addMassAction(methodExchange, m, cfg, ExchangePrefix+id, core.BoundarySpeciesID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
