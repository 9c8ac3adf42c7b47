// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// impl_chain.go - Chain(n) and Ring(n).
//
// Contract:
//   - Chain: n ≥ 2; reactions idFn(i) → idFn(i+1) for i = 0..n-2.
//   - Ring:  n ≥ 3; the chain plus idFn(n-1) → idFn(0).
//   - Species are added in index order, reactions in increasing i.
//
// Complexity: O(n) species and reactions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	minChainNodes = 2
	minRingNodes  = 3
)

// Chain returns a Constructor for the linear pathway S0 → S1 → … → S(n-1).
func Chain(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewSpecies)
		}
		return linear(methodChain, m, cfg, n, false)
	}
}

// Ring returns a Constructor for the closed pathway S0 → … → S(n-1) → S0.
// A ring carries exactly one closure constraint.
func Ring(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewSpecies)
		}
		return linear(methodRing, m, cfg, n, true)
	}
}

func linear(method string, m *core.Model, cfg builderConfig, n int, closed bool) error {
	if err := ensureSpecies(method, m, cfg, n); err != nil {
		return err
	}
	steps := n - 1
	if closed {
		steps = n
	}
	for i := 0; i < steps; i++ {
		from, to := cfg.idFn(i), cfg.idFn((i+1)%n)
		if err := addMassAction(method, m, cfg, nextReactionID(m, cfg), from, to); err != nil {
			return err
		}
	}

	return nil
}
