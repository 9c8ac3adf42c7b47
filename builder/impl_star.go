// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewSpecies).
//   - Hub is idFn(0); leaves idFn(1..n-1) in ascending order.
//   - Reactions hub → leaf[i] in increasing i.
//
// Complexity: O(n) species and reactions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor converting one hub species into n-1 leaves.
func Star(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewSpecies)
		}
		if err := ensureSpecies(methodStar, m, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addMassAction(methodStar, m, cfg, nextReactionID(m, cfg), hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
