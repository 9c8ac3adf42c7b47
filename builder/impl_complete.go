// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewSpecies).
//   - One reaction idFn(i) → idFn(j) per pair i < j, emitted in (i, j)
//     lexicographic order.
//
// Complexity: O(n) species, O(n²) reactions. With reversible reactions the
// closure constraints number (n-1)(n-2)/2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor interconverting every pair of n species.
func Complete(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewSpecies)
		}
		if err := ensureSpecies(methodComplete, m, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addMassAction(methodComplete, m, cfg, nextReactionID(m, cfg), cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
