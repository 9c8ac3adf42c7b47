// SPDX-License-Identifier: MIT
// Package: rxnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Contract:
//   - n ≥ 2, 0 ≤ p ≤ 1.
//   - cfg.rng is required when 0 < p < 1 (ErrNeedRandSource).
//   - Ordered pairs (i, j), i ≠ j, are visited in row-major order; each is
//     kept when rng.Float64() < p. p = 0 keeps none, p = 1 keeps all.
//   - Rate constants are drawn after the pair decision, so the topology for
//     a seed does not depend on the rate distribution's draw count.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 2
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi-like reaction network.
func RandomSparse(n int, p float64) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewSpecies)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := ensureSpecies(methodRandomSparse, m, cfg, n); err != nil {
			return err
		}

		type pair struct{ i, j int }
		kept := make([]pair, 0, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch p {
				case probMin:
					continue
				case probMax:
				default:
					if cfg.rng.Float64() >= p {
						continue
					}
				}
				kept = append(kept, pair{i, j})
			}
		}

		for _, pr := range kept {
			if err := addMassAction(methodRandomSparse, m, cfg, nextReactionID(m, cfg), cfg.idFn(pr.i), cfg.idFn(pr.j)); err != nil {
				return err
			}
		}

		return nil
	}
}
