// SPDX-License-Identifier: MIT

package thermo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rxnet/matrix"
)

// Cycle is one closure constraint: a basis vector of the left null space of
// G restricted to non-boundary reactions.
type Cycle struct {
	Vector    []float64 `json:"vector"`    // weight per kinetic-vector row
	Reactions []string  `json:"reactions"` // reactions with a non-zero weight
	Weights   []float64 `json:"weights"`   // forward-row weight per entry of Reactions
}

// Constraints returns a basis of {w : wᵀG = 0, w = 0 on boundary rows}.
//
// Boundary reactions exchange mass with the environment, so a chain of them
// through the network is open and closes no cycle. Their rows and kappa
// columns are left out before the null space is taken; the returned vectors
// still span the full kinetic vector, with zeros on boundary rows.
//
// Each vector is scaled so that its first non-zero entry is positive and its
// largest magnitude is 1; entries with |v| <= rank tolerance are set to 0.
//
// Errors:
//   - ErrNilConversion if conv is nil.
//
// Complexity:
//   - Time O(K·(M+N)·min(K, M+N)).
func Constraints(conv *Conversion, opts ...Option) ([]Cycle, error) {
	if conv == nil || conv.G == nil {
		return nil, fmt.Errorf("Constraints: %w", ErrNilConversion)
	}
	o := gatherOptions(opts...)

	rows, cols := conv.closedSelection()
	if len(rows) == 0 {
		return make([]Cycle, 0), nil
	}
	closed, err := conv.G.Induced(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Constraints: %w", err)
	}
	gt, err := matrix.Transpose(closed)
	if err != nil {
		return nil, fmt.Errorf("Constraints: %w", err)
	}
	basis, err := matrix.NullSpace(gt, matrix.WithEpsilon(o.rankTol))
	if err != nil {
		return nil, fmt.Errorf("Constraints: %w", err)
	}

	kRows := conv.G.Rows()
	cycles := make([]Cycle, 0, basis.Cols())
	for t := 0; t < basis.Cols(); t++ {
		sub, err := basis.Col(t)
		if err != nil {
			return nil, fmt.Errorf("Constraints: %w", err)
		}
		w := make([]float64, kRows)
		for k, row := range rows {
			w[row] = sub[k]
		}
		normalize(w, o.rankTol)
		cycles = append(cycles, conv.describe(w))
	}

	return cycles, nil
}

// normalize flushes |v| <= eps and scales w to max |v| = 1, first non-zero positive.
func normalize(w []float64, eps float64) {
	maxAbs, first := 0.0, 0.0
	for i, v := range w {
		if math.Abs(v) <= eps {
			w[i] = 0
			continue
		}
		if first == 0 {
			first = v
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return
	}
	scale := 1 / maxAbs
	if first < 0 {
		scale = -scale
	}
	for i := range w {
		w[i] *= scale
	}
}

// describe attaches reaction IDs and forward-row weights to w.
func (c *Conversion) describe(w []float64) Cycle {
	cy := Cycle{Vector: w}
	for row, v := range w {
		if v == 0 || c.rowReverse[row] {
			continue
		}
		cy.Reactions = append(cy.Reactions, c.reactionIDs[c.rowReaction[row]])
		cy.Weights = append(cy.Weights, v)
	}

	return cy
}
