// SPDX-License-Identifier: MIT

// Package matrix - dense stoichiometric builder.
//
// Layout:
//   - rows    = species in the given order (model creation order),
//   - columns = reactions in the given order, boundary reactions included.
//
// Entry rules per Part:
//   - PartFull:    S[i,j] = Σ product stoichiometry − Σ reactant stoichiometry of species i in reaction j.
//   - PartForward: F[i,j] = Σ reactant stoichiometry (positive magnitude).
//   - PartReverse: R[i,j] = Σ product stoichiometry (positive magnitude).
//
// References to the boundary sentinel never produce an entry, so S = R − F
// holds for every model and a declared sentinel species keeps a zero row.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

const opBuildStoich = "BuildDenseStoichiometry"

// BuildDenseStoichiometry builds the N×M matrix of the requested part.
//
// Implementation:
//   - Stage 1: validate non-empty species/reaction lists; build ID→row index.
//   - Stage 2: allocate N×M Dense under the numeric policy of opts.
//   - Stage 3: walk each reaction's reactants then products, accumulating into column j.
//
// Returns:
//   - map[string]int: species ID → row.
//   - *Dense: the matrix.
//
// Errors:
//   - core.ErrEmptyList when species or reactions are empty.
//   - core.ErrDuplicateID for a repeated species ID.
//   - ErrUnknownLabel when a reference names a species outside the list.
//
// Determinism:
//   - Fixed reaction→reference order; map is only used for lookups.
//
// Complexity:
//   - Time O(N*M + Σ refs), Space O(N*M).
func BuildDenseStoichiometry(
	species []*core.Species,
	reactions []*core.Reaction,
	part Part,
	opts Options,
) (map[string]int, *Dense, error) {
	// --- Stage 1: validate and index ---
	if len(species) == 0 {
		return nil, nil, fmt.Errorf("%s: species: %w", opBuildStoich, core.ErrEmptyList)
	}
	if len(reactions) == 0 {
		return nil, nil, fmt.Errorf("%s: reactions: %w", opBuildStoich, core.ErrEmptyList)
	}
	idx := make(map[string]int, len(species))
	for i, s := range species {
		if _, dup := idx[s.ID()]; dup {
			return nil, nil, fmt.Errorf("%s: species %q: %w", opBuildStoich, s.ID(), core.ErrDuplicateID)
		}
		idx[s.ID()] = i
	}

	// --- Stage 2: allocate ---
	N, M := len(species), len(reactions)
	mat, err := newDenseWithPolicy(N, M, opts.validateNaNInf)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: NewDense(%d,%d): %w", opBuildStoich, N, M, err)
	}

	// --- Stage 3: populate columns ---
	var sign float64
	for j, r := range reactions {
		if sign = reactantSign(part); sign != 0 {
			if err = accumulate(mat, idx, r.Reactants(), j, sign); err != nil {
				return nil, nil, fmt.Errorf("%s: reaction %q: %w", opBuildStoich, r.ID(), err)
			}
		}
		if sign = productSign(part); sign != 0 {
			if err = accumulate(mat, idx, r.Products(), j, sign); err != nil {
				return nil, nil, fmt.Errorf("%s: reaction %q: %w", opBuildStoich, r.ID(), err)
			}
		}
	}

	return idx, mat, nil
}

// reactantSign is the contribution sign of reactant references for a part.
func reactantSign(p Part) float64 {
	switch p {
	case PartForward:
		return +1
	case PartReverse:
		return 0
	default:
		return -1
	}
}

// productSign is the contribution sign of product references for a part.
func productSign(p Part) float64 {
	if p == PartForward {
		return 0
	}

	return +1
}

// accumulate adds sign*stoichiometry of each reference into column j.
// Sentinel references are skipped.
func accumulate(mat *Dense, idx map[string]int, refs []*core.SpeciesReference, j int, sign float64) error {
	for _, ref := range refs {
		if ref.Species().IsBoundary() {
			continue
		}
		i, ok := idx[ref.SpeciesID()]
		if !ok {
			return fmt.Errorf("species %q: %w", ref.SpeciesID(), ErrUnknownLabel)
		}
		cur, err := mat.At(i, j)
		if err != nil {
			return err
		}
		if err = mat.Set(i, j, cur+sign*ref.Stoichiometry()); err != nil {
			return err
		}
	}

	return nil
}
