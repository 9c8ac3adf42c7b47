// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
)

// StoichiometricMatrix is a species×reaction matrix of one Part together with
// its row and column labels.
//
// Mat, SpeciesIndex and the label slices describe one model snapshot; they stay
// index-consistent for the lifetime of the value.
type StoichiometricMatrix struct {
	Mat          *Dense         // N×M entries
	SpeciesIndex map[string]int // species ID → row
	Part         Part           // which matrix Mat holds

	speciesIDs  []string
	reactionIDs []string
	reactions   []*core.Reaction
	reactionIdx map[string]int
}

// Element is the descriptive view of a single matrix cell.
type Element struct {
	Row         int       `json:"row"`
	Col         int       `json:"col"`
	Coefficient float64   `json:"coefficient"`
	SpeciesID   string    `json:"species"`
	ReactionID  string    `json:"reaction"`
	Role        core.Role `json:"role"`
}

// NewStoichiometricMatrix builds the signed matrix S of m.
//
// Errors:
//   - core.ErrNoModel when m is nil.
//   - core.ErrEmptyList when m has no species or no reactions.
func NewStoichiometricMatrix(m *core.Model, opts ...Option) (*StoichiometricMatrix, error) {
	return newStoichiometric("NewStoichiometricMatrix", m, PartFull, opts)
}

// NewForwardStoichiometricMatrix builds F, the reactant-side magnitudes of m.
// Same errors as NewStoichiometricMatrix.
func NewForwardStoichiometricMatrix(m *core.Model, opts ...Option) (*StoichiometricMatrix, error) {
	return newStoichiometric("NewForwardStoichiometricMatrix", m, PartForward, opts)
}

// NewReverseStoichiometricMatrix builds R, the product-side magnitudes of m.
// Same errors as NewStoichiometricMatrix.
func NewReverseStoichiometricMatrix(m *core.Model, opts ...Option) (*StoichiometricMatrix, error) {
	return newStoichiometric("NewReverseStoichiometricMatrix", m, PartReverse, opts)
}

// NewStoichiometricPart builds the matrix selected by part.
func NewStoichiometricPart(m *core.Model, part Part, opts ...Option) (*StoichiometricMatrix, error) {
	return newStoichiometric("NewStoichiometricPart", m, part, opts)
}

func newStoichiometric(tag string, m *core.Model, part Part, opts []Option) (*StoichiometricMatrix, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", tag, core.ErrNoModel)
	}
	species := m.Species()
	reactions := m.Reactions()

	idx, mat, err := BuildDenseStoichiometry(species, reactions, part, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	sm := &StoichiometricMatrix{
		Mat:          mat,
		SpeciesIndex: idx,
		Part:         part,
		speciesIDs:   make([]string, len(species)),
		reactionIDs:  make([]string, len(reactions)),
		reactions:    reactions,
		reactionIdx:  make(map[string]int, len(reactions)),
	}
	for i, s := range species {
		sm.speciesIDs[i] = s.ID()
	}
	for j, r := range reactions {
		sm.reactionIDs[j] = r.ID()
		sm.reactionIdx[r.ID()] = j
	}

	return sm, nil
}

// RowNames returns the species IDs in row order.
func (sm *StoichiometricMatrix) RowNames() []string {
	return append([]string(nil), sm.speciesIDs...)
}

// ColumnNames returns the reaction IDs in column order.
func (sm *StoichiometricMatrix) ColumnNames() []string {
	return append([]string(nil), sm.reactionIDs...)
}

// Shape returns (species, reactions).
func (sm *StoichiometricMatrix) Shape() (int, int) { return sm.Mat.Shape() }

// ElementInfo returns the coefficient at (i, j) with its species ID,
// reaction ID and the species' role in that reaction.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when i or j is outside the matrix.
//
// Complexity: O(#refs of reaction j).
func (sm *StoichiometricMatrix) ElementInfo(i, j int) (Element, error) {
	if sm == nil || sm.Mat == nil {
		return Element{}, fmt.Errorf("ElementInfo: %w", ErrNilMatrix)
	}
	v, err := sm.Mat.At(i, j)
	if err != nil {
		return Element{}, fmt.Errorf("ElementInfo: %w", err)
	}

	role := speciesRole(sm.reactions[j], sm.speciesIDs[i])

	return Element{
		Row:         i,
		Col:         j,
		Coefficient: v,
		SpeciesID:   sm.speciesIDs[i],
		ReactionID:  sm.reactionIDs[j],
		Role:        role,
	}, nil
}

// SpeciesRow returns a copy of the row of species id.
// Errors: ErrUnknownLabel.
func (sm *StoichiometricMatrix) SpeciesRow(id string) ([]float64, error) {
	i, ok := sm.SpeciesIndex[id]
	if !ok {
		return nil, fmt.Errorf("SpeciesRow(%q): %w", id, ErrUnknownLabel)
	}

	return sm.Mat.Row(i)
}

// ReactionColumn returns a copy of the column of reaction id.
// Errors: ErrUnknownLabel.
func (sm *StoichiometricMatrix) ReactionColumn(id string) ([]float64, error) {
	j, ok := sm.reactionIdx[id]
	if !ok {
		return nil, fmt.Errorf("ReactionColumn(%q): %w", id, ErrUnknownLabel)
	}

	return sm.Mat.Col(j)
}

// speciesRole reports on which side of r the species id appears.
// The boundary sentinel never contributes an entry and has no role.
func speciesRole(r *core.Reaction, id string) core.Role {
	if id == core.BoundarySpeciesID {
		return core.RoleNone
	}
	var reactant, product bool
	for _, ref := range r.Reactants() {
		if ref.SpeciesID() == id {
			reactant = true
		}
	}
	for _, ref := range r.Products() {
		if ref.SpeciesID() == id {
			product = true
		}
	}

	switch {
	case reactant && product:
		return core.RoleBoth
	case reactant:
		return core.RoleReactant
	case product:
		return core.RoleProduct
	default:
		return core.RoleNone
	}
}
