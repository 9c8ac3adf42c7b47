// SPDX-License-Identifier: MIT
//
// File: conversion.go
// Role: thermokinetic conversion matrix G.
//
// Layout:
//   - rows follow the kinetic vector: R1:forward, R1:reverse (reversible only), R2:forward, ...
//   - columns: kappa:R1 .. kappa:RM, then C:S1 .. C:SN.
//
// Entries:
//   - forward row of reaction j: 1 at kappa:Rj, F[i,j] at C:Si;
//   - reverse row of reaction j: 1 at kappa:Rj, R[i,j] at C:Si.

package thermo

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/kinetics"
	"github.com/katalvlaran/rxnet/matrix"
)

// Column label prefixes of G.
const (
	KappaPrefix    = "kappa:"
	CapacityPrefix = "C:"
)

// Conversion is the conversion matrix G with its labels.
type Conversion struct {
	G            *matrix.Dense
	RowLabels    []string // aligned with kinetics.VectorLabels
	ColumnLabels []string

	reactionIDs []string
	boundary    []bool // per reaction: exchanges with the environment
	rowReaction []int  // reaction column of each row
	rowReverse  []bool // true for reverse rows
}

// ConversionMatrix builds G for m.
//
// Errors:
//   - core.ErrNoModel if m is nil.
//   - core.ErrEmptyList if m has no species or no reactions.
//
// Complexity:
//   - Time O(K·(M+N)), K = kinetic vector length.
func ConversionMatrix(m *core.Model) (*Conversion, error) {
	if m == nil {
		return nil, fmt.Errorf("ConversionMatrix: %w", core.ErrNoModel)
	}
	fwd, err := matrix.NewForwardStoichiometricMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("ConversionMatrix: %w", err)
	}
	rev, err := matrix.NewReverseStoichiometricMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("ConversionMatrix: %w", err)
	}
	labels, err := kinetics.VectorLabels(m)
	if err != nil {
		return nil, fmt.Errorf("ConversionMatrix: %w", err)
	}

	reactions := m.Reactions()
	species := fwd.RowNames()
	nReac, nSpec := len(reactions), len(species)

	g, err := matrix.NewDense(len(labels), nReac+nSpec)
	if err != nil {
		return nil, fmt.Errorf("ConversionMatrix: %w", err)
	}
	conv := &Conversion{
		G:            g,
		RowLabels:    labels,
		ColumnLabels: make([]string, 0, nReac+nSpec),
		reactionIDs:  make([]string, nReac),
		boundary:     make([]bool, nReac),
		rowReaction:  make([]int, 0, len(labels)),
		rowReverse:   make([]bool, 0, len(labels)),
	}
	for j, r := range reactions {
		conv.reactionIDs[j] = r.ID()
		conv.boundary[j] = r.BoundaryCondition()
		conv.ColumnLabels = append(conv.ColumnLabels, KappaPrefix+r.ID())
	}
	for _, id := range species {
		conv.ColumnLabels = append(conv.ColumnLabels, CapacityPrefix+id)
	}

	row := 0
	for j, r := range reactions {
		if err = conv.fillRow(row, j, fwd.Mat, false); err != nil {
			return nil, fmt.Errorf("ConversionMatrix: %w", err)
		}
		row++
		if !r.Reversible() {
			continue
		}
		if err = conv.fillRow(row, j, rev.Mat, true); err != nil {
			return nil, fmt.Errorf("ConversionMatrix: %w", err)
		}
		row++
	}

	return conv, nil
}

// fillRow writes e(kappa_j) plus column j of part into row.
func (c *Conversion) fillRow(row, j int, part *matrix.Dense, reverse bool) error {
	nReac := len(c.reactionIDs)
	if err := c.G.Set(row, j, 1); err != nil {
		return err
	}
	col, err := part.Col(j)
	if err != nil {
		return err
	}
	for i, v := range col {
		if v == 0 {
			continue
		}
		if err = c.G.Set(row, nReac+i, v); err != nil {
			return err
		}
	}
	c.rowReaction = append(c.rowReaction, j)
	c.rowReverse = append(c.rowReverse, reverse)

	return nil
}

// Shape returns (rows, cols) of G.
func (c *Conversion) Shape() (int, int) { return c.G.Shape() }

// ReactionIDs returns the reaction IDs in column order of the kappa block.
func (c *Conversion) ReactionIDs() []string { return append([]string(nil), c.reactionIDs...) }

// closedSelection returns the rows of G that belong to non-boundary reactions
// and the columns they can touch: their kappa columns and every C column.
func (c *Conversion) closedSelection() (rows, cols []int) {
	for row, j := range c.rowReaction {
		if !c.boundary[j] {
			rows = append(rows, row)
		}
	}
	for j, b := range c.boundary {
		if !b {
			cols = append(cols, j)
		}
	}
	for i := len(c.reactionIDs); i < len(c.ColumnLabels); i++ {
		cols = append(cols, i)
	}

	return rows, cols
}
