// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag; callers
// match them via errors.Is. Model-level conditions (no model, empty species
// or reaction lists) reuse core.ErrNoModel and core.ErrEmptyList.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/ElementInfo) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Sub of different shapes, or MatVec where len(x) != m.Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownLabel indicates a species or reaction ID absent from the row or column labels.
	ErrUnknownLabel = errors.New("matrix: unknown label")
)
