// SPDX-License-Identifier: MIT

// Package matrix - difference, transpose and matrix-vector kernels.
//
// Policy:
//   - Inputs are never mutated; every kernel allocates a fresh *Dense.
//   - Fast paths operate on the flat *Dense buffers; other Matrix
//     implementations fall back to At/Set with fixed i→j order.
//   - Errors are wrapped with the op* tag via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub       = "Sub"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub returns a − b.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result.
//   - Stage 2: flat loop when both are *Dense, else At/Set in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] - db.data[k]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix. Zero-area inputs are legal.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
