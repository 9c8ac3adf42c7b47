// SPDX-License-Identifier: MIT

// Package matrix - row reduction, rank and null space.
//
// Gauss–Jordan elimination with partial pivoting over a private copy of the
// input. Entries with |v| <= eps (WithEpsilon, default DefaultEpsilon) are
// treated as zero and flushed to exactly 0 in the result, so callers can rely
// on structural zeros when reading a basis.

package matrix

import (
	"fmt"
	"math"
)

const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
)

// toDense returns an independent *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// RREF returns the reduced row echelon form of m and the pivot column of
// each non-zero row, in increasing order.
//
// Implementation:
//   - Stage 1: copy m (inputs are never mutated).
//   - Stage 2: for each column pick the row with the largest |a[i,col]| at or
//     below the current row; skip the column when that magnitude is <= eps.
//   - Stage 3: swap, normalize the pivot to 1, eliminate the column in every other row.
//   - Stage 4: flush |v| <= eps to 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF(m Matrix, opts ...Option) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	eps := gatherOptions(opts...).eps

	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	r, c := a.r, a.c
	pivots := make([]int, 0, min(r, c))

	var i, k, p, row int
	var best, f, pv float64
	for col := 0; col < c && row < r; col++ {
		p, best = row, math.Abs(a.data[row*c+col])
		for i = row + 1; i < r; i++ {
			if v := math.Abs(a.data[i*c+col]); v > best {
				p, best = i, v
			}
		}
		if best <= eps {
			continue
		}
		if p != row {
			for k = 0; k < c; k++ {
				a.data[p*c+k], a.data[row*c+k] = a.data[row*c+k], a.data[p*c+k]
			}
		}

		pv = a.data[row*c+col]
		for k = col; k < c; k++ {
			a.data[row*c+k] /= pv
		}
		for i = 0; i < r; i++ {
			if i == row {
				continue
			}
			f = a.data[i*c+col]
			if f == 0 {
				continue
			}
			for k = col; k < c; k++ {
				a.data[i*c+k] -= f * a.data[row*c+k]
			}
		}

		pivots = append(pivots, col)
		row++
	}

	for k = range a.data {
		if math.Abs(a.data[k]) <= eps {
			a.data[k] = 0
		}
	}

	return a, pivots, nil
}

// Rank returns the numerical rank of m (number of RREF pivots).
// Errors: ErrNilMatrix.
func Rank(m Matrix, opts ...Option) (int, error) {
	_, pivots, err := RREF(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// NullSpace returns a basis of {x : m·x = 0} as the columns of an
// (m.Cols × k) matrix, k = m.Cols − Rank(m).
//
// Implementation:
//   - One basis vector per free (non-pivot) column f: x_f = 1, and for the
//     pivot of RREF row t, x_pivot(t) = −R[t,f]. Other free entries are 0.
//
// Behavior highlights:
//   - A full-column-rank input yields a legal m.Cols × 0 matrix.
//   - Vectors come out in increasing free-column order; the result is deterministic.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(c²).
func NullSpace(m Matrix, opts ...Option) (*Dense, error) {
	R, pivots, err := RREF(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	n := R.c

	isPivot := make([]bool, n)
	for _, pc := range pivots {
		isPivot[pc] = true
	}
	free := make([]int, 0, n-len(pivots))
	for j := 0; j < n; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	basis, err := newDenseZeroOK(n, len(free))
	if err != nil {
		return nil, matrixErrorf(opNullSpace, fmt.Errorf("newDenseZeroOK(%d,%d): %w", n, len(free), err))
	}
	k := len(free)
	for t, fc := range free {
		basis.data[fc*k+t] = 1
		for row, pc := range pivots {
			if v := R.data[row*n+fc]; v != 0 {
				basis.data[pc*k+t] = -v
			}
		}
	}

	return basis, nil
}
