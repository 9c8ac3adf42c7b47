// SPDX-License-Identifier: MIT

// Package matrix - public facades over the kernels.

package matrix

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
