// SPDX-License-Identifier: MIT

package thermo

import "errors"

var (
	// ErrNonPositiveConstant indicates a rate or equilibrium constant that is
	// zero or negative where its logarithm is required.
	ErrNonPositiveConstant = errors.New("thermo: non-positive constant")

	// ErrNilConversion indicates a nil *Conversion argument.
	ErrNilConversion = errors.New("thermo: nil conversion matrix")
)
