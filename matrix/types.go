// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// All methods are O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Part selects which stoichiometric matrix a builder produces.
type Part int

const (
	// PartFull is the signed matrix S: products positive, reactants negative.
	PartFull Part = iota
	// PartForward holds reactant-side magnitudes only (F).
	PartForward
	// PartReverse holds product-side magnitudes only (R).
	PartReverse
)

// String returns the lowercase part name used by CLI flags.
func (p Part) String() string {
	switch p {
	case PartForward:
		return "forward"
	case PartReverse:
		return "reverse"
	default:
		return "full"
	}
}

// ParsePart maps "full", "forward" or "reverse" to a Part.
func ParsePart(s string) (Part, bool) {
	switch s {
	case "full", "":
		return PartFull, true
	case "forward":
		return PartForward, true
	case "reverse":
		return PartReverse, true
	}

	return PartFull, false
}
