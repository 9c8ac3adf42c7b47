// Package matrix provides dense linear algebra and the stoichiometric
// representations of a reaction network.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - Kernels used by the analysis packages: Sub, Transpose, MatVec, AllClose,
//     RREF, Rank and NullSpace, plus Dense.Induced for sub-matrix selection.
//   - StoichiometricMatrix, the species×reaction matrix of a core.Model in one
//     of three parts: full (S), forward (F, reactant magnitudes) or reverse
//     (R, product magnitudes), with S = R − F exactly.
//
// Rows follow the model's species order and columns the model's reaction
// order. Boundary reactions stay columns; the boundary sentinel species never
// contributes an entry, so a declared sentinel row is all zeros.
//
// Every public function returns sentinel errors (see errors.go) wrapped with
// an operation tag; nothing panics on user input.
package matrix
