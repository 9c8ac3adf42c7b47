// Package thermo checks rate constants of a reaction network against
// thermodynamic closure (Wegscheider) constraints.
//
// In the thermokinetic formalism every rate constant factors as
//
//	k⁺_j = κ_j · Π_i C_i^F[i,j]        k⁻_j = κ_j · Π_i C_i^R[i,j]
//
// with a capacity κ_j per reaction and a thermodynamic capacity C_i per
// species. Taking logarithms gives ln k = G·[ln κ; ln C], where G is the
// conversion matrix built by ConversionMatrix: one row per entry of the
// kinetic vector, columns [κ_1..κ_M, C_1..C_N].
//
// A vector w with wᵀG = 0 is a closure constraint: Σ w·ln k must vanish for
// any rate constants that admit a thermodynamic factorization. Such vectors
// pair the forward and reverse rows of the reversible reactions of a closed
// cycle, so Σ w·ln k = Σ_j v_j·ln(k⁺_j / k⁻_j) with v a cycle of S.
//
// KineticThermoCompatibility checks:
//
//  1. per reversible reaction with thermodynamic constants,
//     ln(k⁺/k⁻) ≈ ln K_eq, K_eq = thermoForward / thermoReverse;
//  2. per cycle, Σ v_j ln(k⁺_j/k⁻_j) ≈ Σ v_j ln K_eq_j when every reaction in
//     the cycle carries thermodynamic constants, and ≈ 0 otherwise.
//
// Comparisons are absolute in log space (WithTolerance, default 1e-9).
package thermo
