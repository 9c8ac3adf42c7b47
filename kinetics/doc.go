// Package kinetics recovers numeric rate constants from the symbolic rate
// laws of a core.Model.
//
// A rate law is parsed with the HCL native expression syntax (hclsyntax) into
// an expression tree. From that tree the package extracts:
//
//   - the free symbols, in source order (RateLaw.Symbols),
//   - the additive terms with their sign, products distributed over sums
//     (RateLaw.Terms), e.g. "k1*A - k2*B" → [+{k1 A}, −{k2 B}],
//   - the called functions (RateLaw.Functions).
//
// Constant resolution (ResolveReactionConstants) picks, per reaction:
//
//	forward: the pinned kinetic symbol, else the first parameter symbol of the
//	         first positive term that has one;
//	reverse: (reversible reactions only) the pinned symbol, else the first
//	         parameter symbol of the first negative term that has one.
//
// Symbols are looked up in the reaction's local parameters, then in the global
// parameters. A model without global parameters gets them reconstructed from
// the union of all local parameters (ReconcileGlobalParameters).
//
// KineticRateConstantsVector lays the values out in reaction order:
//
//	[kf(R1), kr(R1) if reversible, kf(R2), kr(R2) if reversible, ...]
//
// Rate laws evaluate with go-cty (RateLaw.Evaluate) and a function table of
// the usual SBML math: pow, exp, ln, log, log10, sqrt, root, abs, floor,
// ceil, min, max. "a^b" is rewritten to pow(a, b) before parsing; it is
// right-associative and binds tighter than unary minus.
package kinetics
