// Package builder generates synthetic reaction networks as *core.Model values.
//
// A network is assembled by BuildNetwork from one or more Constructor
// closures, each adding a topology of species and mass-action reactions:
//
//   - Chain(n):        S0 → S1 → … → S(n-1)
//   - Ring(n):         a chain closed by S(n-1) → S0 (one closure cycle)
//   - Star(n):         hub S0 → every leaf
//   - Complete(n):     Si → Sj for every i < j
//   - Exchange(n):     EmptySet → Si boundary inflows
//   - RandomSparse(n, p): Si → Sj for ordered pairs kept with probability p
//
// Every generated reaction R gets local parameters kf_R (and kr_R when
// reversible) and a mass-action kinetic law over them, so the result feeds
// the matrix, kinetics, thermo and engine packages unchanged.
//
// Configuration is by BuilderOption:
//
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs: species IDs.
//   - WithReactionPrefix: reaction ID prefix ("R").
//   - WithSeed / WithRand: randomness for RandomSparse and random rates.
//   - WithRateFn: rate constant distribution (ConstantRateFn, UniformRateFn, LogUniformRateFn).
//   - WithReversible: emit reversible reactions with a reverse term.
//   - WithThermo: attach K_eq = kf/kr as thermodynamic constants.
//   - WithInitialConcentration: initial concentration of new species.
//
// Option constructors panic on invalid arguments; constructors return
// sentinel errors (ErrTooFewSpecies, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with context. Equal options, seed and
// constructor order give identical models.
package builder
