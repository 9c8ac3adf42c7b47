// Package engine is the query facade over one loaded reaction-network model.
//
// An Engine holds at most one *core.Model. Every query recomputes its result
// from the model (nothing is cached) and fails with core.ErrNoModel when no
// model is loaded:
//
//	e := engine.New(engine.WithReporter(engine.NewSlogReporter(logger)))
//	if err := e.Load(m); err != nil { ... }
//	s, err := e.StoichiometricMatrix()
//	v, err := e.KineticThermoCompatibility()
//
// Failures are returned to the caller and also passed to the Reporter at
// LevelError. The engine formats no other output.
//
// Load and queries may be called from different goroutines; a query sees
// either the previous or the new model, never a mix.
package engine
