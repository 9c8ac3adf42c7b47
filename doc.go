// Package rxnet is an analysis engine for biochemical reaction networks.
//
// A network (species, reactions, parameters) is loaded into an engine that
// answers four families of questions:
//
//   - Stoichiometry: the signed matrix S and its forward/reverse parts F and R
//     (S = R − F), with row/column labels and per-cell descriptions.
//   - Kinetics: the forward and reverse rate constant of every reaction,
//     resolved from pinned values, local or global parameters, or by parsing
//     the kinetic law.
//   - Thermodynamics: the thermokinetic conversion matrix G, its closure
//     cycles, and whether the kinetic constants satisfy them.
//   - Reversibility: whether every reaction is reversible.
//
// Packages:
//
//	core/     - model types, construction options, validation, index allocation
//	matrix/   - dense matrices, stoichiometric builders, RREF and null space
//	kinetics/ - rate-law parsing and evaluation, constant resolution
//	thermo/   - conversion matrix, closure cycles, compatibility verdict
//	engine/   - the model slot and every query behind one API
//	ingest/   - YAML/JSON/CUE network documents to and from core models
//	builder/  - synthetic network generators (chain, ring, star, …)
//	cli/      - cobra commands; cmd/rxnet is the binary
//
// Quick start:
//
//	m, err := ingest.LoadFile("toy.yaml")
//	if err != nil { … }
//	e := engine.New(engine.WithReporter(engine.NewSlogReporter(nil)))
//	_ = e.Load(m)
//	vec, _ := e.KineticRateConstantsVector()
//	verdict, _ := e.KineticThermoCompatibility()
package rxnet
