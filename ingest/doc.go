// Package ingest reads network-description files into a *core.Model and
// writes models back out.
//
// Formats, chosen by file extension:
//
//	.yaml, .yml, .json  → gopkg.in/yaml.v3, unknown fields rejected
//	.cue                → CUE, unified with the embedded #Network schema and
//	                      validated as concrete before decoding
//
// Both formats share one document shape (Network):
//
//	id: toy
//	species:
//	  - {id: A, initial_concentration: 1}
//	  - {id: B}
//	parameters:
//	  - {id: k1, value: 2}
//	reactions:
//	  - id: R1
//	    reversible: true
//	    kinetic_law: "k1*A - k2*B"
//	    reactants: [{species: A}]
//	    products:  [{species: B}]
//	    local_parameters: [{id: k2, value: 0.5}]
//	    thermo: {forward: {symbol: K1, value: 4}}
//
// A document without an id gets a fresh UUIDv7. Missing stoichiometries
// default to 1 and missing compartment sizes to 1.
package ingest
