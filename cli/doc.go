// Package cli implements the rxnet command line: one cobra command per
// engine query (validate, stoich, element, kinetics, rates, conversion,
// thermo, reversibility) plus generate, which writes synthetic networks.
//
// Every command accepts --format text|json. JSON output is wrapped in a
// CLIResponse envelope; diagnostics from --verbose go to stderr.
package cli
