// SPDX-License-Identifier: MIT

// Package core defines the reaction-network model: Model, Species, Reaction,
// SpeciesReference, Parameter, Compartment and FunctionDefinition, together
// with the sentinel errors shared by every analysis package.
//
// Errors:
//
//	ErrNoModel          - a query was issued without a model.
//	ErrEmptyList        - a required sequence (species, reactions, parameters) is empty.
//	ErrEmptyID          - an entity was constructed with an empty ID.
//	ErrDuplicateID      - an entity ID collides with an existing one of the same kind.
//	ErrInvalidValue     - a numeric field is NaN/Inf or violates its range.
//	ErrSpeciesNotFound  - a species reference names a species the model does not hold.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for model construction and queries.
var (
	// ErrNoModel indicates that an operation was invoked without a loaded model.
	ErrNoModel = errors.New("core: no model loaded")

	// ErrEmptyList indicates that a computation depends on an empty sequence.
	ErrEmptyList = errors.New("core: empty list")

	// ErrEmptyID indicates that an entity was constructed with an empty identifier.
	ErrEmptyID = errors.New("core: empty ID")

	// ErrDuplicateID indicates that an identifier is already taken within its scope.
	ErrDuplicateID = errors.New("core: duplicate ID")

	// ErrInvalidValue indicates a non-finite or out-of-range numeric field.
	ErrInvalidValue = errors.New("core: invalid value")

	// ErrSpeciesNotFound indicates a reference to a species absent from the model.
	ErrSpeciesNotFound = errors.New("core: species not found")
)

// BoundarySpeciesID is the sentinel species identifier that denotes "no species".
// A reaction referencing it on either side models exchange with the environment
// (source or sink) and is flagged as a boundary reaction.
const BoundarySpeciesID = "EmptySet"

// Role tells on which side of a reaction a SpeciesReference sits.
type Role int

const (
	// RoleNone marks a species that does not take part in a reaction.
	RoleNone Role = iota
	// RoleReactant marks a consumed species.
	RoleReactant
	// RoleProduct marks a produced species.
	RoleProduct
	// RoleBoth marks a species consumed and produced by the same reaction.
	RoleBoth
)

// String returns a lowercase label of the role.
func (r Role) String() string {
	switch r {
	case RoleReactant:
		return "reactant"
	case RoleProduct:
		return "product"
	case RoleBoth:
		return "both"
	default:
		return "none"
	}
}

// MarshalText encodes the role as its String form.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Species is a chemical species of the network.
//
// Index is assigned at creation from the model's species allocator and orders
// stoichiometric-matrix rows. All fields are fixed after construction.
type Species struct {
	id                   string
	index                int
	name                 string
	initialConcentration float64
	compartment          string
	charge               float64
	annotations          []string
}

// Parameter is a named numeric constant. Global parameters live on the Model,
// local parameters are scoped to a single Reaction.
type Parameter struct {
	id    string
	value float64
}

// Compartment is a named reaction volume referenced by species.
type Compartment struct {
	id   string
	size float64
}

// FunctionDefinition is a named formula that rate laws may call.
type FunctionDefinition struct {
	id      string
	formula string
}

// RateConstant is a symbolic rate constant with an optional resolved value.
// A zero RateConstant means "not specified".
type RateConstant struct {
	Symbol   string  // parameter ID referenced by the constant (may be empty)
	Value    float64 // numeric value, meaningful only when hasValue is true
	hasValue bool
}

// SpeciesReference binds one Species to one Reaction with a stoichiometric coefficient.
// It does not own the Species.
type SpeciesReference struct {
	species       *Species
	stoichiometry float64
	reactionID    string
	role          Role
}

// Reaction is a single reaction of the network.
//
// Boundary reactions (any reference to BoundarySpeciesID) do not consume a slot of
// the model's reaction-index allocator: their index equals the allocator value
// observed right before creation, and the allocator is rewound to it.
type Reaction struct {
	id              string
	index           int
	reversible      bool
	kineticLaw      string
	kineticLawType  string
	localParameters []*Parameter
	reactants       []*SpeciesReference
	products        []*SpeciesReference
	boundary        bool
	annotations     []string

	kineticForward RateConstant
	kineticReverse RateConstant
	thermoForward  RateConstant
	thermoReverse  RateConstant
	kappa          float64
}

// Model is the aggregate root of a reaction network.
//
// Sequences are kept in insertion order: species order defines matrix rows and
// reaction order defines matrix columns. mu guards all catalogs; once ingestion is
// complete, concurrent readers are safe.
type Model struct {
	mu sync.RWMutex

	id string

	species             []*Species
	reactions           []*Reaction
	parameters          []*Parameter
	compartments        []*Compartment
	functionDefinitions []*FunctionDefinition

	speciesByID   map[string]*Species
	reactionByID  map[string]*Reaction
	parameterByID map[string]*Parameter

	speciesIndex  *IndexAllocator
	reactionIndex *IndexAllocator
}
