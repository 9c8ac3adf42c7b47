// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: shared construction-time validation helpers for every entity kind.
//
// Policy:
//   - Validation happens once, in constructors; entities are immutable afterwards.
//   - Failures are reported as *ValidationError wrapping a package sentinel,
//     so callers can use both errors.As and errors.Is.

package core

import (
	"fmt"
	"math"
)

// Entity kinds used in ValidationError.
const (
	EntityModel              = "model"
	EntitySpecies            = "species"
	EntityReaction           = "reaction"
	EntityParameter          = "parameter"
	EntityCompartment        = "compartment"
	EntityFunctionDefinition = "function definition"
	EntitySpeciesReference   = "species reference"
)

// ValidationError reports an invalid field at construction time.
type ValidationError struct {
	Entity string // entity kind (EntitySpecies, EntityReaction, ...)
	ID     string // identifier of the offending entity, if known
	Field  string // offending field name
	Err    error  // underlying sentinel
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("core: invalid %s %s: %v", e.Entity, e.Field, e.Err)
	}

	return fmt.Sprintf("core: invalid %s %q %s: %v", e.Entity, e.ID, e.Field, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// invalid builds a *ValidationError.
func invalid(entity, id, field string, err error) error {
	return &ValidationError{Entity: entity, ID: id, Field: field, Err: err}
}

// checkID rejects empty identifiers.
func checkID(entity, id string) error {
	if id == "" {
		return invalid(entity, id, "id", ErrEmptyID)
	}

	return nil
}

// checkFinite rejects NaN and ±Inf.
func checkFinite(entity, id, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(entity, id, field, ErrInvalidValue)
	}

	return nil
}

// checkPositive rejects non-finite and non-positive values.
func checkPositive(entity, id, field string, v float64) error {
	if err := checkFinite(entity, id, field, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalid(entity, id, field, ErrInvalidValue)
	}

	return nil
}

// cloneStrings copies s; nil stays nil.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}
