// Package core provides the in-memory reaction-network model read by every
// analysis package of rxnet.
//
// A Model M = (S, R, P) holds:
//
//   - Species S in insertion order: the rows of every stoichiometric matrix
//   - Reactions R in insertion order: the columns of every stoichiometric matrix
//   - global Parameters P, plus reaction-scoped local parameters
//   - optional Compartments and FunctionDefinitions
//
// Construction:
//
//	m := core.NewModel("toy")
//	m.AddSpecies("A", core.WithInitialConcentration(1))
//	m.AddSpecies("B")
//	m.AddParameter("k1", 2.0)
//	m.AddReaction("R1",
//	    core.WithReversible(true),
//	    core.WithKineticLaw("k1*A - k2*B"),
//	    core.WithReactant("A", 1),
//	    core.WithProduct("B", 1),
//	    core.WithLocalParameter("k2", 0.5),
//	)
//
// Every Add* validates its input at construction time and fails with a
// *ValidationError (errors.Is-compatible with ErrEmptyID, ErrDuplicateID,
// ErrInvalidValue, ErrSpeciesNotFound). Entities are immutable afterwards.
//
// Index allocation:
//
//	Species and reactions receive indices from two IndexAllocators owned by the
//	Model. A reaction that references BoundarySpeciesID ("EmptySet") is a
//	boundary reaction: it is flagged BoundaryCondition, keeps the index the
//	allocator held before it was created, and the allocator is rewound to that
//	value. Normal reactions therefore get contiguous, gap-free indices no matter
//	how many boundary reactions are interleaved.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalogs. Population is expected to happen
//	once (ingestion); afterwards any number of readers may query the model.
//
// CheckReversibility reports whether every reaction is reversible and lists
// the irreversible ones.
package core
