package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rxnet/core"
	"github.com/katalvlaran/rxnet/matrix"
)

// ExampleNewStoichiometricMatrix builds S for A <-> B plus an outflow of B.
func ExampleNewStoichiometricMatrix() {
	m := core.NewModel("example")
	m.AddSpecies("A")
	m.AddSpecies("B")
	m.AddReaction("R1", core.WithReversible(true), core.WithReactant("A", 1), core.WithProduct("B", 1))
	m.AddReaction("OUT", core.WithReactant("B", 1), core.WithProduct(core.BoundarySpeciesID, 1))

	s, err := matrix.NewStoichiometricMatrix(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.RowNames(), s.ColumnNames())
	fmt.Print(s.Mat)

	e, _ := s.ElementInfo(1, 1)
	fmt.Println(e.SpeciesID, e.ReactionID, e.Coefficient, e.Role)

	// Output:
	// [A B] [R1 OUT]
	// [-1, 0]
	// [1, -1]
	// B OUT -1 reactant
}
