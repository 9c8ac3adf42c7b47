// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	ID        string   `json:"id"`
	Species   int      `json:"species"`
	Reactions int      `json:"reactions"`
	Boundary  int      `json:"boundary"`
	Issues    []string `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <network-file>",
		Short: "Validate a network document",
		Long: `Load a network document and check that its stoichiometric matrix can be
built and every kinetic rate constant resolves.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	m, err := s.eng.Model()
	if err != nil {
		return s.analysisError(err)
	}

	res := ValidationResult{ID: m.ID(), Species: len(m.Species()), Reactions: len(m.Reactions())}
	for _, r := range m.Reactions() {
		if r.BoundaryCondition() {
			res.Boundary++
		}
	}
	if _, err = s.eng.StoichiometricMatrix(); err != nil {
		res.Issues = append(res.Issues, err.Error())
	}
	if _, err = s.eng.KineticRateConstantsVector(); err != nil {
		res.Issues = append(res.Issues, err.Error())
	}
	res.Valid = len(res.Issues) == 0

	if err = s.out.Success(res, func(w io.Writer) error {
		if res.Valid {
			_, err := fmt.Fprintf(w, "✓ network %q valid: %d species, %d reactions (%d boundary)\n",
				res.ID, res.Species, res.Reactions, res.Boundary)
			return err
		}
		fmt.Fprintf(w, "✗ network %q invalid\n", res.ID)
		for _, issue := range res.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
		return nil
	}); err != nil {
		return err
	}
	if !res.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(res.Issues)))
	}

	return nil
}
