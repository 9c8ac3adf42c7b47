// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rxnet/thermo"
)

// NewConversionCommand creates the conversion command.
func NewConversionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversion <network-file>",
		Short: "Print the thermokinetic conversion matrix G",
		Long: `Print G: one row per entry of the kinetic rate constant vector, one column
per reaction capacity (kappa:R) followed by one per species capacity (C:S).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runConversion(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	conv, err := s.eng.ThermoConversionMatrix()
	if err != nil {
		return s.analysisError(err)
	}
	view, err := newMatrixView("G", conv.G, conv.RowLabels, conv.ColumnLabels)
	if err != nil {
		return s.analysisError(err)
	}

	return s.out.Success(view, view.writeTable)
}

// NewThermoCommand creates the thermo command.
func NewThermoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thermo <network-file>",
		Short: "Check kinetic constants against thermodynamic closure",
		Long: `Check that ln(kf/kr) matches ln K_eq for every reversible reaction with
thermodynamic constants, and that every closure cycle of the conversion
matrix is balanced. Exits 1 when the constants are incompatible.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThermo(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runThermo(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	v, err := s.eng.KineticThermoCompatibility()
	if err != nil {
		return s.analysisError(err)
	}
	s.out.VerboseLog("%d closure cycle(s), %d violation(s)", len(v.Cycles), len(v.Violations))

	if err = s.out.Success(v, func(w io.Writer) error { return writeVerdict(w, v) }); err != nil {
		return err
	}
	if !v.Compatible {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: incompatible reactions %s",
			ErrCodeCheck, strings.Join(v.ViolatingReactions(), ", ")))
	}

	return nil
}

func writeVerdict(w io.Writer, v *thermo.Verdict) error {
	fmt.Fprintf(w, "compatible: %t\n", v.Compatible)
	fmt.Fprintf(w, "cycles: %d\n", len(v.Cycles))
	for i, cy := range v.Cycles {
		fmt.Fprintf(w, "  cycle %d: %s\n", i+1, weighted(cy.Reactions, cy.Weights))
	}
	for _, vi := range v.Violations {
		fmt.Fprintf(w, "violation %s: %s kinetic=%s thermo=%s\n",
			vi.Kind, weighted(vi.Reactions, vi.Weights), formatFloat(vi.KineticLog), formatFloat(vi.ThermoLog))
	}

	return nil
}

// weighted renders "R1 +1 R2 -0.5"; reactions print bare when weights are absent.
func weighted(ids []string, weights []float64) string {
	parts := make([]string, 0, len(ids))
	for i, id := range ids {
		if i < len(weights) {
			w := formatFloat(weights[i])
			if weights[i] > 0 {
				w = "+" + w
			}
			parts = append(parts, id+" "+w)
			continue
		}
		parts = append(parts, id)
	}

	return strings.Join(parts, " ")
}

// ReversibilityResult is the reversibility command payload.
type ReversibilityResult struct {
	Reversible   bool     `json:"reversible"`
	Irreversible []string `json:"irreversible,omitempty"`
}

// NewReversibilityCommand creates the reversibility command.
func NewReversibilityCommand(rootOpts *RootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:           "reversibility <network-file>",
		Short:         "Report whether every reaction is reversible",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReversibility(rootOpts, args[0], list, cmd)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the irreversible reactions")

	return cmd
}

func runReversibility(opts *RootOptions, path string, list bool, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	all, irrev, err := s.eng.CheckModelReversibility(list)
	if err != nil {
		return s.analysisError(err)
	}
	res := ReversibilityResult{Reversible: all, Irreversible: irrev}

	return s.out.Success(res, func(w io.Writer) error {
		fmt.Fprintf(w, "reversible: %t\n", res.Reversible)
		if list && len(res.Irreversible) > 0 {
			fmt.Fprintf(w, "irreversible: %s\n", strings.Join(res.Irreversible, ", "))
		}
		return nil
	})
}
