// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rxnet/matrix"
)

// NewStoichCommand creates the stoich command.
func NewStoichCommand(rootOpts *RootOptions) *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:   "stoich <network-file>",
		Short: "Print a stoichiometric matrix",
		Long: `Print the species × reaction stoichiometric matrix.

--part selects the signed matrix S (full), the reactant magnitudes F
(forward) or the product magnitudes R (reverse); S = R − F.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoich(rootOpts, args[0], part, cmd)
		},
	}
	cmd.Flags().StringVar(&part, "part", "full", "matrix part (full|forward|reverse)")

	return cmd
}

func runStoich(opts *RootOptions, path, partName string, cmd *cobra.Command) error {
	part, ok := matrix.ParsePart(partName)
	if !ok {
		f := newFormatter(opts, cmd)
		return f.Fail(ExitCommandError, ErrCodeArgs, fmt.Errorf("invalid part %q: must be full, forward or reverse", partName))
	}
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	sm, err := s.eng.StoichiometricPart(part)
	if err != nil {
		return s.analysisError(err)
	}
	view, err := newMatrixView(part.String(), sm.Mat, sm.RowNames(), sm.ColumnNames())
	if err != nil {
		return s.analysisError(err)
	}

	return s.out.Success(view, view.writeTable)
}

// NewElementCommand creates the element command.
func NewElementCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "element <network-file> <row> <col>",
		Short:         "Describe one cell of the stoichiometric matrix",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElement(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runElement(opts *RootOptions, args []string, cmd *cobra.Command) error {
	i, errI := strconv.Atoi(args[1])
	j, errJ := strconv.Atoi(args[2])
	if errI != nil || errJ != nil {
		f := newFormatter(opts, cmd)
		return f.Fail(ExitCommandError, ErrCodeArgs, fmt.Errorf("row and col must be integers, got %q %q", args[1], args[2]))
	}
	s, err := openSession(opts, cmd, args[0])
	if err != nil {
		return err
	}
	el, err := s.eng.ElementInfo(i, j)
	if err != nil {
		return s.analysisError(err)
	}

	return s.out.Success(el, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "S[%d,%d] = %s\nspecies: %s\nreaction: %s\nrole: %s\n",
			el.Row, el.Col, formatFloat(el.Coefficient), el.SpeciesID, el.ReactionID, el.Role)
		return err
	})
}
