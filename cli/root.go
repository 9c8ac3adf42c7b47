// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string  // "json" | "text"
	Tolerance float64 // thermodynamic comparison tolerance; 0 keeps the default
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rxnet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rxnet",
		Short: "rxnet - reaction network analysis",
		Long: `Analyse biochemical reaction networks: stoichiometric matrices,
kinetic rate constants, thermodynamic compatibility and reversibility.

Networks are read from YAML, JSON or CUE documents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) || math.IsInf(opts.Tolerance, 0) {
				return fmt.Errorf("invalid tolerance %g: must be finite and >= 0", opts.Tolerance)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().Float64Var(&opts.Tolerance, "tolerance", 0, "tolerance for thermodynamic checks (0 = default)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewStoichCommand(opts))
	cmd.AddCommand(NewElementCommand(opts))
	cmd.AddCommand(NewKineticsCommand(opts))
	cmd.AddCommand(NewRatesCommand(opts))
	cmd.AddCommand(NewConversionCommand(opts))
	cmd.AddCommand(NewThermoCommand(opts))
	cmd.AddCommand(NewReversibilityCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
