// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rxnet/kinetics"
)

// KineticsResult is the kinetics command payload.
type KineticsResult struct {
	Labels    []string                     `json:"labels"`
	Vector    []float64                    `json:"vector"`
	Constants []kinetics.ReactionConstants `json:"constants"`
}

// NewKineticsCommand creates the kinetics command.
func NewKineticsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinetics <network-file>",
		Short: "Print the kinetic rate constant vector",
		Long: `Resolve the forward (and, for reversible reactions, reverse) rate constant
of every reaction and print them with their symbol and source.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinetics(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runKinetics(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	constants, err := s.eng.KineticConstants()
	if err != nil {
		return s.analysisError(err)
	}
	labels, err := s.eng.VectorLabels()
	if err != nil {
		return s.analysisError(err)
	}
	res := KineticsResult{Labels: labels, Vector: kinetics.Flatten(constants), Constants: constants}

	return s.out.Success(res, func(w io.Writer) error {
		row := 0
		for _, rc := range constants {
			for _, c := range []*kinetics.Constant{&rc.Forward, rc.Reverse} {
				if c == nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", labels[row], c.Symbol, formatFloat(c.Value), c.Source); err != nil {
					return err
				}
				row++
			}
		}
		return nil
	})
}

// RatesResult is the rates command payload.
type RatesResult struct {
	Reactions []string  `json:"reactions"`
	Rates     []float64 `json:"rates"`
}

// NewRatesCommand creates the rates command.
func NewRatesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rates <network-file>",
		Short:         "Evaluate every rate law at the initial state",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRates(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRates(opts *RootOptions, path string, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd, path)
	if err != nil {
		return err
	}
	rates, err := s.eng.Rates()
	if err != nil {
		return s.analysisError(err)
	}
	ids, err := s.eng.ColumnNames()
	if err != nil {
		return s.analysisError(err)
	}
	res := RatesResult{Reactions: ids, Rates: rates}

	return s.out.Success(res, func(w io.Writer) error {
		for j, id := range ids {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", id, formatFloat(rates[j])); err != nil {
				return err
			}
		}
		return nil
	})
}
