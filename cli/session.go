// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rxnet/engine"
	"github.com/katalvlaran/rxnet/ingest"
)

// session is one loaded network plus the formatter of the running command.
type session struct {
	out *OutputFormatter
	eng *engine.Engine
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newEngine builds an engine logging to stderr when verbose.
func newEngine(opts *RootOptions, cmd *cobra.Command) *engine.Engine {
	var eopts []engine.Option
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		eopts = append(eopts, engine.WithReporter(engine.NewSlogReporter(logger)))
	}
	if opts.Tolerance > 0 {
		eopts = append(eopts, engine.WithTolerance(opts.Tolerance))
	}

	return engine.New(eopts...)
}

// openSession loads path into a fresh engine. Load failures are written to
// the formatter and returned as ExitCommandError.
func openSession(opts *RootOptions, cmd *cobra.Command, path string) (*session, error) {
	s := &session{out: newFormatter(opts, cmd), eng: newEngine(opts, cmd)}

	s.out.VerboseLog("Loading %s", path)
	m, err := ingest.LoadFile(path)
	if err != nil {
		return nil, s.out.Fail(ExitCommandError, ErrCodeLoad, err)
	}
	if err = s.eng.Load(m); err != nil {
		return nil, s.out.Fail(ExitCommandError, ErrCodeLoad, err)
	}

	return s, nil
}

// analysisError reports a failed query.
func (s *session) analysisError(err error) error {
	return s.out.Fail(ExitFailure, ErrCodeAnalysis, err)
}
