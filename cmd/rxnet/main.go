// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/rxnet/cli"
)

// main is the entrypoint for the rxnet command.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Error())
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCommandError)
	}
}

// run executes the root command against the given writers and arguments.
func run(outW, errW io.Writer, args []string) error {
	cmd := cli.NewRootCommand()
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)

	return cmd.Execute()
}
