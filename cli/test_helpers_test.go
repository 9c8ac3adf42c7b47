// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

const (
	toyFile        = "toy.yaml"
	triangleFile   = "triangle.yaml"
	unresolvedFile = "unresolved.yaml"
)

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}
