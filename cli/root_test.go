// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "rxnet", cmd.Use)
	assert.Contains(t, cmd.Long, "reaction networks")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"validate", "stoich", "element", "kinetics", "rates", "conversion", "thermo", "reversibility", "generate"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	tolFlag := cmd.PersistentFlags().Lookup("tolerance")
	require.NotNil(t, tolFlag)
	assert.Equal(t, "0", tolFlag.DefValue)
}

func TestInvalidGlobalFlags(t *testing.T) {
	_, _, err := execute("--format", "xml", "validate", testdata(toyFile))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	for _, tol := range []string{"-1", "inf", "-inf", "NaN"} {
		_, _, err = execute("--tolerance", tol, "thermo", testdata(toyFile))
		require.Error(t, err, tol)
		assert.Contains(t, err.Error(), "invalid tolerance", tol)
	}
}
