// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rxnet/ingest"
)

func TestGenerate_YAMLRoundTrip(t *testing.T) {
	out, _, err := execute("generate", "--topology", "chain", "-n", "3", "--reversible", "--rate-min", "2", "--rate-max", "2", "--id", "gen")
	require.NoError(t, err)

	doc, err := ingest.DecodeYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "gen", doc.ID)
	require.Len(t, doc.Species, 3)
	require.Len(t, doc.Reactions, 2)
	assert.Equal(t, "kf_R1*S0 - kr_R1*S1", doc.Reactions[0].KineticLaw)
	assert.Equal(t, []ingest.Parameter{{ID: "kf_R1", Value: 2}, {ID: "kr_R1", Value: 2}}, doc.Reactions[0].LocalParameters)

	m, err := ingest.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, m.ReactionIDs())
}

func TestGenerate_ToFileThenAnalyse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")

	out, _, err := execute("generate", "--topology", "ring", "-n", "4", "--reversible", "--thermo",
		"--rate-min", "0.1", "--rate-max", "10", "--seed", "5", "--exchange", "-o", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ wrote "+path+": 4 species, 8 reactions\n", out)

	out, _, err = execute("validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 species, 8 reactions (4 boundary)")

	out, _, err = execute("thermo", path)
	require.NoError(t, err)
	assert.Contains(t, out, "compatible: true\n")
	// The ring closes one cycle; the inflows are open and add none.
	assert.Contains(t, out, "cycles: 1\n")
}

func TestGenerate_ExchangeWithoutThermo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")

	_, _, err := execute("generate", "--topology", "chain", "-n", "3", "--reversible",
		"--rate-min", "0.1", "--rate-max", "10", "--seed", "7", "--exchange", "-o", path)
	require.NoError(t, err)

	out, _, err := execute("thermo", path)
	require.NoError(t, err)
	assert.Contains(t, out, "compatible: true\n")
	assert.Contains(t, out, "cycles: 0\n")
}

func TestGenerate_JSON(t *testing.T) {
	out, _, err := execute("--format", "json", "generate", "--topology", "star", "-n", "3")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   ingest.Network `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "generated", resp.Data.ID)
	require.Len(t, resp.Data.Reactions, 2)
	assert.Equal(t, "S0", resp.Data.Reactions[1].Reactants[0].Species)
	assert.Equal(t, "S2", resp.Data.Reactions[1].Products[0].Species)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown topology", []string{"generate", "--topology", "tree"}},
		{"too few species", []string{"generate", "--topology", "ring", "-n", "2"}},
		{"bad probability", []string{"generate", "--topology", "random", "--p", "2"}},
		{"zero rate", []string{"generate", "--rate-min", "0"}},
		{"inverted rates", []string{"generate", "--rate-min", "3", "--rate-max", "1"}},
		{"infinite rates", []string{"generate", "--rate-min", "inf", "--rate-max", "inf"}},
		{"infinite upper rate", []string{"generate", "--rate-max", "inf"}},
		{"NaN upper rate", []string{"generate", "--rate-max", "NaN"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(tc.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error ["+ErrCodeArgs+"]")
		})
	}
}
