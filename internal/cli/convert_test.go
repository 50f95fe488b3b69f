package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forceviz/graphprep"
)

// TestConvertCmd runs the convert command against a SNAP-style edge list
// on disk and checks the emitted graph document.
func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "edges.txt")
	require.NoError(t, os.WriteFile(in, []byte("0 1\n0 2\n1 2\nnoise line\n"), 0o644))

	var out, errOut bytes.Buffer
	cmd := convertCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{in})
	require.NoError(t, cmd.Execute())

	raw, err := graphprep.DecodeGraph(&out)
	require.NoError(t, err)
	require.Len(t, raw.Nodes, 3)
	require.Len(t, raw.Links, 3)
	require.Equal(t, "0", raw.Nodes[0].ID)
}

// TestConvertCmd_OutFile writes to --out and reports on stderr.
func TestConvertCmd_OutFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "edges.txt")
	outFile := filepath.Join(dir, "graph.json")
	require.NoError(t, os.WriteFile(in, []byte("a b\n"), 0o644))

	var errOut bytes.Buffer
	cmd := convertCmd()
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{in, "--out", outFile})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()

	raw, err := graphprep.DecodeGraph(f)
	require.NoError(t, err)
	require.Len(t, raw.Nodes, 2)
	require.Len(t, raw.Links, 1)
}
