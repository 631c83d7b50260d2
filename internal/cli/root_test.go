package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

func execute(args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	root := NewRootCmd()
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["check"])
	assert.True(t, names["version"])
}

func TestVersionCommand(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.Contains(t, out, "linkcheck v")
}

func TestCheckRejectsBadGeometry(t *testing.T) {
	_, err := execute("check", t.TempDir(), "--partitions", "0")
	assert.ErrorIs(t, err, types.ErrPartitionsInvalid)

	_, err = execute("check", t.TempDir(), "--chain-length", "-1")
	assert.ErrorIs(t, err, types.ErrChainLengthInvalid)

	_, err = execute("check", t.TempDir(), "--frames", "9:3")
	assert.ErrorIs(t, err, types.ErrFrameWindowInvalid)

	_, err = execute("check", t.TempDir(), "--frames", "abc")
	assert.Error(t, err)
}

func TestCheckNoMatchingFrames(t *testing.T) {
	_, err := execute("check", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no frame files match")
}
