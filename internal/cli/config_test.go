package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrameWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst int
		wantLast  int
		wantErr   bool
	}{
		{name: "empty keeps defaults", input: "", wantFirst: 11, wantLast: 19},
		{name: "full window", input: "3:7", wantFirst: 3, wantLast: 7},
		{name: "bare first", input: "5", wantFirst: 5, wantLast: 19},
		{name: "spaces tolerated", input: " 2 : 4 ", wantFirst: 2, wantLast: 4},
		{name: "garbage first", input: "x:4", wantErr: true},
		{name: "garbage last", input: "2:y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := parseFrameWindow(tt.input, 11, 19)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestLoadRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "RunConfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte("linkKappa: 200.0\nviscosity: 1.0\n"), 0o644))

	v, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v.GetFloat64(cfgKeyLinkKappa))
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	v, err := loadRunConfig(filepath.Join(t.TempDir(), "RunConfig.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.GetFloat64(cfgKeyLinkKappa))
}

func TestLoadRunConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "RunConfig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t["), 0o644))

	_, err := loadRunConfig(path)
	assert.Error(t, err)
}
