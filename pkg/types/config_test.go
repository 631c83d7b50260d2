package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPartitions, cfg.Partitions)
	assert.Equal(t, DefaultChainLength, cfg.ChainLength)
	assert.Equal(t, DefaultFrameFirst, cfg.FrameFirst)
	assert.Equal(t, DefaultFrameLast, cfg.FrameLast)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "empty pattern", mutate: func(c *Config) { c.Pattern = "" }, wantErr: ErrPatternEmpty},
		{name: "zero partitions", mutate: func(c *Config) { c.Partitions = 0 }, wantErr: ErrPartitionsInvalid},
		{name: "negative partitions", mutate: func(c *Config) { c.Partitions = -1 }, wantErr: ErrPartitionsInvalid},
		{name: "zero chain length", mutate: func(c *Config) { c.ChainLength = 0 }, wantErr: ErrChainLengthInvalid},
		{name: "negative frame first", mutate: func(c *Config) { c.FrameFirst = -1 }, wantErr: ErrFrameWindowInvalid},
		{name: "inverted window", mutate: func(c *Config) { c.FrameFirst = 5; c.FrameLast = 4 }, wantErr: ErrFrameWindowInvalid},
		{name: "single-frame window", mutate: func(c *Config) { c.FrameFirst = 5; c.FrameLast = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
