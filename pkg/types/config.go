package types

import "errors"

// Defaults matching the simulation geometry the validator was written
// against: 4 worker partitions, one chain of 20 segments (19 bilateral
// links) per partition, frames 11 through 19 of the discovered list.
const (
	DefaultPattern     = "result/result*/ConBlock_*.pvtp"
	DefaultPartitions  = 4
	DefaultChainLength = 19
	DefaultFrameFirst  = 11
	DefaultFrameLast   = 19
)

// Config validation errors.
var (
	ErrPatternEmpty       = errors.New("file pattern must not be empty")
	ErrPartitionsInvalid  = errors.New("partitions must be positive")
	ErrChainLengthInvalid = errors.New("chain length must be positive")
	ErrFrameWindowInvalid = errors.New("frame window is invalid")
)

// Config holds one validation run's parameters. It is assembled by the CLI
// driver from flags and the run configuration file and passed into the
// pipeline explicitly; core packages never load configuration themselves.
type Config struct {
	// ResultDir is the simulation output root the pattern is joined to.
	ResultDir string `json:"result_dir" yaml:"result_dir"`

	// Pattern is the glob matching one output file per frame.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Partitions is the number of independent chains expected.
	Partitions int `json:"partitions" yaml:"partitions"`

	// ChainLength is the number of bilateral links per chain.
	ChainLength int `json:"chain_length" yaml:"chain_length"`

	// FrameFirst and FrameLast bound (inclusive) the window of discovered
	// frame indices to check.
	FrameFirst int `json:"frame_first" yaml:"frame_first"`
	FrameLast  int `json:"frame_last" yaml:"frame_last"`

	// LinkKappa is the link stiffness from the simulation's RunConfig.
	// Surfaced for the operator; the check itself does not consume it.
	LinkKappa float64 `json:"link_kappa" yaml:"link_kappa"`
}

// DefaultConfig returns a Config with the historical defaults filled in.
func DefaultConfig() Config {
	return Config{
		ResultDir:   ".",
		Pattern:     DefaultPattern,
		Partitions:  DefaultPartitions,
		ChainLength: DefaultChainLength,
		FrameFirst:  DefaultFrameFirst,
		FrameLast:   DefaultFrameLast,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return ErrPatternEmpty
	}
	if c.Partitions <= 0 {
		return ErrPartitionsInvalid
	}
	if c.ChainLength <= 0 {
		return ErrChainLengthInvalid
	}
	if c.FrameFirst < 0 || c.FrameLast < c.FrameFirst {
		return ErrFrameWindowInvalid
	}
	return nil
}
