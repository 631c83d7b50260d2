// Run configuration loading for the linkcheck CLI.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Keys read from the simulation's RunConfig.yaml.
const (
	cfgKeyLinkKappa = "linkKappa"
)

// loadRunConfig reads the simulation run configuration using Viper. The
// file belongs to the simulation, not to linkcheck; only the link
// stiffness is surfaced, and a missing file is not an error.
func loadRunConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLinkKappa, 0.0)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("read run config: %w", err)
	}

	return v, nil
}

// parseFrameWindow parses a "first:last" inclusive frame-index window.
// A bare "first" keeps the default upper bound.
func parseFrameWindow(s string, first, last int) (int, int, error) {
	if s == "" {
		return first, last, nil
	}
	lo, hi, found := strings.Cut(s, ":")
	f, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("frame window %q: %v", s, err)
	}
	first = f
	if found {
		l, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("frame window %q: %v", s, err)
		}
		last = l
	}
	return first, last, nil
}
