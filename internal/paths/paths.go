// Package paths resolves the locations of the simulation run configuration
// and the report database.
package paths

import (
	"os"
	"path/filepath"
)

// Well-known names within a simulation output tree.
const (
	RunConfigName = "RunConfig.yaml"
)

// Environment variable overrides.
const (
	EnvRunConfig = "LINKCHECK_RUNCONFIG"
	EnvReportDB  = "LINKCHECK_REPORT_DB"
)

// ResolveRunConfig returns the run configuration path following the
// precedence chain: flag > LINKCHECK_RUNCONFIG env > <resultDir>/RunConfig.yaml.
// The file is not required to exist; the caller tolerates a missing file.
func ResolveRunConfig(flag, resultDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvRunConfig); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(filepath.Join(resultDir, RunConfigName))
}

// ResolveReportDB returns the report database path following the precedence
// chain: flag > LINKCHECK_REPORT_DB env. An empty result means report
// persistence is disabled.
func ResolveReportDB(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(EnvReportDB)
}
