// Package cli implements the linkcheck command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. A violation is distinguished from an operational failure so
// CI steps can assert on the outcome instead of scraping output.
const (
	exitSuccess     = 0
	exitCheckFailed = 1
	exitSysError    = 2
)

// errCheckFailed marks a completed run whose checked frames did not all
// pass. It maps to exitCheckFailed rather than an error diagnostic.
var errCheckFailed = errors.New("link check failed")

// NewRootCmd creates the top-level "linkcheck" command with all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "linkcheck",
		Short: "Validate chain continuity of partitioned simulation output",
		Long: "Linkcheck reconstructs constraint-link records from per-frame\n" +
			"partitioned geometry files and verifies that bilateral links form\n" +
			"unbroken chains of global identifiers across partitions.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		// Errors are printed by Execute with exit-code mapping.
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, errCheckFailed) {
			os.Exit(exitCheckFailed)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
	os.Exit(exitSuccess)
}
