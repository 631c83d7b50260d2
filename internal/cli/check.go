package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/linkcheck/internal/check"
	"github.com/mesh-intelligence/linkcheck/internal/frames"
	"github.com/mesh-intelligence/linkcheck/internal/paths"
	"github.com/mesh-intelligence/linkcheck/internal/sqlite"
	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// checkFlags holds the flag values for the check subcommand.
type checkFlags struct {
	runConfig   string
	pattern     string
	partitions  int
	chainLength int
	frames      string
	reportDB    string
	verbose     bool
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [resultDir]",
		Short: "Check chain continuity over a range of frames",
		Long: "Check discovers per-frame output files under resultDir (default\n" +
			"\".\"), reconstructs each frame's constraint-link records, and verifies\n" +
			"that bilateral links form continuous chains. Exit code 0 means every\n" +
			"checked frame passed, 1 means violations were found, 2 means a frame\n" +
			"could not be read or checked.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resultDir := "."
			if len(args) == 1 {
				resultDir = args[0]
			}
			return runCheck(cmd, resultDir, flags)
		},
	}

	cmd.Flags().StringVar(&flags.runConfig, "run-config", "", "simulation RunConfig.yaml (default: <resultDir>/RunConfig.yaml)")
	cmd.Flags().StringVar(&flags.pattern, "pattern", types.DefaultPattern, "glob matching one output file per frame, relative to resultDir")
	cmd.Flags().IntVar(&flags.partitions, "partitions", types.DefaultPartitions, "number of independent chains expected")
	cmd.Flags().IntVar(&flags.chainLength, "chain-length", types.DefaultChainLength, "bilateral links per chain")
	cmd.Flags().StringVar(&flags.frames, "frames", "", fmt.Sprintf("inclusive frame-index window \"first:last\" (default %d:%d)", types.DefaultFrameFirst, types.DefaultFrameLast))
	cmd.Flags().StringVar(&flags.reportDB, "report-db", "", "SQLite database to append the run report to")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "print one line per examined adjacency")

	return cmd
}

// runCheck drives the full pipeline: config, discovery, per-frame
// reconstruction and check, aggregate outcome.
func runCheck(cmd *cobra.Command, resultDir string, flags checkFlags) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg := types.DefaultConfig()
	cfg.ResultDir = resultDir
	cfg.Pattern = flags.pattern
	cfg.Partitions = flags.partitions
	cfg.ChainLength = flags.chainLength

	first, last, err := parseFrameWindow(flags.frames, cfg.FrameFirst, cfg.FrameLast)
	if err != nil {
		return err
	}
	cfg.FrameFirst, cfg.FrameLast = first, last

	if err := cfg.Validate(); err != nil {
		return err
	}

	// The run configuration belongs to the simulation; only the link
	// stiffness is surfaced here, the check does not consume it.
	runConfigPath, err := paths.ResolveRunConfig(flags.runConfig, resultDir)
	if err != nil {
		return err
	}
	runCfg, err := loadRunConfig(runConfigPath)
	if err != nil {
		return err
	}
	cfg.LinkKappa = runCfg.GetFloat64(cfgKeyLinkKappa)
	fmt.Fprintf(out, "linkKappa: %g\n", cfg.LinkKappa)

	files, skipped, err := frames.Discover(resultDir, cfg.Pattern)
	if err != nil {
		return err
	}
	for _, path := range skipped {
		fmt.Fprintf(errOut, "skipping %s: no frame number before extension\n", path)
	}
	if len(files) == 0 {
		return fmt.Errorf("no frame files match %q under %s", cfg.Pattern, resultDir)
	}

	checker := check.Checker{
		Partitions:  cfg.Partitions,
		ChainLength: cfg.ChainLength,
	}
	if flags.verbose {
		checker.Trace = out
	}

	// Clamp the window to the discovered list, matching slice semantics:
	// a window past the end checks nothing rather than failing.
	lo, hi := cfg.FrameFirst, cfg.FrameLast
	if hi > len(files)-1 {
		hi = len(files) - 1
	}

	var summary check.Summary
	for i := lo; i <= hi; i++ {
		file := files[i]
		frame, err := frames.Load(file)
		if err != nil {
			fmt.Fprintf(errOut, "frame %d: %v\n", file.Number, err)
			summary.AddError()
			continue
		}
		report, err := checker.Check(frame)
		if err != nil {
			fmt.Fprintf(errOut, "frame %d: %v\n", file.Number, err)
			summary.AddError()
			continue
		}
		summary.Add(report)

		status := "PASS"
		if !report.Passed() {
			status = fmt.Sprintf("FAIL (%d violations)", len(report.Violations))
		}
		fmt.Fprintf(out, "frame %d (%s): %d records, %d bilateral, %s\n",
			report.FrameNumber, report.Path, report.Records, report.Bilateral, status)
		for _, v := range report.Violations {
			fmt.Fprintf(out, "  link error: %s\n", v)
		}
	}

	fmt.Fprintf(out, "checked %d frames, %d errored, %d violations\n",
		len(summary.Reports), summary.Errored, summary.TotalViolations())

	if dbPath := paths.ResolveReportDB(flags.reportDB); dbPath != "" {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		runID, err := store.SaveRun(cfg, &summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "report saved: run %s in %s\n", runID, dbPath)
	}

	if summary.Errored > 0 {
		return fmt.Errorf("%d of %d frames could not be checked", summary.Errored,
			summary.Errored+len(summary.Reports))
	}
	if !summary.Passed() {
		return errCheckFailed
	}
	return nil
}
