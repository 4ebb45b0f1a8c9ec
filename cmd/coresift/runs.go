package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/coresift/internal/report"
	"github.com/fyrsmithlabs/coresift/internal/runs"
)

var (
	probeValues []string
	minLength   uint64
	runsJSON    bool
)

// runsCmd flags long uniform repeated-byte regions
var runsCmd = &cobra.Command{
	Use:   "runs <corpus>",
	Short: "Detect long uniform repeated-byte regions",
	Long: `Scan a memory snapshot for long contiguous runs of a single byte value.
Such regions are the signature of de- or mis-allocated secret-bearing
buffers: canary fills, test patterns, and freed-memory poison values that
should have been overwritten.

Without --byte flags, the default probe set {0xAA, 0x41 'A', 0xCC} is used.
All probed values share a single pass over the corpus.

Examples:
  # Default probe set
  coresift runs core.dump

  # Specific values, lower threshold
  coresift runs core.dump --byte aa --byte 00 --min-length 32`,
	Args: cobra.ExactArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringArrayVar(&probeValues, "byte", nil, "hex byte value to probe (repeatable)")
	runsCmd.Flags().Uint64Var(&minLength, "min-length", 0, "minimum run length to report (default 64)")
	runsCmd.Flags().BoolVar(&runsJSON, "json", false, "emit runs as JSON instead of text")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, logger, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if cmd.Flags().Changed("byte") {
		cfg.Runs.ProbeValues = probeValues
	}
	if cmd.Flags().Changed("min-length") {
		cfg.Runs.MinLength = minLength
	}

	values, err := cfg.ProbeBytes()
	if err != nil {
		return err
	}

	found, err := runs.Detect(cmd.Context(), args[0], values,
		runs.WithChunkSize(cfg.Scan.ChunkSize),
		runs.WithMinLength(cfg.Runs.MinLength),
		runs.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if runsJSON {
		if err := report.WriteJSON(os.Stdout, found); err != nil {
			return fmt.Errorf("failed to encode runs: %w", err)
		}
	} else {
		report.RenderRuns(os.Stdout, found, values, cfg.Runs.MinLength)
	}

	if len(found) > 0 {
		return errTracesFound
	}
	return nil
}
