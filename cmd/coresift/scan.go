package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/coresift/internal/hexpattern"
	"github.com/fyrsmithlabs/coresift/internal/report"
	"github.com/fyrsmithlabs/coresift/internal/scan"
)

var (
	patternHex  string
	patternFile string
	reportEvery int
	maxLines    int
	scanJSON    bool
)

// scanCmd probes a snapshot for a secret at every prefix depth
var scanCmd = &cobra.Command{
	Use:   "scan <corpus>",
	Short: "Probe a snapshot for residual secret material",
	Long: `Scan a memory snapshot for progressively longer prefixes of a secret to
determine the exact byte-depth at which the secret stops being present.

Multi-byte values are probed in both byte orders, since the value may have
been stored big- or little-endian depending on the architecture that wrote
it.

Examples:
  # Probe for a key read from a hex file
  coresift scan core.dump --pattern-file master_key.hex

  # Probe for an inline value
  coresift scan core.dump --pattern 0xdeadbeef

  # Machine-readable output, every 4th prefix on the console
  coresift scan core.dump --pattern-file key.hex --json
  coresift scan core.dump --pattern-file key.hex --report-every 4`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&patternHex, "pattern", "", "secret as hex text")
	scanCmd.Flags().StringVar(&patternFile, "pattern-file", "", "file containing the secret as hex text")
	scanCmd.Flags().IntVar(&reportEvery, "report-every", 1, "print every n-th prefix line")
	scanCmd.Flags().IntVar(&maxLines, "max-lines", 200, "cap prefix lines per orientation (0 = no cap)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit the verdict as JSON instead of text")
	scanCmd.MarkFlagsMutuallyExclusive("pattern", "pattern-file")
	scanCmd.MarkFlagsOneRequired("pattern", "pattern-file")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, logger, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	secret, err := readPattern()
	if err != nil {
		return err
	}

	verdict, err := scan.Scan(cmd.Context(), args[0], secret,
		scan.WithChunkSize(cfg.Scan.ChunkSize),
		scan.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if scanJSON {
		if err := report.WriteJSON(os.Stdout, verdict); err != nil {
			return fmt.Errorf("failed to encode verdict: %w", err)
		}
	} else {
		report.RenderVerdict(os.Stdout, verdict, secret, report.Options{
			ReportEvery: reportEvery,
			MaxLines:    maxLines,
		})
	}

	if verdict.Leaked {
		return errTracesFound
	}
	return nil
}

func readPattern() ([]byte, error) {
	if patternFile != "" {
		return hexpattern.ReadFile(patternFile)
	}
	return hexpattern.Parse(patternHex)
}
