// Package main implements the coresift CLI for forensic analysis of raw
// memory snapshots (core dumps and similar flat binary blobs).
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/coresift/internal/config"
	"github.com/fyrsmithlabs/coresift/internal/logging"
)

var (
	// persistent flag storage
	cfgPath     string
	chunkSize   int
	logLevel    string
	logFormat   string
	metricsAddr string

	// version information
	version = "dev"
)

// errTracesFound signals the exit-code-1 outcome: the analysis succeeded
// and found something. Distinct from real errors, which exit 2.
var errTracesFound = errors.New("traces found")

var rootCmd = &cobra.Command{
	Use:   "coresift",
	Short: "Forensic scanner for residual secrets in memory snapshots",
	Long: `coresift scans a raw memory snapshot (a core dump or similar flat binary
blob) for forensic evidence of residual secret material.

Exit codes: 0 when the corpus is clean, 1 when traces or suspicious blocks
were found, 2 on usage or runtime errors.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/coresift/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 0, "corpus read chunk size in bytes (default 16 MiB)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while scanning")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(runsCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errTracesFound) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return 0
}

// setup loads configuration, applies flag overrides, and builds the logger
// and optional metrics listener. The returned cleanup must run before exit.
func setup(cmd *cobra.Command) (*config.Config, *logging.Logger, func(), error) {
	cfg, err := config.LoadWithFile(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if cmd.Flags().Changed("chunk-size") {
		cfg.Scan.ChunkSize = chunkSize
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.NewLogger(cfg.LoggerConfig())
	if err != nil {
		return nil, nil, nil, err
	}

	stopMetrics := func() {}
	if metricsAddr != "" {
		stopMetrics = startMetrics(metricsAddr, logger)
	}

	cleanup := func() {
		stopMetrics()
		_ = logger.Sync()
	}
	return cfg, logger, cleanup, nil
}

// startMetrics serves /metrics for the duration of the analysis so long
// scans can be watched from Prometheus.
func startMetrics(addr string, logger *logging.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "metrics listener failed: %v\n", err)
		}
	}()

	return func() { _ = srv.Close() }
}
