// Package config provides configuration loading for coresift.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/coresift/internal/corpus"
	"github.com/fyrsmithlabs/coresift/internal/hexpattern"
	"github.com/fyrsmithlabs/coresift/internal/logging"
	"github.com/fyrsmithlabs/coresift/internal/runs"
)

// Config is the root configuration.
type Config struct {
	Scan    ScanConfig    `koanf:"scan"`
	Runs    RunsConfig    `koanf:"runs"`
	Logging LoggingConfig `koanf:"logging"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ScanConfig controls secret scanning.
type ScanConfig struct {
	// ChunkSize is the corpus read chunk size in bytes.
	ChunkSize int `koanf:"chunk_size"`
}

// RunsConfig controls uniform-run detection.
type RunsConfig struct {
	// MinLength is the minimum run length to report.
	MinLength uint64 `koanf:"min_length"`

	// ProbeValues are hex byte values to probe (e.g. ["aa", "41", "cc"]).
	ProbeValues []string `koanf:"probe_values"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is trace, debug, info, warn, or error.
	Level string `koanf:"level"`

	// Format is console or json.
	Format string `koanf:"format"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	// Addr is the listen address (e.g. "127.0.0.1:9187"). Empty disables
	// the listener.
	Addr string `koanf:"addr"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Scan.ChunkSize == 0 {
		cfg.Scan.ChunkSize = corpus.DefaultChunkSize
	}
	if cfg.Runs.MinLength == 0 {
		cfg.Runs.MinLength = runs.DefaultMinLength
	}
	if len(cfg.Runs.ProbeValues) == 0 {
		for _, v := range runs.DefaultProbeSet() {
			cfg.Runs.ProbeValues = append(cfg.Runs.ProbeValues, fmt.Sprintf("%02x", v))
		}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Scan.ChunkSize <= 0 {
		return fmt.Errorf("scan.chunk_size must be positive, got %d", c.Scan.ChunkSize)
	}
	if c.Runs.MinLength == 0 {
		return fmt.Errorf("runs.min_length must be positive")
	}
	if _, err := c.ProbeBytes(); err != nil {
		return err
	}
	if _, err := logging.LevelFromString(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging.format %q (must be console or json)", c.Logging.Format)
	}
	return nil
}

// ProbeBytes decodes the configured probe values into raw bytes.
func (c *Config) ProbeBytes() ([]byte, error) {
	values := make([]byte, 0, len(c.Runs.ProbeValues))
	for _, s := range c.Runs.ProbeValues {
		b, err := hexpattern.Parse(s)
		if err != nil || len(b) != 1 {
			return nil, fmt.Errorf("invalid runs.probe_values entry %q (must be one hex byte)", s)
		}
		values = append(values, b[0])
	}
	return values, nil
}

// LoggerConfig converts the logging section into a logging.Config.
// Validate must have succeeded first.
func (c *Config) LoggerConfig() *logging.Config {
	lc := logging.NewDefaultConfig()
	level, _ := logging.LevelFromString(c.Logging.Level)
	lc.Level = level
	lc.Format = c.Logging.Format
	return lc
}
