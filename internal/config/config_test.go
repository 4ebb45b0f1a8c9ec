package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/coresift/internal/corpus"
	"github.com/fyrsmithlabs/coresift/internal/runs"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, corpus.DefaultChunkSize, cfg.Scan.ChunkSize)
	assert.Equal(t, uint64(runs.DefaultMinLength), cfg.Runs.MinLength)
	assert.Equal(t, []string{"aa", "41", "cc"}, cfg.Runs.ProbeValues)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Metrics.Addr)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("negative chunk size", func(t *testing.T) {
		cfg := Default()
		cfg.Scan.ChunkSize = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero min length", func(t *testing.T) {
		cfg := Default()
		cfg.Runs.MinLength = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad probe value", func(t *testing.T) {
		cfg := Default()
		cfg.Runs.ProbeValues = []string{"not-hex"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("multi-byte probe value", func(t *testing.T) {
		cfg := Default()
		cfg.Runs.ProbeValues = []string{"aabb"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Format = "xml"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_ProbeBytes(t *testing.T) {
	cfg := Default()
	cfg.Runs.ProbeValues = []string{"aa", "0x41", "CC"}

	values, err := cfg.ProbeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x41, 0xCC}, values)
}

func TestConfig_LoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	lc := cfg.LoggerConfig()
	assert.Equal(t, zapcore.DebugLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoadWithFile_EnvOverride(t *testing.T) {
	// No config file exists at the default path in a test environment;
	// defaults plus environment apply.
	t.Setenv("SCAN_CHUNK_SIZE", "1048576")
	t.Setenv("RUNS_MIN_LENGTH", "32")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := LoadWithFile("")
	require.NoError(t, err)

	assert.Equal(t, 1048576, cfg.Scan.ChunkSize)
	assert.Equal(t, uint64(32), cfg.Runs.MinLength)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithFile_RejectsForeignPath(t *testing.T) {
	_, err := LoadWithFile("/tmp/evil.yaml")
	assert.Error(t, err)
}
