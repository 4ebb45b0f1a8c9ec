package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		logger, err := NewLogger(NewDefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Format = "xml"
		_, err := NewLogger(cfg)
		assert.Error(t, err)
	})

	t.Run("constant fields attached", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Fields = map[string]string{"component": "scanner"}
		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"trace", TraceLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"bogus", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := LevelFromString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextFields(t *testing.T) {
	t.Run("scan ID injected", func(t *testing.T) {
		logger := NewTestLogger()
		ctx := WithScanID(context.Background(), "scan-123")

		logger.Info(ctx, "pass complete", zap.Uint64("bytes", 42))

		entries := logger.All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "scan-123", fields["scan.id"])
		assert.Equal(t, uint64(42), fields["bytes"])
	})

	t.Run("empty context adds nothing", func(t *testing.T) {
		assert.Empty(t, ContextFields(context.Background()))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		logger := NewTestLogger()
		ctx := WithLogger(context.Background(), logger.Logger)
		assert.Same(t, logger.Logger, FromContext(ctx))
	})

	t.Run("returns nop when absent", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestTraceLevel(t *testing.T) {
	logger := NewTestLogger()
	ctx := context.Background()

	logger.Trace(ctx, "chunk consumed")
	logger.AssertLogged(t, TraceLevel, "chunk consumed")
}
