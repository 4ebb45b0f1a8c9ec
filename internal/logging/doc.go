// Package logging provides structured logging for coresift.
//
// # Overview
//
// Logging wraps Zap with:
//   - Custom Trace level (-2, below Debug) for byte-level scan detail
//   - Automatic context field injection (scan ID)
//   - Console or JSON output
//
// # Usage
//
// Create logger from config:
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Sync()
//
// Log with context:
//
//	ctx := logging.WithScanID(ctx, verdict.ID)
//	logger.Info(ctx, "pass complete", zap.Uint64("bytes", n))
//
// Output includes automatic correlation:
//
//	{
//	  "ts": "2026-08-30T10:15:30Z",
//	  "level": "info",
//	  "msg": "pass complete",
//	  "scan.id": "7c0b...",
//	  "bytes": 1048576
//	}
package logging
