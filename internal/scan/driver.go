package scan

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fyrsmithlabs/coresift/internal/corpus"
	"github.com/fyrsmithlabs/coresift/internal/logging"
	"github.com/fyrsmithlabs/coresift/internal/telemetry"
)

// Option customizes a Scan.
type Option func(*options)

type options struct {
	chunkSize int
	logger    *logging.Logger
}

// WithChunkSize sets the corpus read chunk size.
// Default: corpus.DefaultChunkSize (16 MiB).
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithLogger sets the logger for scan progress. Default: nop.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{
		chunkSize: corpus.DefaultChunkSize,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Scan probes the corpus at corpusPath for residual traces of secretBytes
// in both byte orientations and returns the aggregated Verdict.
//
// The secret is validated before any file is opened: an empty secret fails
// with ErrEmptySecret. Any I/O failure aborts the whole analysis — a
// partial or possibly-incomplete leak verdict is worse than no verdict.
//
// The forward and reversed passes each open their own read handle and run
// concurrently; the corpus itself is never mutated.
func Scan(ctx context.Context, corpusPath string, secretBytes []byte, opts ...Option) (*Verdict, error) {
	secret, err := NewSecret(secretBytes)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)

	start := time.Now()
	id := uuid.NewString()
	ctx = logging.WithScanID(ctx, id)
	log := o.logger.Named("scan")

	log.Debug(ctx, "starting analysis",
		zap.String("corpus", corpusPath),
		zap.Int("secret_len", secret.Len()),
		zap.Int("chunk_size", o.chunkSize))

	skipReversed := secret.ReversalRedundant()

	var fwd, rev ScanReport
	var fwdBytes uint64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fwd, fwdBytes, err = runPass(gctx, corpusPath, Forward, secret.Bytes(), o, log)
		return err
	})
	if skipReversed {
		rev = ScanReport{
			Orientation: Reversed,
			Skipped:     true,
			Boundary:    LeakBoundary{State: BoundaryNone},
		}
	} else {
		g.Go(func() error {
			var err error
			rev, _, err = runPass(gctx, corpusPath, Reversed, secret.Reversed(), o, log)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	verdict := &Verdict{
		ID:         id,
		CorpusPath: corpusPath,
		CorpusSize: fwdBytes,
		SecretLen:  secret.Len(),
		Forward:    fwd,
		Reversed:   rev,
		Leaked:     fwd.Leaked || rev.Leaked,
		Duration:   time.Since(start),
	}

	log.Info(ctx, "analysis complete",
		zap.Bool("leaked", verdict.Leaked),
		zap.Int("forward_depth", fwd.Boundary.Depth),
		zap.Int("reversed_depth", rev.Boundary.Depth),
		zap.Uint64("corpus_size", verdict.CorpusSize),
		zap.Duration("duration", verdict.Duration))

	return verdict, nil
}

// runPass executes one orientation's full traversal of the corpus.
func runPass(ctx context.Context, path string, orient Orientation, needle []byte, o options, log *logging.Logger) (ScanReport, uint64, error) {
	r, err := corpus.Open(path, o.chunkSize)
	if err != nil {
		telemetry.ScanPasses.WithLabelValues(string(orient), telemetry.ResultError).Inc()
		return ScanReport{}, 0, err
	}
	defer r.Close()

	m := newMatcher(needle)
	for {
		chunk, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			telemetry.ScanPasses.WithLabelValues(string(orient), telemetry.ResultError).Inc()
			return ScanReport{}, 0, fmt.Errorf("%s pass: %w", orient, err)
		}
		m.feed(chunk)
		telemetry.CorpusBytes.Add(float64(len(chunk)))
		log.Trace(ctx, "chunk consumed",
			zap.String("orientation", string(orient)),
			zap.Uint64("offset", r.BytesRead()))
	}

	counts := m.counts()
	boundary := classify(counts)
	report := ScanReport{
		Orientation: orient,
		Counts:      counts,
		Boundary:    boundary,
		Leaked:      counts.At(len(needle)) > 0,
	}

	result := telemetry.ResultClean
	if report.Leaked {
		result = telemetry.ResultLeaked
	}
	telemetry.ScanPasses.WithLabelValues(string(orient), result).Inc()

	log.Debug(ctx, "pass complete",
		zap.String("orientation", string(orient)),
		zap.Int("boundary", boundary.Depth),
		zap.String("state", string(boundary.State)),
		zap.Bool("leaked", report.Leaked),
		zap.Uint64("bytes", r.BytesRead()))

	return report, r.BytesRead(), nil
}
