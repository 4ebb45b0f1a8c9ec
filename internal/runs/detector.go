package runs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/coresift/internal/corpus"
	"github.com/fyrsmithlabs/coresift/internal/logging"
	"github.com/fyrsmithlabs/coresift/internal/telemetry"
)

// Validation errors, rejected before any corpus I/O.
var (
	// ErrNoProbeValues indicates an empty probe byte-value set.
	ErrNoProbeValues = errors.New("at least one probe byte value is required")

	// ErrInvalidMinLength indicates a zero minimum run length.
	ErrInvalidMinLength = errors.New("minimum run length must be positive")
)

// DefaultMinLength is the minimum run length reported when none is
// configured. Shorter runs of fill bytes occur naturally; 64 bytes is the
// smallest buffer worth flagging.
const DefaultMinLength = 64

// DefaultProbeSet are the byte values probed when the caller names none:
// 0xAA (canary fill), 0x41 'A' (test pattern), 0xCC (freed-memory poison).
func DefaultProbeSet() []byte {
	return []byte{0xAA, 0x41, 0xCC}
}

// Run is a maximal contiguous run of one repeated byte value.
type Run struct {
	// Value is the repeated byte.
	Value byte `json:"value"`

	// Offset is the absolute corpus offset of the run's first byte.
	Offset uint64 `json:"offset"`

	// Length is the run length in bytes, always >= the configured minimum.
	Length uint64 `json:"length"`
}

// Option customizes Detect.
type Option func(*options)

type options struct {
	chunkSize int
	minLength uint64
	logger    *logging.Logger
}

// WithChunkSize sets the corpus read chunk size.
// Default: corpus.DefaultChunkSize (16 MiB).
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithMinLength sets the minimum run length to report.
// Default: DefaultMinLength (64).
func WithMinLength(n uint64) Option {
	return func(o *options) { o.minLength = n }
}

// WithLogger sets the logger for detector progress. Default: nop.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Detect scans the corpus once and returns every maximal run of a probed
// byte value whose length is at least the configured minimum, in ascending
// offset order.
//
// A run may span any number of chunk boundaries; the in-progress run state
// is carried between chunks and the still-open run at end-of-corpus is
// closed and evaluated like any other.
func Detect(ctx context.Context, corpusPath string, values []byte, opts ...Option) ([]Run, error) {
	if len(values) == 0 {
		return nil, ErrNoProbeValues
	}
	o := options{
		chunkSize: corpus.DefaultChunkSize,
		minLength: DefaultMinLength,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minLength == 0 {
		return nil, ErrInvalidMinLength
	}
	log := o.logger.Named("runs")

	var probed [256]bool
	for _, v := range values {
		probed[v] = true
	}

	r, err := corpus.Open(corpusPath, o.chunkSize)
	if err != nil {
		telemetry.RunPasses.WithLabelValues(telemetry.ResultError).Inc()
		return nil, err
	}
	defer r.Close()

	var found []Run
	d := detector{probed: probed, minLength: o.minLength}
	for {
		chunk, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			telemetry.RunPasses.WithLabelValues(telemetry.ResultError).Inc()
			return nil, fmt.Errorf("uniform-run pass: %w", err)
		}
		// Absolute offset of chunk[0].
		base := r.BytesRead() - uint64(len(chunk))
		found = d.feed(found, chunk, base)
		telemetry.CorpusBytes.Add(float64(len(chunk)))
	}
	found = d.close(found)

	telemetry.UniformRuns.Add(float64(len(found)))
	result := telemetry.ResultClean
	if len(found) > 0 {
		result = telemetry.ResultLeaked
	}
	telemetry.RunPasses.WithLabelValues(result).Inc()

	log.Debug(ctx, "uniform-run pass complete",
		zap.Int("runs", len(found)),
		zap.Uint64("corpus_size", r.BytesRead()),
		zap.Uint64("min_length", o.minLength))

	return found, nil
}

// detector tracks the single in-progress run across chunk boundaries.
// Runs of distinct byte values cannot overlap, so one tracker covers every
// probed value in the same pass.
type detector struct {
	probed    [256]bool
	minLength uint64

	active bool
	value  byte
	start  uint64
	length uint64
}

func (d *detector) feed(found []Run, chunk []byte, base uint64) []Run {
	for i, b := range chunk {
		if d.active && b == d.value {
			d.length++
			continue
		}
		found = d.close(found)
		d.active = true
		d.value = b
		d.start = base + uint64(i)
		d.length = 1
	}
	return found
}

// close evaluates and resets the in-progress run, if any.
func (d *detector) close(found []Run) []Run {
	if d.active && d.probed[d.value] && d.length >= d.minLength {
		found = append(found, Run{Value: d.value, Offset: d.start, Length: d.length})
	}
	d.active = false
	d.length = 0
	return found
}
