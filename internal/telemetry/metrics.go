// Package telemetry provides Prometheus metrics for scan observability.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pass result label values.
const (
	ResultClean  = "clean"
	ResultLeaked = "leaked"
	ResultError  = "error"
)

var (
	// CorpusBytes counts corpus bytes consumed across all passes.
	CorpusBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coresift",
			Subsystem: "corpus",
			Name:      "bytes_read_total",
			Help:      "Total corpus bytes read across all scan passes",
		},
	)

	// ScanPasses counts matcher passes.
	// Labels: orientation (forward, reversed), result (clean, leaked, error)
	ScanPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coresift",
			Subsystem: "scan",
			Name:      "passes_total",
			Help:      "Total matcher passes by orientation and result",
		},
		[]string{"orientation", "result"},
	)

	// UniformRuns counts uniform repeated-byte runs at or above threshold.
	UniformRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coresift",
			Subsystem: "runs",
			Name:      "detected_total",
			Help:      "Total uniform runs detected at or above the minimum length",
		},
	)

	// RunPasses counts uniform-run detector passes.
	// Labels: result (clean, leaked, error); leaked means blocks were found.
	RunPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coresift",
			Subsystem: "runs",
			Name:      "passes_total",
			Help:      "Total uniform-run detector passes by result",
		},
		[]string{"result"},
	)
)
