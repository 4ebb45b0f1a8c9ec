package scan

import "time"

// Orientation identifies the byte-order interpretation of a scanned secret.
type Orientation string

const (
	// Forward scans the secret as supplied (big-endian for numeric values
	// written as hex text).
	Forward Orientation = "forward"

	// Reversed scans the byte-order-reversed secret (little-endian).
	Reversed Orientation = "reversed"
)

// PrefixCounts maps prefix length k (1..N) to the number of corpus
// positions whose bytes match the secret's first k bytes exactly.
// Element i holds the count for prefix length i+1. Overlapping occurrences
// are all counted, and counts are monotonically non-increasing in k.
type PrefixCounts []uint64

// At returns the count for prefix length k (1-based). Out-of-range k
// returns 0.
func (p PrefixCounts) At(k int) uint64 {
	if k < 1 || k > len(p) {
		return 0
	}
	return p[k-1]
}

// Monotonic reports whether counts never increase with k. Exact-prefix
// matching cannot produce a violation; tests assert this rather than
// assume it.
func (p PrefixCounts) Monotonic() bool {
	for i := 1; i < len(p); i++ {
		if p[i] > p[i-1] {
			return false
		}
	}
	return true
}

// BoundaryState classifies how much of the secret survives in the corpus.
type BoundaryState string

const (
	// BoundaryNone means not even the first byte of the secret appears.
	BoundaryNone BoundaryState = "none"

	// BoundaryPartial means a proper prefix survives but the full secret
	// does not.
	BoundaryPartial BoundaryState = "partial"

	// BoundaryFull means the complete secret was found.
	BoundaryFull BoundaryState = "full"
)

// LeakBoundary is the deepest surviving prefix of the secret.
type LeakBoundary struct {
	// Depth is the largest k with PrefixCounts[k] > 0; 0 if none.
	Depth int `json:"depth"`

	// State distinguishes never-present (0) from partially present
	// (0 < depth < N) from fully present (depth == N).
	State BoundaryState `json:"state"`
}

// ScanReport is the outcome of one orientation's pass over the corpus.
type ScanReport struct {
	// Orientation identifies which byte order this report covers.
	Orientation Orientation `json:"orientation"`

	// Skipped is true when the pass was not run because the reversed
	// orientation is byte-identical to the forward one (single byte or
	// palindrome). Distinguishes "not scanned" from "scanned, clean".
	Skipped bool `json:"skipped,omitempty"`

	// Counts holds the per-prefix-length occurrence counts. Nil when
	// Skipped.
	Counts PrefixCounts `json:"counts,omitempty"`

	// Boundary is the leak boundary derived from Counts.
	Boundary LeakBoundary `json:"boundary"`

	// Leaked is true when the full-length secret occurs at least once.
	Leaked bool `json:"leaked"`
}

// Verdict aggregates the forward and reversed reports for one secret.
type Verdict struct {
	// ID correlates this analysis across logs and reports.
	ID string `json:"id"`

	// CorpusPath is the scanned snapshot file.
	CorpusPath string `json:"corpus_path"`

	// CorpusSize is the total bytes scanned per pass.
	CorpusSize uint64 `json:"corpus_size"`

	// SecretLen is N, the secret length in bytes.
	SecretLen int `json:"secret_len"`

	// Forward and Reversed are the per-orientation reports.
	Forward  ScanReport `json:"forward"`
	Reversed ScanReport `json:"reversed"`

	// Leaked is true if either orientation found the full secret.
	Leaked bool `json:"leaked"`

	// Duration is the wall time of the whole analysis.
	Duration time.Duration `json:"duration"`
}
