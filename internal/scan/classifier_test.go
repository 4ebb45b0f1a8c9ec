package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		counts PrefixCounts
		want   LeakBoundary
	}{
		{
			name:   "never present",
			counts: PrefixCounts{0, 0, 0},
			want:   LeakBoundary{Depth: 0, State: BoundaryNone},
		},
		{
			name:   "partially present",
			counts: PrefixCounts{12, 3, 0, 0},
			want:   LeakBoundary{Depth: 2, State: BoundaryPartial},
		},
		{
			name:   "fully present",
			counts: PrefixCounts{9, 4, 1},
			want:   LeakBoundary{Depth: 3, State: BoundaryFull},
		},
		{
			name:   "single byte present",
			counts: PrefixCounts{1},
			want:   LeakBoundary{Depth: 1, State: BoundaryFull},
		},
		{
			name:   "single byte absent",
			counts: PrefixCounts{0},
			want:   LeakBoundary{Depth: 0, State: BoundaryNone},
		},
		{
			// Impossible under exact-prefix matching; the boundary is
			// defined strictly as the largest k with count > 0, so a dip
			// must not trigger it.
			name:   "non-monotonic dip is informational only",
			counts: PrefixCounts{5, 0, 2, 0},
			want:   LeakBoundary{Depth: 3, State: BoundaryPartial},
		},
		{
			name:   "full match wins regardless of interior zeros",
			counts: PrefixCounts{5, 0, 1},
			want:   LeakBoundary{Depth: 3, State: BoundaryFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.counts))
		})
	}
}
