package scan

// classify derives the leak boundary from one orientation's prefix counts.
//
// The boundary is defined strictly as the largest k with counts[k] > 0.
// Exact-prefix matching makes the counts monotonically non-increasing, so
// a zero can never be followed by a nonzero; if an implementation defect
// ever produced such a dip it would be informational only and must not
// move the boundary.
func classify(counts PrefixCounts) LeakBoundary {
	n := len(counts)
	depth := 0
	for k := n; k >= 1; k-- {
		if counts.At(k) > 0 {
			depth = k
			break
		}
	}

	switch {
	case depth == 0:
		return LeakBoundary{Depth: 0, State: BoundaryNone}
	case depth == n:
		return LeakBoundary{Depth: n, State: BoundaryFull}
	default:
		return LeakBoundary{Depth: depth, State: BoundaryPartial}
	}
}
