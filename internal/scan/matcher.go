package scan

// matcher counts occurrences of every prefix of one secret orientation in a
// single streaming traversal, using O(N) state.
//
// It is the classical exact-string-matching automaton: fail[k] is the
// length of the longest proper prefix of secret[:k] that is also its
// suffix. Feeding a byte advances the match state, so after consuming
// corpus byte j the state is the length of the longest secret prefix
// ending at j. Tallying that longest length per position and then folding
// each tally down its border chain at the end yields, for every k, the
// exact number of positions where the first k secret bytes occur — the
// same counts a per-position byte-by-byte prefix walk would produce,
// in O(corpus+N) instead of O(corpus*N).
//
// Chunk boundaries need no carry buffer: the automaton state spans them,
// so an occurrence straddling two chunks is counted exactly once and the
// counts are identical for any chunk size. A prefix of length k is only
// ever tallied at a position where all k of its bytes exist, which is the
// required end-of-corpus behavior.
type matcher struct {
	secret []byte
	fail   []int
	state  int
	// occ[l] counts corpus positions whose longest matching secret prefix
	// has length exactly l. occ[0] absorbs non-matching positions and is
	// never read.
	occ []uint64
}

func newMatcher(secret []byte) *matcher {
	n := len(secret)
	fail := make([]int, n+1)
	k := 0
	for i := 1; i < n; i++ {
		for k > 0 && secret[i] != secret[k] {
			k = fail[k]
		}
		if secret[i] == secret[k] {
			k++
		}
		fail[i+1] = k
	}
	return &matcher{
		secret: secret,
		fail:   fail,
		occ:    make([]uint64, n+1),
	}
}

// feed consumes one chunk of corpus bytes.
func (m *matcher) feed(chunk []byte) {
	n := len(m.secret)
	state := m.state
	for _, b := range chunk {
		for state > 0 && m.secret[state] != b {
			state = m.fail[state]
		}
		if m.secret[state] == b {
			state++
		}
		m.occ[state]++
		if state == n {
			// Full match; continue from its longest border so an
			// overlapping occurrence starting inside it is not missed.
			state = m.fail[n]
		}
	}
	m.state = state
}

// counts finalizes and returns the per-prefix-length occurrence counts.
// Every position whose longest match is l also matches each border of
// secret[:l], so tallies propagate down the failure chain.
func (m *matcher) counts() PrefixCounts {
	n := len(m.secret)
	occ := make([]uint64, n+1)
	copy(occ, m.occ)
	for l := n; l >= 2; l-- {
		occ[m.fail[l]] += occ[l]
	}
	counts := make(PrefixCounts, n)
	for k := 1; k <= n; k++ {
		counts[k-1] = occ[k]
	}
	return counts
}
