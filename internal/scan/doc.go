// Package scan implements forensic detection of residual secret material in
// a memory snapshot.
//
// Given a secret of N bytes, a scan answers one question precisely: to what
// byte-depth does the secret's prefix still appear in the corpus? For every
// prefix length k in 1..N the scan counts the corpus positions whose bytes
// match the secret's first k bytes exactly, overlapping occurrences
// included. The largest k with a nonzero count is the leak boundary; a
// nonzero count at depth N means the full secret survived in memory.
//
// Multi-byte numeric secrets may have been written in either byte order
// depending on the architecture that stored them, so Scan probes the secret
// as supplied and byte-reversed, and reports a leak if either orientation
// is found. The two passes are independent read-only traversals and run
// concurrently, each over its own corpus reader.
//
// Matching is streaming with O(N) state regardless of corpus size, so
// corpora far larger than addressable memory scan in one traversal.
package scan
