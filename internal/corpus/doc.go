// Package corpus provides chunked, memory-bounded sequential reading of raw
// memory snapshots (core dumps or similar flat binary blobs).
//
// A Reader yields the file's bytes as a lazy, finite, non-restartable
// sequence of chunks and tracks the absolute offset consumed so far, so
// callers can translate positions inside a chunk into absolute corpus
// offsets. Corpora are routinely far larger than addressable memory; a
// Reader never holds more than one chunk.
package corpus
