// Package runs detects long uniform regions of one repeated byte value in a
// memory snapshot.
//
// Large, unnaturally uniform regions are the signature of de- or
// mis-allocated secret-bearing buffers: canary fills (0xAA), test patterns
// ('A'), and freed-memory poison values (0xCC) that should have been
// overwritten. The detector reports every maximal contiguous run of a
// probed byte value at or above a minimum length, as absolute
// offset/length records in ascending offset order.
//
// All probed values share one pass over the corpus: runs of different
// values cannot overlap, so a single current-run tracker suffices and the
// file is never re-read per value.
package runs
