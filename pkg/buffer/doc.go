// Package buffer provides the byte cursors that every codec reads from and
// writes to, and the recycler that keeps their backing arrays off the heap.
//
// # Write and Read Cursors
//
// WriteBuffer is a growable write cursor. ReadBuffer is a sequential read
// cursor over a borrowed slice. The two are symmetric: every WriteX has a
// matching ReadX that consumes exactly the bytes WriteX produced.
//
// Fixed-width integers and floats are written big-endian with no sign
// transformation, which is the same layout the storage engine uses for its own
// primitives:
//
//	WriteShort(402)   -> 01 92
//	WriteLong(40002)  -> 00 00 00 00 00 00 9c 42
//
// Non-negative integers therefore sort correctly under byte comparison while
// negative ones do not. Codecs that need a particular order build on top of
// these primitives.
//
// # Variable-Length Integers
//
// WriteVarInt and WriteVarLong zigzag-fold a signed value and emit it seven
// bits at a time, least significant group first, with the high bit set on
// every byte except the last:
//
//	WriteVarInt(40002) -> 84 f1 04
//
// String and byte-slice length prefixes use the same routine. The format is
// stable: stored keys and values depend on it.
//
// # Recycling
//
// A Recycler holds at most one array. Allocate hands it out when it is large
// enough; Release keeps the larger of the cached and released arrays. A
// Recycler is never shared between goroutines, so it needs no locking.
// NewWriteBuffer checks a recycler out of a process-wide pool for the duration
// of the buffer's life and returns it on Release.
//
// # Error Handling
//
// Reads that run past the end fail with an error wrapping ErrOutOfData. A
// varint whose continuation bits never stop within the width of its target
// integer fails with ErrMalformedVarint. Writes never fail.
package buffer
