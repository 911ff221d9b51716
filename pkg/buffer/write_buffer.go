package buffer

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"
)

// WriteBuffer is a growable write cursor over an array borrowed from a
// Recycler. Writes never fail; the array grows as needed and the previous
// array is handed back to the recycler.
//
// A WriteBuffer belongs to a single goroutine. Call Release once the bytes
// returned by Bytes are no longer needed.
type WriteBuffer struct {
	buf      []byte
	off      int
	start    int
	recycler *Recycler
	pooled   bool
}

// NewWriteBuffer creates a buffer backed by a recycler checked out for the
// calling goroutine. Release returns both the array and the recycler.
func NewWriteBuffer(capacity int) *WriteBuffer {
	b := NewWriteBufferWith(AcquireRecycler(), capacity)
	b.pooled = true
	return b
}

// NewWriteBufferWith creates a buffer whose arrays come from r. The caller
// keeps ownership of r.
func NewWriteBufferWith(r *Recycler, capacity int) *WriteBuffer {
	return &WriteBuffer{
		buf:      r.Allocate(capacity),
		recycler: r,
	}
}

// Len returns the number of bytes written since the logical start.
func (b *WriteBuffer) Len() int { return b.off - b.start }

// Cap returns the capacity of the backing array.
func (b *WriteBuffer) Cap() int { return len(b.buf) }

// Bytes returns the bytes written since the logical start. The slice aliases
// the backing array and is only valid until the next write or Release.
func (b *WriteBuffer) Bytes() []byte { return b.buf[b.start:b.off] }

// MarkStart makes the current position the logical start, so that bytes
// already written (a record header, say) are excluded from Bytes and Finish.
func (b *WriteBuffer) MarkStart() { b.start = b.off }

// Reset discards everything written, including any prefix.
func (b *WriteBuffer) Reset() {
	b.off = 0
	b.start = 0
}

// Finish returns a copy of exactly the bytes written since the logical start.
func (b *WriteBuffer) Finish() []byte {
	out := make([]byte, b.Len())
	copy(out, b.buf[b.start:b.off])
	return out
}

// Release hands the backing array back to the recycler. The buffer must not
// be written to afterwards. Calling Release twice is harmless.
func (b *WriteBuffer) Release() {
	if b.recycler == nil {
		return
	}
	b.recycler.Release(b.buf)
	if b.pooled {
		ReleaseRecycler(b.recycler)
	}
	b.buf = nil
	b.recycler = nil
	b.off = 0
	b.start = 0
}

// ensure guarantees room for n more bytes.
func (b *WriteBuffer) ensure(n int) {
	if len(b.buf)-b.off >= n {
		return
	}
	size := len(b.buf) * 2
	if size < b.off+n {
		size = b.off + n
	}
	old := b.buf
	b.buf = b.recycler.Allocate(size)
	copy(b.buf, old[:b.off])
	b.recycler.Release(old)
}

// Grow extends the written region by n bytes and returns them for the caller
// to fill in.
func (b *WriteBuffer) Grow(n int) []byte {
	b.ensure(n)
	b.off += n
	return b.buf[b.off-n : b.off]
}

// SetByteAt overwrites the byte at position i relative to the logical start.
func (b *WriteBuffer) SetByteAt(i int, c byte) {
	b.buf[b.start+i] = c
}

// WriteOneByte writes a single byte.
func (b *WriteBuffer) WriteOneByte(c byte) {
	b.ensure(1)
	b.buf[b.off] = c
	b.off++
}

// WriteBool writes 1 for true and 0 for false.
func (b *WriteBuffer) WriteBool(v bool) {
	if v {
		b.WriteOneByte(1)
	} else {
		b.WriteOneByte(0)
	}
}

func (b *WriteBuffer) WriteShort(v int16) {
	binary.BigEndian.PutUint16(b.Grow(2), uint16(v))
}

func (b *WriteBuffer) WriteInt(v int32) {
	binary.BigEndian.PutUint32(b.Grow(4), uint32(v))
}

func (b *WriteBuffer) WriteLong(v int64) {
	binary.BigEndian.PutUint64(b.Grow(8), uint64(v))
}

// WriteFloat writes the IEEE-754 bit pattern of v.
func (b *WriteBuffer) WriteFloat(v float32) {
	binary.BigEndian.PutUint32(b.Grow(4), math.Float32bits(v))
}

// WriteDouble writes the IEEE-754 bit pattern of v.
func (b *WriteBuffer) WriteDouble(v float64) {
	binary.BigEndian.PutUint64(b.Grow(8), math.Float64bits(v))
}

// WriteVarInt writes v zigzag folded and varint encoded.
func (b *WriteBuffer) WriteVarInt(v int32) {
	b.writeUvarint(uint64(ZigZag32(v)))
}

// WriteVarLong writes v zigzag folded and varint encoded.
func (b *WriteBuffer) WriteVarLong(v int64) {
	b.writeUvarint(ZigZag64(v))
}

func (b *WriteBuffer) writeUvarint(u uint64) {
	b.ensure(MaxVarIntLen64)
	b.off += PutUvarint(b.buf[b.off:], u)
}

// WriteUTF8String writes the UTF-8 byte length of s as a varint followed by
// the bytes. Invalid UTF-8 runs are replaced with U+FFFD first.
func (b *WriteBuffer) WriteUTF8String(s string) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	b.WriteVarInt(int32(len(s)))
	b.ensure(len(s))
	b.off += copy(b.buf[b.off:], s)
}

// WriteBytesPrefixed writes len(p) as a varint followed by p.
func (b *WriteBuffer) WriteBytesPrefixed(p []byte) {
	b.WriteVarInt(int32(len(p)))
	b.WriteBytes(p)
}

// WriteBytes writes p with no length prefix.
func (b *WriteBuffer) WriteBytes(p []byte) {
	b.ensure(len(p))
	b.off += copy(b.buf[b.off:], p)
}

// WriteBytesAt writes n bytes of p starting at off, with no length prefix.
func (b *WriteBuffer) WriteBytesAt(p []byte, off, n int) {
	b.WriteBytes(p[off : off+n])
}
