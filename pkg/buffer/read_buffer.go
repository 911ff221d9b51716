package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadBuffer is a sequential read cursor over a borrowed byte slice. Every
// successful read advances the cursor by exactly the bytes consumed; a read
// that would run past the end fails with ErrOutOfData and leaves the cursor
// where it was.
type ReadBuffer struct {
	buf []byte
	off int
}

// NewReadBuffer creates a cursor over p. p is not copied.
func NewReadBuffer(p []byte) *ReadBuffer {
	return &ReadBuffer{buf: p}
}

// Remaining returns the number of unread bytes.
func (b *ReadBuffer) Remaining() int { return len(b.buf) - b.off }

// Offset returns the read position.
func (b *ReadBuffer) Offset() int { return b.off }

// Seek moves the read position to off, which must lie within the buffer.
// Decoders use it to peek at a tag and rewind.
func (b *ReadBuffer) Seek(off int) error {
	if off < 0 || off > len(b.buf) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrOutOfData, off, len(b.buf))
	}
	b.off = off
	return nil
}

// next returns the next n bytes without copying them.
func (b *ReadBuffer) next(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrOutOfData, n, b.Remaining())
	}
	p := b.buf[b.off : b.off+n]
	b.off += n
	return p, nil
}

func (b *ReadBuffer) ReadByte() (byte, error) {
	p, err := b.next(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadBool treats any non-zero byte as true.
func (b *ReadBuffer) ReadBool() (bool, error) {
	c, err := b.ReadByte()
	return c != 0, err
}

func (b *ReadBuffer) ReadShort() (int16, error) {
	p, err := b.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(p)), nil
}

func (b *ReadBuffer) ReadInt() (int32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

func (b *ReadBuffer) ReadLong() (int64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

func (b *ReadBuffer) ReadFloat() (float32, error) {
	p, err := b.next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(p)), nil
}

func (b *ReadBuffer) ReadDouble() (float64, error) {
	p, err := b.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

// ReadVarInt reads a zigzag varint written by WriteVarInt.
func (b *ReadBuffer) ReadVarInt() (int32, error) {
	u, n, err := Uvarint(b.buf[b.off:], MaxVarIntLen32)
	if err != nil {
		return 0, err
	}
	b.off += n
	return UnZigZag32(uint32(u)), nil
}

// ReadVarLong reads a zigzag varint written by WriteVarLong.
func (b *ReadBuffer) ReadVarLong() (int64, error) {
	u, n, err := Uvarint(b.buf[b.off:], MaxVarIntLen64)
	if err != nil {
		return 0, err
	}
	b.off += n
	return UnZigZag64(u), nil
}

// readLength reads a varint length prefix and checks it against the
// remaining bytes. The cursor is restored on failure.
func (b *ReadBuffer) readLength() (int, error) {
	start := b.off
	n, err := b.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if n < 0 || int(n) > b.Remaining() {
		b.off = start
		return 0, fmt.Errorf("%w: length prefix %d, have %d", ErrOutOfData, n, b.Remaining())
	}
	return int(n), nil
}

// ReadUTF8String reads a string written by WriteUTF8String.
func (b *ReadBuffer) ReadUTF8String() (string, error) {
	n, err := b.readLength()
	if err != nil {
		return "", err
	}
	p, _ := b.next(n)
	return string(p), nil
}

// ReadBytesPrefixed reads a copy of a byte slice written by
// WriteBytesPrefixed.
func (b *ReadBuffer) ReadBytesPrefixed() ([]byte, error) {
	n, err := b.readLength()
	if err != nil {
		return nil, err
	}
	p, _ := b.next(n)
	return append([]byte{}, p...), nil
}

// ReadBytes reads a copy of exactly n bytes.
func (b *ReadBuffer) ReadBytes(n int) ([]byte, error) {
	p, err := b.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, p...), nil
}

// ReadRemaining reads a copy of every unread byte.
func (b *ReadBuffer) ReadRemaining() []byte {
	p, _ := b.next(b.Remaining())
	return append([]byte{}, p...)
}

// View returns the next n bytes without copying them. The slice aliases the
// underlying buffer.
func (b *ReadBuffer) View(n int) ([]byte, error) {
	return b.next(n)
}

// ViewPrefixed is ReadBytesPrefixed without the copy.
func (b *ReadBuffer) ViewPrefixed() ([]byte, error) {
	n, err := b.readLength()
	if err != nil {
		return nil, err
	}
	return b.next(n)
}
