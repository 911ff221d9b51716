package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

const checksumHeaderSize = 8

// Checksummed guards the inner encoding with a CRC32 (IEEE) header:
//
//	[CRC32(4)][PayloadSize(4)][Payload]
//
// Both header fields are big-endian. The checksum covers the payload only.
type Checksummed[T any] struct {
	inner Codec[T]
}

func NewChecksummed[T any](inner Codec[T]) *Checksummed[T] {
	return &Checksummed[T]{inner: inner}
}

func (c *Checksummed[T]) CodecID() string { return "checksummed" }

func (c *Checksummed[T]) Unwrap() any { return c.inner }

func (c *Checksummed[T]) Param() int32 { return 0 }

func (c *Checksummed[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	pos := buf.Len()
	buf.Grow(checksumHeaderSize)
	if err := c.inner.EncodeTo(buf, v); err != nil {
		return err
	}

	out := buf.Bytes()
	payload := out[pos+checksumHeaderSize:]
	binary.BigEndian.PutUint32(out[pos:], crc32.ChecksumIEEE(payload))
	binary.BigEndian.PutUint32(out[pos+4:], uint32(len(payload)))
	return nil
}

func (c *Checksummed[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	var zero T
	header, err := buf.View(checksumHeaderSize)
	if err != nil {
		return zero, err
	}
	want := binary.BigEndian.Uint32(header[0:4])
	size := binary.BigEndian.Uint32(header[4:8])

	payload, err := buf.View(int(size))
	if err != nil {
		return zero, err
	}
	if got := crc32.ChecksumIEEE(payload); got != want {
		return zero, fmt.Errorf("%w: %08x != %08x", ErrChecksum, got, want)
	}
	return c.inner.DecodeFrom(buffer.NewReadBuffer(payload))
}
