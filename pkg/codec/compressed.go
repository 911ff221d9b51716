package codec

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// Compressed stores the inner encoding as a length-prefixed snappy block.
// Use it for large values, never for keys: compression does not preserve
// byte order.
type Compressed[T any] struct {
	inner Codec[T]
}

func NewCompressed[T any](inner Codec[T]) *Compressed[T] {
	return &Compressed[T]{inner: inner}
}

func (c *Compressed[T]) CodecID() string { return "compressed" }

func (c *Compressed[T]) Unwrap() any { return c.inner }

func (c *Compressed[T]) Param() int32 { return 0 }

func (c *Compressed[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	scratch := buffer.NewWriteBuffer(buffer.DefaultCapacity)
	defer scratch.Release()

	if err := c.inner.EncodeTo(scratch, v); err != nil {
		return err
	}
	buf.WriteBytesPrefixed(snappy.Encode(nil, scratch.Bytes()))
	return nil
}

func (c *Compressed[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	var zero T
	block, err := buf.ViewPrefixed()
	if err != nil {
		return zero, err
	}
	raw, err := snappy.Decode(nil, block)
	if err != nil {
		return zero, fmt.Errorf("%w: snappy block: %v", ErrInvalidValue, err)
	}
	return c.inner.DecodeFrom(buffer.NewReadBuffer(raw))
}
