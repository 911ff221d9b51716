package codec

import (
	"fmt"
	"sync/atomic"

	"github.com/lni/dragonboat/v4/logger"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

var plog = logger.GetLogger("codec")

// Codec is a paired encode/decode strategy for values of type T.
//
// EncodeTo appends the encoding of v to buf. DecodeFrom consumes exactly the
// bytes EncodeTo produced for a value. Implementations are immutable and safe
// for concurrent use; buffers are not.
type Codec[T any] interface {
	EncodeTo(buf *buffer.WriteBuffer, v T) error
	DecodeFrom(buf *buffer.ReadBuffer) (T, error)
}

// Identifiable is implemented by codecs that can be persisted through the
// identity registry.
type Identifiable interface {
	CodecID() string
}

// DefaultInitialBufferSize is the starting capacity of the buffer used by
// Encode.
const DefaultInitialBufferSize = 64

var initialBufferSize atomic.Int64

func init() {
	initialBufferSize.Store(DefaultInitialBufferSize)
}

// SetInitialBufferSize changes the starting capacity used by Encode. Values
// below 1 restore the default.
func SetInitialBufferSize(n int) {
	if n < 1 {
		n = DefaultInitialBufferSize
	}
	initialBufferSize.Store(int64(n))
}

// Encode encodes v into a freshly allocated byte slice.
func Encode[T any](c Codec[T], v T) ([]byte, error) {
	buf := buffer.NewWriteBuffer(int(initialBufferSize.Load()))
	defer buf.Release()

	if err := c.EncodeTo(buf, v); err != nil {
		recordFailure("encode", err)
		return nil, err
	}
	return buf.Finish(), nil
}

// Decode decodes a value from data. Trailing bytes are ignored, matching
// DecodeFrom on a composite buffer.
func Decode[T any](c Codec[T], data []byte) (T, error) {
	v, err := c.DecodeFrom(buffer.NewReadBuffer(data))
	if err != nil {
		recordFailure("decode", err)
		plog.Debugf("decode %d bytes with %s: %v", len(data), describe(c), err)
		var zero T
		return zero, err
	}
	return v, nil
}

func describe(c any) string {
	if id, ok := c.(Identifiable); ok {
		return id.CodecID()
	}
	return fmt.Sprintf("%T", c)
}
