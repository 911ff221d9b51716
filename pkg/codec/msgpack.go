package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// MsgPackCodec stores arbitrary structs as a length-prefixed MessagePack
// document. Field tags follow the msgpack package (`msgpack:"name"`). It is
// meant for opaque values; the bytes do not sort.
type MsgPackCodec[T any] struct{}

func MsgPack[T any]() MsgPackCodec[T] { return MsgPackCodec[T]{} }

func (MsgPackCodec[T]) CodecID() string { return "msgpack" }

func (MsgPackCodec[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	p, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: msgpack: %v", ErrInvalidValue, err)
	}
	buf.WriteBytesPrefixed(p)
	return nil
}

func (MsgPackCodec[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	var v T
	p, err := buf.ViewPrefixed()
	if err != nil {
		return v, err
	}
	if err := msgpack.Unmarshal(p, &v); err != nil {
		return v, fmt.Errorf("%w: msgpack: %v", ErrInvalidValue, err)
	}
	return v, nil
}
