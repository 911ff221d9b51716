package codec

import (
	"math"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// The inverted codecs flip every bit but the sign bit before writing the
// ordinary big-endian form, so non-negative values sort descending. The
// transform is its own inverse.
const (
	invertIntMask  = math.MaxInt32
	invertLongMask = math.MaxInt64
)

// InvertedIntCodec writes an int32 in descending byte order.
type InvertedIntCodec struct{}

func InvertedInt() InvertedIntCodec { return InvertedIntCodec{} }

func (InvertedIntCodec) CodecID() string { return "inverted-int" }

func (InvertedIntCodec) EncodeTo(buf *buffer.WriteBuffer, v int32) error {
	buf.WriteInt(v ^ invertIntMask)
	return nil
}

func (InvertedIntCodec) DecodeFrom(buf *buffer.ReadBuffer) (int32, error) {
	v, err := buf.ReadInt()
	if err != nil {
		return 0, err
	}
	return v ^ invertIntMask, nil
}

// InvertedLongCodec writes an int64 in descending byte order.
type InvertedLongCodec struct{}

func InvertedLong() InvertedLongCodec { return InvertedLongCodec{} }

func (InvertedLongCodec) CodecID() string { return "inverted-long" }

func (InvertedLongCodec) EncodeTo(buf *buffer.WriteBuffer, v int64) error {
	buf.WriteLong(v ^ invertLongMask)
	return nil
}

func (InvertedLongCodec) DecodeFrom(buf *buffer.ReadBuffer) (int64, error) {
	v, err := buf.ReadLong()
	if err != nil {
		return 0, err
	}
	return v ^ invertLongMask, nil
}
