package codec

import (
	"fmt"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// VarIntCodec writes an int32 as a zigzag varint of one to five bytes.
type VarIntCodec struct{}

func VarInt() VarIntCodec { return VarIntCodec{} }

func (VarIntCodec) CodecID() string { return "varint" }

func (VarIntCodec) EncodeTo(buf *buffer.WriteBuffer, v int32) error {
	buf.WriteVarInt(v)
	return nil
}

func (VarIntCodec) DecodeFrom(buf *buffer.ReadBuffer) (int32, error) {
	return buf.ReadVarInt()
}

// VarLongCodec writes an int64 as a zigzag varint of one to ten bytes.
type VarLongCodec struct{}

func VarLong() VarLongCodec { return VarLongCodec{} }

func (VarLongCodec) CodecID() string { return "varlong" }

func (VarLongCodec) EncodeTo(buf *buffer.WriteBuffer, v int64) error {
	buf.WriteVarLong(v)
	return nil
}

func (VarLongCodec) DecodeFrom(buf *buffer.ReadBuffer) (int64, error) {
	return buf.ReadVarLong()
}

// VarIntArrayCodec writes the element count followed by each element, all
// as zigzag varints.
type VarIntArrayCodec struct{}

func VarIntArray() VarIntArrayCodec { return VarIntArrayCodec{} }

func (VarIntArrayCodec) CodecID() string { return "varint-array" }

func (VarIntArrayCodec) EncodeTo(buf *buffer.WriteBuffer, v []int32) error {
	buf.WriteVarInt(int32(len(v)))
	for _, n := range v {
		buf.WriteVarInt(n)
	}
	return nil
}

func (VarIntArrayCodec) DecodeFrom(buf *buffer.ReadBuffer) ([]int32, error) {
	count, err := readCount(buf)
	if err != nil {
		return nil, err
	}
	v := make([]int32, count)
	for i := range v {
		if v[i], err = buf.ReadVarInt(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// VarLongArrayCodec is VarIntArrayCodec for int64 elements.
type VarLongArrayCodec struct{}

func VarLongArray() VarLongArrayCodec { return VarLongArrayCodec{} }

func (VarLongArrayCodec) CodecID() string { return "varlong-array" }

func (VarLongArrayCodec) EncodeTo(buf *buffer.WriteBuffer, v []int64) error {
	buf.WriteVarInt(int32(len(v)))
	for _, n := range v {
		buf.WriteVarLong(n)
	}
	return nil
}

func (VarLongArrayCodec) DecodeFrom(buf *buffer.ReadBuffer) ([]int64, error) {
	count, err := readCount(buf)
	if err != nil {
		return nil, err
	}
	v := make([]int64, count)
	for i := range v {
		if v[i], err = buf.ReadVarLong(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// readCount reads an element count. Every element takes at least one byte,
// so a count above the remaining bytes cannot be satisfied and is rejected
// before allocating.
func readCount(buf *buffer.ReadBuffer) (int, error) {
	count, err := buf.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: negative element count %d", ErrInvalidValue, count)
	}
	if int(count) > buf.Remaining() {
		return 0, fmt.Errorf("%w: %d elements, %d bytes left", ErrOutOfData, count, buf.Remaining())
	}
	return int(count), nil
}
