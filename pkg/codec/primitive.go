package codec

import "github.com/rayokota/hentitydb-sub001/pkg/buffer"

// Fixed-width primitives are written big-endian with no sign transform, so
// their bytes match the storage engine's own primitive encoding.

// BoolCodec writes one byte, 0 or 1.
type BoolCodec struct{}

func Bool() BoolCodec { return BoolCodec{} }

func (BoolCodec) CodecID() string { return "bool" }

func (BoolCodec) EncodeTo(buf *buffer.WriteBuffer, v bool) error {
	buf.WriteBool(v)
	return nil
}

func (BoolCodec) DecodeFrom(buf *buffer.ReadBuffer) (bool, error) {
	return buf.ReadBool()
}

// ByteCodec writes a single byte.
type ByteCodec struct{}

func Byte() ByteCodec { return ByteCodec{} }

func (ByteCodec) CodecID() string { return "byte" }

func (ByteCodec) EncodeTo(buf *buffer.WriteBuffer, v byte) error {
	buf.WriteOneByte(v)
	return nil
}

func (ByteCodec) DecodeFrom(buf *buffer.ReadBuffer) (byte, error) {
	return buf.ReadByte()
}

// ShortCodec writes an int16 as two bytes.
type ShortCodec struct{}

func Short() ShortCodec { return ShortCodec{} }

func (ShortCodec) CodecID() string { return "short" }

func (ShortCodec) EncodeTo(buf *buffer.WriteBuffer, v int16) error {
	buf.WriteShort(v)
	return nil
}

func (ShortCodec) DecodeFrom(buf *buffer.ReadBuffer) (int16, error) {
	return buf.ReadShort()
}

// IntCodec writes an int32 as four bytes.
type IntCodec struct{}

func Int() IntCodec { return IntCodec{} }

func (IntCodec) CodecID() string { return "int" }

func (IntCodec) EncodeTo(buf *buffer.WriteBuffer, v int32) error {
	buf.WriteInt(v)
	return nil
}

func (IntCodec) DecodeFrom(buf *buffer.ReadBuffer) (int32, error) {
	return buf.ReadInt()
}

// LongCodec writes an int64 as eight bytes.
type LongCodec struct{}

func Long() LongCodec { return LongCodec{} }

func (LongCodec) CodecID() string { return "long" }

func (LongCodec) EncodeTo(buf *buffer.WriteBuffer, v int64) error {
	buf.WriteLong(v)
	return nil
}

func (LongCodec) DecodeFrom(buf *buffer.ReadBuffer) (int64, error) {
	return buf.ReadLong()
}

// FloatCodec writes the IEEE-754 bits of a float32.
type FloatCodec struct{}

func Float() FloatCodec { return FloatCodec{} }

func (FloatCodec) CodecID() string { return "float" }

func (FloatCodec) EncodeTo(buf *buffer.WriteBuffer, v float32) error {
	buf.WriteFloat(v)
	return nil
}

func (FloatCodec) DecodeFrom(buf *buffer.ReadBuffer) (float32, error) {
	return buf.ReadFloat()
}

// DoubleCodec writes the IEEE-754 bits of a float64.
type DoubleCodec struct{}

func Double() DoubleCodec { return DoubleCodec{} }

func (DoubleCodec) CodecID() string { return "double" }

func (DoubleCodec) EncodeTo(buf *buffer.WriteBuffer, v float64) error {
	buf.WriteDouble(v)
	return nil
}

func (DoubleCodec) DecodeFrom(buf *buffer.ReadBuffer) (float64, error) {
	return buf.ReadDouble()
}
