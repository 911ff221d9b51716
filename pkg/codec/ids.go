package codec

import (
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// UUIDCodec writes the 16 raw bytes of a UUID.
type UUIDCodec struct{}

func UUID() UUIDCodec { return UUIDCodec{} }

func (UUIDCodec) CodecID() string { return "uuid" }

func (UUIDCodec) EncodeTo(buf *buffer.WriteBuffer, v uuid.UUID) error {
	buf.WriteBytes(v[:])
	return nil
}

func (UUIDCodec) DecodeFrom(buf *buffer.ReadBuffer) (uuid.UUID, error) {
	p, err := buf.View(16)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(p)
}

// KSUIDCodec writes the 20 raw bytes of a KSUID. The bytes sort by creation
// time, which makes KSUIDs usable as append-ordered keys.
type KSUIDCodec struct{}

func KSUID() KSUIDCodec { return KSUIDCodec{} }

func (KSUIDCodec) CodecID() string { return "ksuid" }

func (KSUIDCodec) EncodeTo(buf *buffer.WriteBuffer, v ksuid.KSUID) error {
	buf.WriteBytes(v.Bytes())
	return nil
}

func (KSUIDCodec) DecodeFrom(buf *buffer.ReadBuffer) (ksuid.KSUID, error) {
	p, err := buf.View(20)
	if err != nil {
		return ksuid.Nil, err
	}
	return ksuid.FromBytes(p)
}
