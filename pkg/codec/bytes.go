package codec

import (
	"bytes"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// ByteArrayCodec writes a byte slice either with a varint length prefix or,
// when not prefixed, as raw bytes that run to the end of the input. Raw
// encoding only works as the last component of a composite.
type ByteArrayCodec struct {
	Prefixed bool
}

func ByteArray(prefixed bool) ByteArrayCodec { return ByteArrayCodec{Prefixed: prefixed} }

func (c ByteArrayCodec) CodecID() string {
	if c.Prefixed {
		return "bytes"
	}
	return "bytes-raw"
}

func (c ByteArrayCodec) EncodeTo(buf *buffer.WriteBuffer, v []byte) error {
	if c.Prefixed {
		buf.WriteBytesPrefixed(v)
	} else {
		buf.WriteBytes(v)
	}
	return nil
}

func (c ByteArrayCodec) DecodeFrom(buf *buffer.ReadBuffer) ([]byte, error) {
	if c.Prefixed {
		return buf.ReadBytesPrefixed()
	}
	return buf.ReadRemaining(), nil
}

// ByteBufferCodec writes the unread bytes of a bytes.Buffer with a length
// prefix. Encoding does not consume the buffer.
type ByteBufferCodec struct{}

func ByteBuffer() ByteBufferCodec { return ByteBufferCodec{} }

func (ByteBufferCodec) CodecID() string { return "bytebuffer" }

func (ByteBufferCodec) EncodeTo(buf *buffer.WriteBuffer, v *bytes.Buffer) error {
	if v == nil {
		buf.WriteBytesPrefixed(nil)
		return nil
	}
	buf.WriteBytesPrefixed(v.Bytes())
	return nil
}

func (ByteBufferCodec) DecodeFrom(buf *buffer.ReadBuffer) (*bytes.Buffer, error) {
	p, err := buf.ReadBytesPrefixed()
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(p), nil
}
