package codec

import (
	"fmt"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// MaxIdentityDepth bounds how deeply configured codec identities may nest.
const MaxIdentityDepth = 16

// IdentityCodec persists which codec to use for a stored column. The value
// is a codec; the bytes are its registry id, plus for configured identities
// the wrapper parameters and the nested inner identity.
type IdentityCodec[T any] struct {
	configured bool
}

// CodecOf stores the registry id of a stateless codec as a prefixed string.
// Decoding rebuilds the codec through the registry.
func CodecOf[T any]() IdentityCodec[T] { return IdentityCodec[T]{} }

// ConfiguredCodecOf also stores wrapper parameters and inner codecs, so
// salting, checksummed and compressed codecs round trip. Each level is
// written as [id][has inner] and, when there is an inner codec,
// [varint param][inner level].
func ConfiguredCodecOf[T any]() IdentityCodec[T] { return IdentityCodec[T]{configured: true} }

func (c IdentityCodec[T]) CodecID() string {
	if c.configured {
		return "configured-codec"
	}
	return "codec"
}

func (c IdentityCodec[T]) EncodeTo(buf *buffer.WriteBuffer, v Codec[T]) error {
	if !c.configured {
		id, err := identify(v)
		if err != nil {
			return err
		}
		if _, ok := v.(Wrapper); ok {
			return fmt.Errorf("%w: %s wraps another codec, store it with ConfiguredCodecOf", ErrUnknownCodecType, id)
		}
		buf.WriteUTF8String(id)
		return nil
	}
	return writeConfigured(buf, v, 0)
}

func (c IdentityCodec[T]) DecodeFrom(buf *buffer.ReadBuffer) (Codec[T], error) {
	var (
		v   any
		err error
	)
	if c.configured {
		v, err = readConfigured(buf, 0)
	} else {
		var id string
		if id, err = buf.ReadUTF8String(); err == nil {
			v, err = New(id)
		}
	}
	if err != nil {
		return nil, err
	}

	typed, ok := v.(Codec[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %s does not encode %T", ErrUnknownCodecType, describe(v), zero)
	}
	return typed, nil
}

func identify(v any) (string, error) {
	c, ok := v.(Identifiable)
	if !ok {
		return "", fmt.Errorf("%w: %T has no codec id", ErrUnknownCodecType, v)
	}
	id := c.CodecID()
	if _, ok := Lookup(id); !ok {
		return "", fmt.Errorf("%w: %q is not registered", ErrUnknownCodecType, id)
	}
	return id, nil
}

func writeConfigured(buf *buffer.WriteBuffer, v any, depth int) error {
	if depth >= MaxIdentityDepth {
		return fmt.Errorf("%w: codec nesting deeper than %d", ErrInvalidValue, MaxIdentityDepth)
	}
	id, err := identify(v)
	if err != nil {
		return err
	}
	buf.WriteUTF8String(id)

	w, ok := v.(Wrapper)
	buf.WriteBool(ok)
	if !ok {
		return nil
	}
	buf.WriteVarInt(w.Param())
	return writeConfigured(buf, w.Unwrap(), depth+1)
}

func readConfigured(buf *buffer.ReadBuffer, depth int) (any, error) {
	if depth >= MaxIdentityDepth {
		return nil, fmt.Errorf("%w: codec nesting deeper than %d", ErrInvalidValue, MaxIdentityDepth)
	}
	id, err := buf.ReadUTF8String()
	if err != nil {
		return nil, err
	}
	wrapped, err := buf.ReadBool()
	if err != nil {
		return nil, err
	}
	if !wrapped {
		return New(id)
	}

	param, err := buf.ReadVarInt()
	if err != nil {
		return nil, err
	}
	inner, err := readConfigured(buf, depth+1)
	if err != nil {
		return nil, err
	}
	return build(id, inner, param)
}
