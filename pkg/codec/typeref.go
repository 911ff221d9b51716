package codec

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

var (
	typesByName = xsync.NewMapOf[string, reflect.Type]()
	typeNames   = xsync.NewMapOf[reflect.Type, string]()
)

// RegisterType makes t encodable by the Type codec under name. Registering a
// name twice replaces the earlier type.
func RegisterType(name string, t reflect.Type) {
	if old, ok := typesByName.Load(name); ok {
		typeNames.Delete(old)
	}
	typesByName.Store(name, t)
	typeNames.Store(t, name)
}

// TypeCodec writes the registered name of a reflect.Type as a prefixed
// string.
type TypeCodec struct{}

func Type() TypeCodec { return TypeCodec{} }

func (TypeCodec) CodecID() string { return "type" }

func (TypeCodec) EncodeTo(buf *buffer.WriteBuffer, v reflect.Type) error {
	name, ok := typeNames.Load(v)
	if !ok {
		return fmt.Errorf("%w: %v is not registered", ErrUnknownType, v)
	}
	buf.WriteUTF8String(name)
	return nil
}

func (TypeCodec) DecodeFrom(buf *buffer.ReadBuffer) (reflect.Type, error) {
	name, err := buf.ReadUTF8String()
	if err != nil {
		return nil, err
	}
	t, ok := typesByName.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}
