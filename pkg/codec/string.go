package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// StringCodec writes UTF-8 text, prefixed with its byte length as a varint
// or raw to the end of the input. Both forms replace invalid UTF-8 runs with
// U+FFFD before writing, so a string decodes the same either way.
type StringCodec struct {
	Prefixed bool
}

func String(prefixed bool) StringCodec { return StringCodec{Prefixed: prefixed} }

func (c StringCodec) CodecID() string {
	if c.Prefixed {
		return "string"
	}
	return "string-raw"
}

func (c StringCodec) EncodeTo(buf *buffer.WriteBuffer, v string) error {
	if c.Prefixed {
		buf.WriteUTF8String(v)
	} else {
		if !utf8.ValidString(v) {
			v = strings.ToValidUTF8(v, "\uFFFD")
		}
		buf.WriteBytes([]byte(v))
	}
	return nil
}

func (c StringCodec) DecodeFrom(buf *buffer.ReadBuffer) (string, error) {
	if c.Prefixed {
		return buf.ReadUTF8String()
	}
	p, _ := buf.View(buf.Remaining())
	return string(p), nil
}
