package codec

import (
	"time"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// DateCodec writes a time as milliseconds since the Unix epoch in eight
// big-endian bytes. Sub-millisecond precision and the location are dropped;
// decoded times are in UTC.
type DateCodec struct{}

func Date() DateCodec { return DateCodec{} }

func (DateCodec) CodecID() string { return "date" }

func (DateCodec) EncodeTo(buf *buffer.WriteBuffer, v time.Time) error {
	buf.WriteLong(v.UnixMilli())
	return nil
}

func (DateCodec) DecodeFrom(buf *buffer.ReadBuffer) (time.Time, error) {
	ms, err := buf.ReadLong()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
