package codec

import (
	"testing"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

func newTestBuffer(t testing.TB) *buffer.WriteBuffer {
	t.Helper()
	w := buffer.NewWriteBufferWith(buffer.NewRecycler(), 8)
	t.Cleanup(w.Release)
	return w
}

func newTestReader(p []byte) *buffer.ReadBuffer {
	return buffer.NewReadBuffer(p)
}

// roundTrip encodes v and decodes it back, failing the test on error.
func roundTrip[T any](t testing.TB, c Codec[T], v T) ([]byte, T) {
	t.Helper()
	encoded, err := Encode(c, v)
	if err != nil {
		t.Fatalf("Encode(%v) failed: %v", v, err)
	}
	decoded, err := Decode(c, encoded)
	if err != nil {
		t.Fatalf("Decode(% x) failed: %v", encoded, err)
	}
	return encoded, decoded
}
