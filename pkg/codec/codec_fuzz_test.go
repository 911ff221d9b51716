//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"errors"
	"testing"
)

// FuzzVarLong_RoundTrip checks that every int64 survives the varint codec
func FuzzVarLong_RoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(40002))
	f.Add(int64(-1))

	f.Fuzz(func(t *testing.T, v int64) {
		encoded, err := Encode[int64](VarLong(), v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Decode[int64](VarLong(), encoded)
		if err != nil || got != v {
			t.Errorf("got %d, %v; want %d", got, err, v)
		}
	})
}

// FuzzChecksummed_CorruptionDetection checks that a flipped byte never
// decodes to a different value
func FuzzChecksummed_CorruptionDetection(f *testing.F) {
	c := NewChecksummed[[]byte](ByteArray(true))

	f.Add([]byte("value"), uint(0))
	f.Add([]byte("john@example.com"), uint(5))
	f.Add([]byte("data"), uint(10))

	f.Fuzz(func(t *testing.T, value []byte, corruptPos uint) {
		if len(value) > 10000 {
			t.Skip("Input too large for fuzz test")
		}

		encoded, err := Encode[[]byte](c, value)
		if err != nil {
			t.Fatal(err)
		}
		if int(corruptPos) >= len(encoded) {
			t.Skip("Corruption position beyond data length")
		}
		encoded[corruptPos] ^= 0xFF

		got, err := Decode[[]byte](c, encoded)
		if err == nil {
			t.Errorf("Corruption not detected at %d: decoded %x from %x", corruptPos, got, value)
		}
	})
}

// FuzzDecode_MalformedData feeds random bytes to every decoder; none may
// panic and every failure must carry a known sentinel
func FuzzDecode_MalformedData(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x80})
	f.Add([]byte{0x84, 0xF1, 0x04})
	f.Add(bytes.Repeat([]byte{0xFF}, 12))

	versioned := MustVersioned("fuzz", 1, Version[string]{
		Number: 1,
		Encode: String(true).EncodeTo,
		Decode: String(true).DecodeFrom,
	})
	decoders := []func([]byte) error{
		func(p []byte) error { _, err := Decode[[]int64](VarLongArray(), p); return err },
		func(p []byte) error { _, err := Decode[Decimal](BigDecimal(), p); return err },
		func(p []byte) error { _, err := Decode[string](versioned, p); return err },
		func(p []byte) error { _, err := Decode[Codec[int64]](ConfiguredCodecOf[int64](), p); return err },
		func(p []byte) error { _, err := Decode[string](NewCompressed[string](String(true)), p); return err },
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, decode := range decoders {
			err := decode(data)
			if err == nil {
				continue
			}
			var ce *CodecError
			if !errors.Is(err, ErrOutOfData) && !errors.Is(err, ErrMalformedVarint) && !errors.As(err, &ce) {
				t.Errorf("untyped decode failure: %v", err)
			}
		}
	})
}
