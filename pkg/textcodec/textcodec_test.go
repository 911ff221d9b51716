package textcodec

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
)

func TestFor_Vectors(t *testing.T) {
	testCases := []struct {
		id    string
		value string
		want  string
	}{
		{"varint", "40002", "84f104"},
		{"inverted-int", "40002", "7fff63bd"},
		{"string", "woo", "06776f6f"},
		{"string-raw", "woo", "776f6f"},
		{"bool", "true", "01"},
		{"short", "0x10", "0010"},
		{"bytes", "0xcafe", "04cafe"},
		{"varint-array", "1, -1", "040201"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			a, err := For(tc.id, Options{})
			require.NoError(t, err)

			p, err := a.Encode(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(p))

			back, err := a.Decode(p)
			require.NoError(t, err)
			again, err := a.Encode(back)
			require.NoError(t, err)
			assert.Equal(t, p, again)
		})
	}
}

func TestFor_RoundTripFormats(t *testing.T) {
	testCases := []struct {
		id    string
		value string
	}{
		{"bigdecimal", "-12.50"},
		{"date", "2024-06-22T08:00:00.123Z"},
		{"uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"ksuid", "0ujtsYcgvSTl8PAuAdqWYSMnLOv"},
		{"double", "2.5"},
		{"float", "-0.25"},
		{"varlong-array", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			a, err := For(tc.id, Options{})
			require.NoError(t, err)
			p, err := a.Encode(tc.value)
			require.NoError(t, err)
			got, err := a.Decode(p)
			require.NoError(t, err)
			assert.Equal(t, tc.value, got)
		})
	}
}

func TestFor_Wrappers(t *testing.T) {
	plain, err := For("string", Options{})
	require.NoError(t, err)
	salted, err := For("string", Options{Salt: true, Buckets: 16})
	require.NoError(t, err)

	p, err := plain.Encode("woo")
	require.NoError(t, err)
	s, err := salted.Encode("woo")
	require.NoError(t, err)
	require.Len(t, s, len(p)+1)
	assert.Less(t, int(s[0]), 16)
	assert.Equal(t, p, s[1:])

	wrapped, err := For("long", Options{Compress: true, Checksum: true})
	require.NoError(t, err)
	w, err := wrapped.Encode("-7")
	require.NoError(t, err)
	got, err := wrapped.Decode(w)
	require.NoError(t, err)
	assert.Equal(t, "-7", got)

	w[len(w)-1] ^= 0xFF
	_, err = wrapped.Decode(w)
	assert.True(t, errors.Is(err, codec.ErrChecksum))
}

func TestFor_Errors(t *testing.T) {
	_, err := For("no-such-codec", Options{})
	assert.ErrorIs(t, err, codec.ErrUnknownCodecType)

	_, err = For("string", Options{Salt: true, Buckets: 300})
	assert.ErrorIs(t, err, codec.ErrInvalidValue)

	_, err = For("type", Options{})
	assert.ErrorIs(t, err, ErrNoTextForm)

	a, err := For("int", Options{})
	require.NoError(t, err)
	_, err = a.Encode("twelve")
	assert.Error(t, err)
	_, err = a.Decode([]byte{0x01})
	assert.ErrorIs(t, err, codec.ErrOutOfData)

	assert.True(t, Supported("varlong"))
	assert.False(t, Supported("codec"))
}

func TestParseHex(t *testing.T) {
	p, err := ParseHex("0x84f104")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x84, 0xF1, 0x04}, p)

	_, err = ParseHex("zz")
	assert.Error(t, err)
}
