package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarInt_ReferenceVector(t *testing.T) {
	got, err := Encode[int32](VarInt(), 40002)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x84, 0xF1, 0x04}, got)

	long, err := Encode[int64](VarLong(), 40002)
	require.NoError(t, err)
	assert.Equal(t, got, long, "VarInt and VarLong agree on small values")
}

func TestVarInt_SingleByteRange(t *testing.T) {
	for v := int32(-64); v <= 63; v++ {
		encoded, decoded := roundTrip[int32](t, VarInt(), v)
		require.Len(t, encoded, 1, "value %d", v)
		require.Equal(t, v, decoded)
	}
	encoded, _ := roundTrip[int32](t, VarInt(), 64)
	assert.Len(t, encoded, 2)
	encoded, _ = roundTrip[int32](t, VarInt(), -65)
	assert.Len(t, encoded, 2)
}

func TestVarInt_RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 300, -300, 40002, math.MaxInt32, math.MinInt32} {
		encoded, got := roundTrip[int32](t, VarInt(), v)
		assert.Equal(t, v, got)
		assert.LessOrEqual(t, len(encoded), 5)
	}
	for _, v := range []int64{0, 1, -1, 40002, math.MaxInt32 + 1, math.MaxInt64, math.MinInt64} {
		encoded, got := roundTrip[int64](t, VarLong(), v)
		assert.Equal(t, v, got)
		assert.LessOrEqual(t, len(encoded), 10)
	}
}

func TestVarInt_Malformed(t *testing.T) {
	_, err := Decode[int32](VarInt(), []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	assert.ErrorIs(t, err, ErrMalformedVarint)

	_, err = Decode[int64](VarLong(), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01})
	assert.ErrorIs(t, err, ErrMalformedVarint)

	_, err = Decode[int32](VarInt(), []byte{0x84, 0xF1})
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestVarIntArray(t *testing.T) {
	testCases := []struct {
		name string
		in   []int32
		want []byte
	}{
		{"empty", []int32{}, []byte{0x00}},
		{"small", []int32{1, -1, 0}, []byte{0x06, 0x02, 0x01, 0x00}},
		{"mixed widths", []int32{40002, 3}, []byte{0x04, 0x84, 0xF1, 0x04, 0x06}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, decoded := roundTrip[[]int32](t, VarIntArray(), tc.in)
			assert.Equal(t, tc.want, encoded)
			assert.Equal(t, tc.in, decoded)
		})
	}
}

func TestVarLongArray(t *testing.T) {
	in := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	_, decoded := roundTrip[[]int64](t, VarLongArray(), in)
	assert.Equal(t, in, decoded)

	_, decoded = roundTrip[[]int64](t, VarLongArray(), nil)
	assert.Empty(t, decoded)
}

func TestVarIntArray_BadCount(t *testing.T) {
	_, err := Decode[[]int32](VarIntArray(), []byte{0x01})
	assert.ErrorIs(t, err, ErrInvalidValue, "negative count")

	_, err = Decode[[]int32](VarIntArray(), []byte{0x84, 0xF1, 0x04, 0x02})
	assert.ErrorIs(t, err, ErrOutOfData, "count larger than input")

	_, err = Decode[[]int64](VarLongArray(), []byte{0x04, 0x02})
	assert.ErrorIs(t, err, ErrOutOfData, "truncated elements")
}
