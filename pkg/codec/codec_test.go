package codec

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayokota/hentitydb-sub001/pkg/metrics"
)

func TestEncode_ComposesIntoOneBuffer(t *testing.T) {
	w := newTestBuffer(t)
	require.NoError(t, String(true).EncodeTo(w, "orders"))
	require.NoError(t, InvertedLong().EncodeTo(w, 40002))
	require.NoError(t, VarInt().EncodeTo(w, -1))

	r := newTestReader(w.Finish())
	table, err := String(true).DecodeFrom(r)
	require.NoError(t, err)
	ts, err := InvertedLong().DecodeFrom(r)
	require.NoError(t, err)
	seq, err := VarInt().DecodeFrom(r)
	require.NoError(t, err)

	assert.Equal(t, "orders", table)
	assert.Equal(t, int64(40002), ts)
	assert.Equal(t, int32(-1), seq)
	assert.Equal(t, 0, r.Remaining())
}

func TestEncode_GrowsPastInitialSize(t *testing.T) {
	SetInitialBufferSize(1)
	defer SetInitialBufferSize(0)

	in := make([]int64, 500)
	for i := range in {
		in[i] = int64(i) << 40
	}
	_, got := roundTrip[[]int64](t, VarLongArray(), in)
	assert.Equal(t, in, got)
}

func TestDecode_CountsFailures(t *testing.T) {
	failures := metrics.CodecFailures.WithLabelValues("decode", "out_of_data")
	before := testutil.ToFloat64(failures)

	_, err := Decode[int64](Long(), []byte{0x01})
	require.ErrorIs(t, err, ErrOutOfData)
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestErrorKind(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{ErrOutOfData, "out_of_data"},
		{ErrMalformedVarint, "malformed_varint"},
		{ErrUnsupportedVersion, "unsupported_version"},
		{ErrUnknownCodecType, "unknown_codec_type"},
		{ErrUnknownType, "unknown_type"},
		{ErrChecksum, "checksum"},
		{ErrInvalidValue, "invalid_value"},
		{assert.AnError, "other"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, errorKind(tc.err))
	}
}
