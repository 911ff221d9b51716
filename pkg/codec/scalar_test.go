package codec

import (
	"bytes"
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_ReferenceVector(t *testing.T) {
	got, err := Encode(String(true), "woo")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x77, 0x6F, 0x6F}, got)

	raw, err := Encode(String(false), "woo")
	require.NoError(t, err)
	assert.Equal(t, []byte("woo"), raw)
}

func TestString_RoundTrip(t *testing.T) {
	for _, prefixed := range []bool{true, false} {
		for _, v := range []string{"", "woo", "🔑 unicode key", string(bytes.Repeat([]byte("x"), 300))} {
			_, got := roundTrip[string](t, String(prefixed), v)
			assert.Equal(t, v, got)
		}
	}

	encoded, err := Encode(String(true), string(bytes.Repeat([]byte("x"), 300)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xD8, 0x04}, encoded[:2], "length prefix of 300")
}

func TestString_InvalidUTF8(t *testing.T) {
	for _, prefixed := range []bool{true, false} {
		_, got := roundTrip[string](t, String(prefixed), "a\xffb")
		assert.Equal(t, "a\uFFFDb", got, "prefixed=%v", prefixed)
	}
}

func TestString_TruncatedPrefix(t *testing.T) {
	_, err := Decode(String(true), []byte{0x06, 'w', 'o'})
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestByteArray(t *testing.T) {
	in := []byte{0x00, 0x01, 0xFF}

	encoded, got := roundTrip[[]byte](t, ByteArray(true), in)
	assert.Equal(t, []byte{0x06, 0x00, 0x01, 0xFF}, encoded)
	assert.Equal(t, in, got)

	encoded, got = roundTrip[[]byte](t, ByteArray(false), in)
	assert.Equal(t, in, encoded)
	assert.Equal(t, in, got)

	_, got = roundTrip[[]byte](t, ByteArray(true), nil)
	assert.Empty(t, got)
}

func TestByteArray_DecodedSliceIsCopy(t *testing.T) {
	data := []byte{0x04, 0xAA, 0xBB}
	got, err := Decode(ByteArray(true), data)
	require.NoError(t, err)
	data[1] = 0x00
	assert.Equal(t, []byte{0xAA, 0xBB}, got)
}

func TestByteBuffer(t *testing.T) {
	in := bytes.NewBufferString("skip-payload")
	in.Next(5)

	encoded, got := roundTrip[*bytes.Buffer](t, ByteBuffer(), in)
	assert.Equal(t, "payload", got.String())
	assert.Equal(t, "payload", in.String(), "encoding does not consume the source")
	assert.Equal(t, byte(14), encoded[0])

	_, got = roundTrip[*bytes.Buffer](t, ByteBuffer(), nil)
	assert.Equal(t, 0, got.Len())
}

func TestDecimal(t *testing.T) {
	testCases := []struct {
		in   string
		want Decimal
	}{
		{"0", NewDecimal(0, 0)},
		{"12.50", NewDecimal(1250, 2)},
		{"-0.001", NewDecimal(-1, 3)},
		{"+7", NewDecimal(7, 0)},
		{"123456789012345678901234567890.5", Decimal{
			Unscaled: func() *big.Int { n, _ := new(big.Int).SetString("1234567890123456789012345678905", 10); return n }(),
			Scale:    1,
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDecimal(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(d), "got %s", d)

			_, got := roundTrip[Decimal](t, BigDecimal(), d)
			assert.True(t, d.Equal(got), "got %s, want %s", got, d)
		})
	}
}

func TestDecimal_String(t *testing.T) {
	assert.Equal(t, "12.50", NewDecimal(1250, 2).String())
	assert.Equal(t, "-0.001", NewDecimal(-1, 3).String())
	assert.Equal(t, "1200", NewDecimal(12, -2).String())
	assert.Equal(t, "0", NewDecimal(0, 0).String())
	assert.False(t, NewDecimal(10, 1).Equal(NewDecimal(100, 2)), "scale is significant")
}

func TestDecimal_Invalid(t *testing.T) {
	for _, s := range []string{"", "-", "1.2.3", "abc", "--1", "1e5"} {
		_, err := ParseDecimal(s)
		assert.ErrorIs(t, err, ErrInvalidValue, "%q", s)
	}

	_, err := Encode(BigDecimal(), Decimal{})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Decode(BigDecimal(), []byte{0x00, 0x05, 0x00})
	assert.ErrorIs(t, err, ErrInvalidValue, "bad sign byte")

	_, err = Decode(BigDecimal(), []byte{0x00, 0x00, 0x02, 0x01})
	assert.ErrorIs(t, err, ErrInvalidValue, "zero sign with magnitude")
}

func TestDate(t *testing.T) {
	when := time.Date(2024, 6, 22, 8, 30, 15, 123_456_789, time.FixedZone("CEST", 2*60*60))

	encoded, got := roundTrip[time.Time](t, Date(), when)
	assert.Len(t, encoded, 8)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, when.Truncate(time.Millisecond).Equal(got))

	_, got = roundTrip[time.Time](t, Date(), time.UnixMilli(-1))
	assert.Equal(t, int64(-1), got.UnixMilli())
}

func TestUUID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	encoded, got := roundTrip[uuid.UUID](t, UUID(), id)
	assert.Equal(t, id[:], encoded)
	assert.Equal(t, id, got)

	_, err := Decode(UUID(), encoded[:15])
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestKSUID_SortsByTime(t *testing.T) {
	earlier, err := ksuid.NewRandomWithTime(time.Unix(1_700_000_000, 0))
	require.NoError(t, err)
	later, err := ksuid.NewRandomWithTime(time.Unix(1_700_000_100, 0))
	require.NoError(t, err)

	a, got := roundTrip[ksuid.KSUID](t, KSUID(), earlier)
	assert.Equal(t, earlier, got)
	b, _ := roundTrip[ksuid.KSUID](t, KSUID(), later)
	assert.Len(t, a, 20)
	assert.Equal(t, -1, bytes.Compare(a, b))
}

type widget struct{ Name string }

func TestType(t *testing.T) {
	RegisterType("widget", reflect.TypeOf(widget{}))

	encoded, got := roundTrip[reflect.Type](t, Type(), reflect.TypeOf(widget{}))
	assert.Equal(t, reflect.TypeOf(widget{}), got)
	assert.Equal(t, append([]byte{0x0C}, "widget"...), encoded)

	_, err := Encode(Type(), reflect.TypeOf(struct{ X int }{}))
	assert.ErrorIs(t, err, ErrUnknownType)

	missing, err := Encode(String(true), "gizmo")
	require.NoError(t, err)
	_, err = Decode(Type(), missing)
	assert.ErrorIs(t, err, ErrUnknownType)
}
