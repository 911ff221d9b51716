package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// Decimal is an arbitrary-precision decimal: Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// NewDecimal returns unscaled * 10^-scale.
func NewDecimal(unscaled int64, scale int32) Decimal {
	return Decimal{Unscaled: big.NewInt(unscaled), Scale: scale}
}

// ParseDecimal parses a plain decimal literal such as "-12.50". The scale is
// the number of digits after the point, so "12.50" keeps scale 2.
func ParseDecimal(s string) (Decimal, error) {
	digits := s
	neg := false
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	var scale int32
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		scale = int32(len(digits) - i - 1)
		digits = digits[:i] + digits[i+1:]
	}
	if digits == "" || strings.ContainsAny(digits, "+-") {
		return Decimal{}, fmt.Errorf("%w: decimal %q", ErrInvalidValue, s)
	}

	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: decimal %q", ErrInvalidValue, s)
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return Decimal{Unscaled: unscaled, Scale: scale}, nil
}

func (d Decimal) String() string {
	if d.Unscaled == nil {
		return "<nil>"
	}
	digits := new(big.Int).Abs(d.Unscaled).String()
	sign := ""
	if d.Unscaled.Sign() < 0 {
		sign = "-"
	}

	switch {
	case d.Scale <= 0:
		return sign + digits + strings.Repeat("0", int(-d.Scale))
	case int(d.Scale) >= len(digits):
		return sign + "0." + strings.Repeat("0", int(d.Scale)-len(digits)) + digits
	default:
		point := len(digits) - int(d.Scale)
		return sign + digits[:point] + "." + digits[point:]
	}
}

// Equal reports whether d and o have the same unscaled value and scale.
// 1.0 and 1.00 are not equal.
func (d Decimal) Equal(o Decimal) bool {
	if d.Unscaled == nil || o.Unscaled == nil {
		return d.Unscaled == o.Unscaled && d.Scale == o.Scale
	}
	return d.Scale == o.Scale && d.Unscaled.Cmp(o.Unscaled) == 0
}

// DecimalCodec writes the scale as a varint, a sign byte (0xFF, 0 or 1) and
// the big-endian magnitude with a varint length prefix.
type DecimalCodec struct{}

func BigDecimal() DecimalCodec { return DecimalCodec{} }

func (DecimalCodec) CodecID() string { return "bigdecimal" }

func (DecimalCodec) EncodeTo(buf *buffer.WriteBuffer, v Decimal) error {
	if v.Unscaled == nil {
		return fmt.Errorf("%w: decimal without unscaled value", ErrInvalidValue)
	}
	buf.WriteVarInt(v.Scale)
	buf.WriteOneByte(byte(int8(v.Unscaled.Sign())))
	buf.WriteBytesPrefixed(v.Unscaled.Bytes())
	return nil
}

func (DecimalCodec) DecodeFrom(buf *buffer.ReadBuffer) (Decimal, error) {
	scale, err := buf.ReadVarInt()
	if err != nil {
		return Decimal{}, err
	}
	sign, err := buf.ReadByte()
	if err != nil {
		return Decimal{}, err
	}
	mag, err := buf.ViewPrefixed()
	if err != nil {
		return Decimal{}, err
	}

	unscaled := new(big.Int).SetBytes(mag)
	switch int8(sign) {
	case 0:
		if unscaled.Sign() != 0 {
			return Decimal{}, fmt.Errorf("%w: zero sign with non-zero magnitude", ErrInvalidValue)
		}
	case 1:
	case -1:
		unscaled.Neg(unscaled)
	default:
		return Decimal{}, fmt.Errorf("%w: decimal sign byte %#x", ErrInvalidValue, sign)
	}
	return Decimal{Unscaled: unscaled, Scale: scale}, nil
}
