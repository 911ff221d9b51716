// Package textcodec adapts registry codecs to text so values can be typed on
// the command line or sent over HTTP. Numbers use Go literal syntax, byte
// arrays are hex and dates are RFC 3339.
package textcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
)

// ErrNoTextForm is returned by For for registered codecs without a text
// representation.
var ErrNoTextForm = errors.New("no text form")

// Adapter converts between text and encoded bytes.
type Adapter struct {
	Encode func(s string) ([]byte, error)
	Decode func(p []byte) (string, error)
}

// Options selects the wrappers applied around the registry codec. Compress
// is innermost and Salt outermost.
type Options struct {
	Salt     bool
	Buckets  int
	Compress bool
	Checksum bool
}

func adapt[T any](id string, opts Options, parse func(string) (T, error), format func(T) string) (Adapter, error) {
	base, err := codec.New(id)
	if err != nil {
		return Adapter{}, err
	}
	c, ok := base.(codec.Codec[T])
	if !ok {
		return Adapter{}, fmt.Errorf("codec %s: unexpected type %T", id, base)
	}
	if opts.Compress {
		c = codec.NewCompressed(c)
	}
	if opts.Checksum {
		c = codec.NewChecksummed(c)
	}
	if opts.Salt {
		n := buckets(opts.Buckets)
		if n > codec.MaxSaltBuckets {
			return Adapter{}, fmt.Errorf("%w: salt bucket count %d", codec.ErrInvalidValue, n)
		}
		c = codec.NewSalting(c, codec.WithBuckets(n))
	}

	return Adapter{
		Encode: func(s string) ([]byte, error) {
			v, err := parse(s)
			if err != nil {
				return nil, fmt.Errorf("parse %q for %s: %w", s, id, err)
			}
			return codec.Encode(c, v)
		},
		Decode: func(p []byte) (string, error) {
			v, err := codec.Decode(c, p)
			if err != nil {
				return "", err
			}
			return format(v), nil
		},
	}, nil
}

func buckets(n int) int {
	if n <= 0 {
		return codec.DefaultSaltBuckets
	}
	return n
}

func parseInt[T int16 | int32 | int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 0, bits)
		return T(n), err
	}
}

func formatInt[T int16 | int32 | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseList[T int32 | int64](bits int) func(string) ([]T, error) {
	return func(s string) ([]T, error) {
		if strings.TrimSpace(s) == "" {
			return []T{}, nil
		}
		fields := strings.Split(s, ",")
		out := make([]T, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(strings.TrimSpace(f), 0, bits)
			if err != nil {
				return nil, err
			}
			out[i] = T(n)
		}
		return out, nil
	}
}

func formatList[T int32 | int64](v []T) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(parts, ",")
}

// ParseHex decodes hex with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func identity(s string) (string, error) { return s, nil }

func formatString(s string) string { return s }

// For returns the text adapter for a registry codec id.
func For(id string, opts Options) (Adapter, error) {
	switch id {
	case "bool":
		return adapt(id, opts, strconv.ParseBool, strconv.FormatBool)
	case "byte":
		return adapt(id, opts, func(s string) (byte, error) {
			n, err := strconv.ParseUint(s, 0, 8)
			return byte(n), err
		}, func(v byte) string { return strconv.Itoa(int(v)) })
	case "short":
		return adapt(id, opts, parseInt[int16](16), formatInt[int16])
	case "int", "varint", "inverted-int":
		return adapt(id, opts, parseInt[int32](32), formatInt[int32])
	case "long", "varlong", "inverted-long":
		return adapt(id, opts, parseInt[int64](64), formatInt[int64])
	case "float":
		return adapt(id, opts, func(s string) (float32, error) {
			f, err := strconv.ParseFloat(s, 32)
			return float32(f), err
		}, func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) })
	case "double":
		return adapt(id, opts, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	case "bigdecimal":
		return adapt(id, opts, codec.ParseDecimal, codec.Decimal.String)
	case "date":
		return adapt(id, opts, func(s string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, s)
		}, func(v time.Time) string { return v.Format(time.RFC3339Nano) })
	case "uuid":
		return adapt(id, opts, uuid.Parse, uuid.UUID.String)
	case "ksuid":
		return adapt(id, opts, ksuid.Parse, ksuid.KSUID.String)
	case "bytes", "bytes-raw":
		return adapt(id, opts, ParseHex, hex.EncodeToString)
	case "string", "string-raw":
		return adapt(id, opts, identity, formatString)
	case "varint-array":
		return adapt(id, opts, parseList[int32](32), formatList[int32])
	case "varlong-array":
		return adapt(id, opts, parseList[int64](64), formatList[int64])
	default:
		if _, ok := codec.Lookup(id); ok {
			return Adapter{}, fmt.Errorf("%w: codec %s", ErrNoTextForm, id)
		}
		return Adapter{}, fmt.Errorf("%w: %q", codec.ErrUnknownCodecType, id)
	}
}

// Supported reports whether For accepts id.
func Supported(id string) bool {
	_, err := For(id, Options{})
	return err == nil
}
