package buffer

import "fmt"

const (
	// MaxVarIntLen32 is the longest varint encoding of a 32-bit value.
	MaxVarIntLen32 = 5
	// MaxVarIntLen64 is the longest varint encoding of a 64-bit value.
	MaxVarIntLen64 = 10
)

// ZigZag32 folds a signed value onto an unsigned one so that values of small
// magnitude stay small regardless of sign.
func ZigZag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// UnZigZag32 reverses ZigZag32.
func UnZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// ZigZag64 is the 64-bit form of ZigZag32.
func ZigZag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// UnZigZag64 reverses ZigZag64.
func UnZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// PutUvarint writes u into p least significant group first and returns the
// number of bytes written. p must have room for MaxVarIntLen64 bytes.
func PutUvarint(p []byte, u uint64) int {
	i := 0
	for u >= 0x80 {
		p[i] = byte(u) | 0x80
		u >>= 7
		i++
	}
	p[i] = byte(u)
	return i + 1
}

// UvarintLen returns the number of bytes PutUvarint uses for u.
func UvarintLen(u uint64) int {
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

// Uvarint decodes a varint from the front of p, reading at most maxBytes
// bytes. It returns the value and the number of bytes consumed. maxBytes is
// MaxVarIntLen32 or MaxVarIntLen64; a final byte carrying bits beyond that
// width is malformed.
func Uvarint(p []byte, maxBytes int) (uint64, int, error) {
	lastMax := byte(0x01)
	if maxBytes == MaxVarIntLen32 {
		lastMax = 0x0F
	}

	var u uint64
	var shift uint
	for i := 0; i < maxBytes; i++ {
		if i >= len(p) {
			return 0, 0, fmt.Errorf("%w: varint truncated after %d bytes", ErrOutOfData, i)
		}
		b := p[i]
		if i == maxBytes-1 && b > lastMax {
			return 0, 0, fmt.Errorf("%w: byte %d overflows %d bits", ErrMalformedVarint, i, 7*(maxBytes-1)+bitsIn(lastMax))
		}
		u |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return u, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("%w: no terminator within %d bytes", ErrMalformedVarint, maxBytes)
}

func bitsIn(m byte) int {
	n := 0
	for ; m > 0; m >>= 1 {
		n++
	}
	return n
}
