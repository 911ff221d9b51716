package codec

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

const (
	// DefaultSaltBuckets spreads keys over every value of the salt byte.
	DefaultSaltBuckets = 256
	MaxSaltBuckets     = 256
)

// SaltingOption configures a Salting codec.
type SaltingOption func(*saltingOptions)

type saltingOptions struct {
	buckets int
}

// WithBuckets limits salt bytes to [0, n). It panics unless 1 <= n <= 256.
func WithBuckets(n int) SaltingOption {
	if n < 1 || n > MaxSaltBuckets {
		panic(fmt.Sprintf("codec: salt bucket count %d out of range [1, %d]", n, MaxSaltBuckets))
	}
	return func(o *saltingOptions) {
		o.buckets = n
	}
}

// Salting prefixes the inner encoding with one bucket byte so that
// sequential keys spread across storage partitions.
//
// The bucket is xxhash64 of the inner bytes modulo the bucket count. Both the
// hash and the bucket count are part of the stored format: changing either
// moves existing keys to different buckets.
type Salting[T any] struct {
	inner   Codec[T]
	buckets int
}

// NewSalting wraps inner. Without options every byte value is a bucket.
func NewSalting[T any](inner Codec[T], opts ...SaltingOption) *Salting[T] {
	o := saltingOptions{buckets: DefaultSaltBuckets}
	for _, opt := range opts {
		opt(&o)
	}
	return &Salting[T]{inner: inner, buckets: o.buckets}
}

func (s *Salting[T]) CodecID() string { return "salting" }

// Unwrap returns the inner codec.
func (s *Salting[T]) Unwrap() any { return s.inner }

// Param returns the bucket count.
func (s *Salting[T]) Param() int32 { return int32(s.buckets) }

// Bucket returns the salt byte for an encoded inner value.
func (s *Salting[T]) Bucket(inner []byte) byte {
	return byte(xxhash.Sum64(inner) % uint64(s.buckets))
}

// Buckets lists every salt byte the codec can emit. A range scan over salted
// keys runs once per prefix.
func (s *Salting[T]) Buckets() [][]byte {
	out := make([][]byte, s.buckets)
	for i := range out {
		out[i] = []byte{byte(i)}
	}
	return out
}

func (s *Salting[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	pos := buf.Len()
	buf.WriteOneByte(0)
	if err := s.inner.EncodeTo(buf, v); err != nil {
		return err
	}
	buf.SetByteAt(pos, s.Bucket(buf.Bytes()[pos+1:]))
	return nil
}

func (s *Salting[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	if _, err := buf.ReadByte(); err != nil {
		var zero T
		return zero, err
	}
	return s.inner.DecodeFrom(buf)
}
