package codec

import (
	"fmt"
	"sort"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// Version is one historical wire layout of a Versioned codec.
type Version[T any] struct {
	Number int32
	Encode func(buf *buffer.WriteBuffer, v T) error
	Decode func(buf *buffer.ReadBuffer) (T, error)
}

// Versioned writes a varint version tag followed by the payload of that
// version's layout. EncodeTo always writes the latest version; DecodeFrom
// dispatches on the tag it reads.
type Versioned[T any] struct {
	id       string
	latest   int32
	versions map[int32]Version[T]
	numbers  []int32
}

// NewVersioned builds a codec from its layouts. latest must be one of them
// and version numbers must be unique.
func NewVersioned[T any](id string, latest int32, versions ...Version[T]) (*Versioned[T], error) {
	c := &Versioned[T]{
		id:       id,
		latest:   latest,
		versions: make(map[int32]Version[T], len(versions)),
	}
	for _, v := range versions {
		if v.Encode == nil || v.Decode == nil {
			return nil, fmt.Errorf("codec %s: version %d is missing encode or decode", id, v.Number)
		}
		if _, dup := c.versions[v.Number]; dup {
			return nil, fmt.Errorf("codec %s: duplicate version %d", id, v.Number)
		}
		c.versions[v.Number] = v
		c.numbers = append(c.numbers, v.Number)
	}
	if _, ok := c.versions[latest]; !ok {
		return nil, fmt.Errorf("codec %s: latest version %d has no layout", id, latest)
	}
	sort.Slice(c.numbers, func(i, j int) bool { return c.numbers[i] < c.numbers[j] })
	return c, nil
}

// MustVersioned is NewVersioned for package-level codec definitions.
func MustVersioned[T any](id string, latest int32, versions ...Version[T]) *Versioned[T] {
	c, err := NewVersioned(id, latest, versions...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Versioned[T]) CodecID() string { return c.id }

// Latest returns the version EncodeTo writes.
func (c *Versioned[T]) Latest() int32 { return c.latest }

// Versions returns every version this codec can decode, ascending.
func (c *Versioned[T]) Versions() []int32 {
	return append([]int32(nil), c.numbers...)
}

func (c *Versioned[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	return c.EncodeVersion(buf, v, c.latest)
}

// EncodeVersion writes v in the layout of version n.
func (c *Versioned[T]) EncodeVersion(buf *buffer.WriteBuffer, v T, n int32) error {
	layout, ok := c.versions[n]
	if !ok {
		return fmt.Errorf("%w: %s has no version %d", ErrUnsupportedVersion, c.id, n)
	}
	buf.WriteVarInt(n)
	return layout.Encode(buf, v)
}

func (c *Versioned[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	var zero T
	n, err := buf.ReadVarInt()
	if err != nil {
		return zero, err
	}
	layout, ok := c.versions[n]
	if !ok {
		return zero, fmt.Errorf("%w: %s has no version %d", ErrUnsupportedVersion, c.id, n)
	}
	return layout.Decode(buf)
}
