package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
)

// Member is a codec that tags its output with a varint version, as Versioned
// does, and reports the versions it understands.
type Member[T any] interface {
	Codec[T]
	Versions() []int32
}

// Migrating chains independently versioned codecs for one type, oldest
// first. New values are always written by the last member. Bytes from any
// member still in the chain stay readable: the leading version tag is
// peeked and routed to the newest member that knows it.
//
// Dropping a member makes its data unreadable.
type Migrating[T any] struct {
	members []Member[T]
	owners  map[int32]Member[T]
}

// NewMigrating builds the chain. At least one member is required.
func NewMigrating[T any](members ...Member[T]) (*Migrating[T], error) {
	if len(members) == 0 {
		return nil, errors.New("codec: migrating codec needs at least one member")
	}
	m := &Migrating[T]{
		members: append([]Member[T](nil), members...),
		owners:  make(map[int32]Member[T]),
	}
	for _, member := range members {
		for _, n := range member.Versions() {
			if prev, ok := m.owners[n]; ok {
				plog.Debugf("version %d of %s superseded by %s", n, describe(prev), describe(member))
			}
			m.owners[n] = member
		}
	}
	return m, nil
}

// Current returns the member used for encoding.
func (m *Migrating[T]) Current() Member[T] { return m.members[len(m.members)-1] }

// Versions returns every version any member can decode, ascending.
func (m *Migrating[T]) Versions() []int32 {
	out := make([]int32, 0, len(m.owners))
	for n := range m.owners {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *Migrating[T]) EncodeTo(buf *buffer.WriteBuffer, v T) error {
	return m.Current().EncodeTo(buf, v)
}

func (m *Migrating[T]) DecodeFrom(buf *buffer.ReadBuffer) (T, error) {
	var zero T
	start := buf.Offset()
	n, err := buf.ReadVarInt()
	if err != nil {
		return zero, err
	}
	if err := buf.Seek(start); err != nil {
		return zero, err
	}
	member, ok := m.owners[n]
	if !ok {
		return zero, fmt.Errorf("%w: no member decodes version %d", ErrUnsupportedVersion, n)
	}
	return member.DecodeFrom(buf)
}
