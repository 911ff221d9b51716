package codec

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/segmentio/ksuid"
)

// Factory builds a codec from a stored identity. Leaf codecs get a nil inner
// codec and a zero param; wrappers get their decoded inner codec and
// parameter.
type Factory func(inner any, param int32) (any, error)

// Wrapper is implemented by codecs that wrap another codec. The identity
// codec stores Param and the identity of Unwrap alongside CodecID.
type Wrapper interface {
	Identifiable
	Unwrap() any
	Param() int32
}

var factories = xsync.NewMapOf[string, Factory]()

// Register binds id to f, replacing any earlier binding.
func Register(id string, f Factory) {
	if _, replaced := factories.LoadAndStore(id, f); replaced {
		plog.Debugf("codec %s re-registered", id)
	}
}

// Lookup returns the factory bound to id.
func Lookup(id string) (Factory, bool) {
	return factories.Load(id)
}

// Registered returns every bound id in sorted order.
func Registered() []string {
	ids := make([]string, 0, factories.Size())
	factories.Range(func(id string, _ Factory) bool {
		ids = append(ids, id)
		return true
	})
	sort.Strings(ids)
	return ids
}

// New builds the leaf codec registered under id.
func New(id string) (any, error) {
	return build(id, nil, 0)
}

func build(id string, inner any, param int32) (any, error) {
	f, ok := factories.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodecType, id)
	}
	c, err := f(inner, param)
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", id, err)
	}
	return c, nil
}

func stateless[C any](c C) Factory {
	return func(any, int32) (any, error) { return c, nil }
}

// --------------------------------------------------------------------------
// Element types
// --------------------------------------------------------------------------

// Wrappers are generic over the wrapped value type, so rebuilding one from
// an untyped inner codec needs the set of value types it may carry.

type element interface {
	salting(inner any, buckets int) (any, bool)
	checksummed(inner any) (any, bool)
	compressed(inner any) (any, bool)
}

type elementOf[T any] struct{}

func (elementOf[T]) salting(inner any, buckets int) (any, bool) {
	c, ok := inner.(Codec[T])
	if !ok {
		return nil, false
	}
	return NewSalting(c, WithBuckets(buckets)), true
}

func (elementOf[T]) checksummed(inner any) (any, bool) {
	c, ok := inner.(Codec[T])
	if !ok {
		return nil, false
	}
	return NewChecksummed(c), true
}

func (elementOf[T]) compressed(inner any) (any, bool) {
	c, ok := inner.(Codec[T])
	if !ok {
		return nil, false
	}
	return NewCompressed(c), true
}

var elements = xsync.NewMapOf[reflect.Type, element]()

// RegisterElementType lets registry wrappers (salting, checksummed,
// compressed) be rebuilt around codecs of T. Built-in value types are
// registered already.
func RegisterElementType[T any]() {
	elements.Store(reflect.TypeFor[T](), elementOf[T]{})
}

func wrapInner(id string, inner any, wrap func(element) (any, bool)) (any, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: %s needs an inner codec", ErrUnknownCodecType, id)
	}
	var out any
	elements.Range(func(_ reflect.Type, e element) bool {
		c, ok := wrap(e)
		if ok {
			out = c
		}
		return !ok
	})
	if out == nil {
		return nil, fmt.Errorf("%w: no element type registered for %T", ErrUnknownCodecType, inner)
	}
	return out, nil
}

func init() {
	for _, c := range []Identifiable{
		Bool(), Byte(), Short(), Int(), Long(), Float(), Double(),
		BigDecimal(), Date(), UUID(), KSUID(), Type(),
		ByteArray(true), ByteArray(false), ByteBuffer(),
		String(true), String(false),
		VarInt(), VarLong(), VarIntArray(), VarLongArray(),
		InvertedInt(), InvertedLong(),
	} {
		Register(c.CodecID(), stateless(c))
	}

	Register("salting", func(inner any, param int32) (any, error) {
		if inner == nil {
			return nil, fmt.Errorf("%w: salting needs an inner codec", ErrUnknownCodecType)
		}
		if param < 1 || param > MaxSaltBuckets {
			return nil, fmt.Errorf("%w: salt bucket count %d", ErrInvalidValue, param)
		}
		return wrapInner("salting", inner, func(e element) (any, bool) {
			return e.salting(inner, int(param))
		})
	})
	Register("checksummed", func(inner any, _ int32) (any, error) {
		return wrapInner("checksummed", inner, func(e element) (any, bool) {
			return e.checksummed(inner)
		})
	})
	Register("compressed", func(inner any, _ int32) (any, error) {
		return wrapInner("compressed", inner, func(e element) (any, bool) {
			return e.compressed(inner)
		})
	})

	RegisterElementType[bool]()
	RegisterElementType[byte]()
	RegisterElementType[int16]()
	RegisterElementType[int32]()
	RegisterElementType[int64]()
	RegisterElementType[float32]()
	RegisterElementType[float64]()
	RegisterElementType[Decimal]()
	RegisterElementType[time.Time]()
	RegisterElementType[uuid.UUID]()
	RegisterElementType[ksuid.KSUID]()
	RegisterElementType[reflect.Type]()
	RegisterElementType[[]byte]()
	RegisterElementType[*bytes.Buffer]()
	RegisterElementType[string]()
	RegisterElementType[[]int32]()
	RegisterElementType[[]int64]()
}
