package store

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/rayokota/hentitydb-sub001/pkg/buffer"
	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/metrics"
)

// Table stores values of V under keys of K. Every stored key is the table
// name as a prefixed string followed by the key codec output, so a scan
// visits rows in the byte order of their encoded keys.
type Table[K, V any] struct {
	db     *DB
	name   string
	prefix []byte
	keys   codec.Codec[K]
	values codec.Codec[V]
}

// NewTable binds a named keyspace to its key and value codecs.
func NewTable[K, V any](db *DB, name string, keys codec.Codec[K], values codec.Codec[V]) *Table[K, V] {
	prefix, _ := codec.Encode(codec.String(true), name)
	return &Table[K, V]{
		db:     db,
		name:   name,
		prefix: prefix,
		keys:   keys,
		values: values,
	}
}

// Name returns the table name.
func (t *Table[K, V]) Name() string { return t.name }

// Key returns the stored form of k.
func (t *Table[K, V]) Key(k K) ([]byte, error) {
	buf := buffer.NewWriteBuffer(len(t.prefix) + 32)
	defer buf.Release()

	buf.WriteBytes(t.prefix)
	if err := t.keys.EncodeTo(buf, k); err != nil {
		return nil, errors.Wrapf(err, "encode %s key", t.name)
	}
	return buf.Finish(), nil
}

func (t *Table[K, V]) decodeKey(stored []byte) (K, error) {
	var zero K
	if !bytes.HasPrefix(stored, t.prefix) {
		return zero, ErrInvalidKey
	}
	k, err := codec.Decode(t.keys, stored[len(t.prefix):])
	if err != nil {
		return zero, errors.Wrapf(err, "decode %s key", t.name)
	}
	return k, nil
}

// Put stores v under k, replacing any existing value.
func (t *Table[K, V]) Put(k K, v V) (err error) {
	defer func() { metrics.RecordStoreOperation("put", err) }()

	key, err := t.Key(k)
	if err != nil {
		return err
	}
	value, err := codec.Encode(t.values, v)
	if err != nil {
		return errors.Wrapf(err, "encode %s value", t.name)
	}
	return t.db.set(key, value)
}

// Get returns the value stored under k, or ErrKeyNotFound.
func (t *Table[K, V]) Get(k K) (v V, err error) {
	defer func() {
		if errors.Is(err, ErrKeyNotFound) {
			metrics.RecordStoreOperation("get", nil)
			return
		}
		metrics.RecordStoreOperation("get", err)
	}()

	key, err := t.Key(k)
	if err != nil {
		return v, err
	}
	raw, err := t.db.get(key)
	if err != nil {
		return v, err
	}
	v, err = codec.Decode(t.values, raw)
	if err != nil {
		return v, errors.Wrapf(err, "decode %s value", t.name)
	}
	return v, nil
}

// Delete removes k. Deleting a missing key is not an error.
func (t *Table[K, V]) Delete(k K) (err error) {
	defer func() { metrics.RecordStoreOperation("delete", err) }()

	key, err := t.Key(k)
	if err != nil {
		return err
	}
	return t.db.delete(key)
}

// Scan calls fn for every row with from <= key < to in key byte order. A nil
// bound leaves that side open. Returning false from fn stops the scan.
func (t *Table[K, V]) Scan(ctx context.Context, from, to *K, fn func(K, V) bool) (err error) {
	defer func() { metrics.RecordStoreOperation("scan", err) }()

	lower, upper := t.prefix, prefixEnd(t.prefix)
	if from != nil {
		if lower, err = t.Key(*from); err != nil {
			return err
		}
	}
	if to != nil {
		if upper, err = t.Key(*to); err != nil {
			return err
		}
	}
	return t.scan(ctx, lower, upper, fn)
}

// ScanPrefix calls fn for every row whose encoded key starts with prefix.
// Pass a salt bucket, or the encoding of a leading key component, to read
// one slice of the table.
func (t *Table[K, V]) ScanPrefix(ctx context.Context, prefix []byte, fn func(K, V) bool) (err error) {
	defer func() { metrics.RecordStoreOperation("scan", err) }()

	lower := append(append([]byte(nil), t.prefix...), prefix...)
	return t.scan(ctx, lower, prefixEnd(lower), fn)
}

func (t *Table[K, V]) scan(ctx context.Context, lower, upper []byte, fn func(K, V) bool) error {
	iter, err := t.db.newIter(lower, upper)
	if err != nil {
		return err
	}
	defer iter.Close()

	for valid := iter.First(); valid; valid = iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		k, err := t.decodeKey(iter.Key())
		if err != nil {
			return err
		}
		v, err := codec.Decode(t.values, iter.Value())
		if err != nil {
			return errors.Wrapf(err, "decode %s value", t.name)
		}
		if !fn(k, v) {
			break
		}
	}
	return errors.Wrap(iter.Error(), "pebble iterate")
}

// Create stores v under a new KSUID and returns it. KSUIDs sort by creation
// time, so a scan returns rows in insertion order.
func Create[V any](t *Table[ksuid.KSUID, V], v V) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := t.Put(id, v); err != nil {
		return ksuid.Nil, err
	}
	plog.Debugf("created %s/%s", t.name, id)
	return id, nil
}
