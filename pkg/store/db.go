package store

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/lni/dragonboat/v4/logger"
)

var plog = logger.GetLogger("store")

// DB is an ordered key/value store. Keys are compared bytewise, so codec
// output order is the iteration order.
type DB struct {
	db     *pebble.DB
	writes *pebble.WriteOptions
	closed atomic.Bool
}

// Open opens or creates the store described by cfg.
func Open(cfg Config) (*DB, error) {
	opts := &pebble.Options{}
	dir := cfg.Dir
	if cfg.InMemory {
		opts.FS = vfs.NewMem()
		dir = ""
	} else if dir == "" {
		return nil, errors.New("store: data directory is required")
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble at %q", dir)
	}

	writes := pebble.NoSync
	if cfg.Sync {
		writes = pebble.Sync
	}
	plog.Infof("opened store dir=%q in_memory=%t sync=%t", dir, cfg.InMemory, cfg.Sync)
	return &DB{db: db, writes: writes}, nil
}

// Close flushes and closes the store. Closing twice is harmless.
func (d *DB) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := d.db.Close(); err != nil {
		return errors.Wrap(err, "close pebble")
	}
	return nil
}

func (d *DB) set(key, value []byte) error {
	if d.closed.Load() {
		return ErrClosed
	}
	return errors.Wrap(d.db.Set(key, value, d.writes), "pebble set")
}

func (d *DB) get(key []byte) ([]byte, error) {
	if d.closed.Load() {
		return nil, ErrClosed
	}
	value, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "pebble get")
	}
	defer closer.Close()
	return append([]byte(nil), value...), nil
}

func (d *DB) delete(key []byte) error {
	if d.closed.Load() {
		return ErrClosed
	}
	return errors.Wrap(d.db.Delete(key, d.writes), "pebble delete")
}

func (d *DB) newIter(lower, upper []byte) (*pebble.Iterator, error) {
	if d.closed.Load() {
		return nil, ErrClosed
	}
	iter, err := d.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, errors.Wrap(err, "pebble iterator")
	}
	return iter, nil
}

// prefixEnd returns the smallest key greater than every key starting with
// prefix, or nil when no such key exists.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
