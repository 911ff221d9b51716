package buffer

import (
	"sync"

	"github.com/rayokota/hentitydb-sub001/pkg/metrics"
)

// DefaultCapacity is the smallest array a Recycler allocates.
const DefaultCapacity = 256

// Recycler caches at most one byte array for reuse by WriteBuffers.
//
// A Recycler is not synchronized. It must be used by one goroutine at a
// time, and an array released to it must not be touched afterwards by the
// goroutine that released it.
type Recycler struct {
	cached []byte
}

// NewRecycler creates an empty recycler
func NewRecycler() *Recycler {
	return &Recycler{}
}

// Allocate returns an array of at least minCapacity bytes. The cached array
// is handed out, and removed from the cache, when it is large enough.
func (r *Recycler) Allocate(minCapacity int) []byte {
	if c := r.cached; c != nil && cap(c) >= minCapacity {
		r.cached = nil
		metrics.RecyclerAllocations.WithLabelValues(metrics.ResultHit).Inc()
		return c[:cap(c)]
	}
	metrics.RecyclerAllocations.WithLabelValues(metrics.ResultMiss).Inc()
	if minCapacity < DefaultCapacity {
		minCapacity = DefaultCapacity
	}
	return make([]byte, minCapacity)
}

// Release offers p back to the recycler. When an array is already cached the
// larger of the two survives.
func (r *Recycler) Release(p []byte) {
	if p == nil {
		return
	}
	if r.cached == nil {
		r.cached = p
		return
	}
	metrics.RecyclerDiscards.Inc()
	if cap(p) > cap(r.cached) {
		r.cached = p
	}
}

// Cached reports the capacity of the cached array, or 0.
func (r *Recycler) Cached() int {
	return cap(r.cached)
}

// recyclers binds recyclers to goroutines. A recycler taken from the pool
// belongs to the goroutine holding it until it is put back, which gives each
// logical thread its own single-slot cache without locking the slot. Pool
// entries are created lazily and dropped by the garbage collector, so there
// is nothing to tear down.
var recyclers = sync.Pool{
	New: func() any { return NewRecycler() },
}

// AcquireRecycler checks out a recycler for the calling goroutine.
func AcquireRecycler() *Recycler {
	return recyclers.Get().(*Recycler)
}

// ReleaseRecycler returns a recycler obtained from AcquireRecycler. The
// caller must not use r afterwards.
func ReleaseRecycler(r *Recycler) {
	if r != nil {
		recyclers.Put(r)
	}
}
