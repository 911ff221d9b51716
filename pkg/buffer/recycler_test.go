package buffer

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayokota/hentitydb-sub001/pkg/metrics"
)

func sameArray(a, b []byte) bool {
	return cap(a) > 0 && cap(b) > 0 && &a[:cap(a)][0] == &b[:cap(b)][0]
}

func TestRecycler_ReuseAfterRelease(t *testing.T) {
	r := NewRecycler()

	first := r.Allocate(1024)
	require.GreaterOrEqual(t, len(first), 1024)
	r.Release(first)

	testCases := []struct {
		name string
		size int
	}{
		{"equal capacity", 1024},
		{"smaller capacity", 16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Allocate(tc.size)
			assert.True(t, sameArray(first, got), "expected the released array back")
			assert.Equal(t, 0, r.Cached(), "checked out array must leave the cache")
			r.Release(got)
		})
	}
}

func TestRecycler_LargerArraySurvives(t *testing.T) {
	r := NewRecycler()
	small := make([]byte, 512)
	large := make([]byte, 4096)

	r.Release(small)
	r.Release(large)
	got := r.Allocate(64)
	assert.True(t, sameArray(large, got))

	r.Release(large)
	r.Release(small)
	got = r.Allocate(64)
	assert.True(t, sameArray(large, got), "a smaller release must not evict the larger array")
}

func TestRecycler_FreshAllocationWhenTooSmall(t *testing.T) {
	r := NewRecycler()
	cached := make([]byte, 300)
	r.Release(cached)

	got := r.Allocate(1000)
	assert.GreaterOrEqual(t, len(got), 1000)
	assert.False(t, sameArray(cached, got))
	assert.Equal(t, 300, r.Cached(), "a miss leaves the cached array in place")

	tiny := NewRecycler().Allocate(1)
	assert.Equal(t, DefaultCapacity, len(tiny))
}

func TestRecycler_ReleaseNil(t *testing.T) {
	r := NewRecycler()
	r.Release(nil)
	assert.Equal(t, 0, r.Cached())
}

func TestRecycler_Metrics(t *testing.T) {
	hits := metrics.RecyclerAllocations.WithLabelValues(metrics.ResultHit)
	misses := metrics.RecyclerAllocations.WithLabelValues(metrics.ResultMiss)
	hitsBefore := testutil.ToFloat64(hits)
	missesBefore := testutil.ToFloat64(misses)

	r := NewRecycler()
	p := r.Allocate(32)
	r.Release(p)
	r.Allocate(32)

	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(hits))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(misses))
}

func TestAcquireRecycler_ConcurrentWriters(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				b := NewWriteBuffer(4)
				for j := 0; j < i%50; j++ {
					b.WriteInt(int32(g*1000 + j))
				}
				r := NewReadBuffer(b.Bytes())
				for j := 0; j < i%50; j++ {
					v, err := r.ReadInt()
					if err != nil || v != int32(g*1000+j) {
						t.Errorf("goroutine %d: got %d, %v", g, v, err)
					}
				}
				b.Release()
			}
		}(g)
	}
	wg.Wait()
}
