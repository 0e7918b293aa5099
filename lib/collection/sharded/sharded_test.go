package sharded

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringMap() *Map[string, int] {
	return New[string, int](order.String(), order.Comparable[int](), nil)
}

func TestSharded_PutGetRemove(t *testing.T) {
	m := newStringMap()

	_, replaced := m.Put("a", 1)
	assert.False(t, replaced)
	prev, replaced := m.Put("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 1, m.Size())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, m.IsEmpty())

	_, ok = m.Remove("a")
	assert.False(t, ok)
}

func TestSharded_PutIfAbsent(t *testing.T) {
	m := newStringMap()

	cur, inserted := m.PutIfAbsent("k", 1)
	assert.True(t, inserted)
	assert.Equal(t, 1, cur)

	cur, inserted = m.PutIfAbsent("k", 2)
	assert.False(t, inserted)
	assert.Equal(t, 1, cur)
	assert.Equal(t, 1, m.Size())
}

func TestSharded_AbsentKey(t *testing.T) {
	m := newStringMap()
	v, ok := m.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Nil(t, m.GetEntry("missing"))
}

func TestSharded_RoundTripManyKeys(t *testing.T) {
	m := newStringMap()
	const n = 5000
	for i := 0; i < n; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, n, m.Size())
	for i := 0; i < n; i++ {
		v, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d", i)
		require.Equal(t, i, v)
	}
}

func TestSharded_ConcurrentWriters(t *testing.T) {
	m := newStringMap()
	const (
		workers = 8
		perW    = 1000
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				m.Put(fmt.Sprintf("w%d-%d", w, i), i)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perW, m.Size())
}

func TestSharded_ConcurrentReadWrite(t *testing.T) {
	m := newStringMap()
	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				m.Put(fmt.Sprintf("k%d", i%100), i)
			}
		}
	}()

	for pass := 0; pass < 50; pass++ {
		it := m.Iterator()
		for it.Next() {
			e := it.Value()
			assert.NotEmpty(t, e.Key())
		}
	}
	close(stop)
	wg.Wait()
}

func TestSharded_IterationCoversEntries(t *testing.T) {
	m := newStringMap()
	want := map[string]int{}
	for i := 0; i < 200; i++ {
		k := fmt.Sprintf("k%d", i)
		m.Put(k, i)
		want[k] = i
	}

	got := map[string]int{}
	it := m.Iterator()
	for it.Next() {
		got[it.Value().Key()] = it.Value().Value()
	}
	assert.Equal(t, want, got)

	// Descending reverses the ascending snapshot.
	asc := collection.DrainIterator(m.Iterator())
	desc := collection.DrainIterator(m.DescendingIterator())
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Key(), desc[len(desc)-1-i].Key())
	}
}

func TestSharded_SeededIterators(t *testing.T) {
	m := newStringMap()
	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}

	it := m.IteratorFrom("k3")
	require.True(t, it.Next())
	assert.Equal(t, "k3", it.Value().Key())

	assert.False(t, m.IteratorFrom("absent").Next())
	assert.False(t, m.DescendingIteratorFrom("absent").Next())
}

func TestSharded_RemoveIf(t *testing.T) {
	m := newStringMap()
	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}

	changed := m.RemoveIf(func(e collection.Entry[string, int]) bool {
		return e.Value()%2 == 0
	})
	assert.True(t, changed)
	assert.Equal(t, 50, m.Size())

	it := m.Iterator()
	for it.Next() {
		assert.Equal(t, 1, it.Value().Value()%2)
	}
}

func TestSharded_CloneIsolation(t *testing.T) {
	m := newStringMap()
	m.Put("a", 1)

	cp := m.Clone()
	cp.Put("b", 2)
	m.Put("a", 99)

	v, _ := cp.Get("a")
	assert.Equal(t, 1, v)
	assert.False(t, m.ContainsKey("b"))
}

func TestSharded_EntrySetValuePanics(t *testing.T) {
	m := newStringMap()
	m.Put("a", 1)
	e := m.GetEntry("a")
	require.NotNil(t, e)
	assert.PanicsWithValue(t, collection.ErrUnsupportedOperation, func() {
		e.SetValue(2)
	})
}

func TestSharded_TrySplitEntries(t *testing.T) {
	m := newStringMap()
	for i := 0; i < 1000; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}

	parts := m.TrySplitEntries(4)
	require.NotEmpty(t, parts)
	assert.LessOrEqual(t, len(parts), 4)

	seen := map[string]int{}
	for _, part := range parts {
		it := part.Iterator()
		for it.Next() {
			seen[it.Value().Key()]++
		}
	}
	require.Len(t, seen, 1000, "partitions must be disjoint and complete")
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %s in multiple partitions", k)
	}
}

func TestSharded_Stats(t *testing.T) {
	m := New[string, int](order.String(), order.Comparable[int](), &Options{NumShards: 8})
	for i := 0; i < 10_000; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}

	stats := m.Stats()
	assert.Equal(t, 8, stats.ShardCount)
	assert.Greater(t, stats.Mean, 0.0)
	assert.Greater(t, stats.DistributionQuality, 0.5,
		"a seeded hash should spread 10k keys reasonably evenly over 8 shards")
}

func TestSharded_Clear(t *testing.T) {
	m := newStringMap()
	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Iterator().Next())
}

func BenchmarkSharded_Put(b *testing.B) {
	m := New[uint64, uint64](order.Uint64(), order.Comparable[uint64](), nil)
	b.RunParallel(func(pb *testing.PB) {
		var i uint64
		for pb.Next() {
			i++
			m.Put(i, i)
		}
	})
}

func BenchmarkSharded_Get(b *testing.B) {
	m := New[uint64, uint64](order.Uint64(), order.Comparable[uint64](), nil)
	for i := uint64(0); i < 1<<16; i++ {
		m.Put(i, i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var i uint64
		for pb.Next() {
			i++
			m.Get(i & (1<<16 - 1))
		}
	})
}
