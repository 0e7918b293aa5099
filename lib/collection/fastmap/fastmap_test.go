package fastmap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntMap(opts *Options) *FastMap[int, string] {
	return New[int, string](order.Int(), order.Comparable[string](), opts)
}

func TestFastMap_PutGetRemove(t *testing.T) {
	m := newIntMap(nil)

	_, replaced := m.Put(1, "one")
	assert.False(t, replaced)
	prev, replaced := m.Put(1, "uno")
	assert.True(t, replaced)
	assert.Equal(t, "one", prev)
	assert.Equal(t, 1, m.Size())

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "uno", v)

	v, ok = m.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "uno", v)
	assert.True(t, m.IsEmpty())
}

func TestFastMap_AbsentKey(t *testing.T) {
	m := newIntMap(nil)

	v, ok := m.Get(7)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Nil(t, m.GetEntry(7))

	_, ok = m.Remove(7)
	assert.False(t, ok, "remove on an empty map is absent, not an error")
}

func TestFastMap_PutIfAbsent(t *testing.T) {
	m := newIntMap(nil)

	cur, inserted := m.PutIfAbsent(1, "one")
	assert.True(t, inserted)
	assert.Equal(t, "one", cur)

	cur, inserted = m.PutIfAbsent(1, "uno")
	assert.False(t, inserted)
	assert.Equal(t, "one", cur)
}

// Exercises probe-sequence continuity: removing entries from the middle of
// collision chains must keep every remaining key reachable.
func TestFastMap_RemovalRehoming(t *testing.T) {
	m := newIntMap(&Options{InitialCapacity: 16})
	const n = 512
	for i := 0; i < n; i++ {
		m.Put(i, fmt.Sprintf("v%d", i))
	}

	rnd := rand.New(rand.NewSource(42))
	alive := map[int]bool{}
	for i := 0; i < n; i++ {
		alive[i] = true
	}
	for _, i := range rnd.Perm(n)[:n/2] {
		_, ok := m.Remove(i)
		require.True(t, ok, "key %d vanished before removal", i)
		delete(alive, i)
	}

	require.Equal(t, len(alive), m.Size())
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.Equal(t, alive[i], ok, "key %d reachability after rehoming", i)
		if ok {
			require.Equal(t, fmt.Sprintf("v%d", i), v)
		}
	}
}

// Insert 1..1000 at initial capacity 16, then remove half and verify the
// table shrinks below its peak.
func TestFastMap_GrowAndShrink(t *testing.T) {
	m := newIntMap(&Options{InitialCapacity: 16})

	for i := 1; i <= 1000; i++ {
		m.Put(i, fmt.Sprintf("v%d", i))
	}
	require.Equal(t, 1000, m.Size())
	peak := m.Capacity()
	assert.Greater(t, peak, 16)

	for i := 1; i <= 1000; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("v%d", i), v)
	}

	for i := 1; i <= 500; i++ {
		_, ok := m.Remove(i)
		require.True(t, ok)
	}
	assert.Equal(t, 500, m.Size())
	assert.Less(t, m.Capacity(), peak, "low-water mark must trigger a shrink")
	assert.GreaterOrEqual(t, m.Capacity(), 16, "never shrinks below the initial capacity")
}

func TestFastMap_SizeInvariant(t *testing.T) {
	m := newIntMap(nil)
	live := map[int]bool{}
	rnd := rand.New(rand.NewSource(7))

	for op := 0; op < 10_000; op++ {
		k := rnd.Intn(200)
		if rnd.Intn(3) == 0 {
			_, ok := m.Remove(k)
			assert.Equal(t, live[k], ok)
			delete(live, k)
		} else {
			m.Put(k, "x")
			live[k] = true
		}
		require.Equal(t, len(live), m.Size())
	}
}

func TestFastMap_IterationStableBetweenPasses(t *testing.T) {
	m := newIntMap(nil)
	for i := 0; i < 100; i++ {
		m.Put(i, fmt.Sprintf("v%d", i))
	}

	first := collection.DrainIterator(m.Iterator())
	second := collection.DrainIterator(m.Iterator())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, collection.EntryEqual(first[i], second[i]),
			"hash iteration must be stable while unmutated")
	}

	desc := collection.DrainIterator(m.DescendingIterator())
	require.Len(t, desc, len(first))
	for i := range first {
		assert.True(t, collection.EntryEqual(first[i], desc[len(desc)-1-i]))
	}
}

func TestFastMap_SeededIterators(t *testing.T) {
	m := newIntMap(nil)
	for i := 0; i < 50; i++ {
		m.Put(i, "x")
	}

	it := m.IteratorFrom(25)
	require.True(t, it.Next())
	assert.Equal(t, 25, it.Value().Key())

	it = m.DescendingIteratorFrom(25)
	require.True(t, it.Next())
	assert.Equal(t, 25, it.Value().Key())
}

func TestFastMap_RemoveIf(t *testing.T) {
	m := newIntMap(nil)
	for i := 0; i < 100; i++ {
		m.Put(i, "x")
	}

	changed := m.RemoveIf(func(e collection.Entry[int, string]) bool {
		return e.Key() < 50
	})
	assert.True(t, changed)
	assert.Equal(t, 50, m.Size())
	assert.False(t, m.ContainsKey(49))
	assert.True(t, m.ContainsKey(50))

	assert.False(t, m.RemoveIf(func(collection.Entry[int, string]) bool { return false }))
}

func TestFastMap_Clear(t *testing.T) {
	m := newIntMap(&Options{InitialCapacity: 16})
	for i := 0; i < 1000; i++ {
		m.Put(i, "x")
	}
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 16, m.Capacity(), "clear resets to the initial capacity")
	assert.False(t, m.Iterator().Next())
}

func TestFastMap_CloneIsolation(t *testing.T) {
	m := newIntMap(nil)
	m.Put(1, "one")

	cp := m.Clone()
	cp.Put(2, "two")
	m.Put(1, "mutated")

	v, _ := cp.Get(1)
	assert.Equal(t, "one", v, "clone must not alias entries")
	assert.False(t, m.ContainsKey(2))
}

func TestFastMap_EntrySetValuePanics(t *testing.T) {
	m := newIntMap(nil)
	m.Put(1, "one")
	e := m.GetEntry(1)
	require.NotNil(t, e)
	assert.PanicsWithValue(t, collection.ErrUnsupportedOperation, func() {
		e.SetValue("mutated")
	})
}

func TestFastMap_ContainsValue(t *testing.T) {
	m := newIntMap(nil)
	m.Put(1, "one")
	m.Put(2, "two")

	assert.True(t, m.ContainsValue("one"))
	assert.False(t, m.ContainsValue("three"))
}

func TestFastMap_Projections(t *testing.T) {
	m := newIntMap(nil)
	m.Put(1, "one")
	m.Put(2, "two")

	keys := m.KeySet()
	assert.Equal(t, 2, keys.Size())
	assert.True(t, keys.Contains(1))
	assert.True(t, keys.Remove(1), "key set removal writes through")
	assert.False(t, m.ContainsKey(1))

	values := m.Values()
	assert.True(t, values.Contains("two"))
	assert.PanicsWithValue(t, collection.ErrUnsupportedOperation, func() {
		values.Add("three")
	})

	entries := m.EntrySet()
	assert.True(t, entries.Add(collection.NewEntry(3, "three")))
	v, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, "three", v)
}

func TestFastMap_TrySplitEntries(t *testing.T) {
	m := newIntMap(nil)
	for i := 0; i < 256; i++ {
		m.Put(i, "x")
	}

	parts := m.TrySplitEntries(4)
	require.NotEmpty(t, parts)

	seen := map[int]int{}
	for _, part := range parts {
		it := part.Iterator()
		for it.Next() {
			seen[it.Value().Key()]++
		}
	}
	require.Len(t, seen, 256)
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %d in multiple slot ranges", k)
	}

	assert.PanicsWithValue(t, collection.ErrUnsupportedOperation, func() {
		parts[0].Clear()
	})
}

func BenchmarkFastMap_Put(b *testing.B) {
	m := New[int, int](order.Int(), order.Comparable[int](), nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
}

func BenchmarkFastMap_Get(b *testing.B) {
	m := New[int, int](order.Int(), order.Comparable[int](), nil)
	for i := 0; i < 1<<16; i++ {
		m.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i & (1<<16 - 1))
	}
}
