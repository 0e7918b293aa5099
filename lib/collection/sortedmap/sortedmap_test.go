package sortedmap

import (
	"fmt"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntMap(t *testing.T) *SortedMap[int, string] {
	t.Helper()
	return New[int, string](order.Int(), order.Comparable[string](), nil)
}

func keysOf(it collection.Iterator[collection.Entry[int, string]]) []int {
	var keys []int
	for it.Next() {
		keys = append(keys, it.Value().Key())
	}
	return keys
}

func TestSortedMap_PutGetRemove(t *testing.T) {
	m := newIntMap(t)

	_, replaced := m.Put(3, "three")
	assert.False(t, replaced)
	_, replaced = m.Put(1, "one")
	assert.False(t, replaced)
	_, replaced = m.Put(2, "two")
	assert.False(t, replaced)
	require.Equal(t, 3, m.Size())

	v, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	prev, replaced := m.Put(2, "zwei")
	assert.True(t, replaced)
	assert.Equal(t, "two", prev)
	assert.Equal(t, 3, m.Size(), "update must not grow the map")

	v, ok = m.Remove(2)
	require.True(t, ok)
	assert.Equal(t, "zwei", v)
	_, ok = m.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, m.Size())

	_, ok = m.Remove(2)
	assert.False(t, ok, "removing an absent key reports no change")
}

func TestSortedMap_AbsentKey(t *testing.T) {
	m := newIntMap(t)

	v, ok := m.Get(42)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Nil(t, m.GetEntry(42))
	assert.False(t, m.ContainsKey(42))
}

func TestSortedMap_PutIfAbsent(t *testing.T) {
	m := newIntMap(t)

	cur, inserted := m.PutIfAbsent(1, "one")
	assert.True(t, inserted)
	assert.Equal(t, "one", cur)

	cur, inserted = m.PutIfAbsent(1, "uno")
	assert.False(t, inserted)
	assert.Equal(t, "one", cur, "existing value wins")
}

func TestSortedMap_IterationOrder(t *testing.T) {
	m := newIntMap(t)
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, keysOf(m.Iterator()))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, keysOf(m.DescendingIterator()))
}

func TestSortedMap_SeededIterators(t *testing.T) {
	m := newIntMap(t)
	for _, k := range []int{10, 20, 30, 40} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	// Seed key present.
	assert.Equal(t, []int{20, 30, 40}, keysOf(m.IteratorFrom(20)))

	// Seed key absent: start at the ceiling.
	assert.Equal(t, []int{30, 40}, keysOf(m.IteratorFrom(25)))

	// Seed beyond the last key: empty.
	assert.False(t, m.IteratorFrom(99).Next())

	assert.Equal(t, []int{20, 10}, keysOf(m.DescendingIteratorFrom(25)))
}

func TestSortedMap_Navigation(t *testing.T) {
	m := newIntMap(t)
	for _, k := range []int{10, 20, 30} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	require.NotNil(t, m.FirstEntry())
	assert.Equal(t, 10, m.FirstEntry().Key())
	require.NotNil(t, m.LastEntry())
	assert.Equal(t, 30, m.LastEntry().Key())

	assert.Equal(t, 20, m.CeilingEntry(20).Key())
	assert.Equal(t, 20, m.CeilingEntry(15).Key())
	assert.Nil(t, m.CeilingEntry(31))

	assert.Equal(t, 30, m.HigherEntry(20).Key())
	assert.Nil(t, m.HigherEntry(30))

	assert.Equal(t, 20, m.FloorEntry(20).Key())
	assert.Equal(t, 20, m.FloorEntry(25).Key())
	assert.Nil(t, m.FloorEntry(9))

	assert.Equal(t, 10, m.LowerEntry(20).Key())
	assert.Nil(t, m.LowerEntry(10))
}

func TestSortedMap_HeadTailMap(t *testing.T) {
	m := newIntMap(t)
	for _, k := range []int{10, 20, 30, 40} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	head := m.HeadMap(30, false)
	assert.Equal(t, 2, head.Size())
	assert.True(t, head.ContainsKey(20))
	assert.False(t, head.ContainsKey(30))
	assert.Equal(t, []int{10, 20}, keysOf(head.Iterator()))

	tail := m.TailMap(30, true)
	assert.Equal(t, 2, tail.Size())
	assert.True(t, tail.ContainsKey(30))
	assert.False(t, tail.ContainsKey(20))
	assert.Equal(t, []int{30, 40}, keysOf(tail.Iterator()))

	// Writes through the sub-views reach the base map, in range only.
	tail.Put(35, "v35")
	assert.True(t, m.ContainsKey(35))
	assert.PanicsWithValue(t, collection.ErrKeyOutOfRange, func() { tail.Put(5, "x") })
}

func TestSortedMap_NavigationEmpty(t *testing.T) {
	m := newIntMap(t)
	assert.Nil(t, m.FirstEntry())
	assert.Nil(t, m.LastEntry())
	assert.Nil(t, m.CeilingEntry(1))
	assert.Nil(t, m.FloorEntry(1))
}

func TestSortedMap_RemoveIf(t *testing.T) {
	m := newIntMap(t)
	for k := 1; k <= 10; k++ {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	changed := m.RemoveIf(func(e collection.Entry[int, string]) bool {
		return e.Key()%2 == 0
	})
	assert.True(t, changed)
	assert.Equal(t, 5, m.Size())
	for k := 1; k <= 10; k++ {
		assert.Equal(t, k%2 == 1, m.ContainsKey(k))
	}

	changed = m.RemoveIf(func(collection.Entry[int, string]) bool { return false })
	assert.False(t, changed)
}

func TestSortedMap_Clear(t *testing.T) {
	m := newIntMap(t)
	for k := 0; k < 100; k++ {
		m.Put(k, "x")
	}
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Iterator().Next())

	m.Put(1, "again")
	assert.Equal(t, 1, m.Size())
}

func TestSortedMap_CloneIsolation(t *testing.T) {
	m := newIntMap(t)
	m.Put(1, "one")
	m.Put(2, "two")

	cp := m.Clone()
	cp.Put(3, "three")
	cp.Put(1, "uno")

	assert.Equal(t, 2, m.Size())
	v, _ := m.Get(1)
	assert.Equal(t, "one", v, "clone writes must not leak back")
	assert.Equal(t, 3, cp.Size())
}

func TestSortedMap_EntrySetValuePanics(t *testing.T) {
	m := newIntMap(t)
	m.Put(1, "one")
	e := m.GetEntry(1)
	require.NotNil(t, e)

	assert.PanicsWithValue(t, collection.ErrUnsupportedOperation, func() {
		e.SetValue("mutated")
	})
	v, _ := m.Get(1)
	assert.Equal(t, "one", v)
}

func TestSortedMap_CustomOrder(t *testing.T) {
	// Reverse numeric order flips iteration and navigation.
	reverse := order.OrderFunc[int](
		func(a, b int) int { return b - a },
		func(e int) uint32 { return ^uint32(e) },
		func(a, b int) bool { return a == b },
	)
	m := New[int, string](reverse, order.Comparable[string](), nil)
	for _, k := range []int{1, 2, 3} {
		m.Put(k, "x")
	}

	assert.Equal(t, []int{3, 2, 1}, keysOf(m.Iterator()))
	assert.Equal(t, 3, m.FirstEntry().Key())
}

func TestSortedMap_LargeScale(t *testing.T) {
	m := New[int, int](order.Int(), order.Comparable[int](), &Options{EstimatedSize: 1 << 14})
	const n = 10_000
	for i := 0; i < n; i++ {
		m.Put((i*7919)%n, i) // scrambled insert order
	}
	require.Equal(t, n, m.Size())

	prev := -1
	it := m.Iterator()
	for it.Next() {
		assert.Greater(t, it.Value().Key(), prev)
		prev = it.Value().Key()
	}
	assert.Equal(t, n-1, prev)
}

func BenchmarkSortedMap_Put(b *testing.B) {
	m := New[int, int](order.Int(), order.Comparable[int](), &Options{EstimatedSize: 1 << 20})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
}

func BenchmarkSortedMap_Get(b *testing.B) {
	m := New[int, int](order.Int(), order.Comparable[int](), &Options{EstimatedSize: 1 << 20})
	for i := 0; i < 1<<16; i++ {
		m.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i & (1<<16 - 1))
	}
}
