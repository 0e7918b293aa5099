package views

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fastmap"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLinked(t *testing.T) collection.Map[int, string] {
	t.Helper()
	return Linked[int, string](fastmap.New[int, string](order.Int(), order.Comparable[string](), nil))
}

func linkedKeys(it collection.Iterator[collection.Entry[int, string]]) []int {
	var keys []int
	for it.Next() {
		keys = append(keys, it.Value().Key())
	}
	return keys
}

func TestLinked_InsertionOrderIteration(t *testing.T) {
	m := newLinked(t)
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	assert.Equal(t, []int{3, 1, 2}, linkedKeys(m.Iterator()))
	assert.Equal(t, []int{2, 1, 3}, linkedKeys(m.DescendingIterator()))
}

func TestLinked_UpdateKeepsPosition(t *testing.T) {
	m := newLinked(t)
	m.Put(1, "a")
	m.Put(2, "b")
	m.Put(1, "A")

	assert.Equal(t, []int{1, 2}, linkedKeys(m.Iterator()))
	v, _ := m.Get(1)
	assert.Equal(t, "A", v)
}

// Removal must leave both the base map and the side table; a stale side
// table entry would resurface in iteration.
func TestLinked_RemoveMaintainsSideTable(t *testing.T) {
	m := newLinked(t)
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	_, removed := m.Remove(1)
	require.True(t, removed)
	assert.Equal(t, []int{3, 2}, linkedKeys(m.Iterator()))
	assert.Equal(t, 2, m.Size())

	// Re-inserting moves the key to the end of the order.
	m.Put(1, "a2")
	assert.Equal(t, []int{3, 2, 1}, linkedKeys(m.Iterator()))
}

func TestLinked_RemoveIfPrunesSideTable(t *testing.T) {
	m := newLinked(t)
	for i := 1; i <= 6; i++ {
		m.Put(i, "x")
	}

	assert.True(t, m.RemoveIf(func(e collection.Entry[int, string]) bool {
		return e.Key()%2 == 0
	}))
	assert.Equal(t, []int{1, 3, 5}, linkedKeys(m.Iterator()))
}

// Insertion order 3,1,2 reversed must iterate 2,1,3; removing 1 yields 2,3.
func TestLinked_ThenReversed(t *testing.T) {
	m := newLinked(t)
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")
	r := ReversedMap(m)

	assert.Equal(t, []int{2, 1, 3}, linkedKeys(r.Iterator()))

	_, removed := r.Remove(1)
	require.True(t, removed)
	assert.Equal(t, []int{2, 3}, linkedKeys(r.Iterator()))
	assert.False(t, m.ContainsKey(1), "removal reaches the base map")
}

func TestLinked_SeededIterators(t *testing.T) {
	m := newLinked(t)
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	assert.Equal(t, []int{1, 2}, linkedKeys(m.IteratorFrom(1)))
	assert.Equal(t, []int{1, 3}, linkedKeys(m.DescendingIteratorFrom(1)))
	assert.False(t, m.IteratorFrom(9).Next())
}

func TestLinked_SeedsFromExistingEntries(t *testing.T) {
	base := fastmap.New[int, string](order.Int(), order.Comparable[string](), nil)
	base.Put(1, "a")
	base.Put(2, "b")

	m := Linked[int, string](base)
	assert.Equal(t, 2, m.Size())
	assert.Len(t, linkedKeys(m.Iterator()), 2)
}

func TestLinked_CloneIsolation(t *testing.T) {
	m := newLinked(t)
	m.Put(1, "a")
	m.Put(2, "b")

	cp := m.Clone()
	cp.Put(3, "c")
	_, removed := m.Remove(1)
	require.True(t, removed)

	assert.Equal(t, []int{1, 2, 3}, linkedKeys(cp.Iterator()))
	assert.Equal(t, []int{2}, linkedKeys(m.Iterator()))
}

func TestLinked_Clear(t *testing.T) {
	m := newLinked(t)
	m.Put(1, "a")
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Iterator().Next())

	m.Put(2, "b")
	assert.Equal(t, []int{2}, linkedKeys(m.Iterator()))
}
