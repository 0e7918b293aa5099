package fastset

import (
	"sort"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := New(order.Int(), nil)

	assert.True(t, s.Add(1))
	assert.True(t, s.Add(2))
	assert.False(t, s.Add(1), "duplicate insert reports no change")
	assert.Equal(t, 2, s.Size())

	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(3))

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.Equal(t, 1, s.Size())
}

func TestSet_SizeInvariant(t *testing.T) {
	s := New(order.Int(), nil)
	distinct := map[int]bool{}
	for _, e := range []int{5, 3, 5, 7, 3, 3, 9, 5} {
		s.Add(e)
		distinct[e] = true
	}
	assert.Equal(t, len(distinct), s.Size())
}

func TestSet_RemoveIf(t *testing.T) {
	s := Of(order.Int(), 1, 2, 3, 4, 5)

	assert.True(t, s.RemoveIf(func(e int) bool { return e > 3 }))
	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(5))

	assert.False(t, s.RemoveIf(func(int) bool { return false }))
}

func TestSet_IterationCoversElements(t *testing.T) {
	s := Of(order.Int(), 3, 1, 2)

	got := collection.CollectSlice[int](s)
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3}, got)

	// Stable between passes while unmutated.
	assert.Equal(t,
		collection.DrainIterator(s.Iterator()),
		collection.DrainIterator(s.Iterator()))

	// Descending reverses the ascending pass.
	asc := collection.DrainIterator(s.Iterator())
	desc := collection.DrainIterator(s.DescendingIterator())
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSet_CloneIsolation(t *testing.T) {
	s := Of(order.Int(), 1, 2)
	cp := s.Clone()

	cp.Add(3)
	s.Remove(1)

	assert.False(t, s.Contains(1))
	assert.True(t, cp.Contains(1))
	assert.False(t, s.Contains(3))
}

func TestSet_TrySplit(t *testing.T) {
	s := New(order.Int(), nil)
	for i := 0; i < 100; i++ {
		s.Add(i)
	}

	parts := s.TrySplit(4)
	require.NotEmpty(t, parts)

	seen := map[int]int{}
	for _, part := range parts {
		it := part.Iterator()
		for it.Next() {
			seen[it.Value()]++
		}
	}
	require.Len(t, seen, 100, "partitions must be disjoint and complete")
	for e, n := range seen {
		assert.Equal(t, 1, n, "element %d appears in multiple partitions", e)
	}
}

func TestSet_Clear(t *testing.T) {
	s := Of(order.Int(), 1, 2, 3)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Iterator().Next())
}
