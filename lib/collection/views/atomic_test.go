package views

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fastmap"
	"github.com/fastcoll/fastcoll/lib/collection/fasttable"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAtomic(t *testing.T) collection.Map[int, string] {
	t.Helper()
	return Atomic[int, string](fastmap.New[int, string](order.Int(), order.Comparable[string](), nil))
}

func TestAtomic_BasicOps(t *testing.T) {
	m := newAtomic(t)

	_, replaced := m.Put(1, "one")
	assert.False(t, replaced)
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 1, m.Size())

	_, removed := m.Remove(1)
	assert.True(t, removed)
	assert.True(t, m.IsEmpty())
}

// Snapshot isolation: an in-progress pass keeps yielding the snapshot it
// started on; a fresh pass observes the write.
func TestAtomic_SnapshotIsolation(t *testing.T) {
	m := newAtomic(t)
	m.Put(1, "one")
	m.Put(2, "two")

	it := m.Iterator()
	m.Put(3, "three")

	count := 0
	for it.Next() {
		count++
		assert.NotEqual(t, 3, it.Value().Key(), "mid-pass iterator must not see the new entry")
	}
	assert.Equal(t, 2, count)

	fresh := 0
	it = m.Iterator()
	for it.Next() {
		fresh++
	}
	assert.Equal(t, 3, fresh)
}

// Clone an atomic map, mutate the original; the clone is unaffected.
func TestAtomic_CloneIsolation(t *testing.T) {
	m := newAtomic(t)
	m.Put(1, "one")

	cp := m.Clone()
	m.Put(1, "mutated")
	m.Put(2, "two")

	v, ok := cp.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.False(t, cp.ContainsKey(2))
}

func TestAtomic_FailedMutationKeepsOldSnapshot(t *testing.T) {
	inner := fastmap.New[int, string](order.Int(), order.Comparable[string](), nil)
	inner.Put(1, "one")
	m := Atomic[int, string](inner)

	assert.Panics(t, func() {
		m.RemoveIf(func(collection.Entry[int, string]) bool { panic("predicate failure") })
	})

	// The published snapshot still reflects the pre-mutation state.
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 1, m.Size())
}

func TestAtomic_ConcurrentReadersAndWriters(t *testing.T) {
	m := newAtomic(t)
	for i := 0; i < 100; i++ {
		m.Put(i, "x")
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				m.Put(1000+w*1000+i, "y")
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pass := 0; pass < 20; pass++ {
				seen := 0
				it := m.Iterator()
				for it.Next() {
					seen++
				}
				assert.GreaterOrEqual(t, seen, 100, "a pass never observes a partial map")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100+4*200, m.Size())
}

func TestAtomicCollection_SnapshotIsolation(t *testing.T) {
	c := AtomicCollection[int](fasttable.Of(order.Comparable[int](), 1, 2))

	it := c.Iterator()
	c.Add(3)

	assert.Equal(t, []int{1, 2}, collection.DrainIterator(it))
	assert.Equal(t, []int{1, 2, 3}, collection.DrainIterator(c.Iterator()))
}

func TestAtomicCollection_WritesSerialize(t *testing.T) {
	c := AtomicCollection[int](fasttable.New(order.Comparable[int]()))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Add(w*1000 + i)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 800, c.Size())
}

func TestShared_BasicOps(t *testing.T) {
	m := Shared[int, string](fastmap.New[int, string](order.Int(), order.Comparable[string](), nil))

	m.Put(1, "one")
	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	_, removed := m.Remove(1)
	assert.True(t, removed)
	assert.True(t, m.IsEmpty())
}

func TestShared_NoSnapshotBetweenCalls(t *testing.T) {
	m := Shared[int, string](fastmap.New[int, string](order.Int(), order.Comparable[string](), nil))
	m.Put(1, "one")

	assert.True(t, m.ContainsKey(1))
	m.Put(2, "two")
	// Unlike the atomic view, the next read sees the write immediately.
	assert.True(t, m.ContainsKey(2))
}

func TestShared_ConcurrentReadWrite(t *testing.T) {
	m := Shared[string, int](fastmap.New[string, int](order.String(), order.Comparable[int](), nil))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.Put(fmt.Sprintf("w%d-%d", w, i), i)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.Get(fmt.Sprintf("w%d-%d", i%4, i))
				m.Size()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*500, m.Size())
}

func TestSharedCollection_ConcurrentAdds(t *testing.T) {
	c := SharedCollection[int](fasttable.New(order.Comparable[int]()))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				c.Add(w*1000 + i)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 2000, c.Size())
}
