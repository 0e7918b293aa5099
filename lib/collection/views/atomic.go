package views

import (
	"sync"
	"sync/atomic"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Atomic returns a copy-on-write view of m. Readers load a published
// snapshot without locking, so an in-progress pass keeps observing the
// snapshot it started on regardless of concurrent writes. Writers serialize
// on a mutex, mutate the working copy, and republish a fresh snapshot only
// after the mutation completes; a mutation that panics leaves the old
// snapshot published.
//
// Every write clones the working copy, so writes cost O(n); this suits
// read-mostly maps of moderate size.
func Atomic[K, V any](m collection.Map[K, V]) collection.Map[K, V] {
	v := &atomicMap[K, V]{inner: m}
	v.snap.Store(&snapshotBox[K, V]{m: m.Clone()})
	return v
}

// snapshotBox keeps the atomic.Value's concrete type stable across
// snapshots of differing map implementations.
type snapshotBox[K, V any] struct {
	m collection.Map[K, V]
}

type atomicMap[K, V any] struct {
	mu    sync.Mutex // serializes writers
	inner collection.Map[K, V]
	snap  atomic.Value // *snapshotBox[K, V], read-only once published
}

func (v *atomicMap[K, V]) snapshot() collection.Map[K, V] {
	return v.snap.Load().(*snapshotBox[K, V]).m
}

// publish must run with mu held, after a successful mutation.
func (v *atomicMap[K, V]) publish() {
	v.snap.Store(&snapshotBox[K, V]{m: v.inner.Clone()})
}

// --------------------------------------------------------------------------
// Reads (against the published snapshot)
// --------------------------------------------------------------------------

func (v *atomicMap[K, V]) KeyOrder() order.Order[K]         { return v.snapshot().KeyOrder() }
func (v *atomicMap[K, V]) ValueEquality() order.Equality[V] { return v.snapshot().ValueEquality() }
func (v *atomicMap[K, V]) Size() int                        { return v.snapshot().Size() }
func (v *atomicMap[K, V]) IsEmpty() bool                    { return v.snapshot().IsEmpty() }
func (v *atomicMap[K, V]) ContainsKey(key K) bool           { return v.snapshot().ContainsKey(key) }
func (v *atomicMap[K, V]) ContainsValue(val V) bool         { return v.snapshot().ContainsValue(val) }
func (v *atomicMap[K, V]) Get(key K) (V, bool)              { return v.snapshot().Get(key) }

func (v *atomicMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	return v.snapshot().GetEntry(key)
}

func (v *atomicMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return v.snapshot().Iterator()
}

func (v *atomicMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return v.snapshot().DescendingIterator()
}

func (v *atomicMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.snapshot().IteratorFrom(fromKey)
}

func (v *atomicMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return v.snapshot().DescendingIteratorFrom(fromKey)
}

// --------------------------------------------------------------------------
// Writes (against the working copy, then republished)
// --------------------------------------------------------------------------

func (v *atomicMap[K, V]) Put(key K, value V) (V, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	previous, replaced := v.inner.Put(key, value)
	v.publish()
	return previous, replaced
}

func (v *atomicMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	current, inserted := v.inner.PutIfAbsent(key, value)
	if inserted {
		v.publish()
	}
	return current, inserted
}

func (v *atomicMap[K, V]) Remove(key K) (V, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	previous, removed := v.inner.Remove(key)
	if removed {
		v.publish()
	}
	return previous, removed
}

func (v *atomicMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.inner.RemoveIf(p)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicMap[K, V]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inner.Clear()
	v.publish()
}

// --------------------------------------------------------------------------
// Projections, Cloning
// --------------------------------------------------------------------------

func (v *atomicMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *atomicMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *atomicMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *atomicMap[K, V]) Clone() collection.Map[K, V] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Atomic(v.inner.Clone())
}

func (v *atomicMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }

// --------------------------------------------------------------------------
// Atomic Collection
// --------------------------------------------------------------------------

// AtomicCollection is the copy-on-write wrapper for plain collections; the
// semantics match Atomic.
func AtomicCollection[E any](c collection.Collection[E]) collection.Collection[E] {
	v := &atomicCollection[E]{inner: c}
	v.snap.Store(&collSnapshotBox[E]{c: c.Clone()})
	return v
}

type collSnapshotBox[E any] struct {
	c collection.Collection[E]
}

type atomicCollection[E any] struct {
	mu    sync.Mutex
	inner collection.Collection[E]
	snap  atomic.Value // *collSnapshotBox[E]
}

func (v *atomicCollection[E]) snapshot() collection.Collection[E] {
	return v.snap.Load().(*collSnapshotBox[E]).c
}

func (v *atomicCollection[E]) publish() {
	v.snap.Store(&collSnapshotBox[E]{c: v.inner.Clone()})
}

func (v *atomicCollection[E]) Equality() order.Equality[E] { return v.snapshot().Equality() }
func (v *atomicCollection[E]) Size() int                   { return v.snapshot().Size() }
func (v *atomicCollection[E]) IsEmpty() bool               { return v.snapshot().IsEmpty() }
func (v *atomicCollection[E]) Contains(e E) bool           { return v.snapshot().Contains(e) }

func (v *atomicCollection[E]) Add(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.inner.Add(e)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicCollection[E]) Remove(e E) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.inner.Remove(e)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicCollection[E]) RemoveIf(p collection.Predicate[E]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.inner.RemoveIf(p)
	if changed {
		v.publish()
	}
	return changed
}

func (v *atomicCollection[E]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inner.Clear()
	v.publish()
}

func (v *atomicCollection[E]) Iterator() collection.Iterator[E] {
	return v.snapshot().Iterator()
}

func (v *atomicCollection[E]) DescendingIterator() collection.Iterator[E] {
	return v.snapshot().DescendingIterator()
}

func (v *atomicCollection[E]) Clone() collection.Collection[E] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return AtomicCollection(v.inner.Clone())
}

func (v *atomicCollection[E]) TrySplit(n int) []collection.Collection[E] {
	return v.snapshot().TrySplit(n)
}

func (v *atomicCollection[E]) String() string { return collection.StringOf[E](v) }
