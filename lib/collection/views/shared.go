package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/puzpuzpuz/xsync/v3"
)

// Shared returns a reader/writer-locked view of m. Readers run
// concurrently with each other and exclude writers; writers exclude
// everyone. There is no snapshot isolation: state read in one call may
// have changed by the next. Iterator materializes the entries present at
// lock acquisition, so a pass is internally consistent but does not track
// later writes.
//
// The lock is not re-entrant: a callback running under a read must not
// write through the same view.
func Shared[K, V any](m collection.Map[K, V]) collection.Map[K, V] {
	return &sharedMap[K, V]{inner: m, mu: xsync.NewRBMutex()}
}

type sharedMap[K, V any] struct {
	mu    *xsync.RBMutex
	inner collection.Map[K, V]
}

func (v *sharedMap[K, V]) read(fn func()) {
	t := v.mu.RLock()
	defer v.mu.RUnlock(t)
	fn()
}

func (v *sharedMap[K, V]) write(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn()
}

func (v *sharedMap[K, V]) KeyOrder() order.Order[K]         { return v.inner.KeyOrder() }
func (v *sharedMap[K, V]) ValueEquality() order.Equality[V] { return v.inner.ValueEquality() }

func (v *sharedMap[K, V]) Size() (n int) {
	v.read(func() { n = v.inner.Size() })
	return
}

func (v *sharedMap[K, V]) IsEmpty() (empty bool) {
	v.read(func() { empty = v.inner.IsEmpty() })
	return
}

func (v *sharedMap[K, V]) ContainsKey(key K) (ok bool) {
	v.read(func() { ok = v.inner.ContainsKey(key) })
	return
}

func (v *sharedMap[K, V]) ContainsValue(val V) (ok bool) {
	v.read(func() { ok = v.inner.ContainsValue(val) })
	return
}

func (v *sharedMap[K, V]) Get(key K) (val V, ok bool) {
	v.read(func() { val, ok = v.inner.Get(key) })
	return
}

func (v *sharedMap[K, V]) GetEntry(key K) (e collection.Entry[K, V]) {
	v.read(func() { e = v.inner.GetEntry(key) })
	return
}

func (v *sharedMap[K, V]) Put(key K, value V) (previous V, replaced bool) {
	v.write(func() { previous, replaced = v.inner.Put(key, value) })
	return
}

func (v *sharedMap[K, V]) PutIfAbsent(key K, value V) (current V, inserted bool) {
	v.write(func() { current, inserted = v.inner.PutIfAbsent(key, value) })
	return
}

func (v *sharedMap[K, V]) Remove(key K) (previous V, removed bool) {
	v.write(func() { previous, removed = v.inner.Remove(key) })
	return
}

func (v *sharedMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) (changed bool) {
	v.write(func() { changed = v.inner.RemoveIf(p) })
	return
}

func (v *sharedMap[K, V]) Clear() {
	v.write(func() { v.inner.Clear() })
}

func (v *sharedMap[K, V]) materialize(pass func() collection.Iterator[collection.Entry[K, V]]) []collection.Entry[K, V] {
	var entries []collection.Entry[K, V]
	v.read(func() { entries = collection.DrainIterator(pass()) })
	return entries
}

func (v *sharedMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return collection.SliceIterator(v.materialize(v.inner.Iterator))
}

func (v *sharedMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return collection.SliceIterator(v.materialize(v.inner.DescendingIterator))
}

func (v *sharedMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return collection.SliceIterator(v.materialize(func() collection.Iterator[collection.Entry[K, V]] {
		return v.inner.IteratorFrom(fromKey)
	}))
}

func (v *sharedMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	return collection.SliceIterator(v.materialize(func() collection.Iterator[collection.Entry[K, V]] {
		return v.inner.DescendingIteratorFrom(fromKey)
	}))
}

func (v *sharedMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](v)
}

func (v *sharedMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](v)
}

func (v *sharedMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](v)
}

func (v *sharedMap[K, V]) Clone() (cp collection.Map[K, V]) {
	v.read(func() { cp = Shared(v.inner.Clone()) })
	return
}

func (v *sharedMap[K, V]) String() string { return collection.StringOfMap[K, V](v) }

// --------------------------------------------------------------------------
// Shared Collection
// --------------------------------------------------------------------------

// SharedCollection is the reader/writer-locked wrapper for plain
// collections; the semantics match Shared.
func SharedCollection[E any](c collection.Collection[E]) collection.Collection[E] {
	return &sharedCollection[E]{inner: c, mu: xsync.NewRBMutex()}
}

type sharedCollection[E any] struct {
	mu    *xsync.RBMutex
	inner collection.Collection[E]
}

func (v *sharedCollection[E]) read(fn func()) {
	t := v.mu.RLock()
	defer v.mu.RUnlock(t)
	fn()
}

func (v *sharedCollection[E]) write(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn()
}

func (v *sharedCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }

func (v *sharedCollection[E]) Size() (n int) {
	v.read(func() { n = v.inner.Size() })
	return
}

func (v *sharedCollection[E]) IsEmpty() (empty bool) {
	v.read(func() { empty = v.inner.IsEmpty() })
	return
}

func (v *sharedCollection[E]) Contains(e E) (ok bool) {
	v.read(func() { ok = v.inner.Contains(e) })
	return
}

func (v *sharedCollection[E]) Add(e E) (changed bool) {
	v.write(func() { changed = v.inner.Add(e) })
	return
}

func (v *sharedCollection[E]) Remove(e E) (changed bool) {
	v.write(func() { changed = v.inner.Remove(e) })
	return
}

func (v *sharedCollection[E]) RemoveIf(p collection.Predicate[E]) (changed bool) {
	v.write(func() { changed = v.inner.RemoveIf(p) })
	return
}

func (v *sharedCollection[E]) Clear() {
	v.write(func() { v.inner.Clear() })
}

func (v *sharedCollection[E]) Iterator() collection.Iterator[E] {
	var elems []E
	v.read(func() { elems = collection.DrainIterator(v.inner.Iterator()) })
	return collection.SliceIterator(elems)
}

func (v *sharedCollection[E]) DescendingIterator() collection.Iterator[E] {
	var elems []E
	v.read(func() { elems = collection.DrainIterator(v.inner.DescendingIterator()) })
	return collection.SliceIterator(elems)
}

func (v *sharedCollection[E]) Clone() (cp collection.Collection[E]) {
	v.read(func() { cp = SharedCollection(v.inner.Clone()) })
	return
}

func (v *sharedCollection[E]) TrySplit(n int) (parts []collection.Collection[E]) {
	v.read(func() { parts = v.inner.TrySplit(n) })
	return
}

func (v *sharedCollection[E]) String() string { return collection.StringOf[E](v) }
