package views

import (
	"sort"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Sorted returns a view of c whose iterators yield elements ordered by
// cmp. The inner order is unrelated to cmp, so every iterator call
// materializes and sorts a fresh snapshot; the view is not live with
// respect to mutations made during a pass. Writes pass through unchanged.
func Sorted[E any](c collection.Collection[E], cmp func(a, b E) int) collection.Collection[E] {
	return &sortedCollection[E]{inner: c, cmp: cmp}
}

type sortedCollection[E any] struct {
	inner collection.Collection[E]
	cmp   func(a, b E) int
}

func (v *sortedCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }
func (v *sortedCollection[E]) Size() int                   { return v.inner.Size() }
func (v *sortedCollection[E]) IsEmpty() bool               { return v.inner.IsEmpty() }
func (v *sortedCollection[E]) Contains(e E) bool           { return v.inner.Contains(e) }
func (v *sortedCollection[E]) Add(e E) bool                { return v.inner.Add(e) }
func (v *sortedCollection[E]) Remove(e E) bool             { return v.inner.Remove(e) }

func (v *sortedCollection[E]) RemoveIf(p collection.Predicate[E]) bool {
	return v.inner.RemoveIf(p)
}

func (v *sortedCollection[E]) Clear() { v.inner.Clear() }

func (v *sortedCollection[E]) snapshot() []E {
	elems := collection.CollectSlice(v.inner)
	sort.SliceStable(elems, func(i, j int) bool { return v.cmp(elems[i], elems[j]) < 0 })
	return elems
}

func (v *sortedCollection[E]) Iterator() collection.Iterator[E] {
	return collection.SliceIterator(v.snapshot())
}

func (v *sortedCollection[E]) DescendingIterator() collection.Iterator[E] {
	return collection.ReverseSliceIterator(v.snapshot())
}

func (v *sortedCollection[E]) Clone() collection.Collection[E] {
	return Sorted(v.inner.Clone(), v.cmp)
}

// TrySplit delegates to the inner collection; partitions carry no global
// sort order.
func (v *sortedCollection[E]) TrySplit(n int) []collection.Collection[E] {
	return v.inner.TrySplit(n)
}

func (v *sortedCollection[E]) String() string { return collection.StringOf[E](v) }
