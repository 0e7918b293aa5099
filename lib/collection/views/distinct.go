package views

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Distinct returns a view of c that suppresses duplicate elements. Each
// iterator pass tracks what it has produced in a per-pass set keyed by the
// inner collection's equality, so repeated passes over an unchanged inner
// collection yield the same distinct elements.
func Distinct[E any](c collection.Collection[E]) collection.Collection[E] {
	return &distinctCollection[E]{inner: c}
}

type distinctCollection[E any] struct {
	inner collection.Collection[E]
}

func (v *distinctCollection[E]) Equality() order.Equality[E] { return v.inner.Equality() }

// Size counts distinct elements by full iteration; the inner size counts
// duplicates and cannot be trusted.
func (v *distinctCollection[E]) Size() int {
	return collection.CountIterator(v.Iterator())
}

func (v *distinctCollection[E]) IsEmpty() bool     { return v.inner.IsEmpty() }
func (v *distinctCollection[E]) Contains(e E) bool { return v.inner.Contains(e) }

// Add inserts only when e is not already present.
func (v *distinctCollection[E]) Add(e E) bool {
	if v.inner.Contains(e) {
		return false
	}
	return v.inner.Add(e)
}

// Remove deletes every occurrence of e, since the view presents them as a
// single element.
func (v *distinctCollection[E]) Remove(e E) bool {
	eq := v.inner.Equality()
	return v.inner.RemoveIf(func(cur E) bool { return eq.AreEqual(cur, e) })
}

func (v *distinctCollection[E]) RemoveIf(p collection.Predicate[E]) bool {
	return v.inner.RemoveIf(p)
}

func (v *distinctCollection[E]) Clear() { v.inner.Clear() }

func (v *distinctCollection[E]) Iterator() collection.Iterator[E] {
	return distinctIterator(v.inner.Iterator(), v.inner.Equality())
}

func (v *distinctCollection[E]) DescendingIterator() collection.Iterator[E] {
	return distinctIterator(v.inner.DescendingIterator(), v.inner.Equality())
}

func (v *distinctCollection[E]) Clone() collection.Collection[E] {
	return Distinct(v.inner.Clone())
}

func (v *distinctCollection[E]) TrySplit(n int) []collection.Collection[E] {
	// Partition-local deduplication would under-count duplicates spread
	// across partitions, so splitting materializes one deduplicated
	// snapshot and chunks it.
	elems := collection.DrainIterator(v.Iterator())
	if len(elems) == 0 {
		return nil
	}
	return collection.NewConst(v.inner.Equality(), elems...).TrySplit(n)
}

func (v *distinctCollection[E]) String() string { return collection.StringOf[E](v) }

func distinctIterator[E any](it collection.Iterator[E], eq order.Equality[E]) collection.Iterator[E] {
	seen := newSeenSet(eq)
	return collection.FuncIterator(func() (E, bool) {
		for it.Next() {
			if e := it.Value(); seen.add(e) {
				return e, true
			}
		}
		var zero E
		return zero, false
	})
}
