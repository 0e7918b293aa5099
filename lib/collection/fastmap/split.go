package fastmap

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// slotRange is a read-only view over a contiguous slot range of the backing
// table, handed out by TrySplitEntries for parallel processing. It shares
// the table with the map; callers must not mutate the map while partitions
// are in use.
type slotRange[K, V any] struct {
	m        *FastMap[K, V]
	from, to int
}

func (r *slotRange[K, V]) Equality() order.Equality[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](r.m).Equality()
}

func (r *slotRange[K, V]) Size() int {
	n := 0
	for i := r.from; i <= r.to; i++ {
		if r.m.table[i] != nil {
			n++
		}
	}
	return n
}

func (r *slotRange[K, V]) IsEmpty() bool { return r.Size() == 0 }

func (r *slotRange[K, V]) Contains(e collection.Entry[K, V]) bool {
	if e == nil {
		return false
	}
	i := r.m.position(e.Key())
	return i >= r.from && i <= r.to &&
		r.m.valEq.AreEqual(r.m.table[i].value, e.Value())
}

func (r *slotRange[K, V]) Add(collection.Entry[K, V]) bool { panic(collection.ErrUnsupportedOperation) }
func (r *slotRange[K, V]) Remove(collection.Entry[K, V]) bool {
	panic(collection.ErrUnsupportedOperation)
}
func (r *slotRange[K, V]) RemoveIf(collection.Predicate[collection.Entry[K, V]]) bool {
	panic(collection.ErrUnsupportedOperation)
}
func (r *slotRange[K, V]) Clear() { panic(collection.ErrUnsupportedOperation) }

func (r *slotRange[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return r.m.slotIterator(r.from, r.to, false)
}

func (r *slotRange[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return r.m.slotIterator(r.from, r.to, true)
}

func (r *slotRange[K, V]) Clone() collection.Collection[collection.Entry[K, V]] {
	entries := collection.DrainIterator(r.Iterator())
	return collection.NewConst(r.Equality(), entries...)
}

func (r *slotRange[K, V]) TrySplit(n int) []collection.Collection[collection.Entry[K, V]] {
	if n < 2 || r.to-r.from < 1 {
		return []collection.Collection[collection.Entry[K, V]]{r}
	}
	span := r.to - r.from + 1
	if n > span {
		n = span
	}
	out := make([]collection.Collection[collection.Entry[K, V]], 0, n)
	chunk := (span + n - 1) / n
	for from := r.from; from <= r.to; from += chunk {
		to := from + chunk - 1
		if to > r.to {
			to = r.to
		}
		out = append(out, &slotRange[K, V]{m: r.m, from: from, to: to})
	}
	return out
}
