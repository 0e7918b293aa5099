package fasttable

import (
	"sort"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Table is a growable contiguous sequence of elements.
type Table[E any] struct {
	eq    order.Equality[E]
	elems []E
}

// New creates an empty table using eq for Contains and Remove.
func New[E any](eq order.Equality[E]) *Table[E] {
	return &Table[E]{eq: eq}
}

// Of creates a table holding the given elements in order.
func Of[E any](eq order.Equality[E], elems ...E) *Table[E] {
	t := New(eq)
	t.elems = append(t.elems, elems...)
	return t
}

func (t *Table[E]) Equality() order.Equality[E] { return t.eq }
func (t *Table[E]) Size() int                   { return len(t.elems) }
func (t *Table[E]) IsEmpty() bool               { return len(t.elems) == 0 }

func (t *Table[E]) checkIndex(i int) {
	if i < 0 || i >= len(t.elems) {
		panic(collection.ErrIndexOutOfRange)
	}
}

// --------------------------------------------------------------------------
// Positional Operations
// --------------------------------------------------------------------------

// Get returns the element at position i.
func (t *Table[E]) Get(i int) E {
	t.checkIndex(i)
	return t.elems[i]
}

// Set replaces the element at position i and returns the previous one.
func (t *Table[E]) Set(i int, e E) E {
	t.checkIndex(i)
	previous := t.elems[i]
	t.elems[i] = e
	return previous
}

// Insert places e at position i, shifting later elements right. i == Size()
// appends.
func (t *Table[E]) Insert(i int, e E) {
	if i < 0 || i > len(t.elems) {
		panic(collection.ErrIndexOutOfRange)
	}
	var zero E
	t.elems = append(t.elems, zero)
	copy(t.elems[i+1:], t.elems[i:])
	t.elems[i] = e
}

// RemoveAt deletes and returns the element at position i, shifting later
// elements left.
func (t *Table[E]) RemoveAt(i int) E {
	t.checkIndex(i)
	removed := t.elems[i]
	var zero E
	copy(t.elems[i:], t.elems[i+1:])
	t.elems[len(t.elems)-1] = zero
	t.elems = t.elems[:len(t.elems)-1]
	return removed
}

// AddFirst prepends e.
func (t *Table[E]) AddFirst(e E) { t.Insert(0, e) }

// AddLast appends e; identical to Add.
func (t *Table[E]) AddLast(e E) { t.elems = append(t.elems, e) }

// First returns the element at position 0.
func (t *Table[E]) First() E { return t.Get(0) }

// Last returns the element at the highest position.
func (t *Table[E]) Last() E { return t.Get(len(t.elems) - 1) }

// IndexOf returns the position of the first element equal to e, or -1.
func (t *Table[E]) IndexOf(e E) int {
	for i, cur := range t.elems {
		if t.eq.AreEqual(cur, e) {
			return i
		}
	}
	return -1
}

// Sort orders the table in place by cmp.
func (t *Table[E]) Sort(cmp func(a, b E) int) {
	sort.SliceStable(t.elems, func(i, j int) bool {
		return cmp(t.elems[i], t.elems[j]) < 0
	})
}

// --------------------------------------------------------------------------
// Collection Contract
// --------------------------------------------------------------------------

func (t *Table[E]) Contains(e E) bool { return t.IndexOf(e) >= 0 }

// Add appends e. A table accepts duplicates, so Add always reports change.
func (t *Table[E]) Add(e E) bool {
	t.elems = append(t.elems, e)
	return true
}

// Remove deletes the first element equal to e.
func (t *Table[E]) Remove(e E) bool {
	i := t.IndexOf(e)
	if i < 0 {
		return false
	}
	t.RemoveAt(i)
	return true
}

func (t *Table[E]) RemoveIf(p collection.Predicate[E]) bool {
	kept := t.elems[:0]
	changed := false
	for _, e := range t.elems {
		if p(e) {
			changed = true
			continue
		}
		kept = append(kept, e)
	}
	// Release trailing references.
	var zero E
	for i := len(kept); i < len(t.elems); i++ {
		t.elems[i] = zero
	}
	t.elems = kept
	return changed
}

func (t *Table[E]) Clear() { t.elems = nil }

func (t *Table[E]) Iterator() collection.Iterator[E] {
	return collection.SliceIterator(t.elems)
}

func (t *Table[E]) DescendingIterator() collection.Iterator[E] {
	return collection.ReverseSliceIterator(t.elems)
}

func (t *Table[E]) Clone() collection.Collection[E] {
	cp := New(t.eq)
	cp.elems = append([]E(nil), t.elems...)
	return cp
}

// TrySplit partitions the table into up to n read-only sub-views over
// contiguous position ranges. The sub-views alias the backing slice and are
// valid only until the table is structurally modified.
func (t *Table[E]) TrySplit(n int) []collection.Collection[E] {
	if n < 1 || t.IsEmpty() {
		return nil
	}
	if n > len(t.elems) {
		n = len(t.elems)
	}
	chunk := (len(t.elems) + n - 1) / n
	parts := make([]collection.Collection[E], 0, n)
	for from := 0; from < len(t.elems); from += chunk {
		to := from + chunk
		if to > len(t.elems) {
			to = len(t.elems)
		}
		parts = append(parts, collection.NewConst(t.eq, t.elems[from:to]...))
	}
	return parts
}

func (t *Table[E]) String() string { return collection.StringOf[E](t) }
