package fastset

import (
	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/fastmap"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Set stores each element at most once, placed by the element order.
type Set[E any] struct {
	m     *fastmap.FastMap[E, struct{}]
	order order.Order[E]
}

// Options mirror the hash engine's capacity knobs.
type Options = fastmap.Options

// DefaultOptions returns the default Set options.
func DefaultOptions() *Options { return fastmap.DefaultOptions() }

// New creates an empty set organized by o. opts may be nil for defaults.
func New[E any](o order.Order[E], opts *Options) *Set[E] {
	return &Set[E]{
		m:     fastmap.New[E, struct{}](o, order.Comparable[struct{}](), opts),
		order: o,
	}
}

// Of creates a set holding the given elements.
func Of[E any](o order.Order[E], elems ...E) *Set[E] {
	s := New(o, nil)
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s *Set[E]) Equality() order.Equality[E] { return order.OrderedEquality(s.order) }
func (s *Set[E]) Order() order.Order[E]       { return s.order }
func (s *Set[E]) Size() int                   { return s.m.Size() }
func (s *Set[E]) IsEmpty() bool               { return s.m.IsEmpty() }
func (s *Set[E]) Contains(e E) bool           { return s.m.ContainsKey(e) }

// Add inserts e and reports whether the set changed.
func (s *Set[E]) Add(e E) bool {
	_, inserted := s.m.PutIfAbsent(e, struct{}{})
	return inserted
}

// Remove deletes e and reports whether the set changed.
func (s *Set[E]) Remove(e E) bool {
	_, removed := s.m.Remove(e)
	return removed
}

func (s *Set[E]) RemoveIf(p collection.Predicate[E]) bool {
	return s.m.RemoveIf(func(e collection.Entry[E, struct{}]) bool {
		return p(e.Key())
	})
}

func (s *Set[E]) Clear() { s.m.Clear() }

func (s *Set[E]) Iterator() collection.Iterator[E] {
	return keyIterator(s.m.Iterator())
}

func (s *Set[E]) DescendingIterator() collection.Iterator[E] {
	return keyIterator(s.m.DescendingIterator())
}

func (s *Set[E]) Clone() collection.Collection[E] {
	cp := New(s.order, nil)
	it := s.m.Iterator()
	for it.Next() {
		cp.Add(it.Value().Key())
	}
	return cp
}

// TrySplit partitions the set along the engine's slot-range splits. Each
// partition materializes its elements into a read-only snapshot.
func (s *Set[E]) TrySplit(n int) []collection.Collection[E] {
	inner := s.m.TrySplitEntries(n)
	if inner == nil {
		return nil
	}
	parts := make([]collection.Collection[E], len(inner))
	for i, part := range inner {
		parts[i] = collection.NewConst(s.Equality(), drainKeys(part)...)
	}
	return parts
}

func (s *Set[E]) String() string { return collection.StringOf[E](s) }

func keyIterator[E any](it collection.Iterator[collection.Entry[E, struct{}]]) collection.Iterator[E] {
	return collection.FuncIterator(func() (E, bool) {
		if !it.Next() {
			var zero E
			return zero, false
		}
		return it.Value().Key(), true
	})
}

func drainKeys[E any](c collection.Collection[collection.Entry[E, struct{}]]) []E {
	keys := make([]E, 0, c.Size())
	it := c.Iterator()
	for it.Next() {
		keys = append(keys, it.Value().Key())
	}
	return keys
}
