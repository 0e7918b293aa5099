package views

import "github.com/fastcoll/fastcoll/lib/order"

// seenSet is a minimal hash set over an Equality, used by the distinct
// view's iterator and the parallel view's coordinated removal. Elements of
// arbitrary type bucket by their equality hash and resolve by AreEqual.
type seenSet[E any] struct {
	eq      order.Equality[E]
	buckets map[uint64][]E
}

func newSeenSet[E any](eq order.Equality[E]) *seenSet[E] {
	return &seenSet[E]{eq: eq, buckets: make(map[uint64][]E)}
}

func (s *seenSet[E]) contains(e E) bool {
	for _, cur := range s.buckets[s.eq.Hash(e)] {
		if s.eq.AreEqual(cur, e) {
			return true
		}
	}
	return false
}

// add inserts e and reports whether it was new.
func (s *seenSet[E]) add(e E) bool {
	h := s.eq.Hash(e)
	for _, cur := range s.buckets[h] {
		if s.eq.AreEqual(cur, e) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], e)
	return true
}
