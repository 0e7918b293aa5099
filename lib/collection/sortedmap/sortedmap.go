package sortedmap

import (
	"math/rand"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/collection/views"
	"github.com/fastcoll/fastcoll/lib/order"
)

// Options configures a SortedMap at construction time.
type Options struct {
	// EstimatedSize bounds the skiplist tower height; it does not limit
	// the number of entries.
	EstimatedSize int
}

// DefaultOptions returns the default SortedMap options.
func DefaultOptions() *Options {
	return &Options{EstimatedSize: 1024}
}

// SortedMap is the comparator-organized storage engine: a skiplist ordered
// by the key order's comparator.
type SortedMap[K, V any] struct {
	keyOrder order.Order[K]
	valEq    order.Equality[V]

	head      *node[K, V]
	maxHeight int
	size      int
	rnd       *rand.Rand
}

// New creates an empty SortedMap with the given key order and value
// equality. opts may be nil for defaults.
func New[K, V any](keyOrder order.Order[K], valEq order.Equality[V], opts *Options) *SortedMap[K, V] {
	estimate := DefaultOptions().EstimatedSize
	if opts != nil && opts.EstimatedSize > 0 {
		estimate = opts.EstimatedSize
	}
	maxHeight := heightFor(estimate)
	return &SortedMap[K, V]{
		keyOrder:  keyOrder,
		valEq:     valEq,
		head:      &node[K, V]{next: make([]*node[K, V], maxHeight)},
		maxHeight: maxHeight,
		rnd:       newRand(),
	}
}

// --------------------------------------------------------------------------
// Map Contract - Reads
// --------------------------------------------------------------------------

func (m *SortedMap[K, V]) KeyOrder() order.Order[K]         { return m.keyOrder }
func (m *SortedMap[K, V]) ValueEquality() order.Equality[V] { return m.valEq }
func (m *SortedMap[K, V]) Size() int                        { return m.size }
func (m *SortedMap[K, V]) IsEmpty() bool                    { return m.size == 0 }

// lookup returns the node holding key, or nil.
func (m *SortedMap[K, V]) lookup(key K) *node[K, V] {
	n := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, key) < 0
	})
	if c := n.next[0]; c != nil && m.keyOrder.Compare(c.e.key, key) == 0 {
		return c
	}
	return nil
}

func (m *SortedMap[K, V]) ContainsKey(key K) bool { return m.lookup(key) != nil }

func (m *SortedMap[K, V]) ContainsValue(v V) bool {
	for n := m.head.next[0]; n != nil; n = n.next[0] {
		if m.valEq.AreEqual(n.e.value, v) {
			return true
		}
	}
	return false
}

func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.e.value, true
	}
	var zero V
	return zero, false
}

func (m *SortedMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	if n := m.lookup(key); n != nil {
		return n.e
	}
	return nil
}

// --------------------------------------------------------------------------
// Map Contract - Writes
// --------------------------------------------------------------------------

func (m *SortedMap[K, V]) Put(key K, value V) (V, bool) {
	if n := m.lookup(key); n != nil {
		previous := n.e.value
		n.e.value = value
		return previous, true
	}
	m.insert(&entry[K, V]{key: key, value: value})
	var zero V
	return zero, false
}

func (m *SortedMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.e.value, false
	}
	m.insert(&entry[K, V]{key: key, value: value})
	return value, true
}

// insert links a fresh tower for e; the caller guarantees the key is
// absent.
func (m *SortedMap[K, V]) insert(e *entry[K, V]) {
	height := randomHeight(m.rnd, m.maxHeight)
	n := &node[K, V]{next: make([]*node[K, V], height), e: e}

	prevs := m.descend(func(c *entry[K, V]) bool {
		return m.keyOrder.Compare(c.key, e.key) < 0
	})
	for level := 0; level < height; level++ {
		prev := prevs.Pop().(*node[K, V])
		n.next[level] = prev.next[level]
		prev.next[level] = n
	}
	m.size++
}

func (m *SortedMap[K, V]) Remove(key K) (V, bool) {
	if e, ok := m.RemoveEntry(key); ok {
		return e.Value(), true
	}
	var zero V
	return zero, false
}

// RemoveEntry unlinks the mapping for key and returns the removed entry.
func (m *SortedMap[K, V]) RemoveEntry(key K) (collection.Entry[K, V], bool) {
	prevs := m.descend(func(c *entry[K, V]) bool {
		return m.keyOrder.Compare(c.key, key) < 0
	})
	first := prevs.Peek().(*node[K, V])
	target := first.next[0]
	if target == nil || m.keyOrder.Compare(target.e.key, key) != 0 {
		return nil, false
	}
	for level := 0; level < m.maxHeight; level++ {
		prev := prevs.Pop().(*node[K, V])
		if level < len(target.next) && prev.next[level] == target {
			prev.next[level] = target.next[level]
		}
	}
	m.size--
	return target.e, true
}

func (m *SortedMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	// Collect first: unlinking while walking level 0 would invalidate the
	// cursor.
	var doomed []K
	for n := m.head.next[0]; n != nil; n = n.next[0] {
		if p(n.e) {
			doomed = append(doomed, n.e.key)
		}
	}
	changed := false
	for _, key := range doomed {
		if _, ok := m.RemoveEntry(key); ok {
			changed = true
		}
	}
	return changed
}

func (m *SortedMap[K, V]) Clear() {
	m.head = &node[K, V]{next: make([]*node[K, V], m.maxHeight)}
	m.size = 0
}

// --------------------------------------------------------------------------
// Navigation
// --------------------------------------------------------------------------

// FirstEntry returns the entry with the smallest key.
func (m *SortedMap[K, V]) FirstEntry() collection.Entry[K, V] {
	if n := m.head.next[0]; n != nil {
		return n.e
	}
	return nil
}

// LastEntry returns the entry with the greatest key.
func (m *SortedMap[K, V]) LastEntry() collection.Entry[K, V] {
	n := m.firstNodeWhen(func(*entry[K, V]) bool { return true })
	if n == m.head {
		return nil
	}
	return n.e
}

// CeilingEntry returns the entry with the least key greater than or equal
// to key, or nil if there is none.
func (m *SortedMap[K, V]) CeilingEntry(key K) collection.Entry[K, V] {
	n := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, key) < 0
	})
	if c := n.next[0]; c != nil {
		return c.e
	}
	return nil
}

// HigherEntry returns the entry with the least key strictly greater than
// key, or nil if there is none.
func (m *SortedMap[K, V]) HigherEntry(key K) collection.Entry[K, V] {
	n := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, key) <= 0
	})
	if c := n.next[0]; c != nil {
		return c.e
	}
	return nil
}

// FloorEntry returns the entry with the greatest key less than or equal to
// key, or nil if there is none.
func (m *SortedMap[K, V]) FloorEntry(key K) collection.Entry[K, V] {
	n := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, key) <= 0
	})
	if n == m.head {
		return nil
	}
	return n.e
}

// LowerEntry returns the entry with the greatest key strictly less than
// key, or nil if there is none.
func (m *SortedMap[K, V]) LowerEntry(key K) collection.Entry[K, V] {
	n := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, key) < 0
	})
	if n == m.head {
		return nil
	}
	return n.e
}

// HeadMap returns a view of the entries whose keys are less than toKey
// (or equal to it when inclusive is set). Writes through the view are
// bounds-checked the same way as reads.
func (m *SortedMap[K, V]) HeadMap(toKey K, inclusive bool) collection.Map[K, V] {
	return views.SubMap[K, V](m, views.KeyRange[K]{To: &toKey, ToInclusive: inclusive})
}

// TailMap returns a view of the entries whose keys are greater than or
// equal to fromKey (strictly greater when inclusive is unset).
func (m *SortedMap[K, V]) TailMap(fromKey K, inclusive bool) collection.Map[K, V] {
	return views.SubMap[K, V](m, views.KeyRange[K]{From: &fromKey, FromInclusive: inclusive})
}

// --------------------------------------------------------------------------
// Iteration
// --------------------------------------------------------------------------

func (m *SortedMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return m.ascendFrom(m.head)
}

// IteratorFrom starts at the first entry whose key is greater than or equal
// to fromKey.
func (m *SortedMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	start := m.firstNodeWhen(func(e *entry[K, V]) bool {
		return m.keyOrder.Compare(e.key, fromKey) < 0
	})
	return m.ascendFrom(start)
}

func (m *SortedMap[K, V]) ascendFrom(start *node[K, V]) collection.Iterator[collection.Entry[K, V]] {
	cur := start
	return collection.FuncIterator(func() (collection.Entry[K, V], bool) {
		if cur.next[0] == nil {
			return nil, false
		}
		cur = cur.next[0]
		return cur.e, true
	})
}

// DescendingIterator materializes one ascending pass and replays it in
// reverse; the skiplist is singly linked, so a live descending cursor is
// not available.
func (m *SortedMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return collection.ReverseSliceIterator(collection.DrainIterator(m.Iterator()))
}

// DescendingIteratorFrom starts at the last entry whose key is less than or
// equal to fromKey.
func (m *SortedMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	var head []collection.Entry[K, V]
	for n := m.head.next[0]; n != nil && m.keyOrder.Compare(n.e.key, fromKey) <= 0; n = n.next[0] {
		head = append(head, collection.Entry[K, V](n.e))
	}
	return collection.ReverseSliceIterator(head)
}

// --------------------------------------------------------------------------
// Projections, Cloning
// --------------------------------------------------------------------------

func (m *SortedMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](m)
}

func (m *SortedMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](m)
}

func (m *SortedMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](m)
}

// Clone rebuilds an independent skiplist with fresh entries.
func (m *SortedMap[K, V]) Clone() collection.Map[K, V] {
	cp := &SortedMap[K, V]{
		keyOrder:  m.keyOrder,
		valEq:     m.valEq,
		head:      &node[K, V]{next: make([]*node[K, V], m.maxHeight)},
		maxHeight: m.maxHeight,
		rnd:       newRand(),
	}
	for n := m.head.next[0]; n != nil; n = n.next[0] {
		cp.insert(&entry[K, V]{key: n.e.key, value: n.e.value})
	}
	return cp
}

func (m *SortedMap[K, V]) String() string { return collection.StringOfMap[K, V](m) }
