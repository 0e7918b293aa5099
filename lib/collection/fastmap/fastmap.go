package fastmap

import (
	"math"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
)

// FastMap is the open-addressing hash storage engine. Entries are placed by
// the key order's 32-bit index mixed with a per-map seed; collisions resolve
// by linear probing.
type FastMap[K, V any] struct {
	keyOrder order.Order[K]
	valEq    order.Equality[V]
	seed     uint64

	table []*entry[K, V] // power-of-two capacity
	size  int

	opts Options
}

// New creates an empty FastMap with the given key order and value equality.
// opts may be nil for defaults.
func New[K, V any](keyOrder order.Order[K], valEq order.Equality[V], opts *Options) *FastMap[K, V] {
	o := opts.normalize()
	return &FastMap[K, V]{
		keyOrder: keyOrder,
		valEq:    valEq,
		seed:     order.GenerateSeed(),
		table:    make([]*entry[K, V], o.InitialCapacity),
		opts:     o,
	}
}

// --------------------------------------------------------------------------
// Placement
// --------------------------------------------------------------------------

func (m *FastMap[K, V]) homeSlot(key K) int {
	h := order.HashUint64(uint64(m.keyOrder.IndexOf(key)) ^ m.seed)
	return int(h) & (len(m.table) - 1)
}

// position probes for key and returns its slot, or -1 if absent.
func (m *FastMap[K, V]) position(key K) int {
	mask := len(m.table) - 1
	for i := m.homeSlot(key); ; i = (i + 1) & mask {
		e := m.table[i]
		if e == nil {
			return -1
		}
		if m.keyOrder.AreEqual(e.key, key) {
			return i
		}
	}
}

// --------------------------------------------------------------------------
// Map Contract - Reads
// --------------------------------------------------------------------------

func (m *FastMap[K, V]) KeyOrder() order.Order[K]          { return m.keyOrder }
func (m *FastMap[K, V]) ValueEquality() order.Equality[V]  { return m.valEq }
func (m *FastMap[K, V]) Size() int                         { return m.size }
func (m *FastMap[K, V]) IsEmpty() bool                     { return m.size == 0 }

// Capacity returns the current backing-table size. Exposed for load-policy
// tests and capacity planning.
func (m *FastMap[K, V]) Capacity() int { return len(m.table) }

func (m *FastMap[K, V]) ContainsKey(key K) bool {
	return m.position(key) >= 0
}

func (m *FastMap[K, V]) ContainsValue(v V) bool {
	for _, e := range m.table {
		if e != nil && m.valEq.AreEqual(e.value, v) {
			return true
		}
	}
	return false
}

func (m *FastMap[K, V]) Get(key K) (V, bool) {
	if i := m.position(key); i >= 0 {
		return m.table[i].value, true
	}
	var zero V
	return zero, false
}

func (m *FastMap[K, V]) GetEntry(key K) collection.Entry[K, V] {
	if i := m.position(key); i >= 0 {
		return m.table[i]
	}
	return nil
}

// --------------------------------------------------------------------------
// Map Contract - Writes
// --------------------------------------------------------------------------

func (m *FastMap[K, V]) Put(key K, value V) (V, bool) {
	if i := m.position(key); i >= 0 {
		e := m.table[i]
		previous := e.value
		e.value = value
		return previous, true
	}
	m.insert(&entry[K, V]{key: key, value: value})
	m.size++
	m.growIfNeeded()
	var zero V
	return zero, false
}

func (m *FastMap[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	if i := m.position(key); i >= 0 {
		return m.table[i].value, false
	}
	m.insert(&entry[K, V]{key: key, value: value})
	m.size++
	m.growIfNeeded()
	return value, true
}

// insert places e at the first free slot of its probe sequence. The caller
// guarantees the key is absent.
func (m *FastMap[K, V]) insert(e *entry[K, V]) {
	mask := len(m.table) - 1
	for i := m.homeSlot(e.key); ; i = (i + 1) & mask {
		if m.table[i] == nil {
			m.table[i] = e
			return
		}
	}
}

func (m *FastMap[K, V]) Remove(key K) (V, bool) {
	i := m.position(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	previous := m.table[i].value
	m.removeSlot(i)
	m.size--
	m.shrinkIfNeeded()
	return previous, true
}

// RemoveEntry deletes the mapping for key and returns the removed entry.
func (m *FastMap[K, V]) RemoveEntry(key K) (collection.Entry[K, V], bool) {
	i := m.position(key)
	if i < 0 {
		return nil, false
	}
	e := m.table[i]
	m.removeSlot(i)
	m.size--
	m.shrinkIfNeeded()
	return e, true
}

// removeSlot empties slot pos and re-homes the trailing probe cluster by
// backward shifting, keeping every remaining entry reachable from its home
// slot without tombstones.
func (m *FastMap[K, V]) removeSlot(pos int) {
	mask := len(m.table) - 1
	m.table[pos] = nil
	hole := pos
	for i := (pos + 1) & mask; m.table[i] != nil; i = (i + 1) & mask {
		home := m.homeSlot(m.table[i].key)
		// The entry stays put if its home lies cyclically in (hole, i]:
		// its probe path does not cross the hole.
		var stays bool
		if hole <= i {
			stays = hole < home && home <= i
		} else {
			stays = home > hole || home <= i
		}
		if stays {
			continue
		}
		m.table[hole] = m.table[i]
		m.table[i] = nil
		hole = i
	}
}

func (m *FastMap[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	changed := false
	// Collect first: backward shifting during a slot scan would skip or
	// revisit entries.
	var doomed []K
	for _, e := range m.table {
		if e != nil && p(e) {
			doomed = append(doomed, e.key)
		}
	}
	for _, key := range doomed {
		if _, ok := m.Remove(key); ok {
			changed = true
		}
	}
	return changed
}

func (m *FastMap[K, V]) Clear() {
	m.table = make([]*entry[K, V], m.opts.InitialCapacity)
	m.size = 0
}

// --------------------------------------------------------------------------
// Resizing
// --------------------------------------------------------------------------

func (m *FastMap[K, V]) growIfNeeded() {
	if m.size*100 > len(m.table)*m.opts.MaxLoadPercent {
		if len(m.table) > math.MaxInt/2 {
			panic(collection.ErrCapacityOverflow)
		}
		m.resize(len(m.table) * 2)
	}
}

func (m *FastMap[K, V]) shrinkIfNeeded() {
	if len(m.table) > m.opts.InitialCapacity && m.size*100 < len(m.table)*m.opts.MinLoadPercent {
		half := len(m.table) / 2
		if half < m.opts.InitialCapacity {
			half = m.opts.InitialCapacity
		}
		m.resize(half)
	}
}

// resize rebuilds the table at the new capacity, preserving every
// association. Iteration order may change (hash order is unspecified).
func (m *FastMap[K, V]) resize(capacity int) {
	old := m.table
	m.table = make([]*entry[K, V], capacity)
	for _, e := range old {
		if e != nil {
			m.insert(e)
		}
	}
}

// --------------------------------------------------------------------------
// Iteration
// --------------------------------------------------------------------------

// Iterator returns entries in slot order: implementation-defined but stable
// as long as the map is not mutated between calls.
func (m *FastMap[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return m.slotIterator(0, len(m.table)-1, false)
}

func (m *FastMap[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return m.slotIterator(0, len(m.table)-1, true)
}

// IteratorFrom starts at fromKey's slot (its actual slot when present, its
// home slot otherwise) and runs to the end of the table.
func (m *FastMap[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	start := m.position(fromKey)
	if start < 0 {
		start = m.homeSlot(fromKey)
	}
	return m.slotIterator(start, len(m.table)-1, false)
}

func (m *FastMap[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	end := m.position(fromKey)
	if end < 0 {
		end = m.homeSlot(fromKey)
	}
	return m.slotIterator(0, end, true)
}

// slotIterator yields the non-empty slots in [from, to], ascending or
// descending.
func (m *FastMap[K, V]) slotIterator(from, to int, descending bool) collection.Iterator[collection.Entry[K, V]] {
	pos := from - 1
	if descending {
		pos = to + 1
	}
	return collection.FuncIterator(func() (collection.Entry[K, V], bool) {
		for {
			if descending {
				pos--
				if pos < from {
					return nil, false
				}
			} else {
				pos++
				if pos > to {
					return nil, false
				}
			}
			if e := m.table[pos]; e != nil {
				return e, true
			}
		}
	})
}

// --------------------------------------------------------------------------
// Projections, Cloning, Splitting
// --------------------------------------------------------------------------

func (m *FastMap[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](m)
}

func (m *FastMap[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](m)
}

func (m *FastMap[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](m)
}

// Clone returns an independent deep-structural copy: a fresh table with
// fresh entries (entries are mutable in place, sharing them would break
// isolation).
func (m *FastMap[K, V]) Clone() collection.Map[K, V] {
	cp := &FastMap[K, V]{
		keyOrder: m.keyOrder,
		valEq:    m.valEq,
		seed:     m.seed,
		table:    make([]*entry[K, V], len(m.table)),
		size:     m.size,
		opts:     m.opts,
	}
	for i, e := range m.table {
		if e != nil {
			cp.table[i] = &entry[K, V]{key: e.key, value: e.value}
		}
	}
	return cp
}

// TrySplitEntries partitions the backing table into up to n slot-range
// sub-views without copying entries.
func (m *FastMap[K, V]) TrySplitEntries(n int) []collection.Collection[collection.Entry[K, V]] {
	if n < 1 {
		n = 1
	}
	if n > len(m.table) {
		n = len(m.table)
	}
	out := make([]collection.Collection[collection.Entry[K, V]], 0, n)
	chunk := (len(m.table) + n - 1) / n
	for from := 0; from < len(m.table); from += chunk {
		to := from + chunk - 1
		if to >= len(m.table) {
			to = len(m.table) - 1
		}
		out = append(out, &slotRange[K, V]{m: m, from: from, to: to})
	}
	return out
}

func (m *FastMap[K, V]) String() string { return collection.StringOfMap[K, V](m) }
