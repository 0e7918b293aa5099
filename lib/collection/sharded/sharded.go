package sharded

import (
	"runtime"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/fastcoll/fastcoll/lib/order"
	"github.com/puzpuzpuz/xsync/v3"
)

// entry is immutable once stored; Put swaps entries instead of mutating
// values in place, so readers never observe a torn update.
type entry[K, V any] struct {
	key   K
	value V
}

func (e *entry[K, V]) Key() K   { return e.key }
func (e *entry[K, V]) Value() V { return e.value }

func (e *entry[K, V]) SetValue(V) V {
	panic(collection.ErrUnsupportedOperation)
}

func (e *entry[K, V]) String() string { return collection.FormatEntry[K, V](e) }

// bucket holds every entry whose key hashes to the same index.
type bucket[K, V any] []*entry[K, V]

// shard is one partition of the map.
type shard[K, V any] struct {
	data *xsync.MapOf[uint64, bucket[K, V]]
}

func newShard[K, V any]() *shard[K, V] {
	return &shard[K, V]{
		data: xsync.NewMapOfWithHasher[uint64, bucket[K, V]](
			func(key uint64, mapSeed uint64) uint64 { return key ^ mapSeed },
		),
	}
}

// Options configures a sharded Map at construction time.
type Options struct {
	// NumShards is the partition count; 0 selects runtime.NumCPU().
	NumShards int
}

// DefaultOptions returns the default sharded map options.
func DefaultOptions() *Options {
	return &Options{NumShards: runtime.NumCPU()}
}

// Map is the concurrent map engine.
type Map[K, V any] struct {
	keyOrder order.Order[K]
	valEq    order.Equality[V]
	seed     uint64
	shards   []*shard[K, V]
	size     *xsync.Counter
}

// New creates an empty concurrent map. opts may be nil for defaults.
func New[K, V any](keyOrder order.Order[K], valEq order.Equality[V], opts *Options) *Map[K, V] {
	numShards := DefaultOptions().NumShards
	if opts != nil && opts.NumShards > 0 {
		numShards = opts.NumShards
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = newShard[K, V]()
	}
	return &Map[K, V]{
		keyOrder: keyOrder,
		valEq:    valEq,
		seed:     order.GenerateSeed(),
		shards:   shards,
		size:     xsync.NewCounter(),
	}
}

// --------------------------------------------------------------------------
// Placement
// --------------------------------------------------------------------------

func (m *Map[K, V]) hashIndex(key K) uint64 {
	return order.HashUint64(uint64(m.keyOrder.IndexOf(key)) ^ m.seed)
}

// shardFor selects the partition for a hash index. The shift discards the
// bits already consumed by the per-shard map's bucket selection.
func (m *Map[K, V]) shardFor(h uint64) *shard[K, V] {
	return m.shards[(h>>7)%uint64(len(m.shards))]
}

// --------------------------------------------------------------------------
// Map Contract - Reads
// --------------------------------------------------------------------------

func (m *Map[K, V]) KeyOrder() order.Order[K]         { return m.keyOrder }
func (m *Map[K, V]) ValueEquality() order.Equality[V] { return m.valEq }

func (m *Map[K, V]) Size() int {
	n := m.size.Value()
	if n < 0 {
		return 0
	}
	return int(n)
}

func (m *Map[K, V]) IsEmpty() bool { return m.Size() == 0 }

func (m *Map[K, V]) getEntry(key K) *entry[K, V] {
	h := m.hashIndex(key)
	b, ok := m.shardFor(h).data.Load(h)
	if !ok {
		return nil
	}
	for _, e := range b {
		if m.keyOrder.AreEqual(e.key, key) {
			return e
		}
	}
	return nil
}

func (m *Map[K, V]) ContainsKey(key K) bool { return m.getEntry(key) != nil }

func (m *Map[K, V]) ContainsValue(v V) bool {
	for _, s := range m.shards {
		found := false
		s.data.Range(func(_ uint64, b bucket[K, V]) bool {
			for _, e := range b {
				if m.valEq.AreEqual(e.value, v) {
					found = true
					return false
				}
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.getEntry(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) GetEntry(key K) collection.Entry[K, V] {
	if e := m.getEntry(key); e != nil {
		return e
	}
	return nil
}

// --------------------------------------------------------------------------
// Map Contract - Writes
// --------------------------------------------------------------------------

// Put inserts or replaces atomically with respect to the entry's bucket.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	var (
		previous V
		replaced bool
	)
	h := m.hashIndex(key)
	m.shardFor(h).data.Compute(h, func(old bucket[K, V], loaded bool) (bucket[K, V], bool) {
		for i, e := range old {
			if m.keyOrder.AreEqual(e.key, key) {
				previous, replaced = e.value, true
				next := append(bucket[K, V](nil), old...)
				next[i] = &entry[K, V]{key: key, value: value}
				return next, false
			}
		}
		return append(append(bucket[K, V](nil), old...), &entry[K, V]{key: key, value: value}), false
	})
	if !replaced {
		m.size.Inc()
	}
	return previous, replaced
}

func (m *Map[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	var (
		current  V
		inserted bool
	)
	h := m.hashIndex(key)
	m.shardFor(h).data.Compute(h, func(old bucket[K, V], loaded bool) (bucket[K, V], bool) {
		for _, e := range old {
			if m.keyOrder.AreEqual(e.key, key) {
				current = e.value
				return old, false
			}
		}
		current, inserted = value, true
		return append(append(bucket[K, V](nil), old...), &entry[K, V]{key: key, value: value}), false
	})
	if inserted {
		m.size.Inc()
	}
	return current, inserted
}

func (m *Map[K, V]) Remove(key K) (V, bool) {
	var (
		previous V
		removed  bool
	)
	h := m.hashIndex(key)
	m.shardFor(h).data.Compute(h, func(old bucket[K, V], loaded bool) (bucket[K, V], bool) {
		if !loaded {
			return nil, true
		}
		for i, e := range old {
			if m.keyOrder.AreEqual(e.key, key) {
				previous, removed = e.value, true
				if len(old) == 1 {
					return nil, true
				}
				next := append(bucket[K, V](nil), old[:i]...)
				return append(next, old[i+1:]...), false
			}
		}
		return old, false
	})
	if removed {
		m.size.Dec()
	}
	return previous, removed
}

func (m *Map[K, V]) RemoveIf(p collection.Predicate[collection.Entry[K, V]]) bool {
	changed := false
	for _, e := range m.snapshot() {
		if p(e) {
			// Recheck under the bucket update: the mapping may have been
			// replaced since the snapshot.
			if cur := m.getEntry(e.key); cur != nil && p(cur) {
				if _, ok := m.Remove(e.key); ok {
					changed = true
				}
			}
		}
	}
	return changed
}

func (m *Map[K, V]) Clear() {
	for _, s := range m.shards {
		s.data.Clear()
	}
	m.size.Reset()
}

// --------------------------------------------------------------------------
// Iteration
// --------------------------------------------------------------------------

// snapshot collects the current entries shard by shard.
func (m *Map[K, V]) snapshot() []*entry[K, V] {
	entries := make([]*entry[K, V], 0, m.Size())
	for _, s := range m.shards {
		s.data.Range(func(_ uint64, b bucket[K, V]) bool {
			entries = append(entries, b...)
			return true
		})
	}
	return entries
}

func (m *Map[K, V]) entrySlice() []collection.Entry[K, V] {
	snap := m.snapshot()
	entries := make([]collection.Entry[K, V], len(snap))
	for i, e := range snap {
		entries[i] = e
	}
	return entries
}

func (m *Map[K, V]) Iterator() collection.Iterator[collection.Entry[K, V]] {
	return collection.SliceIterator(m.entrySlice())
}

func (m *Map[K, V]) DescendingIterator() collection.Iterator[collection.Entry[K, V]] {
	return collection.ReverseSliceIterator(m.entrySlice())
}

// IteratorFrom starts the pass at fromKey's position in the snapshot; an
// absent seed key yields an empty pass, since hash order defines no
// neighborhood for a key that is not present.
func (m *Map[K, V]) IteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	entries := m.entrySlice()
	for i, e := range entries {
		if m.keyOrder.AreEqual(e.Key(), fromKey) {
			return collection.SliceIterator(entries[i:])
		}
	}
	return collection.EmptyIterator[collection.Entry[K, V]]()
}

func (m *Map[K, V]) DescendingIteratorFrom(fromKey K) collection.Iterator[collection.Entry[K, V]] {
	entries := m.entrySlice()
	for i, e := range entries {
		if m.keyOrder.AreEqual(e.Key(), fromKey) {
			return collection.ReverseSliceIterator(entries[:i+1])
		}
	}
	return collection.EmptyIterator[collection.Entry[K, V]]()
}

// --------------------------------------------------------------------------
// Projections, Cloning, Splitting
// --------------------------------------------------------------------------

func (m *Map[K, V]) KeySet() collection.Collection[K] {
	return collection.KeySetOf[K, V](m)
}

func (m *Map[K, V]) Values() collection.Collection[V] {
	return collection.ValuesOf[K, V](m)
}

func (m *Map[K, V]) EntrySet() collection.Collection[collection.Entry[K, V]] {
	return collection.EntrySetOf[K, V](m)
}

func (m *Map[K, V]) Clone() collection.Map[K, V] {
	cp := New[K, V](m.keyOrder, m.valEq, &Options{NumShards: len(m.shards)})
	for _, e := range m.snapshot() {
		cp.Put(e.key, e.value)
	}
	return cp
}

// TrySplitEntries partitions the map shard by shard into read-only
// point-in-time snapshots.
func (m *Map[K, V]) TrySplitEntries(n int) []collection.Collection[collection.Entry[K, V]] {
	if n < 1 || m.IsEmpty() {
		return nil
	}
	eq := order.EqualityFunc(collection.EntryEqual[K, V], func(e collection.Entry[K, V]) uint64 {
		return m.hashIndex(e.Key())
	})
	if n > len(m.shards) {
		n = len(m.shards)
	}
	groups := make([][]collection.Entry[K, V], n)
	for i, s := range m.shards {
		g := i % n
		s.data.Range(func(_ uint64, b bucket[K, V]) bool {
			for _, e := range b {
				groups[g] = append(groups[g], e)
			}
			return true
		})
	}
	parts := make([]collection.Collection[collection.Entry[K, V]], 0, n)
	for _, entries := range groups {
		if len(entries) > 0 {
			parts = append(parts, collection.NewConst(eq, entries...))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

func (m *Map[K, V]) String() string { return collection.StringOfMap[K, V](m) }
