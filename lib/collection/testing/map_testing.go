package testing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
)

// MapFactory is a function that creates a new instance of a Map implementation
type MapFactory func() collection.Map[string, int]

// CollectionFactory is a function that creates a new instance of a Collection implementation
type CollectionFactory func() collection.Collection[int]

// suiteConfig captures what an implementation can promise; subtests whose
// capability is absent are skipped.
type suiteConfig struct {
	sorted   bool
	readOnly bool
	noSplit  bool
}

// Option declares a capability of the implementation under test.
type Option func(*suiteConfig)

// SortedOrder declares that iteration follows the key order.
func SortedOrder() Option { return func(c *suiteConfig) { c.sorted = true } }

// Unordered declares implementation-defined iteration order (the default).
func Unordered() Option { return func(c *suiteConfig) { c.sorted = false } }

// ReadOnly declares that every mutating operation panics.
func ReadOnly() Option { return func(c *suiteConfig) { c.readOnly = true } }

// NoSplit declares that TrySplit always declines.
func NoSplit() Option { return func(c *suiteConfig) { c.noSplit = true } }

func configure(opts []Option) suiteConfig {
	var c suiteConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Skip the test if the capability is not available
func requireCapability(t testing.TB, ok bool) {
	if !ok {
		t.Skip()
	}
}

// RunMapTests runs a comprehensive test suite for a Map implementation.
func RunMapTests(t *testing.T, name string, factory MapFactory, opts ...Option) {
	cfg := configure(opts)

	t.Run(name, func(t *testing.T) {
		t.Run("Put&Get", func(t *testing.T) {
			testMapPutGet(t, cfg, factory())
		})

		t.Run("PutIfAbsent", func(t *testing.T) {
			testMapPutIfAbsent(t, cfg, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testMapRemove(t, cfg, factory())
		})

		t.Run("RemoveIf", func(t *testing.T) {
			testMapRemoveIf(t, cfg, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testMapClear(t, cfg, factory())
		})

		t.Run("ContainsValue", func(t *testing.T) {
			testMapContainsValue(t, cfg, factory())
		})

		t.Run("AbsentKey", func(t *testing.T) {
			testMapAbsentKey(t, factory())
		})

		t.Run("EntryImmutability", func(t *testing.T) {
			testMapEntryImmutability(t, cfg, factory())
		})

		t.Run("IterationCoverage", func(t *testing.T) {
			testMapIterationCoverage(t, cfg, factory())
		})

		t.Run("SortedIteration", func(t *testing.T) {
			testMapSortedIteration(t, cfg, factory())
		})

		t.Run("SeededIterators", func(t *testing.T) {
			testMapSeededIterators(t, cfg, factory())
		})

		t.Run("Projections", func(t *testing.T) {
			testMapProjections(t, cfg, factory())
		})

		t.Run("CloneIsolation", func(t *testing.T) {
			testMapCloneIsolation(t, cfg, factory())
		})

		t.Run("ReadOnlyPanics", func(t *testing.T) {
			testMapReadOnlyPanics(t, cfg, factory())
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testMapRealisticUsage(t, cfg, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testMapPutGet(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	testKey := "test-key"

	if _, replaced := m.Put(testKey, 1); replaced {
		t.Errorf("Put on a fresh map reported a replacement")
	}

	result, exists := m.Get(testKey)
	if !exists {
		t.Errorf("Expected key %s to exist after Put", testKey)
	}
	if result != 1 {
		t.Errorf("Expected value 1, got %d", result)
	}

	previous, replaced := m.Put(testKey, 2)
	if !replaced {
		t.Errorf("Put over an existing key did not report a replacement")
	}
	if previous != 1 {
		t.Errorf("Expected previous value 1, got %d", previous)
	}

	result, _ = m.Get(testKey)
	if result != 2 {
		t.Errorf("Expected updated value 2, got %d", result)
	}

	if m.Size() != 1 {
		t.Errorf("Expected size 1 after updating a single key, got %d", m.Size())
	}
}

func testMapPutIfAbsent(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	current, inserted := m.PutIfAbsent("test-key", 1)
	if !inserted {
		t.Errorf("PutIfAbsent on an absent key did not insert")
	}
	if current != 1 {
		t.Errorf("Expected current value 1, got %d", current)
	}

	current, inserted = m.PutIfAbsent("test-key", 99)
	if inserted {
		t.Errorf("PutIfAbsent on a present key inserted")
	}
	if current != 1 {
		t.Errorf("Expected the existing value 1, got %d", current)
	}

	if v, _ := m.Get("test-key"); v != 1 {
		t.Errorf("PutIfAbsent overwrote the existing value")
	}
}

func testMapRemove(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	m.Put("test-key", 1)

	previous, removed := m.Remove("test-key")
	if !removed {
		t.Errorf("Remove on a present key reported no removal")
	}
	if previous != 1 {
		t.Errorf("Expected removed value 1, got %d", previous)
	}

	if _, removed = m.Remove("test-key"); removed {
		t.Errorf("Remove on an absent key reported a removal")
	}
	if !m.IsEmpty() {
		t.Errorf("Expected an empty map after removing the only key")
	}
}

func testMapRemoveIf(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	changed := m.RemoveIf(func(e collection.Entry[string, int]) bool {
		return e.Value()%2 == 0
	})
	if !changed {
		t.Errorf("RemoveIf with matches reported no change")
	}
	if m.Size() != 50 {
		t.Errorf("Expected 50 entries after removing the even half, got %d", m.Size())
	}

	it := m.Iterator()
	for it.Next() {
		if it.Value().Value()%2 == 0 {
			t.Errorf("Even value %d survived RemoveIf", it.Value().Value())
		}
	}

	if m.RemoveIf(func(e collection.Entry[string, int]) bool { return false }) {
		t.Errorf("RemoveIf without matches reported a change")
	}
}

func testMapClear(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	m.Clear()

	if !m.IsEmpty() {
		t.Errorf("Expected an empty map after Clear, size is %d", m.Size())
	}
	if m.Iterator().Next() {
		t.Errorf("Iterator over a cleared map yielded an entry")
	}

	// The map stays usable after Clear
	m.Put("test-key", 1)
	if m.Size() != 1 {
		t.Errorf("Expected size 1 after re-populating, got %d", m.Size())
	}
}

func testMapContainsValue(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	m.Put("a", 1)
	m.Put("b", 2)

	if !m.ContainsValue(2) {
		t.Errorf("Expected ContainsValue(2) to be true")
	}
	if m.ContainsValue(3) {
		t.Errorf("Expected ContainsValue(3) to be false")
	}
}

func testMapAbsentKey(t *testing.T, m collection.Map[string, int]) {
	if _, exists := m.Get("nonexistent-key"); exists {
		t.Errorf("Expected nonexistent key to return exists=false")
	}
	if m.GetEntry("nonexistent-key") != nil {
		t.Errorf("Expected GetEntry on a nonexistent key to return nil")
	}
	if m.ContainsKey("nonexistent-key") {
		t.Errorf("Expected ContainsKey on a nonexistent key to be false")
	}
}

func testMapEntryImmutability(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	m.Put("test-key", 1)

	entry := m.GetEntry("test-key")
	if entry == nil {
		t.Fatalf("Expected an entry for a present key")
	}

	defer func() {
		if r := recover(); r != collection.ErrUnsupportedOperation {
			t.Errorf("Expected SetValue to panic with ErrUnsupportedOperation, got %v", r)
		}
	}()
	entry.SetValue(99)
}

func testMapIterationCoverage(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	numKeys := 500
	for i := 0; i < numKeys; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	seen := make(map[string]int)
	it := m.Iterator()
	for it.Next() {
		e := it.Value()
		if _, dup := seen[e.Key()]; dup {
			t.Errorf("Key %s yielded twice in one pass", e.Key())
		}
		seen[e.Key()] = e.Value()
	}

	if len(seen) != numKeys {
		t.Errorf("Expected %d entries in one pass, got %d", numKeys, len(seen))
	}
	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("test-key-%d", i)
		if seen[key] != i {
			t.Errorf("Key %s iterated with value %d, want %d", key, seen[key], i)
		}
	}

	// Descending yields the same entries
	count := 0
	it = m.DescendingIterator()
	for it.Next() {
		count++
	}
	if count != numKeys {
		t.Errorf("Descending pass yielded %d entries, want %d", count, numKeys)
	}
}

func testMapSortedIteration(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, cfg.sorted && !cfg.readOnly)

	keys := []string{"pear", "apple", "mango", "kiwi", "banana"}
	for i, k := range keys {
		m.Put(k, i)
	}

	var prev string
	first := true
	it := m.Iterator()
	for it.Next() {
		key := it.Value().Key()
		if !first && m.KeyOrder().Compare(prev, key) >= 0 {
			t.Errorf("Iteration out of order: %s before %s", prev, key)
		}
		prev, first = key, false
	}

	first = true
	it = m.DescendingIterator()
	for it.Next() {
		key := it.Value().Key()
		if !first && m.KeyOrder().Compare(prev, key) <= 0 {
			t.Errorf("Descending iteration out of order: %s before %s", prev, key)
		}
		prev, first = key, false
	}
}

func testMapSeededIterators(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, cfg.sorted && !cfg.readOnly)

	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	it := m.IteratorFrom("test-key-5")
	if !it.Next() {
		t.Fatalf("IteratorFrom on a present key yielded nothing")
	}
	if got := it.Value().Key(); got != "test-key-5" {
		t.Errorf("IteratorFrom started at %s, want test-key-5", got)
	}
	count := 1
	for it.Next() {
		count++
	}
	if count != 5 {
		t.Errorf("IteratorFrom yielded %d entries, want 5", count)
	}

	it = m.DescendingIteratorFrom("test-key-5")
	if !it.Next() {
		t.Fatalf("DescendingIteratorFrom on a present key yielded nothing")
	}
	if got := it.Value().Key(); got != "test-key-5" {
		t.Errorf("DescendingIteratorFrom started at %s, want test-key-5", got)
	}
}

func testMapProjections(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	m.Put("a", 1)
	m.Put("b", 2)

	keys := m.KeySet()
	if keys.Size() != 2 || !keys.Contains("a") {
		t.Errorf("KeySet does not reflect the map contents")
	}

	// KeySet removal writes through to the map
	keys.Remove("a")
	if m.ContainsKey("a") {
		t.Errorf("KeySet.Remove did not remove the mapping")
	}

	values := m.Values()
	if values.Size() != 1 || !values.Contains(2) {
		t.Errorf("Values does not reflect the map contents")
	}

	// EntrySet addition writes through to the map
	entries := m.EntrySet()
	entries.Add(collection.NewEntry("c", 3))
	if v, _ := m.Get("c"); v != 3 {
		t.Errorf("EntrySet.Add did not put the mapping")
	}
}

func testMapCloneIsolation(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	m.Put("a", 1)

	cp := m.Clone()
	m.Put("a", 99)
	m.Put("b", 2)
	cp.Put("c", 3)

	if v, _ := cp.Get("a"); v != 1 {
		t.Errorf("Mutating the original leaked into the clone")
	}
	if cp.ContainsKey("b") {
		t.Errorf("Key added to the original appeared in the clone")
	}
	if m.ContainsKey("c") {
		t.Errorf("Key added to the clone appeared in the original")
	}
}

func testMapReadOnlyPanics(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, cfg.readOnly)

	mutations := map[string]func(){
		"Put":         func() { m.Put("k", 1) },
		"PutIfAbsent": func() { m.PutIfAbsent("k", 1) },
		"Remove":      func() { m.Remove("k") },
		"Clear":       func() { m.Clear() },
		"RemoveIf": func() {
			m.RemoveIf(func(collection.Entry[string, int]) bool { return true })
		},
	}

	for name, mutate := range mutations {
		func() {
			defer func() {
				if r := recover(); r != collection.ErrUnsupportedOperation {
					t.Errorf("%s: expected ErrUnsupportedOperation, got %v", name, r)
				}
			}()
			mutate()
		}()
	}
}

func testMapRealisticUsage(t *testing.T, cfg suiteConfig, m collection.Map[string, int]) {
	requireCapability(t, !cfg.readOnly)

	rnd := rand.New(rand.NewSource(42))
	model := make(map[string]int)

	for op := 0; op < 10_000; op++ {
		key := fmt.Sprintf("test-key-%d", rnd.Intn(500))

		switch rnd.Intn(4) {
		case 0, 1: // put twice as often as the rest
			val := rnd.Intn(1000)
			m.Put(key, val)
			model[key] = val
		case 2:
			_, removed := m.Remove(key)
			_, existed := model[key]
			if removed != existed {
				t.Fatalf("op %d: Remove(%s) = %v, model says %v", op, key, removed, existed)
			}
			delete(model, key)
		case 3:
			got, exists := m.Get(key)
			want, existed := model[key]
			if exists != existed || got != want {
				t.Fatalf("op %d: Get(%s) = (%d, %v), model says (%d, %v)", op, key, got, exists, want, existed)
			}
		}

		if m.Size() != len(model) {
			t.Fatalf("op %d: size %d diverged from model %d", op, m.Size(), len(model))
		}
	}
}
