package testing

import (
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
)

// RunCollectionTests runs a comprehensive test suite for a Collection implementation.
func RunCollectionTests(t *testing.T, name string, factory CollectionFactory, opts ...Option) {
	cfg := configure(opts)

	t.Run(name, func(t *testing.T) {
		t.Run("Add&Contains", func(t *testing.T) {
			testCollectionAddContains(t, cfg, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testCollectionRemove(t, cfg, factory())
		})

		t.Run("RemoveIf", func(t *testing.T) {
			testCollectionRemoveIf(t, cfg, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testCollectionClear(t, cfg, factory())
		})

		t.Run("IterationCoverage", func(t *testing.T) {
			testCollectionIterationCoverage(t, cfg, factory())
		})

		t.Run("DescendingReversal", func(t *testing.T) {
			testCollectionDescendingReversal(t, cfg, factory())
		})

		t.Run("CloneIsolation", func(t *testing.T) {
			testCollectionCloneIsolation(t, cfg, factory())
		})

		t.Run("TrySplit", func(t *testing.T) {
			testCollectionTrySplit(t, cfg, factory())
		})

		t.Run("ReadOnlyPanics", func(t *testing.T) {
			testCollectionReadOnlyPanics(t, cfg, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testCollectionAddContains(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	if c.Contains(1) {
		t.Errorf("Fresh collection contains an element")
	}

	c.Add(1)
	if !c.Contains(1) {
		t.Errorf("Expected element 1 to be present after Add")
	}
	if c.IsEmpty() {
		t.Errorf("Expected a non-empty collection after Add")
	}
}

func testCollectionRemove(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	c.Add(1)
	c.Add(2)

	if !c.Remove(1) {
		t.Errorf("Remove on a present element reported no change")
	}
	if c.Contains(1) {
		t.Errorf("Element 1 still present after Remove")
	}
	if c.Remove(1) {
		t.Errorf("Remove on an absent element reported a change")
	}
	if c.Size() != 1 {
		t.Errorf("Expected size 1, got %d", c.Size())
	}
}

func testCollectionRemoveIf(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	for i := 0; i < 100; i++ {
		c.Add(i)
	}

	if !c.RemoveIf(func(e int) bool { return e%2 == 0 }) {
		t.Errorf("RemoveIf with matches reported no change")
	}

	it := c.Iterator()
	for it.Next() {
		if it.Value()%2 == 0 {
			t.Errorf("Even element %d survived RemoveIf", it.Value())
		}
	}

	if c.RemoveIf(func(e int) bool { return false }) {
		t.Errorf("RemoveIf without matches reported a change")
	}
}

func testCollectionClear(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	for i := 0; i < 100; i++ {
		c.Add(i)
	}

	c.Clear()

	if !c.IsEmpty() {
		t.Errorf("Expected an empty collection after Clear, size is %d", c.Size())
	}

	// The collection stays usable after Clear
	c.Add(1)
	if !c.Contains(1) {
		t.Errorf("Add after Clear did not take effect")
	}
}

func testCollectionIterationCoverage(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	numElems := 500
	for i := 0; i < numElems; i++ {
		c.Add(i)
	}

	seen := make(map[int]bool)
	it := c.Iterator()
	for it.Next() {
		e := it.Value()
		if seen[e] {
			t.Errorf("Element %d yielded twice in one pass", e)
		}
		seen[e] = true
	}

	if len(seen) != numElems {
		t.Errorf("Expected %d elements in one pass, got %d", numElems, len(seen))
	}
}

func testCollectionDescendingReversal(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	for i := 0; i < 100; i++ {
		c.Add(i)
	}

	forward := collection.DrainIterator(c.Iterator())
	backward := collection.DrainIterator(c.DescendingIterator())

	if len(forward) != len(backward) {
		t.Fatalf("Forward pass yielded %d elements, backward %d", len(forward), len(backward))
	}
	for i, e := range forward {
		if backward[len(backward)-1-i] != e {
			t.Errorf("Descending iteration is not the reverse of ascending at position %d", i)
			break
		}
	}
}

func testCollectionCloneIsolation(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.readOnly)

	c.Add(1)

	cp := c.Clone()
	c.Add(2)
	cp.Add(3)

	if cp.Contains(2) {
		t.Errorf("Element added to the original appeared in the clone")
	}
	if c.Contains(3) {
		t.Errorf("Element added to the clone appeared in the original")
	}
}

func testCollectionTrySplit(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, !cfg.noSplit && !cfg.readOnly)

	numElems := 1000
	for i := 0; i < numElems; i++ {
		c.Add(i)
	}

	parts := c.TrySplit(4)
	if parts == nil {
		t.Skip("implementation declines to split")
	}
	if len(parts) > 4 {
		t.Errorf("TrySplit(4) returned %d partitions", len(parts))
	}

	seen := make(map[int]bool)
	total := 0
	for _, part := range parts {
		it := part.Iterator()
		for it.Next() {
			e := it.Value()
			if seen[e] {
				t.Errorf("Element %d appeared in two partitions", e)
			}
			seen[e] = true
			total++
		}
	}

	if total != c.Size() {
		t.Errorf("Partitions covered %d elements, collection holds %d", total, c.Size())
	}
}

func testCollectionReadOnlyPanics(t *testing.T, cfg suiteConfig, c collection.Collection[int]) {
	requireCapability(t, cfg.readOnly)

	mutations := map[string]func(){
		"Add":    func() { c.Add(1) },
		"Remove": func() { c.Remove(1) },
		"Clear":  func() { c.Clear() },
		"RemoveIf": func() {
			c.RemoveIf(func(int) bool { return true })
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
