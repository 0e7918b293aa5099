package testing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/fastcoll/fastcoll/lib/collection"
)

// RunMapBenchmarks runs all benchmarks for a Map implementation
func RunMapBenchmarks(b *testing.B, name string, factory MapFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Put", func(b *testing.B) {
			benchmarkPut(b, factory())
		})

		b.Run("PutExisting", func(b *testing.B) {
			benchmarkPutExisting(b, factory())
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory())
		})

		b.Run("Get(missing)", func(b *testing.B) {
			benchmarkGetMissing(b, factory())
		})

		b.Run("Remove", func(b *testing.B) {
			benchmarkRemove(b, factory())
		})

		b.Run("Iterate", func(b *testing.B) {
			benchmarkIterate(b, factory())
		})

		b.Run("MixedUsage", func(b *testing.B) {
			benchmarkMixedUsage(b, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// Benchmark for Put operation with fresh keys
func benchmarkPut(b *testing.B, m collection.Map[string, int]) {
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("test-key-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[i], i)
	}
}

// Benchmark for Put operation over existing keys
func benchmarkPutExisting(b *testing.B, m collection.Map[string, int]) {
	numKeys := 10_000
	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("test-key-%d", i)
		m.Put(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[i%numKeys], i)
	}
}

// Benchmark for Get operation on present keys
func benchmarkGet(b *testing.B, m collection.Map[string, int]) {
	numKeys := 10_000
	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("test-key-%d", i)
		m.Put(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i%numKeys])
	}
}

// Benchmark for Get operation on absent keys
func benchmarkGetMissing(b *testing.B, m collection.Map[string, int]) {
	for i := 0; i < 10_000; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(fmt.Sprintf("missing-key-%d", i))
	}
}

// Benchmark for Remove operation
func benchmarkRemove(b *testing.B, m collection.Map[string, int]) {
	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("test-key-%d", i)
		m.Put(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Remove(keys[i])
	}
}

// Benchmark for a full iteration pass over 10k entries
func benchmarkIterate(b *testing.B, m collection.Map[string, int]) {
	for i := 0; i < 10_000; i++ {
		m.Put(fmt.Sprintf("test-key-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iterator()
		for it.Next() {
			_ = it.Value()
		}
	}
}

// Benchmark simulating realistic usage with a mix of operations:
// 60% reads, 30% writes, 10% removals
func benchmarkMixedUsage(b *testing.B, m collection.Map[string, int]) {
	numKeys := 10_000
	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("test-key-%d", i)
	}
	for i := 0; i < numKeys/2; i++ {
		m.Put(keys[i], i)
	}

	rnd := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[rnd.Intn(numKeys)]
		switch r := rnd.Intn(10); {
		case r < 6:
			m.Get(key)
		case r < 9:
			m.Put(key, i)
		default:
			m.Remove(key)
		}
	}
}
