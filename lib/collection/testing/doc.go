// Package testing provides standardised tests and benchmarks for map and
// collection implementations that satisfy the collection.Map and
// collection.Collection interfaces.
//
// The package contains:
//   - testing: A comprehensive conformance suite validating the interface contracts
//   - benchmark: Performance tests for measuring throughput of common operations
//
// Implementations differ in what they can promise: a hash map has no key
// order, a view over a read-only source rejects writes, a mapped view cannot
// split. Capability options declare these differences so one suite covers
// every engine and view; subtests whose capability is absent are skipped.
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() collection.Map[string, int] {
//		return fastmap.New[string, int](order.String(), order.Comparable[int](), nil)
//	}
//
//	// Running the standard test suite
//	testing.RunMapTests(t, "FastMap", factory, testing.Unordered())
//
//	// Running performance benchmarks
//	testing.RunMapBenchmarks(b, "FastMap", factory)
package testing
