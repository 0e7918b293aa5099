// Package sortedmap implements the comparator-organized storage engine: a
// skiplist keyed by the key order's comparator.
//
// The package focuses on:
//   - O(log n) Get/Put/Remove driven purely by Order.Compare
//   - Ascending iteration in key order, ascending seeded iteration via
//     skiplist search, descending iteration via a materialized reverse pass
//   - Navigation lookups supplementing the basic map contract: First, Last,
//     Floor, Ceiling, Higher and Lower entries. Key-range restriction is
//     provided by the views package's SubMap, which pairs naturally with
//     the seeded iterators here
//
// Thread-safety: a SortedMap is not safe for concurrent use; wrap it with
// the atomic or shared views of the views package when concurrency is
// needed.
package sortedmap
