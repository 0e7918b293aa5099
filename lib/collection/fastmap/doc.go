// Package fastmap implements the hash-organized base storage engine: an
// open-addressing table of entries placed by the key order's index mixed
// with a per-map random seed.
//
// The package focuses on:
//   - O(1) amortized Get/Put/Remove with linear probing
//   - Tombstone-free removal: the trailing probe cluster is re-homed by
//     backward shifting, so lookups stay O(1) amortized without tombstone
//     accumulation
//   - Bounded load: the table grows past the high-water load mark and
//     shrinks below the low-water mark (never below the initial capacity)
//   - Slot-order iteration: implementation-defined but stable between
//     mutations, ascending and descending, optionally seeded by key
//
// Thread-safety: a FastMap is not safe for concurrent use. Wrap it with the
// atomic or shared views of the views package, or use the sharded engine,
// when concurrency is needed.
package fastmap
