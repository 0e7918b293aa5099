// Package sharded implements a concurrent map engine: entries are
// partitioned across N shards by a seeded hash of the key order's index,
// and each shard stores its entries in a lock-free hash map.
//
// The package focuses on:
//   - Lock-free reads and fine-grained writes via per-shard xsync maps
//   - Hash-collision handling through per-index entry lists
//   - Shard distribution diagnostics (Stats) for tuning shard counts
//   - Per-shard splitting for parallel bulk operations
//
// Unlike the single-threaded engines, a sharded map is safe for concurrent
// use without wrapping. Iterators operate on a point-in-time snapshot of
// the shards, so a pass never observes a torn write, but it may miss
// writes that land after the iterator was created.
package sharded
