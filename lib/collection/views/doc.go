// Package views implements the composable view layer: every constructor
// wraps an inner container behind the same contract, so views nest
// arbitrarily (a sorted view of a filtered view of an atomic map behaves
// like any other map).
//
// The package focuses on:
//   - Policy views: Filtered, Mapped, Sorted, Distinct, Linked, Reversed,
//     SubMap, Unmodifiable
//   - Concurrency views: Atomic (copy-on-write snapshots), Shared
//     (reader/writer lock), Parallel (fan-out bulk operations)
//   - Lazy delegation: a view never copies the inner container's entries
//     unless its semantics require a materialized pass (Sorted snapshots,
//     Atomic snapshots, the Linked side table)
//
// Views hold non-owning references to their delegate. Cloning a view clones
// the delegate and any side state, so a clone never shares mutable storage
// with the original.
package views
