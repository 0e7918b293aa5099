// Package fasttable implements the contiguous storage engine: a growable
// slice of elements addressed by position.
//
// The package focuses on:
//   - O(1) amortized append, O(1) positional reads and writes
//   - Positional insertion and removal with element shifting
//   - In-place sorting against a caller-supplied comparison
//   - The full collection contract, so a table composes with every view
//
// Positional arguments outside [0, Size()) panic ErrIndexOutOfRange; this
// is a caller contract, not a recoverable condition.
//
// Thread-safety: a Table is not safe for concurrent use; wrap it with the
// atomic or shared views of the views package when concurrency is needed.
package fasttable
