package collection

import "errors"

// Sentinel errors for contract violations. They are used as panic values
// (wrapped via fmt.Errorf with %w where extra context helps), matching the
// standard library's treatment of programmer errors in containers.
var (
	// ErrUnsupportedOperation signals a write to a container that forbids
	// it: read-only views, mapped views (no inverse transform) and
	// Entry.SetValue.
	ErrUnsupportedOperation = errors.New("collection: unsupported operation")

	// ErrKeyOutOfRange signals a write through a sub-range view with a key
	// outside the view's declared bounds.
	ErrKeyOutOfRange = errors.New("collection: key out of range")

	// ErrIndexOutOfRange signals a positional access outside a table's
	// current length.
	ErrIndexOutOfRange = errors.New("collection: index out of range")

	// ErrNoSuchElement signals reading an iterator before the first Next or
	// after exhaustion.
	ErrNoSuchElement = errors.New("collection: no such element")

	// ErrCapacityOverflow signals arithmetic overflow while growing a
	// backing structure.
	ErrCapacityOverflow = errors.New("collection: capacity overflow")
)
