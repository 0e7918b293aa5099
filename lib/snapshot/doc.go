// Package snapshot persists map contents to any io.Writer and restores them
// from any io.Reader. It separates the two concerns of persistence: codecs
// turn typed keys and values into bytes, and serializers frame those bytes
// into records on the wire.
//
// The package focuses on:
//   - Saving and loading any collection.Map through a small, format-agnostic API
//   - Offering multiple record serializers with different performance characteristics
//   - Optional transparent snappy compression of the record stream
//   - Minimizing memory allocations on the hot encode/decode path
//
// Key Components:
//
//   - Codec: converts a typed key or value to and from bytes. Built-ins cover
//     []byte, string and uint64; JSONCodec and MsgpackCodec handle arbitrary
//     struct types.
//
//   - Serializer: frames a Record (key bytes + value bytes) into a single
//     byte slice and back. Implementations:
//
//   - binarySerializerImpl: custom length-prefixed binary format, the
//     fastest and most compact option, recommended for production use.
//
//   - msgpackSerializerImpl: MessagePack rows, compact and portable across
//     languages.
//
//   - jsonSerializerImpl: JSON rows, human-readable, useful for debugging
//     at the cost of size and speed.
//
//   - Save / Load: write and read the snapshot file format. A file starts
//     with the magic number "FASTCOL\x00", a format version, the serializer
//     id and a compression flag, followed by the entry count and the framed
//     records (snappy-compressed when the flag is set).
//
// Thread Safety:
//
//	Codecs and serializers are stateless and safe for concurrent use. Save
//	iterates the map once; use a snapshot-isolated view when writers run
//	concurrently. Load mutates the target map and must not race with other
//	access to it.
//
// Usage:
//
//	f, _ := os.Create("data.fcol")
//	err := snapshot.Save(f, m, snapshot.StringCodec(), snapshot.Uint64Codec(), nil)
//	// ... later ...
//	err = snapshot.Load(f, m, snapshot.StringCodec(), snapshot.Uint64Codec())
package snapshot
