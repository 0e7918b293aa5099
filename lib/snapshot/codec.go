package snapshot

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec converts a typed key or value to and from its byte representation.
type Codec[T any] interface {
	// Marshal encodes v into a byte array
	// It returns the encoded byte array and an error if any
	Marshal(v T) ([]byte, error)
	// Unmarshal decodes a byte array into a value
	// It returns the decoded value and an error if any
	Unmarshal(b []byte) (T, error)
}

// --------------------------------------------------------------------------
// Built-in Codecs
// --------------------------------------------------------------------------

// BytesCodec returns the identity codec for raw byte slices.
func BytesCodec() Codec[[]byte] {
	return bytesCodec{}
}

type bytesCodec struct{}

func (bytesCodec) Marshal(v []byte) ([]byte, error)   { return v, nil }
func (bytesCodec) Unmarshal(b []byte) ([]byte, error) { return b, nil }

// StringCodec returns a codec for strings.
func StringCodec() Codec[string] {
	return stringCodec{}
}

type stringCodec struct{}

func (stringCodec) Marshal(v string) ([]byte, error)   { return []byte(v), nil }
func (stringCodec) Unmarshal(b []byte) (string, error) { return string(b), nil }

// Uint64Codec returns a fixed-width little-endian codec for uint64 values.
func Uint64Codec() Codec[uint64] {
	return uint64Codec{}
}

type uint64Codec struct{}

func (uint64Codec) Marshal(v uint64) ([]byte, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b, nil
}

func (uint64Codec) Unmarshal(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("uint64 codec: expected 8 bytes, got %d", len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}

// IntCodec returns a codec for ints, stored as their two's-complement
// uint64 form.
func IntCodec() Codec[int] {
	return intCodec{}
}

type intCodec struct{}

func (intCodec) Marshal(v int) ([]byte, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(int64(v)))
	return b, nil
}

func (intCodec) Unmarshal(b []byte) (int, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("int codec: expected 8 bytes, got %d", len(b))
	}
	return int(int64(binary.LittleEndian.Uint64(b))), nil
}

// JSONCodec returns a codec that stores values as JSON documents.
func JSONCodec[T any]() Codec[T] {
	return jsonCodec[T]{}
}

type jsonCodec[T any] struct{}

func (jsonCodec[T]) Marshal(v T) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec[T]) Unmarshal(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

// MsgpackCodec returns a codec that stores values as MessagePack documents.
func MsgpackCodec[T any]() Codec[T] {
	return msgpackCodec[T]{}
}

type msgpackCodec[T any] struct{}

func (msgpackCodec[T]) Marshal(v T) ([]byte, error) { return msgpack.Marshal(v) }

func (msgpackCodec[T]) Unmarshal(b []byte) (T, error) {
	var v T
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
