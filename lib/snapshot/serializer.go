package snapshot

import "fmt"

// Record is one map entry in its byte representation, produced by the key
// and value codecs.
type Record struct {
	Key   []byte
	Value []byte
}

// Serializer is the interface for all record serializers
type Serializer interface {
	// ID identifies the wire format; it is written into the file header so
	// Load can select the matching implementation
	ID() uint8
	// Serialize serializes a Record into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(rec Record) ([]byte, error)
	// Deserialize deserializes a byte array into a Record
	// It takes a byte array and a pointer to a Record as parameters
	// It returns an error if any
	Deserialize(b []byte, rec *Record) error
}

// Serializer ids as written into the file header.
const (
	serializerBinary  uint8 = 1
	serializerMsgpack uint8 = 2
	serializerJSON    uint8 = 3
)

// serializerFor resolves a header id back to an implementation.
func serializerFor(id uint8) (Serializer, error) {
	switch id {
	case serializerBinary:
		return NewBinarySerializer(), nil
	case serializerMsgpack:
		return NewMsgpackSerializer(), nil
	case serializerJSON:
		return NewJSONSerializer(), nil
	default:
		return nil, fmt.Errorf("unknown serializer id: %d", id)
	}
}
