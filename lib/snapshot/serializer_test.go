package snapshot

import (
	"reflect"
	"testing"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() Serializer{
	"JSON":    NewJSONSerializer,
	"Msgpack": NewMsgpackSerializer,
	"Binary":  NewBinarySerializer,
}

// testRecords creates a set of test records with different field shapes
func testRecords() []Record {
	return []Record{
		// Empty record
		{},

		// Key only
		{Key: []byte("test-key")},

		// Value only
		{Value: []byte("test-value")},

		// Both fields filled
		{
			Key:   []byte("test-key"),
			Value: []byte("test-value"),
		},

		// Empty but non-nil value
		{
			Key:   []byte("key-with-empty-value"),
			Value: []byte{},
		},

		// Binary payload
		{
			Key:   []byte{0x00, 0xff, 0x7f},
			Value: []byte{0xde, 0xad, 0xbe, 0xef, 0x00},
		},

		// Large value
		{
			Key:   []byte("large"),
			Value: make([]byte, 16*1024),
		},
	}
}

// TestSerializerRoundTrip tests that records can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	records := testRecords()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			ser := factory()

			for i, original := range records {
				data, err := ser.Serialize(original)
				if err != nil {
					t.Fatalf("record %d: failed to serialize: %v", i, err)
				}

				var decoded Record
				if err := ser.Deserialize(data, &decoded); err != nil {
					t.Fatalf("record %d: failed to deserialize: %v", i, err)
				}

				if !bytesEquivalent(original.Key, decoded.Key) {
					t.Errorf("record %d: key mismatch: got %v, want %v", i, decoded.Key, original.Key)
				}
				if !bytesEquivalent(original.Value, decoded.Value) {
					t.Errorf("record %d: value mismatch: got %v, want %v", i, decoded.Value, original.Value)
				}
			}
		})
	}
}

// bytesEquivalent treats nil and empty slices as equal; JSON and msgpack do
// not preserve the distinction.
func bytesEquivalent(a, b []byte) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// TestSerializerIDsAreStable guards the on-disk header ids
func TestSerializerIDsAreStable(t *testing.T) {
	if NewBinarySerializer().ID() != 1 {
		t.Error("binary serializer id changed")
	}
	if NewMsgpackSerializer().ID() != 2 {
		t.Error("msgpack serializer id changed")
	}
	if NewJSONSerializer().ID() != 3 {
		t.Error("json serializer id changed")
	}
}

// TestSerializerForRejectsUnknownID tests header validation
func TestSerializerForRejectsUnknownID(t *testing.T) {
	for _, factory := range testSerializers {
		if _, err := serializerFor(factory().ID()); err != nil {
			t.Errorf("known id rejected: %v", err)
		}
	}
	if _, err := serializerFor(200); err == nil {
		t.Error("expected error for unknown serializer id")
	}
}

// TestBinaryDeserializeTruncated tests that truncated input fails cleanly
func TestBinaryDeserializeTruncated(t *testing.T) {
	ser := NewBinarySerializer()

	data, err := ser.Serialize(Record{Key: []byte("key"), Value: []byte("value")})
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	for cut := 0; cut < len(data); cut++ {
		var rec Record
		if err := ser.Deserialize(data[:cut], &rec); err == nil && cut < len(data) {
			// A zero-length prefix of a flagged record must not decode
			// to the full record.
			if bytesEquivalent(rec.Key, []byte("key")) && bytesEquivalent(rec.Value, []byte("value")) {
				t.Errorf("truncated input at %d decoded to the complete record", cut)
			}
		}
	}
}
