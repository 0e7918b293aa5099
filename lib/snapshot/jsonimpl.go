package snapshot

import "encoding/json"

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() Serializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the Serializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see snapshot.Serializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) ID() uint8 { return serializerJSON }

func (j jsonSerializerImpl) Serialize(rec Record) ([]byte, error) {
	return json.Marshal(rec)
}

func (j jsonSerializerImpl) Deserialize(b []byte, rec *Record) error {
	return json.Unmarshal(b, rec)
}
