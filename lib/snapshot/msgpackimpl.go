package snapshot

import "github.com/vmihailenco/msgpack/v5"

// NewMsgpackSerializer creates a new serializer using MessagePack encoding
func NewMsgpackSerializer() Serializer {
	return &msgpackSerializerImpl{}
}

// msgpackSerializerImpl implements the Serializer interface using MessagePack encoding
type msgpackSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see snapshot.Serializer)
// --------------------------------------------------------------------------

func (m msgpackSerializerImpl) ID() uint8 { return serializerMsgpack }

func (m msgpackSerializerImpl) Serialize(rec Record) ([]byte, error) {
	return msgpack.Marshal(rec)
}

func (m msgpackSerializerImpl) Deserialize(b []byte, rec *Record) error {
	return msgpack.Unmarshal(b, rec)
}
