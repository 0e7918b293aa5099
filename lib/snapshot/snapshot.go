package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fastcoll/fastcoll/lib/collection"
	"github.com/golang/snappy"
)

const (
	magicNum      = "FASTCOL\x00" // File format identifier
	formatVersion = 1             // Current snapshot format version
)

// Options configures how a snapshot is written.
type Options struct {
	// Serializer frames the individual records; nil selects the binary
	// serializer.
	Serializer Serializer
	// Compress wraps the record stream in snappy framing.
	Compress bool
}

// DefaultOptions returns the default snapshot options: binary records with
// snappy compression.
func DefaultOptions() *Options {
	return &Options{
		Serializer: NewBinarySerializer(),
		Compress:   true,
	}
}

func (o *Options) normalize() *Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Serializer == nil {
		out.Serializer = NewBinarySerializer()
	}
	return &out
}

// Save writes every entry of m to w in the snapshot file format. The map is
// iterated exactly once; wrap it in a snapshot-isolated view when writers
// run concurrently.
func Save[K, V any](w io.Writer, m collection.Map[K, V], keyCodec Codec[K], valCodec Codec[V], opts *Options) error {
	o := opts.normalize()

	// Use a buffered writer for better performance
	bw := bufio.NewWriterSize(w, 1024*1024) // 1 MB buffer

	// Write file header
	if _, err := bw.WriteString(magicNum); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint8(formatVersion)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, o.Serializer.ID()); err != nil {
		return err
	}
	var compressed uint8
	if o.Compress {
		compressed = 1
	}
	if err := binary.Write(bw, binary.LittleEndian, compressed); err != nil {
		return err
	}

	// The header stays uncompressed so Load can parse it before selecting
	// the body reader; only the records run through snappy.
	var body io.Writer = bw
	var sw *snappy.Writer
	if o.Compress {
		sw = snappy.NewBufferedWriter(bw)
		body = sw
	}

	// Write total entry count
	if err := binary.Write(body, binary.LittleEndian, uint64(m.Size())); err != nil {
		return err
	}

	// Write records
	it := m.Iterator()
	for it.Next() {
		entry := it.Value()

		keyBytes, err := keyCodec.Marshal(entry.Key())
		if err != nil {
			return fmt.Errorf("encode key: %w", err)
		}
		valBytes, err := valCodec.Marshal(entry.Value())
		if err != nil {
			return fmt.Errorf("encode value: %w", err)
		}

		frame, err := o.Serializer.Serialize(Record{Key: keyBytes, Value: valBytes})
		if err != nil {
			return fmt.Errorf("serialize record: %w", err)
		}

		if err := binary.Write(body, binary.LittleEndian, uint32(len(frame))); err != nil {
			return err
		}
		if _, err := body.Write(frame); err != nil {
			return err
		}
	}

	if sw != nil {
		if err := sw.Close(); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a snapshot from r and puts every entry into m. Existing
// entries of m are kept; loaded entries overwrite on key collision. The
// serializer is selected from the file header, so Load accepts any format
// Save produces.
func Load[K, V any](r io.Reader, m collection.Map[K, V], keyCodec Codec[K], valCodec Codec[V]) error {
	// Use a buffered reader for better performance
	br := bufio.NewReaderSize(r, 1024*1024) // 1 MB buffer

	// Read and verify magic number
	magicBytes := make([]byte, len(magicNum))
	if _, err := io.ReadFull(br, magicBytes); err != nil {
		return err
	}
	if string(magicBytes) != magicNum {
		return fmt.Errorf("invalid file format: magic number mismatch")
	}

	// Read and verify version
	var version uint8
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return err
	}
	if int(version) != formatVersion {
		return fmt.Errorf("unsupported version: %d (expected %d)", version, formatVersion)
	}

	// Read serializer id and select the implementation
	var serializerID uint8
	if err := binary.Read(br, binary.LittleEndian, &serializerID); err != nil {
		return err
	}
	ser, err := serializerFor(serializerID)
	if err != nil {
		return err
	}

	// Read compression flag
	var compressed uint8
	if err := binary.Read(br, binary.LittleEndian, &compressed); err != nil {
		return err
	}

	var body io.Reader = br
	if compressed != 0 {
		body = snappy.NewReader(br)
	}

	// Read entry count
	var count uint64
	if err := binary.Read(body, binary.LittleEndian, &count); err != nil {
		return err
	}

	// Read records
	var frame []byte
	for i := uint64(0); i < count; i++ {
		var frameLen uint32
		if err := binary.Read(body, binary.LittleEndian, &frameLen); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		// Reuse the frame buffer across records
		if cap(frame) < int(frameLen) {
			frame = make([]byte, frameLen)
		} else {
			frame = frame[:frameLen]
		}
		if _, err := io.ReadFull(body, frame); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		// A fresh Record per entry: the decoded buffers may end up
		// retained inside the map (BytesCodec), so they must not be
		// reused across records.
		var rec Record
		if err := ser.Deserialize(frame, &rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		key, err := keyCodec.Unmarshal(rec.Key)
		if err != nil {
			return fmt.Errorf("record %d: decode key: %w", i, err)
		}
		val, err := valCodec.Unmarshal(rec.Value)
		if err != nil {
			return fmt.Errorf("record %d: decode value: %w", i, err)
		}

		m.Put(key, val)
	}

	return nil
}
