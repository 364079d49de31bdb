// Package store is ordkey's companion value-side blob store. Byte blobs and
// sequences have no order-preserving key encoding of their own; store is
// where the values an ordkey-encoded key points at live instead —
// compressed, framed with a small fixed header, with no ordering claim of
// its own.
package store

import "fmt"

// Codec compresses and decompresses a value blob. Mirrors the donor's
// compress.Codec pairing of Compressor and Decompressor into one interface.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CodecID identifies which Codec produced a blob, stored in its header so
// the blob is self-describing on disk.
type CodecID uint8

// The codec identifiers store.BlobHeader can carry.
const (
	CodecNone CodecID = iota + 1
	CodecZstd
	CodecS2
	CodecLZ4
)

func (c CodecID) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// NewCodec is a factory returning the Codec for id.
func NewCodec(id CodecID) (Codec, error) {
	switch id {
	case CodecNone:
		return NoOpCodec{}, nil
	case CodecZstd:
		return NewZstdCodec(), nil
	case CodecS2:
		return NewS2Codec(), nil
	case CodecLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("store: unknown codec id %d", id)
	}
}

// NoOpCodec stores blobs uncompressed; useful for tests and for payloads
// too small for compression to pay for itself.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
