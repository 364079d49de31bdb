package store

import (
	"fmt"

	"github.com/arloliu/ordkey/internal/options"
)

type config struct {
	codecID CodecID
}

// Option configures a BlobStore.
type Option = options.Option[*config]

// WithCodec selects the compression backend a BlobStore uses for new
// blobs. Default is CodecZstd.
func WithCodec(id CodecID) Option {
	return options.NoError[*config](func(c *config) { c.codecID = id })
}

// BlobStore compresses and frames arbitrary value payloads into
// self-describing blobs, the companion to an ordkey-encoded key.
type BlobStore struct {
	codecID CodecID
	codec   Codec
}

// NewBlobStore returns a BlobStore configured by opts.
func NewBlobStore(opts ...Option) (*BlobStore, error) {
	cfg := &config{codecID: CodecZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := NewCodec(cfg.codecID)
	if err != nil {
		return nil, err
	}

	return &BlobStore{codecID: cfg.codecID, codec: codec}, nil
}

// Put compresses value and returns a framed blob: BlobHeader followed by
// the compressed payload.
func (s *BlobStore) Put(value []byte) ([]byte, error) {
	compressed, err := s.codec.Compress(value)
	if err != nil {
		return nil, fmt.Errorf("store: compress: %w", err)
	}

	header := BlobHeader{
		Codec:              s.codecID,
		UncompressedLength: uint32(len(value)),      //nolint:gosec
		CompressedLength:   uint32(len(compressed)), //nolint:gosec
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Get parses a blob produced by Put and returns its original value,
// decompressing with whichever codec the blob's header names — not
// necessarily the store's own configured codec, so a BlobStore can read
// blobs written by a store configured for a different backend.
func (s *BlobStore) Get(blob []byte) ([]byte, error) {
	header, err := ParseBlobHeader(blob)
	if err != nil {
		return nil, err
	}

	codec, err := NewCodec(header.Codec)
	if err != nil {
		return nil, err
	}

	payload := blob[HeaderSize:]
	if uint32(len(payload)) != header.CompressedLength { //nolint:gosec
		return nil, fmt.Errorf("store: blob: length mismatch: header says %d, got %d", header.CompressedLength, len(payload))
	}

	value, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("store: decompress: %w", err)
	}

	return value, nil
}
