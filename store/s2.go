package store

import "github.com/klauspost/compress/s2"

// S2Codec compresses value blobs with S2, klauspost's faster/lighter
// Snappy-compatible alternative to Zstandard.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns an S2 codec.
func NewS2Codec() S2Codec { return S2Codec{} }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
