//go:build !nobuild

package store

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools decoders; klauspost/compress/zstd is designed for
// decoder reuse after a warmup, so the store hands blobs through a shared
// pool instead of allocating one per call.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(false))
		if err != nil {
			panic(fmt.Sprintf("store: failed to create zstd decoder: %v", err))
		}

		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderCRC(false))
		if err != nil {
			panic(fmt.Sprintf("store: failed to create zstd encoder: %v", err))
		}

		return e
	},
}

// ZstdCodec compresses value blobs with Zstandard.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a pure-Go (non-cgo) Zstandard codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("store: zstd decompress: %w", err)
	}

	return out, nil
}
