//go:build nobuild

package store

import "github.com/valyala/gozstd"

// ZstdCodec compresses value blobs with cgo-backed Zstandard, the donor's
// compress/zstd_cgo.go alternative backend — gated the same way, off by
// default, opted into with the "nobuild" build tag flip documented there.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns the cgo-backed Zstandard codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
