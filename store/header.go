package store

import (
	"fmt"

	"github.com/arloliu/ordkey/endian"
)

// blobMagic identifies an ordkey value blob at the start of its header.
const blobMagic uint32 = 0x4F524B31 // "ORK1"

// HeaderSize is the fixed size in bytes of a BlobHeader, mirroring the
// donor's fixed-size section headers (section.NumericHeader.HeaderSize).
const HeaderSize = 16

// BlobHeader is the fixed 16-byte header prefixed to every blob that
// BlobStore.Put returns:
// magic (4), codec id (1), reserved (3), uncompressed length (4),
// compressed length (4).
type BlobHeader struct {
	Codec              CodecID
	UncompressedLength uint32
	CompressedLength   uint32
}

// Bytes serializes the header.
func (h BlobHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	e := endian.BigEndian()

	e.PutUint32(b[0:4], blobMagic)
	b[4] = byte(h.Codec)
	// b[5:8] reserved, left zero
	e.PutUint32(b[8:12], h.UncompressedLength)
	e.PutUint32(b[12:16], h.CompressedLength)

	return b
}

// ParseBlobHeader parses a BlobHeader from the front of data.
func ParseBlobHeader(data []byte) (BlobHeader, error) {
	if len(data) < HeaderSize {
		return BlobHeader{}, fmt.Errorf("store: blob header: need %d bytes, got %d", HeaderSize, len(data))
	}

	e := endian.BigEndian()
	if got := e.Uint32(data[0:4]); got != blobMagic {
		return BlobHeader{}, fmt.Errorf("store: blob header: bad magic %#x", got)
	}

	return BlobHeader{
		Codec:              CodecID(data[4]),
		UncompressedLength: e.Uint32(data[8:12]),
		CompressedLength:   e.Uint32(data[12:16]),
	}, nil
}
