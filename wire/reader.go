package wire

import (
	"unicode/utf8"

	"github.com/arloliu/ordkey/endian"
	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/floatkey"
	"github.com/arloliu/ordkey/varint"
)

// Reader walks a byte slice forward, one primitive at a time, mirroring
// Writer. It is single-pass and never seeks backward.
type Reader struct {
	data   []byte
	pos    int
	engine endian.Engine
}

// NewReader returns a Reader over data. data is not copied; the caller must
// not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, engine: endian.BigEndian()}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.data)
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errs.ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadBool decodes a boolean byte.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}

	return b[0] != 0, nil
}

// ReadU8 decodes an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadU16 decodes a big-endian unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadU32 decodes a big-endian unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadU64 decodes a big-endian unsigned 64-bit integer.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadI8 decodes a signed 8-bit integer, undoing the sign-bit flip.
func (r *Reader) ReadI8() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0] ^ 0x80), nil //nolint:gosec
}

// ReadI16 decodes a big-endian signed 16-bit integer, undoing the sign-bit
// flip.
func (r *Reader) ReadI16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return int16(r.engine.Uint16(b) ^ 0x8000), nil //nolint:gosec
}

// ReadI32 decodes a big-endian signed 32-bit integer, undoing the sign-bit
// flip.
func (r *Reader) ReadI32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b) ^ 0x8000_0000), nil //nolint:gosec
}

// ReadI64 decodes a big-endian signed 64-bit integer, undoing the sign-bit
// flip.
func (r *Reader) ReadI64() (int64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(b) ^ 0x8000_0000_0000_0000), nil //nolint:gosec
}

// ReadUint decodes a platform-width order-preserving unsigned
// variable-length integer.
func (r *Reader) ReadUint() (uint64, error) {
	v, n, ok := varint.ReadUint(r.data[r.pos:])
	if !ok {
		return 0, errs.ErrUnexpectedEOF
	}
	r.pos += n

	return v, nil
}

// ReadInt decodes a platform-width order-preserving signed variable-length
// integer.
func (r *Reader) ReadInt() (int64, error) {
	v, n, ok := varint.ReadInt(r.data[r.pos:])
	if !ok {
		return 0, errs.ErrUnexpectedEOF
	}
	r.pos += n

	return v, nil
}

// ReadVariantIndex decodes a tagged-sum variant index.
func (r *Reader) ReadVariantIndex() (int, error) {
	v, err := r.ReadUint()
	if err != nil {
		return 0, err
	}

	return int(v), nil //nolint:gosec
}

// ReadF32 decodes a binary32 float, undoing the order-preserving bit
// transform.
func (r *Reader) ReadF32() (float32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return floatkey.Decode32(r.engine.Uint32(b)), nil
}

// ReadF64 decodes a binary64 float, undoing the order-preserving bit
// transform.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return floatkey.Decode64(r.engine.Uint64(b)), nil
}

// runeLen returns the total byte length of the UTF-8 sequence starting with
// lead, or 0 if lead cannot start a valid sequence.
func runeLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// ReadChar decodes a single Unicode scalar value from its UTF-8 encoding,
// relying on UTF-8 being self-synchronizing to know how many bytes to
// consume.
func (r *Reader) ReadChar() (rune, error) {
	if r.AtEnd() {
		return 0, errs.ErrUnexpectedEOF
	}

	n := runeLen(r.data[r.pos])
	if n == 0 {
		return 0, errs.ErrInvalidUTF8
	}

	b, err := r.take(n)
	if err != nil {
		return 0, err
	}

	ru, size := utf8.DecodeRune(b)
	if size != n || (ru == utf8.RuneError && size == 1) {
		return 0, errs.ErrInvalidUTF8
	}

	return ru, nil
}

// ReadString decodes a UTF-8 string terminated by 0x00.
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	for {
		if r.AtEnd() {
			return "", errs.ErrUnexpectedEOF
		}
		if r.data[r.pos] == 0x00 {
			break
		}
		r.pos++
	}

	s := r.data[start:r.pos]
	r.pos++ // consume terminator

	if !utf8.Valid(s) {
		return "", errs.ErrInvalidUTF8
	}

	return string(s), nil
}

// ReadOption decodes an option's presence byte.
func (r *Reader) ReadOption() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.ErrInvalidOptionTag
	}
}

// ReadBytes consumes and returns every remaining byte. Only valid as the
// terminal field of a composite.
func (r *Reader) ReadBytes() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)

	return b
}
