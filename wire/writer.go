// Package wire implements the buffered byte-stream adapters and primitive
// read/write operations the schema driver (codec package) dispatches into.
// Every method here corresponds to one byte layout of the order-preserving
// wire format; the schema driver is pure routing, all bit-level work lives
// here and in varint/ and floatkey/.
package wire

import (
	"unicode/utf8"

	"github.com/arloliu/ordkey/endian"
	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/floatkey"
	"github.com/arloliu/ordkey/internal/pool"
	"github.com/arloliu/ordkey/varint"
)

// Writer accumulates the encoding of a single top-level value into a
// pooled, growable buffer. A Writer is not safe for concurrent use; each
// encode call owns one for its duration.
type Writer struct {
	buf     *pool.ByteBuffer
	engine  endian.Engine
	scratch [8]byte
}

// NewWriter returns a Writer backed by a buffer drawn from the package
// pool. Call Release when the writer's output has been copied out.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.Get(),
		engine: endian.BigEndian(),
	}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// writer's internal buffer and is only valid until the next Write call or
// Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Release returns the writer's buffer to the pool. The writer must not be
// used afterward.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.Put(w.buf)
		w.buf = nil
	}
}

// WriteBool encodes a boolean as a single byte.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.MustWriteByte(0x01)
	} else {
		w.buf.MustWriteByte(0x00)
	}
}

// WriteU8 encodes an unsigned 8-bit integer unchanged.
func (w *Writer) WriteU8(v uint8) {
	w.buf.MustWriteByte(v)
}

// WriteU16 encodes an unsigned 16-bit integer big-endian, unchanged.
func (w *Writer) WriteU16(v uint16) {
	w.engine.PutUint16(w.scratch[:2], v)
	w.buf.MustWrite(w.scratch[:2])
}

// WriteU32 encodes an unsigned 32-bit integer big-endian, unchanged.
func (w *Writer) WriteU32(v uint32) {
	w.engine.PutUint32(w.scratch[:4], v)
	w.buf.MustWrite(w.scratch[:4])
}

// WriteU64 encodes an unsigned 64-bit integer big-endian, unchanged.
func (w *Writer) WriteU64(v uint64) {
	w.engine.PutUint64(w.scratch[:8], v)
	w.buf.MustWrite(w.scratch[:8])
}

// WriteI8 encodes a signed 8-bit integer with its sign bit flipped, so
// unsigned byte order matches signed numeric order.
func (w *Writer) WriteI8(v int8) {
	w.buf.MustWriteByte(byte(v) ^ 0x80)
}

// WriteI16 encodes a signed 16-bit integer big-endian with its sign bit
// flipped.
func (w *Writer) WriteI16(v int16) {
	w.engine.PutUint16(w.scratch[:2], uint16(v)^0x8000)
	w.buf.MustWrite(w.scratch[:2])
}

// WriteI32 encodes a signed 32-bit integer big-endian with its sign bit
// flipped.
func (w *Writer) WriteI32(v int32) {
	w.engine.PutUint32(w.scratch[:4], uint32(v)^0x8000_0000)
	w.buf.MustWrite(w.scratch[:4])
}

// WriteI64 encodes a signed 64-bit integer big-endian with its sign bit
// flipped.
func (w *Writer) WriteI64(v int64) {
	w.engine.PutUint64(w.scratch[:8], uint64(v)^0x8000_0000_0000_0000)
	w.buf.MustWrite(w.scratch[:8])
}

// WriteUint encodes a platform-width unsigned integer as an order-preserving
// variable-length integer (see package varint).
func (w *Writer) WriteUint(v uint64) {
	w.buf.Grow(varint.SizeUint(v))
	b := varint.AppendUint(w.buf.Bytes(), v)
	w.buf.SetLength(len(b))
}

// WriteInt encodes a platform-width signed integer as an order-preserving
// variable-length integer (see package varint).
func (w *Writer) WriteInt(v int64) {
	w.buf.Grow(varint.SizeInt(v))
	b := varint.AppendInt(w.buf.Bytes(), v)
	w.buf.SetLength(len(b))
}

// WriteVariantIndex encodes a 0-based tagged-sum variant index as an
// unsigned variable-length integer.
func (w *Writer) WriteVariantIndex(idx int) {
	w.WriteUint(uint64(idx)) //nolint:gosec
}

// WriteF32 encodes a binary32 float using the order-preserving bit
// transform (see package floatkey).
func (w *Writer) WriteF32(v float32) {
	w.engine.PutUint32(w.scratch[:4], floatkey.Encode32(v))
	w.buf.MustWrite(w.scratch[:4])
}

// WriteF64 encodes a binary64 float using the order-preserving bit
// transform (see package floatkey).
func (w *Writer) WriteF64(v float64) {
	w.engine.PutUint64(w.scratch[:8], floatkey.Encode64(v))
	w.buf.MustWrite(w.scratch[:8])
}

// WriteChar encodes a Unicode scalar value as its UTF-8 byte sequence.
// UTF-8's self-synchronizing property is what lets the decoder recover a
// single character's byte length without a separate length prefix.
func (w *Writer) WriteChar(r rune) error {
	if !utf8.ValidRune(r) {
		return errs.ErrInvalidUTF8
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	w.buf.MustWrite(buf[:n])

	return nil
}

// WriteString encodes a UTF-8 string followed by a 0x00 terminator. The
// terminator is always emitted, even when the string is the last field of
// its composite, so the decoder's termination rule never depends on
// position.
func (w *Writer) WriteString(s string) error {
	if !utf8.ValidString(s) {
		return errs.ErrInvalidUTF8
	}

	w.buf.MustWrite([]byte(s))
	w.buf.MustWriteByte(0x00)

	return nil
}

// WriteOption encodes an option's presence byte: 0x00 for None, 0x01 for
// Some. The caller encodes the payload separately when present.
func (w *Writer) WriteOption(present bool) {
	w.WriteBool(present)
}

// WriteBytes appends raw bytes with no framing. Only valid as the terminal
// field of a composite — the schema driver is responsible for enforcing
// that, not this method.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.MustWrite(b)
}
