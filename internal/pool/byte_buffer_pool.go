// Package pool provides a pooled, growable byte buffer for wire.Writer.
//
// ordkey keys are typically small (a handful of fixed-width fields plus a
// short string or two), so a single pool sized for that case is enough —
// unlike a columnar storage format juggling kilobyte-sized payloads, there
// is no separate "large blob" pool here.
package pool

import "sync"

// BufferDefaultSize is the capacity a pooled buffer starts with. Sized for
// the common case of a handful of fixed-width fields plus one or two short
// strings.
const BufferDefaultSize = 128

// BufferMaxThreshold is the capacity above which a returned buffer is
// discarded instead of pooled, so one oversized key doesn't permanently
// inflate the pool.
const BufferMaxThreshold = 1024 * 64

// ByteBuffer is a growable byte slice wrapper used as the backing store for
// wire.Writer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy: small buffers double their capacity (cheap amortized
// growth for the common small-key case); buffers already larger than
// BufferDefaultSize*4 grow by 25% to avoid over-allocating for
// occasional large keys.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := cap(bb.B)
	if growBy == 0 {
		growBy = BufferDefaultSize
	}
	if cap(bb.B) > 4*BufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers to minimize allocations across repeated
// encode calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(BufferDefaultSize, BufferMaxThreshold)

// Get retrieves a ByteBuffer from the default pool.
func Get() *ByteBuffer {
	return defaultPool.Get()
}

// Put returns a ByteBuffer to the default pool.
func Put(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
