package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWriteByte(0x01)
	bb.MustWrite([]byte{0x02, 0x03, 0x04, 0x05})

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, bb.Bytes())
	require.Equal(t, 5, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 3)
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Grow(8)
	bb.SetLength(5)
	require.Equal(t, 5, bb.Len())
}

func TestByteBuffer_SetLength_PanicsOutOfRange(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3, 4})
	require.Equal(t, []byte{2, 3}, bb.Slice(1, 3))
}

func TestGetPut_ResetsBuffer(t *testing.T) {
	bb := Get()
	bb.MustWrite([]byte{1, 2, 3})
	Put(bb)

	again := Get()
	require.Equal(t, 0, again.Len())
	Put(again)
}

func TestPut_DiscardsOversizedBuffer(t *testing.T) {
	p := NewByteBufferPool(4, 8)
	bb := NewByteBuffer(4)
	bb.Grow(100)
	require.Greater(t, bb.Cap(), 8)

	p.Put(bb) // should be discarded, not pooled
	fresh := p.Get()
	require.LessOrEqual(t, fresh.Cap(), 8)
}
