package varint

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendUint_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		v    uint64
		want []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"2^4", 1 << 4, []byte{0x10, 0x10}},
		{"2^60", 1 << 60, []byte{0x80, 0x10, 0, 0, 0, 0, 0, 0, 0}},
		{"max", math.MaxUint64, []byte{0x80, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AppendUint(nil, c.v)
			require.Equal(t, c.want, got)
			require.Equal(t, len(c.want), SizeUint(c.v))
		})
	}
}

func TestAppendInt_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		v    int64
		want []byte
	}{
		{"zero", 0, []byte{0x80}},
		{"minus_one", -1, []byte{0x7F}},
		{"minus_2^3", -8, []byte{0x78}},
		{"2^3", 8, []byte{0x88, 0x08}},
		{"min", math.MinInt64, []byte{0x3F, 0x80, 0, 0, 0, 0, 0, 0, 0}},
		{"max", math.MaxInt64, []byte{0xC0, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AppendInt(nil, c.v)
			require.Equal(t, c.want, got)
			require.Equal(t, len(c.want), SizeInt(c.v))
		})
	}
}

func TestRoundTripUint(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 4096; i++ {
		v := r.Uint64()
		buf := AppendUint(nil, v)
		got, n, ok := ReadUint(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestRoundTripInt(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 4096; i++ {
		v := int64(r.Uint64())
		buf := AppendInt(nil, v)
		got, n, ok := ReadInt(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestReadUint_TruncatedInput(t *testing.T) {
	buf := AppendUint(nil, 1<<40)
	for i := 0; i < len(buf); i++ {
		_, _, ok := ReadUint(buf[:i])
		require.False(t, ok, "expected truncation at %d bytes to fail", i)
	}
}

func TestReadInt_TruncatedInput(t *testing.T) {
	buf := AppendInt(nil, -(1 << 40))
	for i := 0; i < len(buf); i++ {
		_, _, ok := ReadInt(buf[:i])
		require.False(t, ok, "expected truncation at %d bytes to fail", i)
	}
}

func TestUintOrderPreservation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 2048; i++ {
		a, b := r.Uint64(), r.Uint64()
		ea, eb := AppendUint(nil, a), AppendUint(nil, b)

		switch {
		case a < b:
			require.Negative(t, lexCompare(ea, eb))
		case a > b:
			require.Positive(t, lexCompare(ea, eb))
		default:
			require.Equal(t, 0, lexCompare(ea, eb))
		}
	}
}

func TestIntOrderPreservation(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 2048; i++ {
		a, b := int64(r.Uint64()), int64(r.Uint64())
		ea, eb := AppendInt(nil, a), AppendInt(nil, b)

		switch {
		case a < b:
			require.Negative(t, lexCompare(ea, eb))
		case a > b:
			require.Positive(t, lexCompare(ea, eb))
		default:
			require.Equal(t, 0, lexCompare(ea, eb))
		}
	}
}

func TestUintBoundaries(t *testing.T) {
	boundaries := []uint{4, 12, 20, 28, 36, 44, 52, 60}
	for _, k := range boundaries {
		below := uint64(1)<<k - 1
		at := uint64(1) << k

		eBelow := AppendUint(nil, below)
		eAt := AppendUint(nil, at)

		require.Less(t, len(eBelow), len(eAt), "boundary 2^%d should grow the encoded length", k)
		require.Negative(t, lexCompare(eBelow, eAt))
	}
}

func TestIntBoundaries(t *testing.T) {
	boundaries := []uint{3, 11, 19, 27, 35, 43, 51, 59}
	for _, k := range boundaries {
		belowPos := int64(1)<<k - 1
		atPos := int64(1) << k
		require.Negative(t, lexCompare(AppendInt(nil, belowPos), AppendInt(nil, atPos)))

		atNeg := -(int64(1) << k)
		belowNeg := -(int64(1)<<k - 1)
		require.Negative(t, lexCompare(AppendInt(nil, atNeg), AppendInt(nil, belowNeg)))
	}
}

func lexCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return len(a) - len(b)
}
