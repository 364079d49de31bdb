package codec

import (
	"math"
	"testing"

	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/schema"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v any, s schema.Schema) any {
	t.Helper()
	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode(v, s)
	require.NoError(t, err)

	dec, err := NewDecoder()
	require.NoError(t, err)
	got, err := dec.Decode(data, s)
	require.NoError(t, err)

	return got
}

func TestRoundTrip_Primitives(t *testing.T) {
	require.Equal(t, uint32(42), roundTrip(t, uint32(42), schema.U32()))
	require.Equal(t, int64(-17), roundTrip(t, int64(-17), schema.I64()))
	require.Equal(t, "fizzbuzz", roundTrip(t, "fizzbuzz", schema.String()))
	require.Equal(t, true, roundTrip(t, true, schema.Bool()))
	require.InDelta(t, math.Pi, roundTrip(t, math.Pi, schema.F64()).(float64), 0)
}

func TestRoundTrip_Tuple(t *testing.T) {
	s := schema.Tuple(schema.U8(), schema.String())
	got := roundTrip(t, []any{uint8(42), "fizz"}, s)
	require.Equal(t, []any{uint8(42), "fizz"}, got)
}

func TestEncode_TupleKnownVector(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode([]any{uint8(42), "fizz"}, schema.Tuple(schema.U8(), schema.String()))
	require.NoError(t, err)
	require.Equal(t, []byte{0x2A, 0x66, 0x69, 0x7A, 0x7A, 0x00}, data)
}

func TestRoundTrip_Option(t *testing.T) {
	s := schema.Option(schema.U8())
	require.Equal(t, uint8(7), roundTrip(t, uint8(7), s))
	require.Nil(t, roundTrip(t, nil, s))
}

func TestRoundTrip_Variant(t *testing.T) {
	s := schema.Variant(
		[]schema.Schema{},
		[]schema.Schema{schema.U32()},
	)
	got := roundTrip(t, Variant{Index: 1, Fields: []any{uint32(9)}}, s)
	require.Equal(t, Variant{Index: 1, Fields: []any{uint32(9)}}, got)

	got0 := roundTrip(t, Variant{Index: 0, Fields: []any{}}, s)
	require.Equal(t, Variant{Index: 0, Fields: []any{}}, got0)
}

func TestRoundTrip_Seq(t *testing.T) {
	s := schema.Tuple(schema.U8(), schema.Seq(schema.U32()))
	got := roundTrip(t, []any{uint8(1), []any{uint32(10), uint32(20), uint32(30)}}, s)
	require.Equal(t, []any{uint8(1), []any{uint32(10), uint32(20), uint32(30)}}, got)
}

func TestRoundTrip_EmptySeq(t *testing.T) {
	s := schema.Seq(schema.U8())
	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode([]any(nil), s)
	require.NoError(t, err)
	require.Empty(t, data)

	dec, err := NewDecoder()
	require.NoError(t, err)
	got, err := dec.Decode(data, s)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRoundTrip_Bytes(t *testing.T) {
	s := schema.Tuple(schema.U8(), schema.Bytes())
	got := roundTrip(t, []any{uint8(7), []byte{1, 2, 3}}, s)
	require.Equal(t, []any{uint8(7), []byte{1, 2, 3}}, got)
}

func TestEncode_TypeMismatch(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	_, err = enc.Encode("not a uint8", schema.U8())
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestEncode_InvalidSchemaRejected(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	_, err = enc.Encode(nil, schema.Tuple(schema.Bytes(), schema.U8()))
	require.ErrorIs(t, err, errs.ErrNonTerminalSequence)
}

func TestDecode_UnknownVariantIndex(t *testing.T) {
	s := schema.Variant([]schema.Schema{schema.U8()})
	dec, err := NewDecoder()
	require.NoError(t, err)
	_, err = dec.Decode([]byte{0x05}, s)
	require.ErrorIs(t, err, errs.ErrUnknownVariant)
}

func TestVariantAppendCompatibility(t *testing.T) {
	oldSchema := schema.Variant([]schema.Schema{schema.U8()}, []schema.Schema{schema.String()})
	newSchema := schema.Variant([]schema.Schema{schema.U8()}, []schema.Schema{schema.String()}, []schema.Schema{schema.Bytes()})

	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode(Variant{Index: 0, Fields: []any{uint8(3)}}, oldSchema)
	require.NoError(t, err)

	dec, err := NewDecoder()
	require.NoError(t, err)
	got, err := dec.Decode(data, newSchema)
	require.NoError(t, err)
	require.Equal(t, Variant{Index: 0, Fields: []any{uint8(3)}}, got)
}
