package schema

import (
	"testing"

	"github.com/arloliu/ordkey/errs"
	"github.com/stretchr/testify/require"
)

func TestValidate_BytesOnlyTerminal(t *testing.T) {
	require.NoError(t, Validate(Tuple(U8(), Bytes())))
	require.ErrorIs(t, Validate(Tuple(Bytes(), U8())), errs.ErrNonTerminalSequence)
}

func TestValidate_SeqOnlyTerminal(t *testing.T) {
	require.NoError(t, Validate(Tuple(String(), Seq(U32()))))
	require.ErrorIs(t, Validate(Tuple(Seq(U32()), String())), errs.ErrNonTerminalSequence)
}

func TestValidate_StringAnywhere(t *testing.T) {
	require.NoError(t, Validate(Tuple(String(), String(), U8())))
}

func TestValidate_NestedInOption(t *testing.T) {
	require.ErrorIs(t, Validate(Option(Tuple(Bytes(), U8()))), errs.ErrNonTerminalSequence)
}

func TestValidate_VariantCases(t *testing.T) {
	v := Variant(
		[]Schema{U8()},
		[]Schema{Bytes(), U8()},
	)
	err := Validate(v)
	require.ErrorIs(t, err, errs.ErrNonTerminalSequence)
}

func TestVariantAppendOnlyShape(t *testing.T) {
	v1 := Variant([]Schema{U8()}, []Schema{String()})
	v2 := Variant([]Schema{U8()}, []Schema{String()}, []Schema{Bytes()})

	require.Len(t, v1.Variants(), 2)
	require.Len(t, v2.Variants(), 3)
	require.Equal(t, v1.Variants()[0], v2.Variants()[0])
	require.Equal(t, v1.Variants()[1], v2.Variants()[1])
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Bool", KindBool.String())
	require.Equal(t, "Seq", KindSeq.String())
	require.Equal(t, "Unknown", Kind(999).String())
}

func TestOptionElem(t *testing.T) {
	s := Option(U32())
	require.Equal(t, KindOption, s.Kind())
	require.Equal(t, KindU32, s.Elem().Kind())
}
