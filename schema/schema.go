// Package schema is the external schema-description glue: a static
// description of a value's shape, built either by hand with the
// constructors below or derived from a Go type via Of.
//
// A Schema carries no behavior of its own — codec.Encoder and
// codec.Decoder are the schema driver that walks it, dispatching to the
// primitive read/write calls in wire/.
package schema

import (
	"fmt"

	"github.com/arloliu/ordkey/errs"
)

// Kind identifies the shape a Schema describes.
type Kind int

// The primitive and composite kinds a Schema can describe.
const (
	KindBool Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindUint // platform-width unsigned, varint-encoded
	KindInt  // platform-width signed, varint-encoded
	KindF32
	KindF64
	KindChar
	KindString
	KindBytes // terminal-position-only raw byte sequence
	KindTuple
	KindOption
	KindVariant
	KindSeq // terminal-position-only dynamic-length sequence
)

func (k Kind) String() string {
	names := [...]string{
		"Bool", "U8", "U16", "U32", "U64", "I8", "I16", "I32", "I64",
		"Uint", "Int", "F32", "F64", "Char", "String", "Bytes",
		"Tuple", "Option", "Variant", "Seq",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}

	return names[k]
}

// Schema is an immutable description of a value's static type, sufficient
// to encode or decode it without any tags on the wire.
type Schema struct {
	kind     Kind
	fields   []Schema   // Tuple: ordered field types
	elem     *Schema    // Option/Seq: element type
	variants [][]Schema // Variant: ordered list of variants, each an ordered field list
}

// Kind returns the schema's top-level kind.
func (s Schema) Kind() Kind { return s.kind }

// Fields returns a Tuple schema's field types in declared order.
func (s Schema) Fields() []Schema { return s.fields }

// Elem returns an Option or Seq schema's element type.
func (s Schema) Elem() Schema { return *s.elem }

// Variants returns a Variant schema's ordered list of variant field lists.
func (s Schema) Variants() [][]Schema { return s.variants }

func prim(k Kind) Schema { return Schema{kind: k} }

// Bool, U8, U16, ... construct primitive schemas.
func Bool() Schema   { return prim(KindBool) }
func U8() Schema     { return prim(KindU8) }
func U16() Schema    { return prim(KindU16) }
func U32() Schema    { return prim(KindU32) }
func U64() Schema    { return prim(KindU64) }
func I8() Schema     { return prim(KindI8) }
func I16() Schema    { return prim(KindI16) }
func I32() Schema    { return prim(KindI32) }
func I64() Schema    { return prim(KindI64) }
func Uint() Schema   { return prim(KindUint) }
func Int() Schema    { return prim(KindInt) }
func F32() Schema    { return prim(KindF32) }
func F64() Schema    { return prim(KindF64) }
func Char() Schema   { return prim(KindChar) }
func String() Schema { return prim(KindString) }
func Bytes() Schema  { return prim(KindBytes) }

// Tuple builds a Tuple (or record; the wire form is identical) schema from
// its field types in declared order.
func Tuple(fields ...Schema) Schema {
	return Schema{kind: KindTuple, fields: fields}
}

// Option builds an Option<elem> schema.
func Option(elem Schema) Schema {
	return Schema{kind: KindOption, elem: &elem}
}

// Seq builds a dynamic-length sequence schema. It has no order-preserving
// encoding of its own and is only usable as the terminal field of its
// enclosing composite; Validate enforces that.
func Seq(elem Schema) Schema {
	return Schema{kind: KindSeq, elem: &elem}
}

// Variant builds a tagged-sum schema from its variants' field lists, in
// declared (and therefore wire-stable) order. Appending a variant to the
// end of cases is the only backward-compatible evolution; removing,
// reordering, or retyping an existing case is not.
func Variant(cases ...[]Schema) Schema {
	return Schema{kind: KindVariant, variants: cases}
}

// Validate checks the structural invariant that Bytes and Seq may only
// appear as the last field of a Tuple or variant case. String is exempt —
// it always carries its own 0x00 terminator and may appear anywhere.
func Validate(s Schema) error {
	switch s.kind {
	case KindTuple:
		return validateFieldList(s.fields)
	case KindOption:
		return Validate(*s.elem)
	case KindSeq:
		return Validate(*s.elem)
	case KindVariant:
		for i, fields := range s.variants {
			if err := validateFieldList(fields); err != nil {
				return fmt.Errorf("variant %d: %w", i, err)
			}
		}

		return nil
	default:
		return nil
	}
}

func validateFieldList(fields []Schema) error {
	for i, f := range fields {
		if err := Validate(f); err != nil {
			return err
		}
		if i != len(fields)-1 && isSequenceLike(f.kind) {
			return fmt.Errorf("field %d (%s): %w", i, f.kind, errs.ErrNonTerminalSequence)
		}
	}

	return nil
}

func isSequenceLike(k Kind) bool {
	return k == KindBytes || k == KindSeq
}
