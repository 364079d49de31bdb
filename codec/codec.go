// Package codec is the schema-driven encode/decode driver: it walks a
// schema.Schema and a matching Go value in lockstep, dispatching each field
// to the matching wire.Writer/wire.Reader primitive. The driver itself
// carries no byte-layout knowledge — that lives in wire, varint, and
// floatkey; codec is pure routing plus the composite framing rules (Tuple,
// Option, Variant, terminal Seq/Bytes).
package codec

import (
	"fmt"

	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/internal/options"
	"github.com/arloliu/ordkey/schema"
	"github.com/arloliu/ordkey/wire"
)

type config struct {
	strictUTF8 bool
}

// Option configures an Encoder or Decoder.
type Option = options.Option[*config]

// WithStrictUTF8 controls whether String/Char fields reject invalid UTF-8
// at encode time (default: always on — invalid UTF-8 can never be encoded
// into a value that round-trips, so this option currently has no effect and
// exists for forward compatibility with a future relaxed mode).
func WithStrictUTF8(strict bool) Option {
	return options.NoError[*config](func(c *config) { c.strictUTF8 = strict })
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{strictUTF8: true}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Encoder encodes values against a schema.Schema.
type Encoder struct {
	cfg *config
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode validates s and encodes v against it, returning the encoded bytes.
func (e *Encoder) Encode(v any, s schema.Schema) ([]byte, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}

	w := wire.NewWriter()
	defer w.Release()

	if err := writeValue(w, v, s); err != nil {
		return nil, err
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// Decoder decodes values against a schema.Schema.
type Decoder struct {
	cfg *config
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg}, nil
}

// Decode validates s and decodes data against it.
func (d *Decoder) Decode(data []byte, s schema.Schema) (any, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}

	r := wire.NewReader(data)
	v, err := readValue(r, s)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func writeValue(w *wire.Writer, v any, s schema.Schema) error {
	switch s.Kind() {
	case schema.KindBool:
		b, ok := v.(bool)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteBool(b)

		return nil
	case schema.KindU8:
		n, ok := v.(uint8)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteU8(n)

		return nil
	case schema.KindU16:
		n, ok := v.(uint16)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteU16(n)

		return nil
	case schema.KindU32:
		n, ok := v.(uint32)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteU32(n)

		return nil
	case schema.KindU64:
		n, ok := v.(uint64)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteU64(n)

		return nil
	case schema.KindI8:
		n, ok := v.(int8)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteI8(n)

		return nil
	case schema.KindI16:
		n, ok := v.(int16)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteI16(n)

		return nil
	case schema.KindI32:
		n, ok := v.(int32)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteI32(n)

		return nil
	case schema.KindI64:
		n, ok := v.(int64)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteI64(n)

		return nil
	case schema.KindUint:
		n, ok := v.(uint64)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteUint(n)

		return nil
	case schema.KindInt:
		n, ok := v.(int64)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteInt(n)

		return nil
	case schema.KindF32:
		n, ok := v.(float32)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteF32(n)

		return nil
	case schema.KindF64:
		n, ok := v.(float64)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteF64(n)

		return nil
	case schema.KindChar:
		r, ok := v.(rune)
		if !ok {
			return typeErr(s, v)
		}

		return w.WriteChar(r)
	case schema.KindString:
		str, ok := v.(string)
		if !ok {
			return typeErr(s, v)
		}

		return w.WriteString(str)
	case schema.KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return typeErr(s, v)
		}
		w.WriteBytes(b)

		return nil
	case schema.KindTuple:
		return writeTuple(w, v, s)
	case schema.KindOption:
		return writeOption(w, v, s)
	case schema.KindVariant:
		return writeVariant(w, v, s)
	case schema.KindSeq:
		return writeSeq(w, v, s)
	default:
		return fmt.Errorf("codec: encode %s: %w", s.Kind(), errs.ErrUnsupported)
	}
}

func writeTuple(w *wire.Writer, v any, s schema.Schema) error {
	vals, ok := v.([]any)
	fields := s.Fields()
	if !ok || len(vals) != len(fields) {
		return typeErr(s, v)
	}
	for i, f := range fields {
		if err := writeValue(w, vals[i], f); err != nil {
			return fmt.Errorf("codec: tuple field %d: %w", i, err)
		}
	}

	return nil
}

func writeOption(w *wire.Writer, v any, s schema.Schema) error {
	if v == nil {
		w.WriteOption(false)

		return nil
	}
	w.WriteOption(true)

	return writeValue(w, v, s.Elem())
}

func writeVariant(w *wire.Writer, v any, s schema.Schema) error {
	variant, ok := v.(Variant)
	if !ok {
		return typeErr(s, v)
	}
	variants := s.Variants()
	if variant.Index < 0 || variant.Index >= len(variants) {
		return fmt.Errorf("codec: variant index %d: %w", variant.Index, errs.ErrUnknownVariant)
	}

	fields := variants[variant.Index]
	if len(variant.Fields) != len(fields) {
		return typeErr(s, v)
	}

	w.WriteVariantIndex(variant.Index)
	for i, f := range fields {
		if err := writeValue(w, variant.Fields[i], f); err != nil {
			return fmt.Errorf("codec: variant %d field %d: %w", variant.Index, i, err)
		}
	}

	return nil
}

func writeSeq(w *wire.Writer, v any, s schema.Schema) error {
	vals, ok := v.([]any)
	if !ok {
		return typeErr(s, v)
	}
	elem := s.Elem()
	for i, item := range vals {
		if err := writeValue(w, item, elem); err != nil {
			return fmt.Errorf("codec: seq element %d: %w", i, err)
		}
	}

	return nil
}

func readValue(r *wire.Reader, s schema.Schema) (any, error) {
	switch s.Kind() {
	case schema.KindBool:
		return r.ReadBool()
	case schema.KindU8:
		return r.ReadU8()
	case schema.KindU16:
		return r.ReadU16()
	case schema.KindU32:
		return r.ReadU32()
	case schema.KindU64:
		return r.ReadU64()
	case schema.KindI8:
		return r.ReadI8()
	case schema.KindI16:
		return r.ReadI16()
	case schema.KindI32:
		return r.ReadI32()
	case schema.KindI64:
		return r.ReadI64()
	case schema.KindUint:
		return r.ReadUint()
	case schema.KindInt:
		return r.ReadInt()
	case schema.KindF32:
		return r.ReadF32()
	case schema.KindF64:
		return r.ReadF64()
	case schema.KindChar:
		return r.ReadChar()
	case schema.KindString:
		return r.ReadString()
	case schema.KindBytes:
		return r.ReadBytes(), nil
	case schema.KindTuple:
		return readTuple(r, s)
	case schema.KindOption:
		return readOption(r, s)
	case schema.KindVariant:
		return readVariant(r, s)
	case schema.KindSeq:
		return readSeq(r, s)
	default:
		return nil, fmt.Errorf("codec: decode %s: %w", s.Kind(), errs.ErrUnsupported)
	}
}

func readTuple(r *wire.Reader, s schema.Schema) (any, error) {
	fields := s.Fields()
	vals := make([]any, len(fields))
	for i, f := range fields {
		v, err := readValue(r, f)
		if err != nil {
			return nil, fmt.Errorf("codec: tuple field %d: %w", i, err)
		}
		vals[i] = v
	}

	return vals, nil
}

func readOption(r *wire.Reader, s schema.Schema) (any, error) {
	present, err := r.ReadOption()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil //nolint:nilnil
	}

	return readValue(r, s.Elem())
}

func readVariant(r *wire.Reader, s schema.Schema) (any, error) {
	idx, err := r.ReadVariantIndex()
	if err != nil {
		return nil, err
	}
	variants := s.Variants()
	if idx < 0 || idx >= len(variants) {
		return nil, fmt.Errorf("codec: variant index %d: %w", idx, errs.ErrUnknownVariant)
	}

	fields := variants[idx]
	vals := make([]any, len(fields))
	for i, f := range fields {
		v, err := readValue(r, f)
		if err != nil {
			return nil, fmt.Errorf("codec: variant %d field %d: %w", idx, i, err)
		}
		vals[i] = v
	}

	return Variant{Index: idx, Fields: vals}, nil
}

// readSeq decodes a terminal-position sequence by consuming elements until
// the reader is exhausted at an element boundary — the one place reaching
// the end of input is a clean signal rather than an error.
func readSeq(r *wire.Reader, s schema.Schema) (any, error) {
	elem := s.Elem()
	var vals []any
	for !r.AtEnd() {
		v, err := readValue(r, elem)
		if err != nil {
			return nil, fmt.Errorf("codec: seq element %d: %w", len(vals), err)
		}
		vals = append(vals, v)
	}

	return vals, nil
}

func typeErr(s schema.Schema, v any) error {
	return fmt.Errorf("codec: value %T does not match schema %s: %w", v, s.Kind(), errs.ErrSchemaMismatch)
}
