package schema

import (
	"fmt"
	"reflect"

	"github.com/arloliu/ordkey/internal/options"
)

// deriveConfig holds Of's configuration, set via functional options the
// way internal/options configures every other option-driven type in this
// module (codec.Encoder, codec.Decoder, store.BlobStore).
type deriveConfig struct {
	tagKey string
}

// DeriveOption configures a call to Of.
type DeriveOption = options.Option[*deriveConfig]

// WithTagKey overrides the struct tag key Of inspects for field overrides
// (default "ordkey").
func WithTagKey(key string) DeriveOption {
	return options.NoError[*deriveConfig](func(c *deriveConfig) { c.tagKey = key })
}

// Of derives a Schema from a Go type by reflection. It is schema-reflection
// glue that drives the codec from user-defined record types — not part of
// the core codec, but the common way a caller gets a Schema without writing
// one by hand.
//
// Supported types: bool; all fixed-width integer types; int and uint
// (mapped to the platform-width varint kinds); float32/float64; string;
// []byte (mapped to the terminal-only Bytes kind); a pointer to any
// supported type (mapped to Option); a slice of any supported type other
// than byte (mapped to the terminal-only Seq kind); and structs, whose
// exported fields become a Tuple in declaration order.
//
// A struct field tagged `ordkey:"char"` on an int32 field is derived as
// Char instead of I32 — Go has no distinct rune type, so the tag is the
// only way to request the UTF-8 byte-sequence encoding instead of the
// fixed-width signed-integer one.
//
// Of cannot derive a Variant: Go has no tagged-union type for it to
// reflect over. Build variant schemas by hand with schema.Variant.
func Of(t reflect.Type, opts ...DeriveOption) (Schema, error) {
	cfg := &deriveConfig{tagKey: "ordkey"}
	if err := options.Apply(cfg, opts...); err != nil {
		return Schema{}, err
	}

	return derive(t, cfg, false)
}

// OfValue is a convenience wrapper around Of for a value instead of a
// reflect.Type.
func OfValue(v any, opts ...DeriveOption) (Schema, error) {
	return Of(reflect.TypeOf(v), opts...)
}

func derive(t reflect.Type, cfg *deriveConfig, asChar bool) (Schema, error) {
	switch t.Kind() {
	case reflect.Bool:
		return Bool(), nil
	case reflect.Uint8:
		return U8(), nil
	case reflect.Uint16:
		return U16(), nil
	case reflect.Uint32:
		return U32(), nil
	case reflect.Uint64:
		return U64(), nil
	case reflect.Uint:
		return Uint(), nil
	case reflect.Int8:
		return I8(), nil
	case reflect.Int16:
		return I16(), nil
	case reflect.Int32:
		if asChar {
			return Char(), nil
		}

		return I32(), nil
	case reflect.Int64:
		return I64(), nil
	case reflect.Int:
		return Int(), nil
	case reflect.Float32:
		return F32(), nil
	case reflect.Float64:
		return F64(), nil
	case reflect.String:
		return String(), nil
	case reflect.Ptr:
		elem, err := derive(t.Elem(), cfg, false)
		if err != nil {
			return Schema{}, err
		}

		return Option(elem), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Bytes(), nil
		}
		elem, err := derive(t.Elem(), cfg, false)
		if err != nil {
			return Schema{}, err
		}

		return Seq(elem), nil
	case reflect.Struct:
		return deriveStruct(t, cfg)
	default:
		return Schema{}, fmt.Errorf("schema: unsupported type %s", t)
	}
}

func deriveStruct(t reflect.Type, cfg *deriveConfig) (Schema, error) {
	fields := make([]Schema, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get(cfg.tagKey)
		if tag == "-" {
			continue
		}

		fs, err := derive(sf.Type, cfg, tag == "char")
		if err != nil {
			return Schema{}, fmt.Errorf("schema: field %s: %w", sf.Name, err)
		}

		fields = append(fields, fs)
	}

	return Tuple(fields...), nil
}
