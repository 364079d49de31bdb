// Package ordkey provides an order-preserving binary codec: encode typed
// values into byte sequences whose unsigned lexicographic order matches the
// value's natural order, for use as keys in ordered byte-string key-value
// stores (LSM-tree engines, range-scanned tables, sorted sets).
//
// Decoding a key requires the schema.Schema used to encode it — ordkey
// writes no type tags to the wire, so two different schemas can produce
// identical bytes for different values.
//
// # Core Features
//
//   - Fixed-width integers, big-endian with sign-bit flip for signed types
//   - Order-preserving variable-length integers for platform-width int/uint
//   - Order-preserving IEEE-754 float transform, including -0.0/+0.0 and ±Inf
//   - UTF-8 strings and characters, self-synchronizing with no length prefix
//   - Tuples/records, options, and append-only tagged-sum variants
//   - Reflection-based schema derivation from Go struct tags
//   - A companion value-side blob store (compression, not order-preserving)
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/ordkey"
//	    "github.com/arloliu/ordkey/schema"
//	)
//
//	s := schema.Tuple(schema.String(), schema.U32())
//	key, _ := ordkey.Encode([]any{"us-east", uint32(7)}, s)
//	// key sorts correctly alongside every other key encoded from s.
//
//	v, _ := ordkey.Decode(key, s)
//	fields := v.([]any) // []any{"us-east", uint32(7)}
//
// Deriving a schema from a Go type instead of building one by hand:
//
//	type Event struct {
//	    Region string
//	    Seq    uint32
//	}
//	s, _ := schema.Of(reflect.TypeOf(Event{}))
//
// # Package Structure
//
// This package is a thin convenience wrapper around codec.Encoder and
// codec.Decoder. To set codec options, construct a codec.Encoder/
// codec.Decoder directly. Either way, each encode call draws its write
// buffer from the same shared pool.
package ordkey

import (
	"github.com/arloliu/ordkey/codec"
	"github.com/arloliu/ordkey/internal/fingerprint"
	"github.com/arloliu/ordkey/schema"
)

// Encode encodes v against s using a fresh Encoder with default options.
func Encode(v any, s schema.Schema) ([]byte, error) {
	enc, err := codec.NewEncoder()
	if err != nil {
		return nil, err
	}

	return enc.Encode(v, s)
}

// Decode decodes data against s using a fresh Decoder with default options.
func Decode(data []byte, s schema.Schema) (any, error) {
	dec, err := codec.NewDecoder()
	if err != nil {
		return nil, err
	}

	return dec.Decode(data, s)
}

// Compatible reports whether newSchema is a valid evolution of oldSchema.
// When both are Variant schemas, every case of oldSchema must appear
// unchanged, in the same order, at the front of newSchema's cases, and
// newSchema may append further cases. Any other schema, including a Tuple
// that contains a Variant, is compatible only if it is identical. A store that recorded oldSchema when it wrote
// its keys can call this before switching readers and writers over to
// newSchema, to confirm the change won't misinterpret already-written keys.
func Compatible(oldSchema, newSchema schema.Schema) bool {
	return fingerprint.Compatible(oldSchema, newSchema)
}
