// Package endian provides the byte order primitive ordkey's wire format is
// built on.
//
// Order preservation only holds for big-endian byte order: a big-endian
// unsigned integer's lexicographic byte order matches its numeric order,
// which is the entire trick the fixed-width and variable-length integer
// codecs in varint/ and wire/ lean on. Unlike a general-purpose binary
// format, ordkey has no use for a configurable byte order, so this package
// is deliberately narrower than a typical ByteOrder/AppendByteOrder
// wrapper: it exposes exactly one engine.
package endian

import "encoding/binary"

// Engine combines binary.ByteOrder and binary.AppendByteOrder so callers in
// wire/ can depend on an interface rather than importing encoding/binary
// directly.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// BigEndian returns the byte-order engine used by every encoder and decoder
// in this module. It is the only engine ordkey ever constructs.
func BigEndian() Engine {
	return binary.BigEndian
}
