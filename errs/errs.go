// Package errs defines the error taxonomy ordkey's encoders and decoders
// return. Errors are sentinel values so callers can compare with errors.Is;
// call sites that need to attach context wrap them with fmt.Errorf("...: %w").
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF means fewer bytes were available than the schema
	// required. Distinct from a plain I/O error.
	ErrUnexpectedEOF = errors.New("ordkey: unexpected end of input")

	// ErrInvalidUTF8 means a decoded byte sequence that was supposed to be
	// a string or character contained malformed UTF-8.
	ErrInvalidUTF8 = errors.New("ordkey: invalid utf-8 sequence")

	// ErrInvalidOptionTag means an option presence byte was neither 0x00
	// nor 0x01.
	ErrInvalidOptionTag = errors.New("ordkey: invalid option presence tag")

	// ErrUnsupported means a self-describing decode (or any operation the
	// codec cannot perform without a schema) was requested.
	ErrUnsupported = errors.New("ordkey: operation requires a schema")

	// ErrSchemaMismatch means a value passed to the encoder does not have
	// the Go type (or tuple/variant arity) its schema's kind calls for.
	ErrSchemaMismatch = errors.New("ordkey: value does not match schema")

	// ErrNonTerminalSequence means a byte sequence (Bytes) or dynamic-length
	// sequence (Seq) field was declared somewhere other than the last field
	// of its enclosing tuple/record/variant.
	ErrNonTerminalSequence = errors.New("ordkey: byte sequence or seq must be the terminal field of its composite")

	// ErrUnknownVariant means a decoded variant index had no corresponding
	// entry in the schema.
	ErrUnknownVariant = errors.New("ordkey: unknown variant index")
)

// IO wraps an error returned by the underlying byte stream with the
// operation that triggered it. The wrapped cause remains visible to
// errors.Is / errors.As through %w.
func IO(op string, cause error) error {
	return fmt.Errorf("ordkey: %s: %w", op, cause)
}

// User wraps an error surfaced from the schema layer so it is
// distinguishable from wire-format errors while preserving the original
// cause.
func User(cause error) error {
	return fmt.Errorf("ordkey: schema: %w", cause)
}
