// Command ordkeydump decodes an ordkey-encoded key against one of a small
// set of built-in example schemas and prints the decoded value, along with
// a byte-by-byte listing that reads each byte as if it were an
// unsigned-varint header.
// It is a debugging aid, not a general-purpose tool: a place to check that
// two keys you expected to sort a certain way actually do.
//
// Usage:
//
//	ordkeydump <schema-name> <hex-encoded-key>
//
// Run with no arguments to list the built-in schema names.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/arloliu/ordkey/codec"
	"github.com/arloliu/ordkey/schema"
)

var registry = map[string]schema.Schema{
	"event":     schema.Tuple(schema.String(), schema.U32()),
	"metric-kv": schema.Tuple(schema.U64(), schema.I64(), schema.F64()),
	"seq-u32":   schema.Seq(schema.U32()),
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: ordkeydump <schema-name> <hex-encoded-key>")
		fmt.Fprintln(os.Stderr, "known schemas:")
		for name := range registry {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(1)
	}

	name, hexKey := os.Args[1], os.Args[2]

	s, ok := registry[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "ordkeydump: unknown schema %q\n", name)
		os.Exit(1)
	}

	data, err := hex.DecodeString(hexKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ordkeydump: invalid hex: %v\n", err)
		os.Exit(1)
	}

	dec, err := codec.NewDecoder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ordkeydump: %v\n", err)
		os.Exit(1)
	}

	v, err := dec.Decode(data, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ordkeydump: decode failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("schema: %s\n", name)
	fmt.Printf("value:  %#v\n", v)
	fmt.Println("bytes:")
	classifyBytes(data)
}

// classifyBytes prints each byte alongside the unsigned-varint length class
// it would start, for fields that happen to align on a header byte. It is
// a best-effort aid, not a re-parse of the schema: a fixed-width field's
// bytes will also get a (spurious) class line, which is fine for the eyeball
// check this tool exists for.
func classifyBytes(data []byte) {
	for i, b := range data {
		class := b >> 4
		fmt.Printf("  [%3d] %02x  (as varint header: class %d, %d trailing bytes)\n", i, b, class, varintTrailing(class))
	}
}

func varintTrailing(class byte) int {
	if class == 8 {
		return 8
	}

	return int(class)
}
