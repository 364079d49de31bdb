// Package fingerprint hashes a schema.Schema's shape so two schemas can be
// compared for append-only variant-evolution compatibility without a full
// structural diff. It is schema-registry glue, not part of the wire format
// — the wire format itself carries no type tags.
package fingerprint

import (
	"strconv"

	"github.com/arloliu/ordkey/schema"
	"github.com/cespare/xxhash/v2"
)

// Of returns a 64-bit fingerprint of s's shape: every field's Kind, nesting,
// and variant arity, in declaration order. Two schemas with equal
// fingerprints have identical wire layouts; unequal fingerprints may still
// be compatible under the append-only variant rule, which Of is not
// sufficient to check — see Compatible.
func Of(s schema.Schema) uint64 {
	d := xxhash.New()
	write(d, s)

	return d.Sum64()
}

func write(d *xxhash.Digest, s schema.Schema) {
	_, _ = d.Write([]byte{byte(s.Kind())})

	switch s.Kind() {
	case schema.KindTuple:
		for _, f := range s.Fields() {
			write(d, f)
		}
	case schema.KindOption, schema.KindSeq:
		write(d, s.Elem())
	case schema.KindVariant:
		for _, fields := range s.Variants() {
			_, _ = d.Write([]byte(strconv.Itoa(len(fields))))
			for _, f := range fields {
				write(d, f)
			}
		}
	}
}

// Compatible reports whether newSchema is a valid evolution of oldSchema
// under the append-only variant rule: every case present in oldSchema must
// appear unchanged, in the same order, as a prefix of newSchema's cases.
// Non-variant schemas are compatible only if identical.
func Compatible(oldSchema, newSchema schema.Schema) bool {
	if oldSchema.Kind() != newSchema.Kind() {
		return false
	}

	if oldSchema.Kind() != schema.KindVariant {
		return Of(oldSchema) == Of(newSchema)
	}

	oldVariants := oldSchema.Variants()
	newVariants := newSchema.Variants()
	if len(newVariants) < len(oldVariants) {
		return false
	}

	for i, fields := range oldVariants {
		if Of(schema.Tuple(fields...)) != Of(schema.Tuple(newVariants[i]...)) {
			return false
		}
	}

	return true
}
