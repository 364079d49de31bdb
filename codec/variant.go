package codec

// Variant is the in-memory value for a schema.KindVariant: a 0-based case
// index paired with that case's ordered field values.
type Variant struct {
	Index  int
	Fields []any
}
