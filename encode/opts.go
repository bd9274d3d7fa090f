package encode

type EncodeOption func(*encState)

// EncodeSections controls whether [section] headers are written. When
// false every entry is flattened to its full root-relative name.
func EncodeSections(v bool) EncodeOption {
	return func(es *encState) { es.sections = v }
}

// EncodeArrays controls whether array groups are written as repeated
// keys. When false members are emitted under their indexed names.
func EncodeArrays(v bool) EncodeOption {
	return func(es *encState) { es.arrays = v }
}

// EncodeColors enables ANSI-colored output, for terminal display only;
// colored text is not reparseable.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
