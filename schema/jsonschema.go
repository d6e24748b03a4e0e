package schema

import _ "embed"

//go:embed schema.json
var jsonSchema []byte

// JSONSchema returns the JSON Schema (draft-07) document describing
// temperament descriptors. The returned slice is a copy.
func JSONSchema() []byte {
	out := make([]byte, len(jsonSchema))
	copy(out, jsonSchema)
	return out
}
