package temperament

import (
	"encoding/json"

	"github.com/katalvlaran/temperament/schema"
)

// Descriptor serializes t back into document form. Every note is defined
// directly against the reference note by its resolved offset, so the
// derivation structure of the source document is lost, but building a new
// temperament from the result reproduces the same offsets.
func (t *Temperament) Descriptor() schema.Descriptor {
	notes := make(map[string]schema.NoteDefinition, len(t.offsets))
	for name, off := range t.offsets {
		notes[name] = schema.NoteDefinition{Base: t.referenceName, Cents: off}
	}
	return schema.Descriptor{
		Name:            t.name,
		Description:     t.description,
		Source:          t.source,
		OctaveBaseName:  t.octaveBaseName,
		ReferenceName:   t.referenceName,
		ReferencePitch:  t.ReferencePitch(),
		ReferenceOctave: t.referenceOctave,
		Notes:           notes,
	}
}

// MarshalJSON implements json.Marshaler using the Descriptor form.
func (t *Temperament) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Descriptor())
}

// MarshalYAML implements yaml.Marshaler using the Descriptor form.
func (t *Temperament) MarshalYAML() (interface{}, error) {
	return t.Descriptor(), nil
}
