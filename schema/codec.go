package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the definition as [base, cents].
func (d NoteDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{d.Base, d.Cents})
}

// UnmarshalJSON decodes a [base, cents] pair.
func (d *NoteDefinition) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("%w: note definition must be a [base, cents] pair, got %s", ErrInvalidDescriptor, data)
	}
	var base string
	if err := json.Unmarshal(pair[0], &base); err != nil {
		return fmt.Errorf("%w: base note must be a string, got %s", ErrInvalidDescriptor, pair[0])
	}
	var cents float64
	if err := json.Unmarshal(pair[1], &cents); err != nil {
		return fmt.Errorf("%w: offset must be a number, got %s", ErrInvalidDescriptor, pair[1])
	}
	d.Base, d.Cents = base, cents
	return nil
}

// MarshalYAML encodes the definition as a flow sequence: [base, cents].
func (d NoteDefinition) MarshalYAML() (interface{}, error) {
	base := &yaml.Node{}
	base.SetString(d.Base)
	cents := &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(d.Cents, 'g', -1, 64)}

	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{base, cents},
	}, nil
}

// UnmarshalYAML decodes a [base, cents] sequence.
func (d *NoteDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("%w: note definition must be a [base, cents] pair (line %d)", ErrInvalidDescriptor, value.Line)
	}
	baseNode, centsNode := value.Content[0], value.Content[1]
	if baseNode.Kind != yaml.ScalarNode || baseNode.ShortTag() != "!!str" {
		return fmt.Errorf("%w: base note must be a string (line %d)", ErrInvalidDescriptor, baseNode.Line)
	}
	var cents float64
	if err := centsNode.Decode(&cents); err != nil {
		return fmt.Errorf("%w: offset must be a number (line %d)", ErrInvalidDescriptor, centsNode.Line)
	}
	d.Base, d.Cents = baseNode.Value, cents
	return nil
}

// Decode parses data in the given format, validates it against the
// embedded JSON Schema and normalizes note names to Unicode NFC.
func Decode(data []byte, format Format) (*Descriptor, error) {
	switch format {
	case JSON:
		return DecodeJSON(data)
	case YAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// DecodeJSON parses a JSON temperament document.
func DecodeJSON(data []byte) (*Descriptor, error) {
	raw, err := decodeRaw(data)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapDecodeError(err)
	}
	return fromDocument(&doc)
}

// DecodeYAML parses a YAML temperament document. The document is checked
// against the same JSON Schema as JSON input, so YAML-only values (non-string
// keys, .inf, .nan) are rejected.
func DecodeYAML(data []byte) (*Descriptor, error) {
	var generic interface{}
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, wrapDecodeError(err)
	}
	asJSON, err := json.Marshal(generic)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	raw, err := decodeRaw(asJSON)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, wrapDecodeError(err)
	}
	return fromDocument(&doc)
}

// EncodeJSON renders d as indented JSON. Map keys are sorted.
func EncodeJSON(d *Descriptor) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// EncodeYAML renders d as YAML. Map keys are sorted.
func EncodeYAML(d *Descriptor) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode renders d in the given format.
func Encode(d *Descriptor, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return EncodeJSON(d)
	case YAML:
		return EncodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// wrapDecodeError tags syntax and type errors as invalid descriptors,
// leaving errors that already carry the sentinel untouched.
func wrapDecodeError(err error) error {
	if errors.Is(err, ErrInvalidDescriptor) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
}

// fromDocument copies a schema-valid doc into a Descriptor and normalizes
// its note names.
func fromDocument(doc *document) (*Descriptor, error) {
	octave := doc.ReferenceOctave
	if octave != math.Trunc(octave) || math.Abs(octave) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: referenceOctave must be an integer, got %v", ErrInvalidDescriptor, octave)
	}

	d := &Descriptor{
		Name:            doc.Name,
		Description:     doc.Description,
		Source:          doc.Source,
		OctaveBaseName:  doc.OctaveBaseName,
		ReferenceName:   doc.ReferenceName,
		ReferencePitch:  doc.ReferencePitch,
		ReferenceOctave: int(octave),
		Notes:           doc.Notes,
	}
	if err := normalizeNames(d); err != nil {
		return nil, err
	}
	return d, nil
}

// normalizeNames rewrites every note name in d to Unicode NFC, so that the
// same name typed with combining marks or precomposed characters matches.
// Two keys collapsing into one name are rejected.
func normalizeNames(d *Descriptor) error {
	d.OctaveBaseName = norm.NFC.String(d.OctaveBaseName)
	d.ReferenceName = norm.NFC.String(d.ReferenceName)

	keys := make([]string, 0, len(d.Notes))
	for k := range d.Notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	notes := make(map[string]NoteDefinition, len(d.Notes))
	for _, k := range keys {
		def := d.Notes[k]
		name := norm.NFC.String(k)
		if _, dup := notes[name]; dup {
			return fmt.Errorf("%w: note %q is defined more than once", ErrInvalidDescriptor, name)
		}
		def.Base = norm.NFC.String(def.Base)
		notes[name] = def
	}
	d.Notes = notes
	return nil
}
