// Package schema defines the temperament document: the Go form of the
// descriptor, its JSON and YAML codecs, and its validation rules.
package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for descriptor handling.
var (
	// ErrInvalidDescriptor indicates a document that fails structural or
	// numeric validation.
	ErrInvalidDescriptor = errors.New("schema: incorrect temperament format")

	// ErrUnknownFormat indicates an unsupported document format.
	ErrUnknownFormat = errors.New("schema: unknown document format")
)

// Descriptor is a complete description of a musical temperament.
//
// Notes maps each note name to its definition relative to another note.
// Name, Description and Source are metadata and do not affect computation.
type Descriptor struct {
	Name            string                    `json:"name" yaml:"name"`
	Description     string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Source          string                    `json:"source,omitempty" yaml:"source,omitempty"`
	OctaveBaseName  string                    `json:"octaveBaseName" yaml:"octaveBaseName"`
	ReferenceName   string                    `json:"referenceName" yaml:"referenceName"`
	ReferencePitch  float64                   `json:"referencePitch" yaml:"referencePitch"`
	ReferenceOctave int                       `json:"referenceOctave" yaml:"referenceOctave"`
	Notes           map[string]NoteDefinition `json:"notes" yaml:"notes"`
}

// NoteDefinition says that a note lies Cents cents above Base.
// It is encoded as a two-element array: [base, cents].
type NoteDefinition struct {
	Base  string
	Cents float64
}

// Format is a document encoding.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks a Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// document is the decoding target once a document has passed schema
// validation. ReferenceOctave is a float so that 4.0, an integer to JSON
// Schema, decodes in both formats.
type document struct {
	Name            string                    `json:"name" yaml:"name"`
	Description     string                    `json:"description" yaml:"description"`
	Source          string                    `json:"source" yaml:"source"`
	OctaveBaseName  string                    `json:"octaveBaseName" yaml:"octaveBaseName"`
	ReferenceName   string                    `json:"referenceName" yaml:"referenceName"`
	ReferencePitch  float64                   `json:"referencePitch" yaml:"referencePitch"`
	ReferenceOctave float64                   `json:"referenceOctave" yaml:"referenceOctave"`
	Notes           map[string]NoteDefinition `json:"notes" yaml:"notes"`
}
