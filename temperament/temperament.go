package temperament

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/temperament/core"
	"github.com/katalvlaran/temperament/resolve"
	"github.com/katalvlaran/temperament/schema"
)

// New validates d, resolves its note offsets and returns the temperament.
//
// Errors wrap schema.ErrInvalidDescriptor for malformed input, or one of
// resolve.ErrConflictingDefinition, resolve.ErrIndeterminatePitch and
// resolve.ErrUndefinedOctaveBase for inconsistent note definitions.
func New(d schema.Descriptor, opts ...Option) (*Temperament, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := schema.Validate(&d); err != nil {
		return nil, err
	}

	defs := make(map[string]core.Definition, len(d.Notes))
	for name, def := range d.Notes {
		defs[name] = core.Definition{Base: def.Base, Cents: def.Cents}
	}
	g, err := core.FromDefinitions(defs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrInvalidDescriptor, err)
	}
	res, err := resolve.Resolve(g, d.ReferenceName, d.OctaveBaseName, o.resolve...)
	if err != nil {
		return nil, err
	}

	t := &Temperament{
		name:            d.Name,
		description:     d.Description,
		source:          d.Source,
		octaveBaseName:  d.OctaveBaseName,
		referenceName:   d.ReferenceName,
		referenceOctave: d.ReferenceOctave,
		offsets:         res.Offsets,
		resolved:        res,
	}
	t.referencePitch.Store(math.Float64bits(d.ReferencePitch))

	t.noteNames = make([]string, 0, len(t.offsets))
	for name := range t.offsets {
		t.noteNames = append(t.noteNames, name)
	}
	sort.Strings(t.noteNames)
	sort.SliceStable(t.noteNames, func(i, j int) bool {
		return t.offsets[t.noteNames[i]] < t.offsets[t.noteNames[j]]
	})

	return t, nil
}

// Parse decodes a document in the given format and builds its temperament.
func Parse(data []byte, format schema.Format, opts ...Option) (*Temperament, error) {
	d, err := schema.Decode(data, format)
	if err != nil {
		return nil, err
	}
	return New(*d, opts...)
}

// Name returns the name of the temperament.
func (t *Temperament) Name() string { return t.name }

// Description returns the description of the temperament, if any.
func (t *Temperament) Description() string { return t.description }

// Source returns where the temperament data came from (e.g. a URL), if known.
func (t *Temperament) Source() string { return t.source }

// OctaveBaseName returns the name of the note each octave starts at.
func (t *Temperament) OctaveBaseName() string { return t.octaveBaseName }

// ReferenceName returns the name of the reference note.
func (t *Temperament) ReferenceName() string { return t.referenceName }

// ReferenceOctave returns the octave number of the reference note.
func (t *Temperament) ReferenceOctave() int { return t.referenceOctave }

// NoteNames returns the note names in increasing order of pitch, starting
// with the octave base. The returned slice is a copy.
func (t *Temperament) NoteNames() []string {
	out := make([]string, len(t.noteNames))
	copy(out, t.noteNames)
	return out
}

// Offsets returns a copy of the note → cents table at the reference octave.
func (t *Temperament) Offsets() map[string]float64 {
	out := make(map[string]float64, len(t.offsets))
	for name, off := range t.offsets {
		out[name] = off
	}
	return out
}

// Derivation returns the chain of notes, starting at the reference note,
// along which the offset of note was first deduced.
func (t *Temperament) Derivation(note string) ([]string, error) {
	if _, ok := t.offsets[note]; !ok {
		return nil, unknownNote(note)
	}
	return t.resolved.Derivation(note)
}

func unknownNote(note string) error {
	return fmt.Errorf("%w: note %q is not defined", ErrUnknownNote, note)
}
