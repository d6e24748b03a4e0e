// Package temperament builds musical temperaments from their note
// definitions and answers pitch queries against them.
//
// A temperament is described by a schema.Descriptor: a reference note with
// a known pitch and octave, an octave base note, and a set of note
// definitions, each giving the offset in cents of one note above another.
// New resolves those definitions into a complete offset table (see package
// resolve), after which a Temperament can:
//
//   - report the offset of any note in any octave (Offset)
//   - convert a note and octave to a frequency in Hz (Pitch)
//   - find the note nearest to a frequency, with the deviation in cents
//     (NoteNameFromPitch)
//   - list the octaves around the reference octave (OctaveRange)
//   - serialize itself back into a Descriptor that resolves to the same
//     offsets (Descriptor, MarshalJSON, MarshalYAML)
//
// Pitches are computed as
//
//	referencePitch * 2^(offset / 1200)
//
// Concurrency: a Temperament is immutable after New except for its
// reference pitch, which SetReferencePitch updates atomically. All methods
// are safe for concurrent use.
package temperament
