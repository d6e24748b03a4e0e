// Package temperament is an in-memory toolkit for musical temperaments:
// tuning systems defined by the offsets, in cents, between named notes.
//
// What is in the box?
//
//	A thread-safe library that brings together:
//		• Note graph: notes and definitions ("E is 386.3 cents above C")
//		• Resolution: propagate definitions into a full offset table,
//		  checking redundant definitions for octave congruence
//		• Queries: offset and pitch of any note in any octave, the note
//		  nearest to a frequency, octave ranges
//		• Documents: JSON and YAML descriptors with validation and an
//		  embedded JSON Schema
//		• Bundled temperaments: equal, quarter-comma meantone, Pythagorean
//		• Diagnostics and generators: definition cycles, regular temperaments
//
// Everything is organized under a handful of subpackages:
//
//	core/         — the note-offset Graph, Note, Edge and Step types
//	resolve/      — offset propagation, re-anchoring and normalization
//	schema/       — temperament documents: codecs, validation, JSON Schema
//	temperament/  — the Temperament type and its pitch queries
//	notation/     — display forms of note names ({sharp} → ♯)
//	temperaments/ — bundled temperament documents
//	dfs/          — definition cycles and their commas, connected groups
//	builder/      — generators for chains of fifths and equal divisions
//	cmd/temperament — command-line front end
//
// Quick example, twelve-tone equal temperament around A4 = 440 Hz:
//
//	C ── -900 ──▶ A ◀── +200 ── B
//
//	represents "C lies 900 cents below A" and "B lies 200 cents above A".
//
//	go get github.com/katalvlaran/temperament
package temperament
