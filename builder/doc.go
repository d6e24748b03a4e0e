// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// Package builder generates temperament documents for regular tunings:
// temperaments whose notes are all reached by stacking one generator
// interval, such as a chain of fifths or an equal division of the octave.
//
// What:
//
//   - Build(bopts, cons...) creates a schema.Descriptor from the resolved
//     options and applies each Constructor in order.
//   - Chain(n, step) lays n notes along a chain of step cents, each defined
//     against its neighbor on the side of the reference note.
//   - EqualDivision(n) is Chain(n, 1200/n).
//   - Define(name, base, cents) adds a single definition, e.g. an
//     enharmonic spelling outside the chain.
//
// Note names come from an IDFn (index → name): decimal by default,
// ChromaticIDFn for twelve notes in pitch order, FifthsIDFn for twelve
// notes in chain-of-fifths order from E♭ to G♯.
//
// Determinism:
//
//   - Same options and constructor order produce identical documents.
//
// Errors:
//
//   - ErrTooFewNotes     chain length below 1
//   - ErrTooManyNotes    chain longer than the naming scheme's name table
//   - ErrInvalidStep     step or offset is NaN or ±Inf
//   - ErrAnchorMissing   the reference note is not part of the chain
//   - ErrDuplicateNote   a constructor redefines an existing note
//   - schema.ErrInvalidDescriptor  the finished document fails validation
package builder
