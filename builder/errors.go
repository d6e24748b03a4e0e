// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewNotes indicates a chain length below the minimum of one note.
var ErrTooFewNotes = errors.New("builder: too few notes")

// ErrTooManyNotes indicates a chain longer than the naming scheme's table.
var ErrTooManyNotes = errors.New("builder: too many notes for naming scheme")

// ErrInvalidStep indicates a NaN or infinite interval in cents.
var ErrInvalidStep = errors.New("builder: step is not finite")

// ErrAnchorMissing indicates that the reference note is not among the
// notes a chain generates, so nothing ties the chain to a known pitch.
var ErrAnchorMissing = errors.New("builder: reference note not in chain")

// ErrDuplicateNote indicates a constructor tried to define a note that is
// already defined.
var ErrDuplicateNote = errors.New("builder: note already defined")
