// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// id_fn.go - note naming schemes for generated chains.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a note name from its zero-based index along a chain.
// It must be deterministic. A scheme with a finite name table returns
// ErrTooManyNotes for indices past its end.
type IDFn func(idx int) (string, error)

// Chromatic lists the twelve chromatic note names in pitch order from C.
var Chromatic = []string{"C", "C♯", "D", "E♭", "E", "F", "F♯", "G", "G♯", "A", "B♭", "B"}

// Fifths lists the same names in chain-of-fifths order, E♭ to G♯.
var Fifths = []string{"E♭", "B♭", "F", "C", "G", "D", "A", "E", "B", "F♯", "C♯", "G♯"}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) (string, error) {
	return strconv.Itoa(idx), nil
}

// ChromaticIDFn returns Chromatic[idx].
func ChromaticIDFn(idx int) (string, error) {
	return pick("ChromaticIDFn", Chromatic, idx)
}

// FifthsIDFn returns Fifths[idx].
func FifthsIDFn(idx int) (string, error) {
	return pick("FifthsIDFn", Fifths, idx)
}

// pick returns names[idx], or ErrTooManyNotes outside [0, len(names)).
func pick(method string, names []string, idx int) (string, error) {
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("%s: idx=%d outside [0,%d]: %w", method, idx, len(names)-1, ErrTooManyNotes)
	}
	return names[idx], nil
}

// WithDefaultIDs names notes "0", "1", "2", ...
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithChromaticIDs names notes C, C♯, D, ... B.
func WithChromaticIDs() BuilderOption { return WithIDScheme(ChromaticIDFn) }

// WithFifthsIDs names notes E♭, B♭, F, ... G♯.
func WithFifthsIDs() BuilderOption { return WithIDScheme(FifthsIDFn) }
