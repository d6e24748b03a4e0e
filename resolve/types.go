// Package resolve provides tunable options and error definitions
// for resolving note offsets over a core.Graph.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// OctaveSize is the size of an octave in cents.
const OctaveSize = 1200.0

// DefaultTolerance absorbs the floating-point error that offsets pick up
// when deduced along paths of non-integral definitions.
const DefaultTolerance = 1e-6

// Sentinel errors for offset resolution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("resolve: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("resolve: invalid option supplied")

	// ErrConflictingDefinition is returned when two deductions for the same
	// note are not congruent modulo one octave.
	ErrConflictingDefinition = errors.New("resolve: conflicting definition")

	// ErrIndeterminatePitch is returned when a defined note cannot be
	// reached from the reference note.
	ErrIndeterminatePitch = errors.New("resolve: not able to determine the pitch")

	// ErrUndefinedOctaveBase is returned when the octave base has no offset.
	ErrUndefinedOctaveBase = errors.New("resolve: octave base not defined as a note")

	// ErrNotResolved is returned by Result queries for notes absent from the table.
	ErrNotResolved = errors.New("resolve: note not resolved")
)

// Option configures resolution via functional arguments.
// If an Option is invalid (e.g. negative tolerance), it will be recorded
// internally and surfaced as ErrOptionViolation when Resolve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize resolution.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued note.
	Ctx context.Context

	// OnEnqueue is called when a newly reached note is queued for further
	// propagation. Receives the note, its deduced offset and its distance
	// (in definitions) from the reference note.
	OnEnqueue func(name string, offset float64, depth int)

	// OnDefine is called after every committed deduction, including
	// congruent re-definitions. If it returns an error, resolution aborts.
	OnDefine func(name string, offset float64) error

	// Tolerance is the largest distance (in cents) from an exact multiple of
	// OctaveSize at which two deductions are still considered congruent.
	// Zero demands exact congruence. Defaults to DefaultTolerance.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Tolerance == DefaultTolerance
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, float64, int) {},
		OnDefine:  func(string, float64) error { return nil },
		Tolerance: DefaultTolerance,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(name string, offset float64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDefine registers a callback to run on every committed deduction;
// returning an error from this callback stops resolution.
func WithOnDefine(fn func(name string, offset float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDefine = fn
		}
	}
}

// WithTolerance relaxes the congruence check for deductions computed along
// different paths, which accumulate floating-point error.
//
//	t > 0: accept differences within t cents of a whole number of octaves
//	t == 0: exact congruence
//	t < 0 or NaN: invalid option → ErrOptionViolation
func WithTolerance(t float64) Option {
	return func(o *Options) {
		switch {
		case math.IsNaN(t) || t < 0:
			o.err = fmt.Errorf("%w: Tolerance cannot be negative (%v)", ErrOptionViolation, t)
		case t >= OctaveSize/2:
			o.err = fmt.Errorf("%w: Tolerance must be below half an octave (%v)", ErrOptionViolation, t)
		default:
			o.Tolerance = t
		}
	}
}

// Result holds the outcome of a resolution:
//   - Offsets: note → cents relative to the reference pitch, normalized into
//     [Base, Base+OctaveSize).
//   - Order: notes in the order they first received an offset.
//   - Source: note → the note its first offset was deduced from.
//   - Base: the octave base's offset, in (-OctaveSize, 0].
type Result struct {
	Offsets map[string]float64
	Order   []string
	Source  map[string]string
	Base    float64
}

// Derivation reconstructs the chain of notes from the reference note to
// name along which name's offset was first deduced.
// Returns ErrNotResolved if name has no offset.
func (r *Result) Derivation(name string) ([]string, error) {
	if _, ok := r.Offsets[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotResolved, name)
	}
	// build reversed path
	path := []string{}
	for cur := name; ; {
		path = append(path, cur)
		prev, ok := r.Source[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get reference → name
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
