package temperament

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/temperament/resolve"
)

// OctaveSize is the size of an octave in cents.
const OctaveSize = resolve.OctaveSize

// Sentinel errors for temperament queries.
var (
	// ErrUnknownNote is returned when a query names a note the temperament
	// does not define.
	ErrUnknownNote = errors.New("temperament: unknown note")

	// ErrInvalidArgument is returned for a non-positive pitch or a negative
	// octave radius.
	ErrInvalidArgument = errors.New("temperament: invalid argument")
)

// Option configures construction of a Temperament.
type Option func(*options)

type options struct {
	resolve []resolve.Option
}

// WithResolveOptions passes options through to resolve.Resolve, e.g. a
// congruence tolerance or a cancellation context.
func WithResolveOptions(opts ...resolve.Option) Option {
	return func(o *options) {
		o.resolve = append(o.resolve, opts...)
	}
}

// Temperament is a resolved musical temperament.
//
// Everything except the reference pitch is fixed at construction. The
// reference pitch is stored as float64 bits in an atomic word, so queries
// may run concurrently with SetReferencePitch; each query reads it once.
// A Temperament must not be copied after first use.
type Temperament struct {
	name        string
	description string
	source      string

	octaveBaseName  string
	referenceName   string
	referenceOctave int
	referencePitch  atomic.Uint64

	// noteNames is sorted ascending by offset, ties broken by name.
	noteNames []string
	offsets   map[string]float64
	resolved  *resolve.Result
}
