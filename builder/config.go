// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// config.go - builder configuration and functional options.
//
// Option constructors panic on meaningless inputs (nil functions).
// Constructors themselves never panic on bad parameters; they return
// sentinel errors.

package builder

import "math"

// BuilderOption customizes the document header and naming scheme.
type BuilderOption func(*builderConfig)

// builderConfig aggregates the knobs used by Build and its constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn

	name        string
	description string
	source      string

	referenceName   string
	referencePitch  float64
	referenceOctave int
	octaveBaseName  string
}

// Defaults describe concert pitch, A4 = 440 Hz, with octaves starting at C.
const (
	defaultName            = "Generated temperament"
	defaultReferenceName   = "A"
	defaultReferencePitch  = 440.0
	defaultReferenceOctave = 4
	defaultOctaveBaseName  = "C"
)

// Common generator intervals, in cents.
var (
	// PureFifth is the just fifth 3:2.
	PureFifth = 1200 * math.Log2(1.5)

	// QuarterCommaFifth is a pure fifth narrowed by a quarter of the
	// syntonic comma, so that four fifths make a pure major third 5:4 plus
	// two octaves.
	QuarterCommaFifth = 1200 * math.Log2(5) / 4
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:            DefaultIDFn,
		name:            defaultName,
		referenceName:   defaultReferenceName,
		referencePitch:  defaultReferencePitch,
		referenceOctave: defaultReferenceOctave,
		octaveBaseName:  defaultOctaveBaseName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the note naming function.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithName sets the temperament name.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}

// WithDescription sets the optional description.
func WithDescription(text string) BuilderOption {
	return func(c *builderConfig) {
		c.description = text
	}
}

// WithSource sets the optional source, e.g. a URL.
func WithSource(source string) BuilderOption {
	return func(c *builderConfig) {
		c.source = source
	}
}

// WithReference sets the reference note, its pitch in Hz and its octave.
func WithReference(name string, pitch float64, octave int) BuilderOption {
	return func(c *builderConfig) {
		c.referenceName = name
		c.referencePitch = pitch
		c.referenceOctave = octave
	}
}

// WithOctaveBase sets the note each octave starts at.
func WithOctaveBase(name string) BuilderOption {
	return func(c *builderConfig) {
		c.octaveBaseName = name
	}
}
