package dfs

import (
	"context"
	"errors"
	"math"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the current path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures a walk.
type Option func(*Options)

// Options holds configurable parameters for Components and Cycles.
type Options struct {
	// Ctx allows cancellation; checked once per visited note.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a note is first discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(name string) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for the walk. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a discovery hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Cycle is a closed walk over definitions.
type Cycle struct {
	// Notes lists the notes in walk order; the first and last are equal.
	Notes []string

	// Edges lists the definition edge IDs taken, len(Notes)-1 of them.
	Edges []string

	// Sum is the signed offset in cents accumulated around the cycle.
	Sum float64

	// Comma is Sum reduced into [-600, 600]: its distance from the nearest
	// whole number of octaves.
	Comma float64
}

// Consistent reports whether the cycle closes within tol cents of a whole
// number of octaves.
func (c Cycle) Consistent(tol float64) bool {
	return math.Abs(c.Comma) <= tol
}
