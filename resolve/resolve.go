// Package resolve turns the sparse, possibly redundant, possibly cyclic
// definitions of a core.Graph into a complete offset table anchored at a
// reference note and normalized around an octave base.
package resolve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/temperament/core"
)

// queueItem pairs a note with the offset it was reached at, its distance
// from the reference note, and the ID of the definition it was reached over.
type queueItem struct {
	name   string
	offset float64
	depth  int
	via    string
}

// walker encapsulates mutable propagation state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Resolve propagates offsets outward from referenceName (fixed at 0 cents)
// across every definition of g, then re-anchors and normalizes the table
// around octaveBaseName.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrConflictingDefinition, ErrIndeterminatePitch or ErrUndefinedOctaveBase
// for inconsistent input (each naming the offending note), a context error
// on cancellation, or any user-supplied hook error.
func Resolve(g *core.Graph, referenceName, octaveBaseName string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NoteCount() + 1
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Offsets: make(map[string]float64, n),
			Order:   make([]string, 0, n),
			Source:  make(map[string]string, n),
		},
	}

	// Seed the table and the queue with the reference note.
	w.res.Offsets[referenceName] = 0
	w.res.Order = append(w.res.Order, referenceName)
	w.enqueue(queueItem{name: referenceName})
	if err := w.loop(); err != nil {
		return nil, err
	}

	// Every defined note must have been reached.
	for _, name := range g.Defined() {
		if _, ok := w.res.Offsets[name]; !ok {
			return nil, fmt.Errorf("%w of %q", ErrIndeterminatePitch, name)
		}
	}

	raw, ok := w.res.Offsets[octaveBaseName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedOctaveBase, octaveBaseName)
	}
	w.res.Base = Reanchor(raw)
	normalize(w.res.Offsets, octaveBaseName, w.res.Base)

	return w.res, nil
}

// enqueue calls OnEnqueue and adds the note to the queue.
func (w *walker) enqueue(item queueItem) {
	w.opts.OnEnqueue(item.name, item.offset, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.propagate(item); err != nil {
			return err
		}
	}
	return nil
}

// propagate applies the forward and backward deduction rules to every
// definition incident to item, except the one item was reached over: it
// would only re-derive the parent's offset with rounding error. The
// reference note may be absent from the graph, in which case there is
// nothing to deduce from it.
func (w *walker) propagate(item queueItem) error {
	if !w.graph.HasNote(item.name) {
		return nil
	}
	steps, err := w.graph.Steps(item.name)
	if err != nil {
		return fmt.Errorf("resolve: failed to get steps of %q: %w", item.name, err)
	}
	for _, s := range steps {
		if s.Edge.ID == item.via {
			continue
		}
		computed := item.offset + s.Delta
		_, known := w.res.Offsets[s.Peer]
		if s.Peer != item.name && !known {
			w.res.Source[s.Peer] = item.name
			w.res.Order = append(w.res.Order, s.Peer)
			w.enqueue(queueItem{name: s.Peer, offset: computed, depth: item.depth + 1, via: s.Edge.ID})
		}
		if err := w.define(s.Peer, computed); err != nil {
			return err
		}
	}
	return nil
}

// define commits offset for name. An existing offset must be congruent to
// the new one modulo OctaveSize; the newer value then replaces it.
func (w *walker) define(name string, offset float64) error {
	if existing, ok := w.res.Offsets[name]; ok && !congruent(existing, offset, w.opts.Tolerance) {
		return fmt.Errorf("%w for %q found (%g vs %g cents)", ErrConflictingDefinition, name, existing, offset)
	}
	w.res.Offsets[name] = offset
	if err := w.opts.OnDefine(name, offset); err != nil {
		return fmt.Errorf("resolve: OnDefine error at %q: %w", name, err)
	}
	return nil
}
