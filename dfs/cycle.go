package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/temperament/core"
	"github.com/katalvlaran/temperament/resolve"
)

// walker holds the state of one depth-first pass.
type walker struct {
	g     *core.Graph
	opts  Options
	state map[string]int

	// pot is the offset of each visited note relative to its tree root.
	pot       map[string]float64
	path      []string
	pathEdges []string // pathEdges[i] is the edge that discovered path[i]
	closed    map[string]struct{}
	cycles    []Cycle

	// component collects the notes reached from the current root.
	component []string
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NoteCount()
	return &walker{
		g:      g,
		opts:   o,
		state:  make(map[string]int, n),
		pot:    make(map[string]float64, n),
		path:   make([]string, 0, n),
		closed: make(map[string]struct{}),
	}, nil
}

// Cycles returns one cycle for every definition that closes a loop in the
// depth-first spanning forest of g.
//
// A self-definition yields a one-note cycle; two definitions between the
// same pair of notes yield a two-note cycle.
func Cycles(g *core.Graph, opts ...Option) ([]Cycle, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	for _, root := range g.Notes() {
		if w.state[root] != White {
			continue
		}
		if err := w.visit(root, "", 0); err != nil {
			return nil, fmt.Errorf("dfs: Cycles: %w", err)
		}
	}
	return w.cycles, nil
}

// visit explores name, reached over edge via at offset pot from the root.
func (w *walker) visit(name, via string, pot float64) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(name); err != nil {
			return err
		}
	}

	w.state[name] = Gray
	w.pot[name] = pot
	w.path = append(w.path, name)
	w.pathEdges = append(w.pathEdges, via)
	w.component = append(w.component, name)

	steps, err := w.g.Steps(name)
	if err != nil {
		return fmt.Errorf("Steps(%q): %w", name, err)
	}
	for _, s := range steps {
		if s.Edge.ID == via {
			continue // tree edge back to the parent
		}
		switch w.state[s.Peer] {
		case White:
			if err := w.visit(s.Peer, s.Edge.ID, pot+s.Delta); err != nil {
				return err
			}
		case Gray:
			w.record(name, s)
		}
		// Black: the edge was seen from the other end already.
	}

	w.path = w.path[:len(w.path)-1]
	w.pathEdges = w.pathEdges[:len(w.pathEdges)-1]
	w.state[name] = Black

	return nil
}

// record closes the cycle formed by the path from s.Peer down to name and
// the step back up to s.Peer. Each edge closes at most one cycle.
func (w *walker) record(name string, s core.Step) {
	if _, done := w.closed[s.Edge.ID]; done {
		return
	}
	w.closed[s.Edge.ID] = struct{}{}

	idx := indexOf(w.path, s.Peer)
	notes := append([]string(nil), w.path[idx:]...)
	notes = append(notes, s.Peer)
	edges := append([]string(nil), w.pathEdges[idx+1:]...)
	edges = append(edges, s.Edge.ID)

	sum := w.pot[name] + s.Delta - w.pot[s.Peer]
	comma := math.Remainder(sum, resolve.OctaveSize)
	if comma == 0 {
		comma = 0 // drop a negative zero
	}

	w.cycles = append(w.cycles, Cycle{Notes: notes, Edges: edges, Sum: sum, Comma: comma})
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}
