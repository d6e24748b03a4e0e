// File: methods_edges.go
// Role: Definition-edge lifecycle & queries: AddDefinition/RemoveDefinition/
//       HasEdge/GetEdge/Definition/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (by sequence number).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddDefinition records that name lies cents cents above base.
//
// Steps:
//  1. Validate names and offset.
//  2. Ensure both endpoints via AddNote.
//  3. Lock muEdgeAdj, reject a second definition of name.
//  4. Generate eid atomically, store the edge, link adjacency of both endpoints.
//
// A self-definition (name == base) is permitted; it constrains the note
// against itself and is linked into adjacency once.
//
// Complexity: O(1) amortized.
func (g *Graph) AddDefinition(name, base string, cents float64) (string, error) {
	if name == "" || base == "" {
		return "", ErrEmptyNoteName
	}
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return "", ErrNonFiniteOffset
	}

	if err := g.AddNote(name); err != nil {
		return "", err
	}
	if err := g.AddNote(base); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.defined[name]; exists {
		return "", ErrDuplicateDefinition
	}

	seq, eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: name, To: base, Cents: cents, seq: seq}
	g.edges[eid] = e
	g.defined[name] = eid

	ensureAdjacency(g, name)
	g.adjacency[name][eid] = struct{}{}
	ensureAdjacency(g, base)
	g.adjacency[base][eid] = struct{}{}

	return eid, nil
}

// RemoveDefinition deletes the definition of name, if any.
// Returns ErrEdgeNotFound when name carries no definition.
// Complexity: O(1).
func (g *Graph) RemoveDefinition(name string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.defined[name]
	if !ok {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	delete(g.edges, eid)
	delete(g.defined, name)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether name is defined relative to base.
// Complexity: O(1).
func (g *Graph) HasEdge(name, base string) bool {
	if name == "" || base == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.defined[name]
	if !ok {
		return false
	}

	return g.edges[eid].To == base
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Definition returns the definition edge of name, if it has one.
func (g *Graph) Definition(name string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.defined[name]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of definition edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}

// nextEdgeID reserves the next sequence number and returns it together with
// its textual ID ("e" + decimal digits).
//
// Concurrency:
//   - Safe for concurrent callers; atomic.AddUint64 fetches the next number.
func nextEdgeID(g *Graph) (uint64, string) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}
