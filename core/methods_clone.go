// File: methods_clone.go
// Role: Building graphs from raw definitions, cloning and clearing.
// Determinism:
//   - FromDefinitions inserts definitions in lexicographic key order, so edge
//     IDs and Steps() order do not depend on map iteration.
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// FromDefinitions builds a graph holding one edge per entry of defs.
// Keys are defined notes; each Definition names the base and the offset.
// Errors from AddDefinition are wrapped with the offending note name.
//
// Complexity: O(N log N).
func FromDefinitions(defs map[string]Definition) (*Graph, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	g := NewGraph(WithCapacity(len(defs)))
	for _, name := range names {
		d := defs[name]
		if _, err := g.AddDefinition(name, d.Base, d.Cents); err != nil {
			return nil, fmt.Errorf("%w: note %q", err, name)
		}
	}

	return g, nil
}

// Clone returns a deep copy of the Graph: notes, edges, and adjacency.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	g.muNotes.RLock()
	defer g.muNotes.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithCapacity(len(g.notes)))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for name := range g.notes {
		clone.notes[name] = &Note{Name: name}
		clone.adjacency[name] = make(map[string]struct{}, len(g.adjacency[name]))
		for eid := range g.adjacency[name] {
			clone.adjacency[name][eid] = struct{}{}
		}
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}
	for name, eid := range g.defined {
		clone.defined[name] = eid
	}

	return clone
}

// Clear removes all notes and edges and resets the edge ID counter.
func (g *Graph) Clear() {
	g.muNotes.Lock()
	defer g.muNotes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.notes = make(map[string]*Note)
	g.edges = make(map[string]*Edge)
	g.defined = make(map[string]string)
	g.adjacency = make(map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
