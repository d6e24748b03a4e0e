// File: methods_adjacent.go
// Role: Incidence queries (Steps, Peers) and adjacency bookkeeping helpers.
// Determinism:
//   - Steps() lists the forward step (the note's own definition) first, then
//     backward steps in edge insertion order.
//   - Peers() returns unique names sorted ascending.
// Concurrency:
//   - Queries take muNotes then muEdgeAdj read locks.
//   - Helpers must be called under the muEdgeAdj write lock.

package core

import "sort"

// Steps returns every definition edge incident to name, viewed from name.
//
// Traversal policy:
//   - Forward: name's own definition (name → base, c) yields Peer=base, Delta=-c.
//   - Backward: every definition (other → name, c) yields Peer=other, Delta=+c.
//   - A self-definition yields both a forward and a backward step.
//
// Errors:
//   - ErrEmptyNoteName: if name == "".
//   - ErrNoteNotFound: if the note does not exist.
//
// Complexity: O(d log d), d = number of incident edges.
func (g *Graph) Steps(name string) ([]Step, error) {
	if name == "" {
		return nil, ErrEmptyNoteName
	}

	g.muNotes.RLock()
	defer g.muNotes.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.notes[name]; !ok {
		return nil, ErrNoteNotFound
	}

	incident := make([]*Edge, 0, len(g.adjacency[name]))
	for eid := range g.adjacency[name] {
		if e, ok := g.edges[eid]; ok {
			incident = append(incident, e)
		}
	}
	sortBySeq(incident)

	out := make([]Step, 0, len(incident)+1)
	if eid, ok := g.defined[name]; ok {
		e := g.edges[eid]
		out = append(out, Step{Edge: e, Peer: e.To, Delta: -e.Cents, Forward: true})
	}
	for _, e := range incident {
		if e.To != name {
			continue
		}
		out = append(out, Step{Edge: e, Peer: e.From, Delta: e.Cents})
	}

	return out, nil
}

// Peers returns the unique names adjacent to name in either direction,
// sorted ascending. A self-definition lists name itself.
func (g *Graph) Peers(name string) ([]string, error) {
	steps, err := g.Steps(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(steps))
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if _, ok := seen[s.Peer]; ok {
			continue
		}
		seen[s.Peer] = struct{}{}
		out = append(out, s.Peer)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot mapping every note to its sorted peers.
// Complexity: O(N + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, g.NoteCount())
	for _, name := range g.Notes() {
		peers, err := g.Peers(name)
		if err != nil {
			continue
		}
		out[name] = peers
	}

	return out
}

// ensureAdjacency allocates the adjacency bucket of name if missing.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, name string) {
	if g.adjacency[name] == nil {
		g.adjacency[name] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from both endpoint buckets.
// Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	delete(g.adjacency[e.From], e.ID)
	delete(g.adjacency[e.To], e.ID)
}
