// File: api.go
// Role: Read-only summary of a graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NoteCount       int // notes in the catalog, defined or referenced
	EdgeCount       int // definition edges
	DefinedCount    int // notes carrying their own definition
	BaseOnlyCount   int // notes referenced as a base but never defined
	SelfDefinitions int // definitions whose base is the defined note itself
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muNotes.RLock, snapshot the note count, then release.
//   - Stage 2: Under muEdgeAdj.RLock, classify edges and defined notes.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muNotes.RLock()
	stats := GraphStats{NoteCount: len(g.notes)}
	g.muNotes.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	stats.DefinedCount = len(g.defined)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfDefinitions++
		}
	}
	g.muEdgeAdj.RUnlock()

	stats.BaseOnlyCount = stats.NoteCount - stats.DefinedCount

	return &stats
}
