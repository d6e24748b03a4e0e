// File: methods_notes.go
// Role: Note lifecycle & queries.
//
// Determinism:
//   - Notes() and Defined() return names sorted lexicographically ascending.
//
// Concurrency:
//   - Note catalog protected by muNotes.
//   - Adjacency bootstrap under muEdgeAdj.
package core

import "sort"

// AddNote inserts a note if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyNoteName).
//   - Stage 2: Under muNotes write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNote(name string) error {
	if name == "" {
		return ErrEmptyNoteName
	}

	g.muNotes.Lock()
	defer g.muNotes.Unlock()

	if _, exists := g.notes[name]; exists {
		return nil
	}
	g.notes[name] = &Note{Name: name}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, name)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNote reports whether the note exists (empty name ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNote(name string) bool {
	if name == "" {
		return false
	}
	g.muNotes.RLock()
	defer g.muNotes.RUnlock()
	_, ok := g.notes[name]

	return ok
}

// Notes returns all note names sorted ascending.
// Complexity: O(N log N).
func (g *Graph) Notes() []string {
	g.muNotes.RLock()
	defer g.muNotes.RUnlock()

	out := make([]string, 0, len(g.notes))
	for name := range g.notes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// NoteCount returns the number of notes.
func (g *Graph) NoteCount() int {
	g.muNotes.RLock()
	defer g.muNotes.RUnlock()

	return len(g.notes)
}

// Defined returns the names of notes carrying their own definition, sorted
// ascending. Notes that only appear as a base are not included.
func (g *Graph) Defined() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.defined))
	for name := range g.defined {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Degree returns the number of definition edges incident to name, counting
// a self-definition once.
func (g *Graph) Degree(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyNoteName
	}
	g.muNotes.RLock()
	defer g.muNotes.RUnlock()
	if _, ok := g.notes[name]; !ok {
		return 0, ErrNoteNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[name]), nil
}
