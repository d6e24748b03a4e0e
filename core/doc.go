// Package core provides a thread-safe in-memory note-offset graph with a
// minimal, composable API surface.
//
// The Graph G = (N,E) stores:
//
//   - Notes: opaque names, unique within the graph.
//   - Definition edges: "From lies Cents cents above To". Each note carries
//     at most one definition, matching a temperament document where note
//     names are map keys.
//   - Incidence buckets: adjacency[note][edgeID] for every edge touching
//     the note in either direction, so an offset known for one endpoint can
//     be pushed to the other (forward: -Cents, backward: +Cents).
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for notes (muNotes) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention.
//
// Core Methods:
//
//	// Note lifecycle
//	AddNote(name string) error                // O(1)
//	HasNote(name string) bool                 // O(1)
//	Notes() []string                          // O(N·log N), sorted
//	Defined() []string                        // O(N·log N), sorted
//
//	// Definition lifecycle
//	AddDefinition(name, base string, cents float64) (edgeID string, err error)
//	RemoveDefinition(name string) error
//	Definition(name string) (*Edge, bool)
//	HasEdge(name, base string) bool
//	Edges() []*Edge                           // insertion order
//
//	// Traversal
//	Steps(name string) ([]Step, error)        // forward first, then backward
//	Peers(name string) ([]string, error)      // unique, sorted
//
//	// Construction & maintenance
//	FromDefinitions(map[string]Definition) (*Graph, error)
//	Clone() *Graph
//	Clear()
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyNoteName       – zero-length note name
//	ErrNoteNotFound        – missing note
//	ErrEdgeNotFound        – missing edge
//	ErrDuplicateDefinition – second definition of the same note
//	ErrNonFiniteOffset     – NaN or infinite cents
package core
