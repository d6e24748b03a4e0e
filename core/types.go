// Package core defines the central Graph, Note, Edge and Step types of the
// note-offset graph, and provides thread-safe primitives for building and
// querying it.
//
// All core APIs use separate sync.RWMutex locks internally (muNotes for the
// note catalog, muEdgeAdj for edges and adjacency), so a graph may be shared
// between goroutines.
//
// This file declares Note, Edge, Step, Definition, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNoteName       - note name is the empty string.
//	ErrNoteNotFound        - requested note does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrDuplicateDefinition - a note already carries a definition.
//	ErrNonFiniteOffset     - offset is NaN or ±Inf.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNoteName indicates that the provided note name is empty.
	ErrEmptyNoteName = errors.New("core: note name is empty")

	// ErrNoteNotFound indicates an operation referenced a non-existent note.
	ErrNoteNotFound = errors.New("core: note not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateDefinition indicates a second definition for the same note.
	ErrDuplicateDefinition = errors.New("core: note already defined")

	// ErrNonFiniteOffset indicates a NaN or infinite offset in cents.
	ErrNonFiniteOffset = errors.New("core: offset is not finite")
)

// Note represents a named note in the graph.
//
// Name uniquely identifies this Note within its Graph. Names are opaque:
// the graph never interprets display markers such as "{sharp}".
type Note struct {
	// Name is the unique identifier for this Note.
	Name string
}

// Edge is a single note definition: From lies Cents cents above To.
//
// Edges are directed (From is the defined note, To its base), but the
// offset is invertible, so traversal happens in both directions (see Steps).
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the defined note.
	From string

	// To is the base note the definition is relative to.
	To string

	// Cents is the offset of From above To.
	Cents float64

	// seq orders edges by insertion; IDs compare lexicographically otherwise.
	seq uint64
}

// Definition is the raw form of one note definition: the base note and the
// offset (in cents) of the defined note above it.
type Definition struct {
	Base  string
	Cents float64
}

// Step is an edge seen from one of its endpoints.
//
// Delta is the amount to add to the offset of the note the step was
// requested for to obtain the offset of Peer.
type Step struct {
	// Edge is the underlying definition edge.
	Edge *Edge

	// Peer is the note at the other end of Edge.
	Peer string

	// Delta is the signed offset from the origin note to Peer.
	Delta float64

	// Forward is true when the origin note is the defined note (Edge.From).
	Forward bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the note and edge catalogs.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory note-offset graph.
//
// muNotes protects the notes map; muEdgeAdj protects edges, definitions and
// adjacency. nextEdgeID is an atomic counter for unique Edge.ID generation.
// Lock order is always muNotes -> muEdgeAdj.
type Graph struct {
	muNotes   sync.RWMutex // guards notes
	muEdgeAdj sync.RWMutex // guards edges, defined and adjacency

	capacity int

	// Storage
	nextEdgeID uint64            // atomic edge ID generator
	notes      map[string]*Note  // name → Note
	edges      map[string]*Edge  // edge ID → Edge
	defined    map[string]string // note name → ID of its own definition edge

	// adjacency[note][edgeID] = struct{}{} for every edge incident to note
	// in either direction.
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.notes = make(map[string]*Note, g.capacity)
	g.edges = make(map[string]*Edge, g.capacity)
	g.defined = make(map[string]string, g.capacity)
	g.adjacency = make(map[string]map[string]struct{}, g.capacity)

	return g
}
