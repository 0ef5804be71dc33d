// Package core defines the central bipartite Graph, Vertex, Edge and Side
// types, and provides thread-safe primitives for building and querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across goroutines
// with minimal contention.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a helper received a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSideConflict indicates a vertex was re-declared on the opposite side.
	ErrSideConflict = errors.New("core: vertex already declared on the other side")

	// ErrNotBipartite indicates an edge whose endpoints lie on the same side.
	ErrNotBipartite = errors.New("core: edge endpoints on the same side")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnknownSide indicates a Side value outside {Left, Right}.
	ErrUnknownSide = errors.New("core: unknown side")
)

// Side tags a vertex with its part of the bipartition.
type Side uint8

const (
	// Left is the key side: matchings are keyed by their Left endpoint.
	Left Side = iota
	// Right is the opposite side.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side of the bipartition.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}

	return Left
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool { return s == Left || s == Right }

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; Side never changes
// after insertion. Metadata stores arbitrary key-value data and is shared on
// clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Side is the part of the bipartition this vertex belongs to.
	Side Side

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between a Left and a Right vertex.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// Left is the ID of the Left endpoint.
	Left string

	// Right is the ID of the Right endpoint.
	Right string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictVertices makes AddEdge reject endpoints that were not declared
// with AddVertex beforehand, instead of creating them.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the core in-memory bipartite graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// adjacency. nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	strict bool // AddEdge requires declared endpoints

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty bipartite Graph.
// By default AddEdge creates missing endpoints (first argument Left, second Right).
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
