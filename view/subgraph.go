package view

// Kind selects a Subgraph representation.
type Kind int

const (
	// KindMasked layers removed-vertex and removed-edge bitsets over the edge list.
	KindMasked Kind = iota
	// KindMatrix keeps one bitset row of live Right neighbors per Left vertex.
	KindMatrix
)

// String returns "masked" or "matrix".
func (k Kind) String() string {
	switch k {
	case KindMasked:
		return "masked"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Subgraph is a read-only view of a Base after some vertex and edge removals.
//
// Implementations must never mutate a view observable by another holder:
// WithoutEdge and WithoutVertices return new values and leave the receiver intact.
type Subgraph interface {
	// Base returns the shared immutable base graph.
	Base() *Base
	// HasVertex reports whether vertex index v is still present.
	HasVertex(v int) bool
	// HasEdge reports whether edge index e is still present.
	HasEdge(e int) bool
	// VertexCount returns the number of live vertices.
	VertexCount() int
	// EdgeCount returns the number of live edges.
	EdgeCount() int
	// Degree returns the number of live edges incident to v.
	Degree(v int) int
	// ForEachEdge calls fn for every live edge in ascending index order.
	ForEachEdge(fn func(e int))
	// WithoutEdge returns the view minus edge e; vertices are retained.
	WithoutEdge(e int) Subgraph
	// WithoutVertices returns the view minus the given vertices and their edges.
	WithoutVertices(vs ...int) Subgraph
}

// Full returns the complete view of b in the requested representation.
func Full(b *Base, kind Kind) Subgraph {
	if kind == KindMatrix {
		return NewMatrix(b)
	}

	return NewMasked(b)
}
