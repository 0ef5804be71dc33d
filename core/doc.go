// Package core provides a thread-safe in-memory bipartite Graph and the
// Matching value type shared by every other bimatch package.
//
// The Graph G = (L ∪ R, E) keeps two disjoint vertex sides and a simple edge
// set in which every edge joins a Left vertex to a Right vertex:
//
//   - Every Vertex carries a Side tag (Left or Right) fixed at insertion.
//   - AddEdge(a, b) normalizes the pair so that Edge.Left is always the Left
//     endpoint; an edge between two vertices of the same side is rejected
//     with ErrNotBipartite.
//   - Parallel edges and self-loops never exist (ErrMultiEdgeNotAllowed).
//   - Collision-free edge IDs ("e1", "e2", …) from an atomic counter.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), always acquired in that order.
//
// Deterministic iteration:
//
//	Vertices(), LeftVertices(), RightVertices(), Neighbors() → sorted IDs
//	Edges()                                                   → sorted by (Left, Right)
//
// Configuration Options (GraphOption):
//
//	– WithStrictVertices()
//	    AddEdge no longer creates missing endpoints; both must have been
//	    declared with AddVertex (else ErrVertexNotFound).
//
// Core Methods:
//
//	AddVertex(id string, side Side) error   // O(1), idempotent for the same side
//	RemoveVertex(id string) error           // O(deg(v))
//	AddEdge(a, b string) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(a, b string) bool               // either argument order
//	Degree(id string) (int, error)
//	IsIsolated(id string) (bool, error)
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Matching is the exchange format of the enumeration: a sequence of
// Pair{Left, Right} kept sorted by Left ID. Key() quotes every ID, so two
// matchings share a key exactly when they are equal as edge sets.
//
// Errors:
//
//	ErrNilGraph            – nil *Graph passed to a helper
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrSideConflict        – vertex re-declared on the other side
//	ErrNotBipartite        – edge between two vertices of the same side
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
