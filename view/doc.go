// Package view compiles a bipartite graph into an immutable, integer-indexed
// Base and exposes cheap copy-on-write Subgraph views over it.
//
// What:
//
//   - Base: vertex IDs mapped to dense indices (Left side first, each side
//     sorted by ID) and edges indexed 0..m-1 sorted by (left, right).
//   - Subgraph: the active graph of one enumeration step. WithoutEdge and
//     WithoutVertices return a NEW view; the receiver is never modified, so
//     sibling branches of a recursion can hold their parent concurrently.
//   - Two interchangeable representations of the same interface:
//     Masked (removed-vertex / removed-edge bitsets over the edge list) and
//     Matrix (one bitset row of live Right neighbors per Left vertex, rows
//     shared until written).
//   - Mates: a matching as a Left-index → Right-index vector.
//
// Why:
//
//	Deep-copying a graph for each branch of an exponential search dominates
//	the running time; masks layered over one shared base make each derivation
//	O(deg) (Masked) or O(rows touched) (Matrix) and keep branches independent.
//
// Complexity:
//
//   - Compile:         O(V log V + E log E)
//   - WithoutEdge:     O(E/64) Masked, O(L + R/64) Matrix
//   - WithoutVertices: O(V/64 + E/64 + deg) Masked, O(L·R/64) worst case Matrix
//
// Errors:
//
//   - ErrInvalidGraph wraps core.ErrNotBipartite, core.ErrSideConflict,
//     core.ErrVertexNotFound, core.ErrEmptyVertexID or
//     core.ErrMultiEdgeNotAllowed when Compile rejects its Source.
package view
