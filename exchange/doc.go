// Package exchange builds the exchange digraph of a bipartite subgraph with
// respect to a matching and searches it for the two structures that turn one
// maximum matching into another of the same size.
//
// What:
//
//   - Build: orients every live edge. A matched edge {l, r} becomes the arc
//     l→r, an unmatched one the arc r→l. Any directed path therefore
//     alternates matched and unmatched edges.
//   - FindCycle: three-colour (White, Gray, Black) depth-first search with an
//     explicit stack; the first back-edge closes an alternating cycle.
//   - FindPath: for an acyclic digraph, the first length-2 alternating path
//     starting at a vertex left uncovered by the matching, searched forward
//     first and then against the arcs.
//
// Toggling the edges of either result yields a different matching with the
// same cardinality.
//
// Determinism:
//
//	Vertices are scanned in ascending index order and successors are kept in
//	ascending order, so the same (subgraph, matching) always yields the same
//	cycle or path.
//
// Complexity:
//
//   - Build:     Time O(V + E), Memory O(V + E)
//   - FindCycle: Time O(V + E), Memory O(V)
//   - FindPath:  Time O(V + E) worst case, Memory O(V)
package exchange
