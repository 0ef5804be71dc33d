// Package maxmatch computes one maximum matching of a bipartite graph and
// checks caller-supplied matchings for consistency.
//
// What:
//
//   - HopcroftKarp: shortest augmenting paths in phases (BFS layering from
//     free Left vertices, then vertex-disjoint DFS augmentation).
//   - Dinic: unit-capacity max-flow on source→Left→Right→sink with level
//     graphs and blocking flows; saturated Left→Right arcs form the matching.
//   - Provider / ProviderFunc: the seam the enumerator uses to obtain its
//     first matching, so callers can plug in their own solver.
//   - Validate / Verify: reject matchings that double-cover a vertex, use a
//     pair that is not an edge, or admit an augmenting path (Berge).
//
// Both solvers return matchings of the same cardinality; which maximum
// matching comes out depends on the algorithm.
//
// Complexity:
//
//   - HopcroftKarp: Time O(E·√V), Memory O(V)
//   - Dinic:        Time O(E·√V) on unit capacities, Memory O(V + E)
//   - Verify:       Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrNilBase               base graph pointer is nil
//   - ErrInconsistentMatching  malformed or non-maximum matching
//   - context errors           cancellation between phases
package maxmatch
