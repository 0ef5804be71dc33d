// Package enumerate lists every maximum-cardinality matching of a bipartite
// core.Graph exactly once.
//
// What:
//
//	Starting from one maximum matching M, each step builds the exchange
//	digraph of the current subgraph and looks for an alternating cycle, or
//	failing that a length-2 alternating path from an uncovered vertex.
//	Toggling it yields a new maximum matching M'. One edge e where M and M'
//	differ then splits the problem in two:
//
//	  - exclude: the subgraph minus e, seeded with whichever of M, M' avoids e;
//	  - force:   the subgraph minus both endpoints of e, seeded with the one
//	    that uses e (e dropped), with e added to the forced edges.
//
//	The two branches cover disjoint sets of matchings and every step records
//	exactly one new matching, so the output has no duplicates. A subgraph
//	with neither structure has a unique maximum matching and ends the branch.
//
// API:
//
//   - All:   collect every matching into a Result.
//   - Count: count matchings without keeping them.
//   - Each:  hand matchings to a callback; returning ErrStop ends early.
//
// Options:
//
//   - WithContext / WithLimit stop early; the Result is then partial with
//     Complete == false and a StopReason. Early stop is not an error.
//   - WithParallelism(n) runs branches on up to n goroutines.
//   - WithProvider / WithInitial choose the first matching.
//   - WithRepresentation picks the masked or bit-matrix subgraph view.
//   - WithLogger attaches a charmbracelet logger for Debug progress.
//
// Complexity:
//
//	O(|E|·(|V|+|E|)) per matching produced; recursion depth ≤ |E|.
//	Memory per live branch is O(|V|+|E|) bits for the views plus the mates.
//
// Errors:
//
//   - ErrInvalidGraph                  input is not a simple bipartite graph
//   - maxmatch.ErrInconsistentMatching initial matching is malformed or not maximum
//   - callback errors                  propagated from Each, other than ErrStop
package enumerate
