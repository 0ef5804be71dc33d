package exchange

import "github.com/katalvlaran/bimatch/view"

// Path is a length-2 alternating path of the exchange digraph in forward
// orientation: Vertices[0]→Vertices[1]→Vertices[2] are arcs of the digraph.
// The uncovered endpoint is Vertices[0], or Vertices[2] when Reversed.
//
// Toggling removes Matched and adds Unmatched: the uncovered endpoint becomes
// covered and the far end of Matched becomes exposed.
type Path struct {
	Vertices  [3]int
	Unmatched int
	Matched   int
	// Reversed is set when the path was found against the arcs (from an
	// uncovered Left vertex) and normalized afterwards.
	Reversed bool
}

// Edges returns the two base edges in path order.
func (p Path) Edges() []int { return []int{p.Unmatched, p.Matched} }

// FindPath searches an acyclic exchange digraph for a length-2 alternating
// path from a vertex of sub that m leaves uncovered.
//
// Steps:
//  1. Scan live, uncovered vertices in ascending order; skip isolated ones.
//  2. Forward: first v→w→x along successor lists.
//  3. Otherwise backward: first v←w←x along predecessor lists, reported
//     as x→w→v with Reversed set.
//  4. Move to the next candidate only when both directions fail.
//
// Returns false when no candidate yields a path: m is then the only
// maximum matching of sub.
func FindPath(d *Digraph, sub view.Subgraph, m view.Mates) (Path, bool) {
	covered := m.Covered(sub.Base())
	for v := 0; v < d.VertexCount(); v++ {
		if covered[v] || !sub.HasVertex(v) || d.Degree(v) == 0 {
			continue
		}
		if p, ok := twoStep(d.out, v); ok {
			return p, true
		}
		if p, ok := twoStep(d.in, v); ok {
			p.Vertices[0], p.Vertices[2] = p.Vertices[2], p.Vertices[0]
			p.Reversed = true

			return p, true
		}
	}

	return Path{}, false
}

// twoStep returns the first v→w→x walk in adj. From an uncovered vertex
// the first hop is always the unmatched edge, in either direction.
func twoStep(adj [][]Arc, v int) (Path, bool) {
	for _, a := range adj[v] {
		if len(adj[a.To]) == 0 {
			continue
		}
		b := adj[a.To][0]

		return Path{
			Vertices:  [3]int{v, a.To, b.To},
			Unmatched: a.Edge,
			Matched:   b.Edge,
		}, true
	}

	return Path{}, false
}
