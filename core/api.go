// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: policy flags and a deterministic Stats snapshot.

package core

// GraphStats is an immutable-by-convention snapshot of a Graph.
type GraphStats struct {
	LeftCount      int  // vertices on the Left side
	RightCount     int  // vertices on the Right side
	EdgeCount      int  // total edges
	IsolatedCount  int  // vertices with no incident edge
	StrictVertices bool // WithStrictVertices policy
}

// StrictVertices reports whether AddEdge requires pre-declared endpoints.
func (g *Graph) StrictVertices() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.strict
}

// Stats produces a read-only snapshot of side sizes, edge count and isolated vertices.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, count vertices per side.
//   - Stage 2: Under muEdgeAdj.RLock (nested, lock order muVert -> muEdgeAdj),
//     count edges and isolated vertices.
//
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	stats := GraphStats{StrictVertices: g.strict}
	for _, v := range g.vertices {
		if v.Side == Left {
			stats.LeftCount++
		} else {
			stats.RightCount++
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
