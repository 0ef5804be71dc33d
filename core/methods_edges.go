// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (Left, Right).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - AddEdge holds muVert for the whole call so endpoint sides cannot change
//     underneath it; the edge catalog is mutated under muEdgeAdj.
package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddEdge connects a and b and returns the new edge ID.
//
// Steps:
//  1. Validate IDs; a == b is a same-side edge (ErrNotBipartite).
//  2. Resolve sides. Missing endpoints are created unless WithStrictVertices
//     is set: with both missing, a becomes Left and b Right; with one missing,
//     it takes the side opposite to the known endpoint.
//  3. Reject endpoints on the same side (ErrNotBipartite).
//  4. Under muEdgeAdj, reject a duplicate pair (ErrMultiEdgeNotAllowed),
//     generate the ID and store the edge normalized to (Left, Right).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyVertexID
	}
	if a == b {
		return "", fmt.Errorf("AddEdge(%q, %q): %w", a, b, ErrNotBipartite)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	va, okA := g.vertices[a]
	vb, okB := g.vertices[b]
	if g.strict && (!okA || !okB) {
		missing := a
		if okA {
			missing = b
		}
		return "", fmt.Errorf("AddEdge(%q, %q): vertex %q: %w", a, b, missing, ErrVertexNotFound)
	}
	switch {
	case !okA && !okB:
		va = g.newVertexLocked(a, Left)
		vb = g.newVertexLocked(b, Right)
	case !okA:
		va = g.newVertexLocked(a, vb.Side.Opposite())
	case !okB:
		vb = g.newVertexLocked(b, va.Side.Opposite())
	}
	if va.Side == vb.Side {
		return "", fmt.Errorf("AddEdge(%q, %q): both %s: %w", a, b, va.Side, ErrNotBipartite)
	}
	left, right := va.ID, vb.ID
	if va.Side == Right {
		left, right = right, left
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, dup := g.adjacency[left][right]; dup {
		return "", fmt.Errorf("AddEdge(%q, %q): %w", a, b, ErrMultiEdgeNotAllowed)
	}
	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, Left: left, Right: right}
	g.adjacency[left][right] = eid
	g.adjacency[right][left] = eid

	return eid, nil
}

// newVertexLocked registers a vertex; caller holds muVert for writing.
func (g *Graph) newVertexLocked(id string, side Side) *Vertex {
	v := &Vertex{ID: id, Side: side, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return v
}

// RemoveEdge deletes the edge with the given ID.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("RemoveEdge(%q): %w", eid, ErrEdgeNotFound)
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.Left], e.Right)
	delete(g.adjacency[e.Right], e.Left)

	return nil
}

// HasEdge reports whether a and b are adjacent, in either argument order.
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// EdgeBetween returns the edge joining a and b, in either argument order.
// Errors: ErrEdgeNotFound.
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return nil, fmt.Errorf("EdgeBetween(%q, %q): %w", a, b, ErrEdgeNotFound)
	}

	return g.edges[eid], nil
}

// GetEdge returns the edge with the given ID.
// Errors: ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("GetEdge(%q): %w", eid, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all edges sorted by (Left, Right).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID. Caller holds muEdgeAdj.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
