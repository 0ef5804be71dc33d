// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices(), LeftVertices(), RightVertices() return IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex on the given side if missing.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and a known side.
//   - Stage 2: Under muVert write lock, check presence. An existing vertex on the
//     same side is a no-op; on the other side it is ErrSideConflict.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrUnknownSide, ErrSideConflict.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, side Side) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !side.Valid() {
		return fmt.Errorf("AddVertex(%q): %w", id, ErrUnknownSide)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, exists := g.vertices[id]; exists {
		if v.Side != side {
			return fmt.Errorf("AddVertex(%q, %s): %w", id, side, ErrSideConflict)
		}
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Side: side, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexSide returns the side of vertex id.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) VertexSide(id string) (Side, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("VertexSide(%q): %w", id, ErrVertexNotFound)
	}

	return v.Side, nil
}

// Vertex returns the stored vertex record. The Metadata map is live.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// RemoveVertex deletes a vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under muVert write lock, verify presence and delete the record.
//   - Stage 2: Under muEdgeAdj write lock, drop incident edges from the edge
//     catalog and from the mirrored adjacency of each neighbor.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%q): %w", id, ErrVertexNotFound)
	}
	delete(g.vertices, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// LeftVertices returns the Left side IDs sorted ascending.
func (g *Graph) LeftVertices() []string { return g.sideVertices(Left) }

// RightVertices returns the Right side IDs sorted ascending.
func (g *Graph) RightVertices() []string { return g.sideVertices(Right) }

func (g *Graph) sideVertices(side Side) []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.Side == side {
			ids = append(ids, id)
		}
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices on both sides.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// IsIsolated reports whether id has no incident edges.
func (g *Graph) IsIsolated(id string) (bool, error) {
	d, err := g.Degree(id)
	if err != nil {
		return false, err
	}

	return d == 0, nil
}
