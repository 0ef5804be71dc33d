// File: methods_clone.go
// Role: Cloning, clearing and non-mutating induced subgraphs.
//
// Determinism:
//   - Clones carry nextEdgeID so that edge IDs keep their textual sequence.
//
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.
package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same options and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		strict:    g.strict,
		vertices:  make(map[string]*Vertex, len(g.vertices)),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string, len(g.vertices)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Side: v.Side, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of vertices, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, Left: e.Left, Right: e.Right}
		clone.adjacency[e.Left][e.Right] = eid
		clone.adjacency[e.Right][e.Left] = eid
	}

	return clone
}

// Clear resets the graph to an empty state while preserving options.
// Edge IDs resume from "e1".
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// InducedSubgraph returns a new Graph induced by the vertex IDs with keep[id] == true:
// kept vertices keep their side, and every edge with both endpoints kept is copied
// with its original ID. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := &Graph{
		strict:    g.strict,
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Side: v.Side, Metadata: v.Metadata}
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for eid, e := range g.edges {
		if !keep[e.Left] || !keep[e.Right] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, Left: e.Left, Right: e.Right}
		out.adjacency[e.Left][e.Right] = eid
		out.adjacency[e.Right][e.Left] = eid
	}
	g.muEdgeAdj.RUnlock()

	return out
}
