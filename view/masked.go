package view

import "github.com/bits-and-blooms/bitset"

// Masked is a Subgraph made of two removal masks over a shared Base.
// Removing a vertex also marks its incident edges, so HasEdge is a single bit test.
type Masked struct {
	base     *Base
	deadV    *bitset.BitSet
	deadE    *bitset.BitSet
	vertices int
	edges    int
}

var _ Subgraph = (*Masked)(nil)

// NewMasked returns the full view of b.
func NewMasked(b *Base) *Masked {
	return &Masked{
		base:     b,
		deadV:    bitset.New(uint(b.VertexCount())),
		deadE:    bitset.New(uint(b.EdgeCount())),
		vertices: b.VertexCount(),
		edges:    b.EdgeCount(),
	}
}

// Base returns the shared base graph.
func (s *Masked) Base() *Base { return s.base }

// HasVertex reports whether v is live.
func (s *Masked) HasVertex(v int) bool {
	return v >= 0 && v < s.base.VertexCount() && !s.deadV.Test(uint(v))
}

// HasEdge reports whether e is live.
func (s *Masked) HasEdge(e int) bool {
	return e >= 0 && e < s.base.EdgeCount() && !s.deadE.Test(uint(e))
}

// VertexCount returns the number of live vertices.
func (s *Masked) VertexCount() int { return s.vertices }

// EdgeCount returns the number of live edges.
func (s *Masked) EdgeCount() int { return s.edges }

// Degree counts live edges incident to v. O(deg_base(v)).
func (s *Masked) Degree(v int) int {
	if !s.HasVertex(v) {
		return 0
	}
	d := 0
	for _, e := range s.base.Incident(v) {
		if !s.deadE.Test(uint(e)) {
			d++
		}
	}

	return d
}

// ForEachEdge visits live edges in ascending order.
func (s *Masked) ForEachEdge(fn func(e int)) {
	for e := 0; e < s.base.EdgeCount(); e++ {
		if !s.deadE.Test(uint(e)) {
			fn(e)
		}
	}
}

// WithoutEdge returns a view with e removed. The receiver is unchanged.
func (s *Masked) WithoutEdge(e int) Subgraph {
	if !s.HasEdge(e) {
		return s
	}
	out := &Masked{
		base:     s.base,
		deadV:    s.deadV,
		deadE:    s.deadE.Clone(),
		vertices: s.vertices,
		edges:    s.edges - 1,
	}
	out.deadE.Set(uint(e))

	return out
}

// WithoutVertices returns a view with vs and their incident edges removed.
// Only the masks are cloned; the base is shared.
func (s *Masked) WithoutVertices(vs ...int) Subgraph {
	out := &Masked{
		base:     s.base,
		deadV:    s.deadV.Clone(),
		deadE:    s.deadE.Clone(),
		vertices: s.vertices,
		edges:    s.edges,
	}
	for _, v := range vs {
		if !out.HasVertex(v) {
			continue
		}
		out.deadV.Set(uint(v))
		out.vertices--
		for _, e := range s.base.Incident(v) {
			if !out.deadE.Test(uint(e)) {
				out.deadE.Set(uint(e))
				out.edges--
			}
		}
	}

	return out
}
