package view

import "github.com/bits-and-blooms/bitset"

// Matrix is a Subgraph backed by a Left×Right bit matrix: rows[l] holds the
// live Right neighbors of Left vertex l as offsets (r - LeftCount).
// Rows are shared between views and cloned only when a derivation writes them.
type Matrix struct {
	base     *Base
	deadV    *bitset.BitSet
	rows     []*bitset.BitSet
	vertices int
	edges    int
}

var _ Subgraph = (*Matrix)(nil)

// NewMatrix returns the full bit-matrix view of b.
func NewMatrix(b *Base) *Matrix {
	rows := make([]*bitset.BitSet, b.LeftCount())
	for l := range rows {
		rows[l] = bitset.New(uint(b.RightCount()))
	}
	for e := 0; e < b.EdgeCount(); e++ {
		en := b.Ends(e)
		rows[en.L].Set(uint(en.R - b.LeftCount()))
	}

	return &Matrix{
		base:     b,
		deadV:    bitset.New(uint(b.VertexCount())),
		rows:     rows,
		vertices: b.VertexCount(),
		edges:    b.EdgeCount(),
	}
}

// Base returns the shared base graph.
func (s *Matrix) Base() *Base { return s.base }

// HasVertex reports whether v is live.
func (s *Matrix) HasVertex(v int) bool {
	return v >= 0 && v < s.base.VertexCount() && !s.deadV.Test(uint(v))
}

// HasEdge reports whether e is live.
func (s *Matrix) HasEdge(e int) bool {
	if e < 0 || e >= s.base.EdgeCount() {
		return false
	}
	en := s.base.Ends(e)

	return s.rows[en.L].Test(uint(en.R - s.base.LeftCount()))
}

// VertexCount returns the number of live vertices.
func (s *Matrix) VertexCount() int { return s.vertices }

// EdgeCount returns the number of live edges.
func (s *Matrix) EdgeCount() int { return s.edges }

// Degree is a row popcount for Left vertices and a column scan for Right ones.
func (s *Matrix) Degree(v int) int {
	if !s.HasVertex(v) {
		return 0
	}
	if s.base.IsLeft(v) {
		return int(s.rows[v].Count())
	}
	col := uint(v - s.base.LeftCount())
	d := 0
	for _, row := range s.rows {
		if row.Test(col) {
			d++
		}
	}

	return d
}

// ForEachEdge visits live edges row by row, which is ascending edge order
// because Base sorts edges by (left, right).
func (s *Matrix) ForEachEdge(fn func(e int)) {
	nLeft := s.base.LeftCount()
	for l, row := range s.rows {
		for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
			if e, found := s.base.EdgeIndex(l, nLeft+int(i)); found {
				fn(e)
			}
		}
	}
}

// WithoutEdge returns a view with e removed; only row l is cloned.
func (s *Matrix) WithoutEdge(e int) Subgraph {
	if !s.HasEdge(e) {
		return s
	}
	en := s.base.Ends(e)
	out := s.derive(s.deadV)
	out.rows[en.L] = s.rows[en.L].Clone().Clear(uint(en.R - s.base.LeftCount()))
	out.edges--

	return out
}

// WithoutVertices removes vs and their edges. A Left vertex drops its row,
// a Right vertex clears its column in every row that has it.
func (s *Matrix) WithoutVertices(vs ...int) Subgraph {
	out := s.derive(s.deadV.Clone())
	nLeft := s.base.LeftCount()
	for _, v := range vs {
		if !out.HasVertex(v) {
			continue
		}
		out.deadV.Set(uint(v))
		out.vertices--
		if s.base.IsLeft(v) {
			out.edges -= int(out.rows[v].Count())
			out.rows[v] = bitset.New(0)
			continue
		}
		col := uint(v - nLeft)
		for l, row := range out.rows {
			if row.Test(col) {
				out.rows[l] = row.Clone().Clear(col)
				out.edges--
			}
		}
	}

	return out
}

// derive copies the row table (pointers only) for a new view.
func (s *Matrix) derive(deadV *bitset.BitSet) *Matrix {
	rows := make([]*bitset.BitSet, len(s.rows))
	copy(rows, s.rows)

	return &Matrix{
		base:     s.base,
		deadV:    deadV,
		rows:     rows,
		vertices: s.vertices,
		edges:    s.edges,
	}
}
