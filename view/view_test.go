package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/view"
)

// square builds K(2,2) plus an isolated Right vertex R2:
//
//	L0 - R0, L0 - R1, L1 - R0, L1 - R1
func square(t *testing.T) *view.Base {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"L0", "R0"}, {"L0", "R1"}, {"L1", "R0"}, {"L1", "R1"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("R2", core.Right))

	b, err := view.Compile(g)
	require.NoError(t, err)

	return b
}

func TestCompile_Indexing(t *testing.T) {
	b := square(t)

	assert.Equal(t, 5, b.VertexCount())
	assert.Equal(t, 2, b.LeftCount())
	assert.Equal(t, 3, b.RightCount())
	assert.Equal(t, 4, b.EdgeCount())

	l1, ok := b.Index("L1")
	require.True(t, ok)
	assert.Equal(t, 1, l1)
	assert.True(t, b.IsLeft(l1))
	assert.Equal(t, core.Left, b.Side(l1))

	r0, ok := b.Index("R0")
	require.True(t, ok)
	assert.Equal(t, 2, r0)
	assert.Equal(t, core.Right, b.Side(r0))

	// Edges are sorted by (left, right).
	assert.Equal(t, core.Pair{Left: "L0", Right: "R0"}, b.Pair(0))
	assert.Equal(t, core.Pair{Left: "L1", Right: "R1"}, b.Pair(3))

	e, ok := b.EdgeIndex(l1, r0)
	require.True(t, ok)
	assert.Equal(t, 2, e)
	assert.Equal(t, r0, b.Other(e, l1))
	assert.Equal(t, l1, b.Other(e, r0))
	assert.Equal(t, []int{0, 2}, b.Incident(r0))

	r2, _ := b.Index("R2")
	assert.Empty(t, b.Incident(r2))
}

// stubSource lets tests feed Compile inputs a core.Graph would refuse.
type stubSource struct {
	left, right []string
	edges       []*core.Edge
}

func (s stubSource) LeftVertices() []string  { return s.left }
func (s stubSource) RightVertices() []string { return s.right }
func (s stubSource) Edges() []*core.Edge     { return s.edges }

func TestCompile_Rejects(t *testing.T) {
	cases := []struct {
		name string
		src  view.Source
		want error
	}{
		{"nil graph", (*core.Graph)(nil), core.ErrNilGraph},
		{"empty id", stubSource{left: []string{""}}, core.ErrEmptyVertexID},
		{"both sides", stubSource{left: []string{"A"}, right: []string{"A"}}, core.ErrSideConflict},
		{"unknown endpoint", stubSource{
			left:  []string{"A"},
			right: []string{"B"},
			edges: []*core.Edge{{ID: "e1", Left: "A", Right: "Z"}},
		}, core.ErrVertexNotFound},
		{"same side", stubSource{
			left:  []string{"A", "C"},
			right: []string{"B"},
			edges: []*core.Edge{{ID: "e1", Left: "A", Right: "C"}},
		}, core.ErrNotBipartite},
		{"duplicate pair", stubSource{
			left:  []string{"A"},
			right: []string{"B"},
			edges: []*core.Edge{{ID: "e1", Left: "A", Right: "B"}, {ID: "e2", Left: "B", Right: "A"}},
		}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := view.Compile(tc.src)
			assert.ErrorIs(t, err, view.ErrInvalidGraph)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMates_ToggleAndConvert(t *testing.T) {
	b := square(t)
	m := view.NewMates(b)
	assert.Equal(t, 0, m.Size())

	// Diagonal {L0-R0, L1-R1} then toggle the 4-cycle into {L0-R1, L1-R0}.
	m = m.Toggle(b, []int{0, 3})
	assert.Equal(t, 2, m.Size())
	assert.True(t, m.Has(b, 0))
	assert.Equal(t, "[L0-R0 L1-R1]", m.Matching(b).String())

	next := m.Toggle(b, []int{0, 1, 3, 2})
	assert.Equal(t, "[L0-R1 L1-R0]", next.Matching(b).String())
	assert.Equal(t, "[L0-R0 L1-R1]", m.Matching(b).String(), "receiver must not change")

	cov := next.Without(0).Covered(b)
	assert.Equal(t, []bool{false, true, true, false, false}, cov)
}

func TestSubgraph_Representations(t *testing.T) {
	for _, kind := range []view.Kind{view.KindMasked, view.KindMatrix} {
		t.Run(kind.String(), func(t *testing.T) {
			b := square(t)
			full := view.Full(b, kind)
			assert.Same(t, b, full.Base())
			assert.Equal(t, 5, full.VertexCount())
			assert.Equal(t, 4, full.EdgeCount())

			l0, _ := b.Index("L0")
			r0, _ := b.Index("R0")
			r2, _ := b.Index("R2")
			assert.Equal(t, 2, full.Degree(l0))
			assert.Equal(t, 2, full.Degree(r0))
			assert.Equal(t, 0, full.Degree(r2))

			// Edge removal keeps vertices and leaves the parent intact.
			noE := full.WithoutEdge(0)
			assert.False(t, noE.HasEdge(0))
			assert.True(t, full.HasEdge(0))
			assert.Equal(t, 3, noE.EdgeCount())
			assert.Equal(t, 5, noE.VertexCount())
			assert.Equal(t, 1, noE.Degree(l0))
			assert.Equal(t, 1, noE.Degree(r0))
			assert.Same(t, noE, noE.WithoutEdge(0), "removing a dead edge is a no-op")

			// Vertex removal drops incident edges.
			noV := noE.WithoutVertices(l0, r0)
			assert.False(t, noV.HasVertex(l0))
			assert.False(t, noV.HasVertex(r0))
			assert.Equal(t, 3, noV.VertexCount())
			assert.Equal(t, 1, noV.EdgeCount())
			assert.Equal(t, 3, noE.EdgeCount())

			var live []int
			noV.ForEachEdge(func(e int) { live = append(live, e) })
			assert.Equal(t, []int{3}, live)

			live = nil
			full.ForEachEdge(func(e int) { live = append(live, e) })
			assert.Equal(t, []int{0, 1, 2, 3}, live)

			assert.False(t, full.HasVertex(-1))
			assert.False(t, full.HasEdge(99))
			assert.Equal(t, 0, noV.Degree(l0))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "masked", view.KindMasked.String())
	assert.Equal(t, "matrix", view.KindMatrix.String())
	assert.Equal(t, "unknown", view.Kind(9).String())
}
