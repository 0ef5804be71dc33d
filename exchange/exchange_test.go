package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/exchange"
	"github.com/katalvlaran/bimatch/view"
)

// compile builds a Base from Left-Right pairs plus optional isolated Right vertices.
func compile(t *testing.T, pairs [][2]string, isolatedRight ...string) *view.Base {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	for _, id := range isolatedRight {
		require.NoError(t, g.AddVertex(id, core.Right))
	}
	b, err := view.Compile(g)
	require.NoError(t, err)

	return b
}

// matched returns mates holding the given edge indices.
func matched(b *view.Base, edges ...int) view.Mates {
	return view.NewMates(b).Toggle(b, edges)
}

var k22 = [][2]string{{"L0", "R0"}, {"L0", "R1"}, {"L1", "R0"}, {"L1", "R1"}}

func TestBuild_OrientsByMatching(t *testing.T) {
	b := compile(t, k22)
	sub := view.Full(b, view.KindMasked)
	d := exchange.Build(sub, matched(b, 0, 3))

	assert.Equal(t, 4, d.ArcCount())
	assert.Equal(t, sub.EdgeCount(), d.ArcCount())
	assert.Same(t, b, d.Base())
	// L0=0 L1=1 R0=2 R1=3
	assert.Equal(t, []exchange.Arc{{To: 2, Edge: 0}}, d.Out(0))
	assert.Equal(t, []exchange.Arc{{To: 3, Edge: 3}}, d.Out(1))
	assert.Equal(t, []exchange.Arc{{To: 1, Edge: 2}}, d.Out(2))
	assert.Equal(t, []exchange.Arc{{To: 0, Edge: 1}}, d.Out(3))
	assert.Equal(t, []exchange.Arc{{To: 3, Edge: 1}}, d.In(0))
	assert.Equal(t, 2, d.Degree(0))
}

func TestBuild_SkipsDeadEdges(t *testing.T) {
	b := compile(t, k22)
	sub := view.Full(b, view.KindMatrix).WithoutEdge(1)
	d := exchange.Build(sub, matched(b, 0, 3))
	assert.Equal(t, 3, d.ArcCount())
	assert.Empty(t, d.Out(3))
}

func TestFindCycle_AlternatingSquare(t *testing.T) {
	for _, kind := range []view.Kind{view.KindMasked, view.KindMatrix} {
		t.Run(kind.String(), func(t *testing.T) {
			b := compile(t, k22)
			m := matched(b, 0, 3)
			d := exchange.Build(view.Full(b, kind), m)

			c, ok := exchange.FindCycle(d)
			require.True(t, ok)
			assert.Equal(t, []int{0, 2, 1, 3, 0}, c.Vertices)
			assert.Equal(t, []int{0, 2, 3, 1}, c.Edges)
			assert.Equal(t, 4, c.Len())

			// Arcs alternate matched / unmatched.
			for i, e := range c.Edges {
				assert.Equal(t, i%2 == 0, m.Has(b, e), "edge %d", e)
			}

			next := m.Toggle(b, c.Edges)
			assert.Equal(t, "[L0-R1 L1-R0]", next.Matching(b).String())
		})
	}
}

func TestFindCycle_Acyclic(t *testing.T) {
	// One alternating chain L0→R0→L1→R1→L2 with no way back.
	b := compile(t, [][2]string{{"L0", "R0"}, {"L1", "R0"}, {"L1", "R1"}, {"L2", "R1"}})
	d := exchange.Build(view.Full(b, view.KindMasked), matched(b, 0, 2))

	_, ok := exchange.FindCycle(d)
	assert.False(t, ok)

	empty := exchange.Build(view.Full(compile(t, nil), view.KindMasked), nil)
	_, ok = exchange.FindCycle(empty)
	assert.False(t, ok)
}

func TestFindCycle_SkipsExploredBranches(t *testing.T) {
	// Hexagon L0-R0-L1-R1-L2-R2-L0 plus a pendant A0-R0. A0 sorts first, so
	// the search from R0 enters the dead end A0 before reaching L1.
	b := compile(t, [][2]string{
		{"A0", "R0"},
		{"L0", "R0"}, {"L0", "R2"},
		{"L1", "R0"}, {"L1", "R1"},
		{"L2", "R1"}, {"L2", "R2"},
	})
	// matched: L0-R0 (1), L1-R1 (4), L2-R2 (6)
	m := matched(b, 1, 4, 6)
	c, ok := exchange.FindCycle(exchange.Build(view.Full(b, view.KindMasked), m))
	require.True(t, ok)
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, c.Vertices[0], c.Vertices[len(c.Vertices)-1])
	a0, _ := b.Index("A0")
	assert.NotContains(t, c.Vertices, a0)

	next := m.Toggle(b, c.Edges)
	assert.Equal(t, 3, next.Size())
	assert.Equal(t, "[L0-R2 L1-R0 L2-R1]", next.Matching(b).String())
}

func TestFindPath_Forward(t *testing.T) {
	// L0=0 R0=1 R1=2; R1 is uncovered.
	b := compile(t, [][2]string{{"L0", "R0"}, {"L0", "R1"}})
	sub := view.Full(b, view.KindMasked)
	m := matched(b, 0)
	d := exchange.Build(sub, m)
	_, cyclic := exchange.FindCycle(d)
	require.False(t, cyclic)

	p, ok := exchange.FindPath(d, sub, m)
	require.True(t, ok)
	assert.False(t, p.Reversed)
	assert.Equal(t, [3]int{2, 0, 1}, p.Vertices)
	assert.Equal(t, 1, p.Unmatched)
	assert.Equal(t, 0, p.Matched)
	assert.Equal(t, "[L0-R1]", m.Toggle(b, p.Edges()).Matching(b).String())
}

func TestFindPath_Reversed(t *testing.T) {
	// L0=0 L1=1 R0=2; L1 is uncovered and only reachable against the arcs.
	b := compile(t, [][2]string{{"L0", "R0"}, {"L1", "R0"}})
	sub := view.Full(b, view.KindMatrix)
	m := matched(b, 0)
	d := exchange.Build(sub, m)

	p, ok := exchange.FindPath(d, sub, m)
	require.True(t, ok)
	assert.True(t, p.Reversed)
	assert.Equal(t, [3]int{0, 2, 1}, p.Vertices)
	assert.Equal(t, 1, p.Unmatched)
	assert.Equal(t, 0, p.Matched)
	assert.Equal(t, "[L1-R0]", m.Toggle(b, p.Edges()).Matching(b).String())
}

func TestFindPath_Terminal(t *testing.T) {
	b := compile(t, [][2]string{{"L0", "R0"}}, "R9")
	sub := view.Full(b, view.KindMasked)
	m := matched(b, 0)

	_, ok := exchange.FindPath(exchange.Build(sub, m), sub, m)
	assert.False(t, ok, "isolated uncovered vertices are skipped")

	// A removed vertex is never a candidate.
	b = compile(t, [][2]string{{"L0", "R0"}, {"L0", "R1"}})
	r1, _ := b.Index("R1")
	sub = view.Full(b, view.KindMasked).WithoutVertices(r1)
	m = matched(b, 0)
	_, ok = exchange.FindPath(exchange.Build(sub, m), sub, m)
	assert.False(t, ok)
}
