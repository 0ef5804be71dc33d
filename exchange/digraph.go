package exchange

import "github.com/katalvlaran/bimatch/view"

// Arc is one oriented edge of the exchange digraph.
type Arc struct {
	To   int // head vertex index
	Edge int // base edge index the arc was built from
}

// Digraph is the exchange digraph of a (subgraph, matching) pair.
// It is rebuilt for every step and never mutated after Build returns.
type Digraph struct {
	base *view.Base
	out  [][]Arc
	in   [][]Arc
	arcs int
}

// Build orients every live edge of sub against m: matched edges point
// Left→Right, unmatched edges Right→Left.
//
// Successor and predecessor lists come out in ascending vertex order because
// ForEachEdge walks edges sorted by (left, right).
func Build(sub view.Subgraph, m view.Mates) *Digraph {
	b := sub.Base()
	d := &Digraph{
		base: b,
		out:  make([][]Arc, b.VertexCount()),
		in:   make([][]Arc, b.VertexCount()),
	}
	sub.ForEachEdge(func(e int) {
		en := b.Ends(e)
		from, to := en.R, en.L
		if m[en.L] == en.R {
			from, to = en.L, en.R
		}
		d.out[from] = append(d.out[from], Arc{To: to, Edge: e})
		d.in[to] = append(d.in[to], Arc{To: from, Edge: e})
		d.arcs++
	})

	return d
}

// Base returns the base graph the digraph indexes into.
func (d *Digraph) Base() *view.Base { return d.base }

// VertexCount returns the size of the vertex index space.
func (d *Digraph) VertexCount() int { return len(d.out) }

// ArcCount returns the number of arcs, equal to the live edge count.
func (d *Digraph) ArcCount() int { return d.arcs }

// Out returns the arcs leaving v. The slice is shared; do not modify it.
func (d *Digraph) Out(v int) []Arc { return d.out[v] }

// In returns the arcs entering v, each with To set to the tail vertex.
// The slice is shared; do not modify it.
func (d *Digraph) In(v int) []Arc { return d.in[v] }

// Degree returns the number of arcs touching v in either direction.
func (d *Digraph) Degree(v int) int { return len(d.out[v]) + len(d.in[v]) }
