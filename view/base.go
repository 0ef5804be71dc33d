package view

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bimatch/core"
)

// ErrInvalidGraph is returned by Compile when the source is not a simple bipartite graph.
var ErrInvalidGraph = errors.New("view: invalid bipartite graph")

// Source is the read surface Compile needs. *core.Graph satisfies it.
type Source interface {
	LeftVertices() []string
	RightVertices() []string
	Edges() []*core.Edge
}

// Ends holds the endpoints of an edge as vertex indices.
type Ends struct {
	L int // Left vertex index, in [0, LeftCount)
	R int // Right vertex index, in [LeftCount, VertexCount)
}

// Base is an immutable indexed snapshot of a bipartite graph.
// Indices [0, LeftCount) are Left vertices, [LeftCount, VertexCount) Right ones.
// Base is safe for concurrent readers.
type Base struct {
	ids    []string
	index  map[string]int
	nLeft  int
	ends   []Ends
	inc    [][]int // vertex → incident edge indices, ascending
	lookup map[uint64]int
}

// Compile validates src and builds its Base.
//
// Steps:
//  1. Index Left IDs then Right IDs (each sorted); reject empty IDs and IDs on both sides.
//  2. Resolve every edge to (left, right) indices; an edge whose endpoints sit on
//     the same side is ErrNotBipartite, an unknown endpoint ErrVertexNotFound,
//     a repeated pair ErrMultiEdgeNotAllowed.
//  3. Sort edges by (left, right) and build incidence lists.
//
// Every failure wraps both ErrInvalidGraph and the specific core sentinel.
func Compile(src Source) (*Base, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, core.ErrNilGraph)
	}
	if g, ok := src.(*core.Graph); ok && g == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, core.ErrNilGraph)
	}

	lefts := sortedCopy(src.LeftVertices())
	rights := sortedCopy(src.RightVertices())
	b := &Base{
		ids:   make([]string, 0, len(lefts)+len(rights)),
		index: make(map[string]int, len(lefts)+len(rights)),
		nLeft: len(lefts),
	}
	for _, side := range [][]string{lefts, rights} {
		for _, id := range side {
			if id == "" {
				return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, core.ErrEmptyVertexID)
			}
			if _, dup := b.index[id]; dup {
				return nil, fmt.Errorf("%w: vertex %q: %w", ErrInvalidGraph, id, core.ErrSideConflict)
			}
			b.index[id] = len(b.ids)
			b.ids = append(b.ids, id)
		}
	}

	edges := src.Edges()
	b.ends = make([]Ends, 0, len(edges))
	seen := make(map[uint64]struct{}, len(edges))
	for _, e := range edges {
		if e == nil {
			continue
		}
		u, okU := b.index[e.Left]
		v, okV := b.index[e.Right]
		if !okU || !okV {
			missing := e.Left
			if okU {
				missing = e.Right
			}
			return nil, fmt.Errorf("%w: edge %s: vertex %q: %w", ErrInvalidGraph, e.ID, missing, core.ErrVertexNotFound)
		}
		if b.IsLeft(u) == b.IsLeft(v) {
			return nil, fmt.Errorf("%w: edge %s (%q, %q): %w", ErrInvalidGraph, e.ID, e.Left, e.Right, core.ErrNotBipartite)
		}
		if !b.IsLeft(u) {
			u, v = v, u
		}
		k := pairKey(u, v)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: edge %s (%q, %q): %w", ErrInvalidGraph, e.ID, e.Left, e.Right, core.ErrMultiEdgeNotAllowed)
		}
		seen[k] = struct{}{}
		b.ends = append(b.ends, Ends{L: u, R: v})
	}
	sort.Slice(b.ends, func(i, j int) bool {
		if b.ends[i].L != b.ends[j].L {
			return b.ends[i].L < b.ends[j].L
		}
		return b.ends[i].R < b.ends[j].R
	})

	b.inc = make([][]int, len(b.ids))
	b.lookup = make(map[uint64]int, len(b.ends))
	for e, en := range b.ends {
		b.inc[en.L] = append(b.inc[en.L], e)
		b.inc[en.R] = append(b.inc[en.R], e)
		b.lookup[pairKey(en.L, en.R)] = e
	}

	return b, nil
}

// VertexCount returns the number of vertices on both sides.
func (b *Base) VertexCount() int { return len(b.ids) }

// LeftCount returns the number of Left vertices.
func (b *Base) LeftCount() int { return b.nLeft }

// RightCount returns the number of Right vertices.
func (b *Base) RightCount() int { return len(b.ids) - b.nLeft }

// EdgeCount returns the number of edges.
func (b *Base) EdgeCount() int { return len(b.ends) }

// IsLeft reports whether index v is a Left vertex.
func (b *Base) IsLeft(v int) bool { return v < b.nLeft }

// Side returns the side of index v.
func (b *Base) Side(v int) core.Side {
	if b.IsLeft(v) {
		return core.Left
	}

	return core.Right
}

// ID returns the vertex ID at index v.
func (b *Base) ID(v int) string { return b.ids[v] }

// Index returns the index of vertex id.
func (b *Base) Index(id string) (int, bool) {
	v, ok := b.index[id]

	return v, ok
}

// Ends returns the endpoints of edge e.
func (b *Base) Ends(e int) Ends { return b.ends[e] }

// Other returns the endpoint of e opposite to v.
func (b *Base) Other(e, v int) int {
	en := b.ends[e]
	if en.L == v {
		return en.R
	}

	return en.L
}

// Incident returns the edges incident to v in ascending order.
// The slice is shared; callers must not modify it.
func (b *Base) Incident(v int) []int { return b.inc[v] }

// EdgeIndex returns the edge joining Left index l and Right index r.
func (b *Base) EdgeIndex(l, r int) (int, bool) {
	e, ok := b.lookup[pairKey(l, r)]

	return e, ok
}

// Pair converts edge e into a core.Pair.
func (b *Base) Pair(e int) core.Pair {
	en := b.ends[e]

	return core.Pair{Left: b.ids[en.L], Right: b.ids[en.R]}
}

func pairKey(l, r int) uint64 { return uint64(uint32(l))<<32 | uint64(uint32(r)) }

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)

	return out
}
