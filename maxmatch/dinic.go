package maxmatch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bimatch/view"
)

// arc is one residual arc; rev indexes the paired arc in adj[to].
type arc struct {
	to  int
	cap int
	rev int
}

// network is the unit-capacity flow network source→Left→Right→sink.
// Vertices keep their base indices; source and sink are appended.
type network struct {
	adj    [][]arc
	source int
	sink   int
	level  []int
	iter   []int
}

// Dinic returns a maximum matching of b computed as a maximum flow.
//
// Steps:
//  1. Build the network: source→l and r→sink with capacity 1, l→r with
//     capacity 1 for every edge (O(V + E)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from the source to build the level graph.
//     c. Push blocking flow with per-vertex arc iterators.
//  3. Read the matching off the saturated Left→Right arcs.
//
// Complexity: O(E·√V) time on unit capacities, O(V + E) memory.
func Dinic(ctx context.Context, b *view.Base) (view.Mates, error) {
	if b == nil {
		return nil, fmt.Errorf("Dinic: %w", ErrNilBase)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Build network
	n := b.VertexCount()
	nw := &network{
		adj:    make([][]arc, n+2),
		source: n,
		sink:   n + 1,
		level:  make([]int, n+2),
		iter:   make([]int, n+2),
	}
	for l := 0; l < b.LeftCount(); l++ {
		nw.addArc(nw.source, l)
	}
	for e := 0; e < b.EdgeCount(); e++ {
		en := b.Ends(e)
		nw.addArc(en.L, en.R)
	}
	for r := b.LeftCount(); r < n; r++ {
		nw.addArc(r, nw.sink)
	}

	// 2) Level graph + blocking flow
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Dinic: %w", err)
		}
		if !nw.bfs() {
			break
		}
		for i := range nw.iter {
			nw.iter[i] = 0
		}
		for nw.push(nw.source) {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("Dinic: %w", err)
			}
		}
	}

	// 3) Saturated l→r arcs carry the matching
	mates := view.NewMates(b)
	for l := 0; l < b.LeftCount(); l++ {
		for _, a := range nw.adj[l] {
			if a.to < n && !b.IsLeft(a.to) && a.cap == 0 {
				mates[l] = a.to
			}
		}
	}

	return mates, nil
}

// addArc adds u→v with capacity 1 and its zero-capacity reverse.
func (nw *network) addArc(u, v int) {
	nw.adj[u] = append(nw.adj[u], arc{to: v, cap: 1, rev: len(nw.adj[v])})
	nw.adj[v] = append(nw.adj[v], arc{to: u, cap: 0, rev: len(nw.adj[u]) - 1})
}

// bfs assigns levels from the source and reports whether the sink is reachable.
func (nw *network) bfs() bool {
	for i := range nw.level {
		nw.level[i] = -1
	}
	nw.level[nw.source] = 0
	queue := []int{nw.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range nw.adj[u] {
			if a.cap > 0 && nw.level[a.to] < 0 {
				nw.level[a.to] = nw.level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return nw.level[nw.sink] >= 0
}

// push sends one unit from u to the sink along the level graph.
// Every augmenting path carries exactly one unit on a unit network.
func (nw *network) push(u int) bool {
	if u == nw.sink {
		return true
	}
	for ; nw.iter[u] < len(nw.adj[u]); nw.iter[u]++ {
		a := &nw.adj[u][nw.iter[u]]
		if a.cap == 0 || nw.level[a.to] != nw.level[u]+1 {
			continue
		}
		if nw.push(a.to) {
			a.cap--
			nw.adj[a.to][a.rev].cap++

			return true
		}
	}

	return false
}
