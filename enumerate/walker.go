package enumerate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/exchange"
	"github.com/katalvlaran/bimatch/view"
)

// forced is a persistent list of edges every matching below a branch must
// contain. Extending it never changes the list a sibling holds.
type forced struct {
	edge int
	next *forced
}

// with returns f extended by e.
func (f *forced) with(e int) *forced { return &forced{edge: e, next: f} }

// walker runs the branching steps of one enumeration.
type walker struct {
	ctx   context.Context
	base  *view.Base
	reg   *registry
	group *errgroup.Group // nil when running synchronously
}

// record converts m plus the forced edges into a sorted core.Matching.
func (w *walker) record(m view.Mates, f *forced) core.Matching {
	out := m.Matching(w.base)
	if f == nil {
		return out
	}
	for ; f != nil; f = f.next {
		out = append(out, w.base.Pair(f.edge))
	}
	out.Sort()

	return out
}

// step explores every maximum matching of sub that differs from m, given
// that m ∪ f is already recorded.
//
// Steps:
//  1. Stop if the run is halted (cancellation, limit, callback).
//  2. Build the exchange digraph of (sub, m).
//  3. Cycle: toggle it; split on its matched edge with the lowest index.
//     Otherwise path: toggle it; split on its unmatched edge.
//     Neither: m is the only maximum matching of sub, return.
//  4. Record next ∪ f.
//  5. Explore the exclude branch (sub - e) and the force branch
//     (sub - endpoints(e), f + e), each seeded with the matching valid there.
func (w *walker) step(sub view.Subgraph, m view.Mates, f *forced) error {
	// 1) Halt check between steps
	if w.reg.halted(w.ctx) {
		return w.reg.failure()
	}

	// 2) Exchange digraph for this state only
	d := exchange.Build(sub, m)

	// 3) Derive the neighbouring matching and the split edge
	var (
		next view.Mates
		e    int
	)
	if c, ok := exchange.FindCycle(d); ok {
		next = m.Toggle(w.base, c.Edges)
		e = lowestMatched(w.base, m, c.Edges)
	} else if p, ok := exchange.FindPath(d, sub, m); ok {
		next = m.Toggle(w.base, p.Edges())
		e = p.Unmatched
	} else {
		return nil
	}

	// 4) Record
	if !w.reg.add(w.record(next, f)) {
		return w.reg.failure()
	}

	// 5) Split on e
	with, without := next, m
	if m.Has(w.base, e) {
		with, without = m, next
	}
	en := w.base.Ends(e)

	exclude := func() error { return w.step(sub.WithoutEdge(e), without, f) }
	force := func() error {
		return w.step(sub.WithoutVertices(en.L, en.R), with.Without(en.L), f.with(e))
	}

	return w.fork(exclude, force)
}

// fork runs both branches. With a group, the first goes to a free worker
// when one is available and otherwise runs inline.
func (w *walker) fork(a, b func() error) error {
	if w.group != nil && w.group.TryGo(a) {
		return b()
	}
	if err := a(); err != nil {
		return err
	}

	return b()
}

// lowestMatched returns the matched edge of edges with the smallest index.
func lowestMatched(b *view.Base, m view.Mates, edges []int) int {
	best := -1
	for _, e := range edges {
		if m.Has(b, e) && (best < 0 || e < best) {
			best = e
		}
	}

	return best
}
