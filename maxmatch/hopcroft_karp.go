package maxmatch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bimatch/view"
)

// HopcroftKarp returns a maximum matching of b.
//
// Steps:
//  1. Start from the empty matching.
//  2. Repeat until no free Left vertex reaches a free Right vertex:
//     a. Check for cancellation.
//     b. BFS from all free Left vertices along unmatched→matched edges,
//     layering Left vertices by distance.
//     c. DFS from each free Left vertex along the layers, augmenting
//     vertex-disjoint shortest paths.
//
// Complexity: O(E·√V) time, O(V) memory.
func HopcroftKarp(ctx context.Context, b *view.Base) (view.Mates, error) {
	if b == nil {
		return nil, fmt.Errorf("HopcroftKarp: %w", ErrNilBase)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	hk := &hopcroftKarp{
		b:     b,
		mateL: view.NewMates(b),
		mateR: make([]int, b.RightCount()),
		dist:  make([]int, b.LeftCount()),
	}
	for i := range hk.mateR {
		hk.mateR[i] = view.Unmatched
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("HopcroftKarp: %w", err)
		}
		if !hk.layer() {
			break
		}
		for l := 0; l < b.LeftCount(); l++ {
			if hk.mateL[l] == view.Unmatched {
				hk.augment(l)
			}
		}
	}

	return hk.mateL, nil
}

// hopcroftKarp holds the working state of one run. Right vertices are
// addressed by their offset r - LeftCount in mateR.
type hopcroftKarp struct {
	b     *view.Base
	mateL view.Mates
	mateR []int
	dist  []int
}

// layer computes BFS distances over Left vertices and reports whether some
// free Right vertex is reachable.
func (hk *hopcroftKarp) layer() bool {
	queue := make([]int, 0, len(hk.dist))
	for l := range hk.dist {
		if hk.mateL[l] == view.Unmatched {
			hk.dist[l] = 0
			queue = append(queue, l)
		} else {
			hk.dist[l] = inf
		}
	}

	found := false
	for i := 0; i < len(queue); i++ {
		l := queue[i]
		for _, e := range hk.b.Incident(l) {
			r := hk.b.Ends(e).R - hk.b.LeftCount()
			next := hk.mateR[r]
			if next == view.Unmatched {
				found = true
			} else if hk.dist[next] == inf {
				hk.dist[next] = hk.dist[l] + 1
				queue = append(queue, next)
			}
		}
	}

	return found
}

// augment searches a layered augmenting path from l and flips it on success.
// Dead ends are marked with inf so later searches skip them.
func (hk *hopcroftKarp) augment(l int) bool {
	for _, e := range hk.b.Incident(l) {
		r := hk.b.Ends(e).R
		next := hk.mateR[r-hk.b.LeftCount()]
		if next == view.Unmatched || (hk.dist[next] == hk.dist[l]+1 && hk.augment(next)) {
			hk.mateL[l] = r
			hk.mateR[r-hk.b.LeftCount()] = l

			return true
		}
	}
	hk.dist[l] = inf

	return false
}
