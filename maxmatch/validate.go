package maxmatch

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/view"
)

// Validate converts m into mates over b and verifies it with Verify.
// Pairs may name their endpoints in either order.
func Validate(b *view.Base, m core.Matching) (view.Mates, error) {
	if b == nil {
		return nil, fmt.Errorf("Validate: %w", ErrNilBase)
	}

	mates := view.NewMates(b)
	coveredR := make([]bool, b.VertexCount())
	for _, p := range m {
		l, okL := b.Index(p.Left)
		r, okR := b.Index(p.Right)
		if !okL || !okR {
			return nil, fmt.Errorf("Validate: pair %s: %w: %w", p, core.ErrVertexNotFound, ErrInconsistentMatching)
		}
		if !b.IsLeft(l) {
			l, r = r, l
		}
		if _, ok := b.EdgeIndex(l, r); !ok {
			return nil, fmt.Errorf("Validate: pair %s is not an edge: %w", p, ErrInconsistentMatching)
		}
		if mates[l] != view.Unmatched || coveredR[r] {
			return nil, fmt.Errorf("Validate: pair %s covers a vertex twice: %w", p, ErrInconsistentMatching)
		}
		mates[l] = r
		coveredR[r] = true
	}

	if err := Verify(b, mates); err != nil {
		return nil, err
	}

	return mates, nil
}

// Verify checks that mates is a maximum matching of b.
//
// Steps:
//  1. Shape: one entry per Left vertex, each Right index used at most once
//     and joined to its Left vertex by an edge.
//  2. Maximality (Berge): BFS from every free Left vertex along
//     alternating paths; reaching a free Right vertex means m is not maximum.
func Verify(b *view.Base, mates view.Mates) error {
	if b == nil {
		return fmt.Errorf("Verify: %w", ErrNilBase)
	}
	if len(mates) != b.LeftCount() {
		return fmt.Errorf("Verify: %d entries for %d Left vertices: %w",
			len(mates), b.LeftCount(), ErrInconsistentMatching)
	}

	// 1) Shape
	mateR := make([]int, b.VertexCount())
	for i := range mateR {
		mateR[i] = view.Unmatched
	}
	for l, r := range mates {
		if r == view.Unmatched {
			continue
		}
		if r < b.LeftCount() || r >= b.VertexCount() {
			return fmt.Errorf("Verify: %s matched to index %d: %w", b.ID(l), r, ErrInconsistentMatching)
		}
		if _, ok := b.EdgeIndex(l, r); !ok {
			return fmt.Errorf("Verify: %s-%s is not an edge: %w", b.ID(l), b.ID(r), ErrInconsistentMatching)
		}
		if mateR[r] != view.Unmatched {
			return fmt.Errorf("Verify: %s covered twice: %w", b.ID(r), ErrInconsistentMatching)
		}
		mateR[r] = l
	}

	// 2) Maximality
	seen := make([]bool, b.LeftCount())
	queue := make([]int, 0, b.LeftCount())
	for l, r := range mates {
		if r == view.Unmatched {
			seen[l] = true
			queue = append(queue, l)
		}
	}
	for i := 0; i < len(queue); i++ {
		l := queue[i]
		for _, e := range b.Incident(l) {
			r := b.Ends(e).R
			if r == mates[l] {
				continue
			}
			next := mateR[r]
			if next == view.Unmatched {
				return fmt.Errorf("Verify: augmenting path ends at %s: size %d is not maximum: %w",
					b.ID(r), mates.Size(), ErrInconsistentMatching)
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	return nil
}
