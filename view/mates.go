package view

import "github.com/katalvlaran/bimatch/core"

// Unmatched marks a Left vertex without a partner in Mates.
const Unmatched = -1

// Mates is a matching keyed by the Left side: Mates[l] is the Right vertex
// index matched to Left index l, or Unmatched.
//
// Mates values are treated as immutable once shared: Toggle and Without
// return fresh vectors.
type Mates []int

// NewMates returns an empty matching sized for b.
func NewMates(b *Base) Mates {
	m := make(Mates, b.LeftCount())
	for i := range m {
		m[i] = Unmatched
	}

	return m
}

// Clone returns an independent copy.
func (m Mates) Clone() Mates { return append(Mates(nil), m...) }

// Size returns the number of matched pairs.
func (m Mates) Size() int {
	n := 0
	for _, r := range m {
		if r != Unmatched {
			n++
		}
	}

	return n
}

// Has reports whether edge e of b is matched.
func (m Mates) Has(b *Base, e int) bool {
	en := b.Ends(e)

	return m[en.L] == en.R
}

// Toggle returns a copy of m with the membership of every edge in edges
// flipped: matched edges are removed first, then unmatched ones are added.
// For an alternating cycle or an even alternating path this yields a
// matching of the same size.
func (m Mates) Toggle(b *Base, edges []int) Mates {
	out := m.Clone()
	for _, e := range edges {
		if m.Has(b, e) {
			out[b.Ends(e).L] = Unmatched
		}
	}
	for _, e := range edges {
		if !m.Has(b, e) {
			en := b.Ends(e)
			out[en.L] = en.R
		}
	}

	return out
}

// Without returns a copy of m with Left vertex l unmatched.
func (m Mates) Without(l int) Mates {
	out := m.Clone()
	out[l] = Unmatched

	return out
}

// Covered returns a per-vertex flag (indexed like b) of vertices touched by m.
func (m Mates) Covered(b *Base) []bool {
	cov := make([]bool, b.VertexCount())
	for l, r := range m {
		if r != Unmatched {
			cov[l] = true
			cov[r] = true
		}
	}

	return cov
}

// Matching converts m into a sorted core.Matching.
func (m Mates) Matching(b *Base) core.Matching {
	out := make(core.Matching, 0, len(m))
	for l, r := range m {
		if r != Unmatched {
			out = append(out, core.Pair{Left: b.ID(l), Right: b.ID(r)})
		}
	}
	out.Sort()

	return out
}
