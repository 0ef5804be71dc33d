// File: matching.go
// Role: Matching value type: a sequence of (Left, Right) pairs keyed by Left ID.
//
// Determinism:
//   - NewMatching and Sort order pairs by Left then Right; Key() is canonical
//     for an edge set regardless of the order pairs were produced in.
package core

import (
	"sort"
	"strconv"
	"strings"
)

// Pair is one matched edge, always oriented Left → Right.
type Pair struct {
	Left  string `json:"left" toml:"left"`
	Right string `json:"right" toml:"right"`
}

// String renders the pair as "Left-Right".
func (p Pair) String() string { return p.Left + "-" + p.Right }

// Matching is an ordered sequence of pairs in which no vertex appears twice.
// The zero value is the empty matching.
type Matching []Pair

// NewMatching copies pairs into a Matching sorted by (Left, Right).
func NewMatching(pairs ...Pair) Matching {
	m := make(Matching, len(pairs))
	copy(m, pairs)
	m.Sort()

	return m
}

// Len returns the cardinality of the matching.
func (m Matching) Len() int { return len(m) }

// Sort orders the pairs in place by (Left, Right).
func (m Matching) Sort() {
	sort.Slice(m, func(i, j int) bool { return pairLess(m[i], m[j]) })
}

func pairLess(a, b Pair) bool {
	if a.Left != b.Left {
		return a.Left < b.Left
	}

	return a.Right < b.Right
}

// Mate returns the Right partner of left, if matched.
func (m Matching) Mate(left string) (string, bool) {
	for _, p := range m {
		if p.Left == left {
			return p.Right, true
		}
	}

	return "", false
}

// Contains reports whether the pair (left, right) belongs to the matching.
func (m Matching) Contains(left, right string) bool {
	r, ok := m.Mate(left)

	return ok && r == right
}

// Key returns a canonical signature of the edge set, e.g. `"L0":"R0","L1":"R1"`.
// IDs are Go-quoted, so two matchings are equal as edge sets iff their keys
// are equal, whatever characters the IDs contain.
func (m Matching) Key() string {
	var sb strings.Builder
	for i, p := range m.sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(p.Left))
		sb.WriteByte(':')
		sb.WriteString(strconv.Quote(p.Right))
	}

	return sb.String()
}

// Equal reports whether m and o contain the same pairs.
func (m Matching) Equal(o Matching) bool {
	if len(m) != len(o) {
		return false
	}
	a, b := m.sorted(), o.sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sorted returns m itself when already ordered, otherwise a sorted copy.
func (m Matching) sorted() Matching {
	if sort.SliceIsSorted(m, func(i, j int) bool { return pairLess(m[i], m[j]) }) {
		return m
	}

	return NewMatching(m...)
}

// Valid reports whether no vertex is covered twice.
func (m Matching) Valid() bool {
	seenL := make(map[string]struct{}, len(m))
	seenR := make(map[string]struct{}, len(m))
	for _, p := range m {
		if _, dup := seenL[p.Left]; dup {
			return false
		}
		if _, dup := seenR[p.Right]; dup {
			return false
		}
		seenL[p.Left] = struct{}{}
		seenR[p.Right] = struct{}{}
	}

	return true
}

// String renders the matching as "[L0-R0 L1-R1]".
func (m Matching) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = p.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
