package enumerate

import (
	"errors"
	"sort"

	"github.com/katalvlaran/bimatch/core"
)

var (
	// ErrInvalidGraph wraps every input validation failure; the specific
	// core sentinel (ErrNotBipartite, ErrSideConflict, ...) is wrapped too.
	ErrInvalidGraph = errors.New("enumerate: invalid graph")

	// ErrStop may be returned by an Each callback to end enumeration early.
	ErrStop = errors.New("enumerate: stop")

	// ErrNilCallback is returned by Each when fn is nil.
	ErrNilCallback = errors.New("enumerate: nil callback")
)

// StopReason tells why an enumeration ended before exhausting the space.
type StopReason uint8

const (
	// StopNone means the enumeration ran to completion.
	StopNone StopReason = iota
	// StopCanceled means the context was canceled or its deadline passed.
	StopCanceled
	// StopLimit means the WithLimit cap was reached and more matchings existed.
	StopLimit
	// StopCallback means the Each callback returned ErrStop.
	StopCallback
)

// String returns a lowercase name for r.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopCanceled:
		return "canceled"
	case StopLimit:
		return "limit"
	case StopCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Result is the outcome of an enumeration.
type Result struct {
	// Matchings holds every recorded matching in discovery order.
	// Each is sorted by Left ID. Nil for Each and Count.
	Matchings []core.Matching
	// Found is the number of matchings recorded.
	Found int
	// Size is the cardinality shared by all matchings.
	Size int
	// Complete is false when the run stopped early.
	Complete bool
	// StopReason is StopNone when Complete.
	StopReason StopReason
}

// Sorted returns the matchings ordered by their Key, leaving r untouched.
func (r *Result) Sorted() []core.Matching {
	out := append([]core.Matching(nil), r.Matchings...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// Keys returns the sorted Key of every matching.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.Matchings))
	for i, m := range r.Matchings {
		keys[i] = m.Key()
	}
	sort.Strings(keys)

	return keys
}
