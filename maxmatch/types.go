package maxmatch

import (
	"context"
	"errors"

	"github.com/katalvlaran/bimatch/view"
)

var (
	// ErrNilBase is returned when a provider receives a nil *view.Base.
	ErrNilBase = errors.New("maxmatch: base graph is nil")

	// ErrInconsistentMatching indicates a matching that double-covers a
	// vertex, uses a non-edge pair, or is not of maximum cardinality.
	ErrInconsistentMatching = errors.New("maxmatch: inconsistent matching")
)

// Provider computes one maximum matching of b.
type Provider interface {
	MaxMatching(ctx context.Context, b *view.Base) (view.Mates, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, b *view.Base) (view.Mates, error)

// MaxMatching calls f(ctx, b).
func (f ProviderFunc) MaxMatching(ctx context.Context, b *view.Base) (view.Mates, error) {
	return f(ctx, b)
}

// Default is the provider used when none is configured.
var Default Provider = ProviderFunc(HopcroftKarp)

// Named returns the provider registered under name ("hopcroft-karp" or "dinic").
func Named(name string) (Provider, bool) {
	switch name {
	case "hopcroft-karp", "hk":
		return ProviderFunc(HopcroftKarp), true
	case "dinic":
		return ProviderFunc(Dinic), true
	default:
		return nil, false
	}
}

// inf marks an unreached layer.
const inf = int(^uint(0) >> 1)
