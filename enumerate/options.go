package enumerate

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/maxmatch"
	"github.com/katalvlaran/bimatch/view"
)

// Option configures an enumeration. Use with All, Count or Each.
type Option func(*Options)

// Options holds the run parameters.
type Options struct {
	// Ctx cancels the run between steps; defaults to context.Background().
	Ctx context.Context

	// Limit caps the number of recorded matchings; 0 means no cap.
	Limit int

	// Parallelism is the maximum number of goroutines exploring branches.
	// 1 (default) runs synchronously.
	Parallelism int

	// Provider computes the first maximum matching; defaults to Hopcroft-Karp.
	Provider maxmatch.Provider

	// Initial, when non-nil, is used as the first matching instead of the
	// Provider. It must be a maximum matching of the graph.
	Initial core.Matching

	// Logger receives Debug progress; defaults to a discard logger.
	Logger *log.Logger

	// Representation selects the subgraph view; defaults to view.KindMasked.
	Representation view.Kind
}

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Parallelism:    1,
		Provider:       maxmatch.Default,
		Logger:         log.NewWithOptions(io.Discard, log.Options{}),
		Representation: view.KindMasked,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit stops after k matchings. Panics if k < 0.
func WithLimit(k int) Option {
	if k < 0 {
		panic("enumerate: WithLimit(k): k must be >= 0")
	}

	return func(o *Options) { o.Limit = k }
}

// WithParallelism allows up to n goroutines. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("enumerate: WithParallelism(n): n must be >= 1")
	}

	return func(o *Options) { o.Parallelism = n }
}

// WithProvider sets the first-matching provider. Panics on nil.
func WithProvider(p maxmatch.Provider) Option {
	if p == nil {
		panic("enumerate: WithProvider(nil)")
	}

	return func(o *Options) { o.Provider = p }
}

// WithInitial seeds the run with m instead of calling the provider.
// A nil m restores the provider.
func WithInitial(m core.Matching) Option {
	return func(o *Options) {
		o.Initial = nil
		if m != nil {
			o.Initial = append(make(core.Matching, 0, len(m)), m...)
		}
	}
}

// WithLogger sets the Debug logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRepresentation selects the subgraph view used by every step.
func WithRepresentation(kind view.Kind) Option {
	return func(o *Options) { o.Representation = kind }
}
