package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bimatch/enumerate"
	"github.com/katalvlaran/bimatch/maxmatch"
	"github.com/katalvlaran/bimatch/view"
)

// runFlags are the enumeration flags shared by enumerate and count.
type runFlags struct {
	limit    int
	timeout  time.Duration
	parallel int
	provider string
	matrix   bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "stop after this many matchings (0: no limit)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "stop after this long (0: no timeout)")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 1, "number of goroutines exploring branches")
	cmd.Flags().StringVar(&f.provider, "provider", "hopcroft-karp", "initial matching algorithm: hopcroft-karp, dinic")
	cmd.Flags().BoolVar(&f.matrix, "matrix", false, "use the bit-matrix subgraph representation")
}

// options turns the flags into enumerate options. The returned cancel
// releases the timeout context and must always be called.
func (f runFlags) options(ctx context.Context, logger *log.Logger) ([]enumerate.Option, context.CancelFunc, error) {
	if f.limit < 0 {
		return nil, nil, fmt.Errorf("--limit %d: %w", f.limit, ErrInvalidFlag)
	}
	if f.parallel < 1 {
		return nil, nil, fmt.Errorf("--parallel %d: %w", f.parallel, ErrInvalidFlag)
	}
	if f.timeout < 0 {
		return nil, nil, fmt.Errorf("--timeout %s: %w", f.timeout, ErrInvalidFlag)
	}
	p, ok := maxmatch.Named(f.provider)
	if !ok {
		return nil, nil, fmt.Errorf("--provider %q: %w", f.provider, ErrInvalidFlag)
	}

	cancel := context.CancelFunc(func() {})
	if f.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
	}
	kind := view.KindMasked
	if f.matrix {
		kind = view.KindMatrix
	}

	return []enumerate.Option{
		enumerate.WithContext(ctx),
		enumerate.WithLimit(f.limit),
		enumerate.WithParallelism(f.parallel),
		enumerate.WithProvider(p),
		enumerate.WithRepresentation(kind),
		enumerate.WithLogger(logger),
	}, cancel, nil
}
