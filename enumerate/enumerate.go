package enumerate

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/maxmatch"
	"github.com/katalvlaran/bimatch/view"
)

// All returns every maximum matching of g.
//
// The empty graph, and any graph without edges, has exactly one maximum
// matching: the empty one. g is only read, via a snapshot taken on entry.
func All(g *core.Graph, opts ...Option) (*Result, error) {
	return run("All", g, &registry{keep: true}, opts)
}

// Count counts the maximum matchings of g without keeping them.
// The count is res.Found; when the run stops early (context or limit)
// it is a lower bound and res.Complete is false.
func Count(g *core.Graph, opts ...Option) (*Result, error) {
	return run("Count", g, &registry{}, opts)
}

// Each calls fn with every maximum matching of g as it is found.
// Calls are serialized even with WithParallelism. Returning ErrStop ends the
// run with StopCallback; any other error aborts it and is returned.
func Each(g *core.Graph, fn func(core.Matching) error, opts ...Option) (*Result, error) {
	if fn == nil {
		return nil, fmt.Errorf("Each: %w", ErrNilCallback)
	}

	return run("Each", g, &registry{fn: fn}, opts)
}

// run is the shared driver.
//
// Steps:
//  1. Apply options and compile g into an immutable Base.
//  2. Obtain the first maximum matching (WithInitial or the Provider) and
//     verify it.
//  3. Record it, then explore from the full view.
//  4. Wait for parallel branches and snapshot the registry.
func run(method string, g *core.Graph, reg *registry, opts []Option) (*Result, error) {
	// 1) Options and snapshot
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	reg.limit = o.Limit
	reg.logger = o.Logger

	b, err := view.Compile(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidGraph, err)
	}

	start := time.Now()
	o.Logger.Debug("enumerate: start",
		"left", b.LeftCount(), "right", b.RightCount(), "edges", b.EdgeCount(),
		"view", o.Representation, "parallelism", o.Parallelism)

	// 2) First maximum matching
	var m0 view.Mates
	if o.Initial != nil {
		if m0, err = maxmatch.Validate(b, o.Initial); err != nil {
			return nil, fmt.Errorf("%s: initial matching: %w", method, err)
		}
	} else {
		m0, err = o.Provider.MaxMatching(o.Ctx, b)
		if err != nil {
			if o.Ctx.Err() != nil {
				reg.halted(o.Ctx)

				return reg.result(0), nil
			}

			return nil, fmt.Errorf("%s: provider: %w", method, err)
		}
		if err = maxmatch.Verify(b, m0); err != nil {
			return nil, fmt.Errorf("%s: provider: %w", method, err)
		}
	}
	o.Logger.Debug("enumerate: initial matching", "size", m0.Size())

	// 3) Seed and explore
	w := &walker{ctx: o.Ctx, base: b, reg: reg}
	if reg.halted(o.Ctx) {
		return reg.result(m0.Size()), nil
	}
	if reg.add(w.record(m0, nil)) {
		root := view.Full(b, o.Representation)
		if o.Parallelism > 1 {
			w.group = new(errgroup.Group)
			w.group.SetLimit(o.Parallelism - 1)
			err = w.step(root, m0, nil)
			if werr := w.group.Wait(); err == nil {
				err = werr
			}
		} else {
			err = w.step(root, m0, nil)
		}
	}
	if err == nil {
		err = reg.failure()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 4) Snapshot
	res := reg.result(m0.Size())
	o.Logger.Debug("enumerate: done",
		"found", res.Found, "complete", res.Complete, "stop", res.StopReason,
		"elapsed", time.Since(start).Round(time.Millisecond))

	return res, nil
}
