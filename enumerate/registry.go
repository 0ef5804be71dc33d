package enumerate

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/bimatch/core"
)

// progressEvery is how many records pass between progress logs.
const progressEvery = 1000

// registry accumulates matchings and owns the stop state of a run.
// All methods are safe for concurrent use; the callback runs under the lock.
type registry struct {
	mu     sync.Mutex
	keep   bool
	limit  int
	fn     func(core.Matching) error
	logger *log.Logger

	found []core.Matching
	count int
	stop  StopReason
	err   error
}

// add records m. It returns false once the run must stop, in which case m
// was not recorded (unless the callback accepted it and asked to stop).
func (r *registry) add(m core.Matching) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != StopNone || r.err != nil {
		return false
	}
	if r.limit > 0 && r.count == r.limit {
		r.stop = StopLimit

		return false
	}
	if r.fn != nil {
		if err := r.fn(m); err != nil {
			if !errors.Is(err, ErrStop) {
				r.err = err

				return false
			}
			r.count++
			r.stop = StopCallback

			return false
		}
	}

	r.count++
	if r.keep {
		r.found = append(r.found, m)
	}
	if r.count%progressEvery == 0 {
		r.logger.Debug("enumerate: progress", "found", r.count)
	}

	return true
}

// halted reports whether the run should unwind, noting cancellation.
func (r *registry) halted(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != StopNone || r.err != nil {
		return true
	}
	if ctx.Err() != nil {
		r.stop = StopCanceled

		return true
	}

	return false
}

// failure returns the callback error that aborted the run, if any.
func (r *registry) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// result snapshots the registry.
func (r *registry) result(size int) *Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &Result{
		Matchings:  r.found,
		Found:      r.count,
		Size:       size,
		Complete:   r.stop == StopNone && r.err == nil,
		StopReason: r.stop,
	}
}
