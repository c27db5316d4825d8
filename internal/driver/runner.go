// Package driver schedules repeated simulation steps. The simulation itself
// stays synchronous; everything about cadence and cancellation lives here.
package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lifegrid/internal/ctxlog"
	"lifegrid/pkg/core"
)

// DefaultInterval is used when a Runner is created with a non-positive
// interval.
const DefaultInterval = 200 * time.Millisecond

var (
	// ErrAlreadyRunning is returned by Start while a previous run is active.
	ErrAlreadyRunning = errors.New("driver: runner already running")
	// ErrInvalidInterval is returned for non-positive step intervals.
	ErrInvalidInterval = errors.New("driver: interval must be positive")
)

// Runner calls Step on a simulation at a fixed interval until told to stop.
type Runner struct {
	sim core.Sim

	mu       sync.Mutex
	interval time.Duration
	onStep   []func(gen uint64)
	cancel   context.CancelFunc
	done     chan struct{}

	reset chan struct{}
}

// NewRunner returns a stopped Runner for sim.
func NewRunner(sim core.Sim, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{sim: sim, interval: interval, reset: make(chan struct{}, 1)}
}

// Interval returns the current time between steps.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// SetInterval changes the time between steps. A running loop picks up the
// new value on its next iteration.
func (r *Runner) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	r.mu.Lock()
	r.interval = d
	r.mu.Unlock()
	select {
	case r.reset <- struct{}{}:
	default:
	}
	return nil
}

// OnStep registers fn to be called with the new generation after each step.
// Observers run on the stepping goroutine.
func (r *Runner) OnStep(fn func(gen uint64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onStep = append(r.onStep, fn)
}

// Run steps the simulation every interval until generations steps have been
// taken or ctx is done. A generations value of 0 or less runs until
// cancellation. It returns ctx.Err() when cancelled and nil on completion.
func (r *Runner) Run(ctx context.Context, generations int) error {
	log := ctxlog.FromContext(ctx).With("sim", r.sim.Name())
	ticker := time.NewTicker(r.Interval())
	defer ticker.Stop()

	log.Debug("run started", "generations", generations, "interval", r.Interval())
	for steps := 0; generations <= 0 || steps < generations; {
		select {
		case <-ctx.Done():
			log.Debug("run cancelled", "steps", steps, "generation", r.sim.Generation())
			return ctx.Err()
		case <-r.reset:
			ticker.Reset(r.Interval())
		case <-ticker.C:
			r.sim.Step()
			steps++
			r.notify(r.sim.Generation())
		}
	}
	log.Debug("run finished", "generation", r.sim.Generation())
	return nil
}

// Start launches an unbounded Run in the background.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel, r.done = cancel, done

	go func() {
		defer close(done)
		err := r.Run(ctx, 0)
		if err != nil && !errors.Is(err, context.Canceled) {
			ctxlog.FromContext(ctx).Warn("runner stopped", "err", err)
		}
		r.mu.Lock()
		if r.done == done {
			r.cancel, r.done = nil, nil
		}
		r.mu.Unlock()
	}()
	return nil
}

// Stop cancels a background run and waits for it to exit. It is a no-op when
// nothing is running.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a background run is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done != nil
}

func (r *Runner) notify(gen uint64) {
	r.mu.Lock()
	observers := r.onStep
	r.mu.Unlock()
	for _, fn := range observers {
		fn(gen)
	}
}
