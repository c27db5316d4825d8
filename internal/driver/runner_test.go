package driver

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"
)

type countingSim struct{ gen atomic.Uint64 }

func (s *countingSim) Name() string       { return "counter" }
func (s *countingSim) Size() core.Size    { return core.Size{W: 1, H: 1} }
func (s *countingSim) Step()              { s.gen.Add(1) }
func (s *countingSim) Generation() uint64 { return s.gen.Load() }

func TestRunStopsAfterGenerations(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, time.Millisecond)

	var seen []uint64
	r.OnStep(func(gen uint64) { seen = append(seen, gen) })

	require.NoError(t, r.Run(context.Background(), 5))
	assert.Equal(t, uint64(5), sim.Generation())
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, seen)
}

func TestRunHonoursCancellation(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sim.Generation())
}

func TestStartStop(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, time.Millisecond)

	require.NoError(t, r.Start(context.Background()))
	assert.True(t, r.Running())
	require.ErrorIs(t, r.Start(context.Background()), ErrAlreadyRunning)

	require.Eventually(t, func() bool { return sim.Generation() >= 3 }, time.Second, time.Millisecond)
	r.Stop()
	assert.False(t, r.Running())

	stopped := sim.Generation()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, sim.Generation(), "steps continued after Stop")

	r.Stop()
	require.NoError(t, r.Start(context.Background()), "runner should restart after Stop")
	r.Stop()
}

func TestParentCancelStopsBackgroundRun(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, r.Start(ctx))
	cancel()
	require.Eventually(t, func() bool { return !r.Running() }, time.Second, time.Millisecond)
}

func TestSetInterval(t *testing.T) {
	r := NewRunner(&countingSim{}, 0)
	assert.Equal(t, DefaultInterval, r.Interval())

	require.ErrorIs(t, r.SetInterval(0), ErrInvalidInterval)
	require.ErrorIs(t, r.SetInterval(-time.Second), ErrInvalidInterval)
	require.NoError(t, r.SetInterval(5*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, r.Interval())
}

func TestSetIntervalWhileRunning(t *testing.T) {
	sim := &countingSim{}
	r := NewRunner(sim, time.Hour)
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	require.NoError(t, r.SetInterval(time.Millisecond))
	require.Eventually(t, func() bool { return sim.Generation() >= 2 }, time.Second, time.Millisecond)
}

func TestRunDrivesLifeEngine(t *testing.T) {
	e, err := life.New(7, 7)
	require.NoError(t, err)
	blinker, _ := pattern.Lookup("blinker")
	require.NoError(t, pattern.Place(e, blinker, 3, 2))
	start := e.Snapshot()

	r := NewRunner(e, time.Millisecond)
	require.NoError(t, r.Run(context.Background(), 4))

	assert.Equal(t, uint64(4), e.Generation())
	assert.True(t, start.Equal(e.Snapshot()), "blinker should return after an even number of steps")
}
