// Package session holds the interactive state shared by the terminal and GUI
// drivers: one engine plus the run flag, speed and seeding density that the
// engine itself does not track.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// Speed bounds in steps per second.
const (
	MinTPS = 1
	MaxTPS = 60
)

// Parameter keys exposed to the HUD.
const (
	KeyDensity    = "density"
	KeyTPS        = "tps"
	KeyGeneration = "generation"
	KeyPopulation = "population"
	KeyState      = "state"
)

// Options configures a Session.
type Options struct {
	Density float64
	TPS     int
	Logger  *slog.Logger
}

// Session drives a Life engine on behalf of a UI.
type Session struct {
	engine *life.Engine
	log    *slog.Logger

	mu      sync.Mutex
	running bool
	density float64
	tps     int
}

// New wraps engine. Out-of-range options are clamped.
func New(engine *life.Engine, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Session{engine: engine, log: log.With("component", "session")}
	s.density = clampFloat(opts.Density, 0, 1)
	s.tps = clampInt(opts.TPS, MinTPS, MaxTPS)
	return s
}

// TPSFromInterval converts a step interval into steps per second, clamped to
// the supported range.
func TPSFromInterval(d time.Duration) int {
	if d <= 0 {
		return MaxTPS
	}
	return clampInt(int(time.Second/d), MinTPS, MaxTPS)
}

// Engine returns the wrapped engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// Snapshot returns the engine's current generation.
func (s *Session) Snapshot() life.Snapshot { return s.engine.Snapshot() }

// Toggle flips the cell at (row, col).
func (s *Session) Toggle(row, col int) error {
	if err := s.engine.ToggleCell(row, col); err != nil {
		return err
	}
	s.log.Debug("cell toggled", "row", row, "col", col)
	return nil
}

// Randomize reseeds the grid with the session density.
func (s *Session) Randomize() error {
	density := s.Density()
	if err := s.engine.Randomize(density); err != nil {
		return err
	}
	s.log.Debug("grid randomized", "density", density, "population", s.engine.Population())
	return nil
}

// Clear kills every cell and stops the run. A concurrent Tick either lands
// before the clear or sees the stopped run.
func (s *Session) Clear() {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.engine.Clear()
	s.mu.Unlock()
	if wasRunning {
		s.log.Debug("run state changed", "running", false, "generation", uint64(0))
	}
	s.log.Debug("grid cleared")
}

// StepOnce advances exactly one generation regardless of the run state.
func (s *Session) StepOnce() uint64 {
	s.engine.Step()
	return s.engine.Generation()
}

// Tick advances one generation only while running and reports whether it did.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.engine.Step()
	return true
}

// Running reports whether the session is advancing on ticks.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetRunning starts or stops the run.
func (s *Session) SetRunning(running bool) {
	s.mu.Lock()
	changed := s.running != running
	s.running = running
	s.mu.Unlock()
	if changed {
		s.log.Debug("run state changed", "running", running, "generation", s.engine.Generation())
	}
}

// ToggleRunning flips the run state and returns the new value.
func (s *Session) ToggleRunning() bool {
	running := !s.Running()
	s.SetRunning(running)
	return running
}

// Density returns the live probability used by Randomize.
func (s *Session) Density() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.density
}

// TPS returns the speed in steps per second.
func (s *Session) TPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tps
}

// Interval returns the time between steps at the current speed.
func (s *Session) Interval() time.Duration {
	return time.Second / time.Duration(s.TPS())
}

// Faster doubles the speed, up to MaxTPS.
func (s *Session) Faster() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tps = clampInt(s.tps*2, MinTPS, MaxTPS)
	return s.tps
}

// Slower halves the speed, down to MinTPS.
func (s *Session) Slower() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tps = clampInt(s.tps/2, MinTPS, MaxTPS)
	return s.tps
}

// Status is a one-line summary for status bars.
func (s *Session) Status() string {
	snap := s.engine.Snapshot()
	state := "stopped"
	if s.Running() {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s  %d/s  density %.2f",
		snap.Generation(), snap.Population(), state, s.TPS(), s.Density())
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.engine.Snapshot()
	state := "stopped"
	if s.Running() {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				core.Uint64Param(KeyGeneration, "Generation", snap.Generation()),
				core.IntParam(KeyPopulation, "Population", snap.Population()),
				core.TextParam(KeyState, "State", state),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				core.IntParam(KeyTPS, "Speed (steps/s)", s.TPS()),
				core.FloatParam(KeyDensity, "Random density", s.Density()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyTPS, Label: "Speed", Type: core.ParamTypeInt, Step: 1, Min: MinTPS, Max: MaxTPS, HasMin: true, HasMax: true},
		{Key: KeyDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates the speed.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != KeyTPS || value < MinTPS || value > MaxTPS {
		return false
	}
	s.mu.Lock()
	s.tps = value
	s.mu.Unlock()
	return true
}

// SetFloatParameter updates the randomize density.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if key != KeyDensity || value < 0 || value > 1 {
		return false
	}
	s.mu.Lock()
	s.density = value
	s.mu.Unlock()
	return true
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

var (
	_ core.ParameterProvider         = (*Session)(nil)
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.FloatParameterSetter      = (*Session)(nil)
)
