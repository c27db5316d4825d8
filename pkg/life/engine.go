// Package life implements Conway's Game of Life on a fixed-size grid with hard
// edges. The Engine is a plain owned value: drivers hold it, call Step on
// whatever cadence they like and read it back through Snapshot.
package life

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"lifegrid/pkg/core"
)

// Config controls the engine dimensions and its random source.
type Config struct {
	Rows int
	Cols int
	Seed int64
}

// DefaultConfig returns a 50x50 grid seeded with 42.
func DefaultConfig() Config {
	return Config{Rows: 50, Cols: 50, Seed: 42}
}

// Engine owns a Life grid and its generation counter. It is safe for
// concurrent use: mutators take the write lock for their whole duration and
// readers take the read lock.
type Engine struct {
	rows, cols int

	mu  sync.RWMutex
	cur grid
	nxt grid
	gen uint64
	rng *core.RNG
}

// New returns an all-dead engine of rows x cols using the default seed.
func New(rows, cols int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead engine configured from cfg.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	return &Engine{
		rows: cfg.Rows,
		cols: cfg.Cols,
		cur:  newGrid(cfg.Rows, cfg.Cols),
		nxt:  newGrid(cfg.Rows, cfg.Cols),
		rng:  core.NewRNG(cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions. They are fixed at construction, so no
// lock is needed.
func (e *Engine) Size() core.Size { return core.Size{W: e.cols, H: e.rows} }

// Step advances the grid by one generation.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, nxt := e.cur, e.nxt
	for r := 0; r < cur.rows; r++ {
		for c := 0; c < cur.cols; c++ {
			idx := cur.index(r, c)
			n := cur.neighbors(r, c)
			alive := cur.data[idx] == 1
			nxt.data[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				nxt.data[idx] = 1
			}
		}
	}
	e.cur, e.nxt = nxt, cur
	e.gen++
}

// Generation returns the number of steps completed since construction or
// the last Clear/Randomize.
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur.population()
}

// CellAt reports whether the cell at (row, col) is alive.
func (e *Engine) CellAt(row, col int) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := e.checkRange(row, col); err != nil {
		return false, err
	}
	return e.cur.data[e.cur.index(row, col)] == 1, nil
}

// SetCell sets a single cell. The generation counter is not affected.
func (e *Engine) SetCell(row, col int, alive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkRange(row, col); err != nil {
		return err
	}
	e.cur.data[e.cur.index(row, col)] = bit(alive)
	return nil
}

// ToggleCell flips a single cell.
func (e *Engine) ToggleCell(row, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkRange(row, col); err != nil {
		return err
	}
	idx := e.cur.index(row, col)
	e.cur.data[idx] ^= 1
	return nil
}

// SetCells sets every listed cell to alive. Either all cells are written or,
// when any coordinate is out of range, none are.
func (e *Engine) SetCells(cells []core.Cell, alive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range cells {
		if err := e.checkRange(c.Row, c.Col); err != nil {
			return err
		}
	}
	v := bit(alive)
	for _, c := range cells {
		e.cur.data[e.cur.index(c.Row, c.Col)] = v
	}
	return nil
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur.clear()
	e.gen = 0
}

// Randomize resets the generation counter and sets each cell alive with
// probability p using the engine's own random source.
func (e *Engine) Randomize(p float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.randomizeLocked(e.rng, p)
}

// RandomizeWith behaves like Randomize but draws from r.
func (e *Engine) RandomizeWith(r *rand.Rand, p float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.randomizeLocked(r, p)
}

// Reseed replaces the engine's random source with one seeded from seed.
func (e *Engine) Reseed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = core.NewRNG(seed)
}

func (e *Engine) randomizeLocked(r core.Float64Source, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	core.FillBernoulli(r, e.cur.data, p)
	e.gen = 0
	return nil
}

// Snapshot returns an immutable copy of the current generation.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cells := make([]uint8, len(e.cur.data))
	copy(cells, e.cur.data)
	return Snapshot{rows: e.rows, cols: e.cols, gen: e.gen, cells: cells}
}

func (e *Engine) checkRange(row, col int) error {
	if !e.cur.contains(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, e.rows, e.cols)
	}
	return nil
}

func bit(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}
