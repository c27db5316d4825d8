// Package pattern provides named Life seeds and a parser for the plaintext
// .cells format.
package pattern

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Pattern is a set of live cells relative to a top-left origin.
type Pattern struct {
	Name  string
	Rows  int
	Cols  int
	Cells []core.Cell
}

// Placer accepts a batch of cells. *life.Engine satisfies it.
type Placer interface {
	SetCells(cells []core.Cell, alive bool) error
}

// Place stamps p with its top-left corner at (row, col). Nothing is written
// when any part of the pattern falls outside the target.
func Place(target Placer, p Pattern, row, col int) error {
	cells := make([]core.Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = core.Cell{Row: row + c.Row, Col: col + c.Col}
	}
	if err := target.SetCells(cells, true); err != nil {
		return fmt.Errorf("place %q at (%d,%d): %w", p.Name, row, col, err)
	}
	return nil
}

// Centered returns the origin that centres p on a grid of the given size.
func Centered(p Pattern, size core.Size) (row, col int) {
	return (size.H - p.Rows) / 2, (size.W - p.Cols) / 2
}

var (
	mu       sync.RWMutex
	registry = map[string]Pattern{}
)

// Register adds p to the built-in registry under its lower-cased name.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Pattern{}, false
	}
	p.Cells = slices.Clone(p.Cells)
	return p, true
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve finds a pattern by registry name, or loads it from disk when path
// is set.
func Resolve(name, path string) (Pattern, error) {
	if path != "" {
		return Load(path)
	}
	p, ok := Lookup(name)
	if !ok {
		return Pattern{}, fmt.Errorf("unknown pattern %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

var _ Placer = (*life.Engine)(nil)
