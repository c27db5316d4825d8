package life

import (
	"fmt"
	"slices"
	"strings"
)

// Snapshot is an immutable view of one generation. The zero value is an
// empty 0x0 grid.
type Snapshot struct {
	rows, cols int
	gen        uint64
	cells      []uint8
}

// Rows returns the number of rows.
func (s Snapshot) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Snapshot) Cols() int { return s.cols }

// Generation returns the generation the snapshot was taken at.
func (s Snapshot) Generation() uint64 { return s.gen }

// Population returns the number of live cells.
func (s Snapshot) Population() int {
	n := 0
	for _, v := range s.cells {
		n += int(v)
	}
	return n
}

// At reports whether (row, col) is alive.
func (s Snapshot) At(row, col int) (bool, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, s.rows, s.cols)
	}
	return s.cells[row*s.cols+col] == 1, nil
}

// Alive is At for renderers: coordinates outside the grid read as dead.
func (s Snapshot) Alive(row, col int) bool {
	alive, err := s.At(row, col)
	return err == nil && alive
}

// Each calls fn for every cell in row-major order.
func (s Snapshot) Each(fn func(row, col int, alive bool)) {
	for r := 0; r < s.rows; r++ {
		base := r * s.cols
		for c := 0; c < s.cols; c++ {
			fn(r, c, s.cells[base+c] == 1)
		}
	}
}

// AppendBytes appends the row-major 0/1 cell values to dst.
func (s Snapshot) AppendBytes(dst []uint8) []uint8 {
	return append(dst, s.cells...)
}

// Equal reports whether both snapshots hold the same dimensions and cells.
// The generation is ignored.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.rows == o.rows && s.cols == o.cols && slices.Equal(s.cells, o.cells)
}

// String renders the grid as plaintext rows of 'O' (alive) and '.' (dead).
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.cols + 1) * s.rows)
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] == 1 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
