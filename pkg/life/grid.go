package life

// grid stores one generation of cells in row-major order, one byte per cell.
type grid struct {
	rows, cols int
	data       []uint8
}

func newGrid(rows, cols int) grid {
	return grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// index returns the linear slice index for (row, col).
func (g grid) index(row, col int) int { return row*g.cols + col }

// contains reports whether (row, col) lies inside the grid. Edges are hard:
// nothing outside this range exists.
func (g grid) contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// neighbors counts live cells in the Moore neighbourhood of (row, col).
func (g grid) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		base := r * g.cols
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			n += int(g.data[base+c])
		}
	}
	return n
}

func (g grid) clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g grid) population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}
