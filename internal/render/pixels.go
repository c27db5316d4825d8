package render

import (
	"image/color"

	"lifegrid/pkg/life"
)

// Palette holds the colours used for live and dead cells.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette matches the green-on-black look of the classic board.
func DefaultPalette() Palette {
	return Palette{
		On:  color.RGBA{R: 46, G: 204, B: 64, A: 255},
		Off: color.Black,
	}
}

// fillSnapshotRGBA converts a snapshot into RGBA pixels in buf, one pixel per
// cell. buf must hold at least 4*rows*cols bytes.
func fillSnapshotRGBA(buf []byte, snap life.Snapshot, p Palette) {
	rOn, gOn, bOn, aOn := p.On.RGBA()
	rOff, gOff, bOff, aOff := p.Off.RGBA()
	snap.Each(func(row, col int, alive bool) {
		base := (row*snap.Cols() + col) * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}

// CellAtPixel maps a screen position inside a grid drawn at scale onto a
// cell coordinate. ok is false outside the grid.
func CellAtPixel(x, y, scale, rows, cols int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
