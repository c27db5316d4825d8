//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/pkg/life"
)

// GridPainter keeps one pixel per cell in an offscreen image and scales it
// onto the screen.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	palette    Palette
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int, p Palette) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols), palette: p}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the snapshot into the painter image and draws it at scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, snap life.Snapshot, scale int) {
	if snap.Rows() != gp.rows || snap.Cols() != gp.cols {
		return
	}
	fillSnapshotRGBA(gp.buf, snap, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
