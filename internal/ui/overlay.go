//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/render"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional guides on top of the grid: cell borders and a
// highlight under the mouse cursor.
type Overlay struct {
	size      core.Size
	scale     int
	showGrid  bool
	hoverRow  int
	hoverCol  int
	hoverOK   bool
	pixel     *ebiten.Image
	lineColor color.RGBA
	hoverTint color.RGBA
}

// NewOverlay constructs an overlay for a grid of size drawn at scale.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{
		size:      size,
		scale:     scale,
		showGrid:  scale >= 6,
		lineColor: color.RGBA{R: 40, G: 40, B: 48, A: 255},
		hoverTint: color.RGBA{R: 255, G: 255, B: 255, A: 60},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid with G and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hoverOK = render.CellAtPixel(mx, my, o.scale, o.size.H, o.size.W)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.scale <= 0 || o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	width := float64(o.size.W * o.scale)
	height := float64(o.size.H * o.scale)
	if o.showGrid {
		for c := 1; c < o.size.W; c++ {
			o.drawRect(screen, float64(c*o.scale), 0, 1, height, o.lineColor)
		}
		for r := 1; r < o.size.H; r++ {
			o.drawRect(screen, 0, float64(r*o.scale), width, 1, o.lineColor)
		}
	}
	if o.hoverOK {
		s := float64(o.scale)
		o.drawRect(screen, float64(o.hoverCol)*s, float64(o.hoverRow)*s, s, s, o.hoverTint)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
