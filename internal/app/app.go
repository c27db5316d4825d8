//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

var helpLines = []string{
	"space  run / stop",
	"n      step once",
	"r      randomize",
	"c      clear",
	"+ -    speed",
	"g      grid lines",
	"click  toggle cell",
	"q      quit",
}

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep
	log     *slog.Logger

	scale int
	rows  int
	cols  int
}

// New constructs a Game for the provided session.
func New(s *session.Session, scale int, log *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Engine().Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.H, size.W, render.DefaultPalette()),
		overlay: ui.NewOverlay(size, scale),
		hud: ui.NewHUD(s, "Game of Life", hudWidth, size.H*scale,
			[]string{session.KeyGeneration, session.KeyPopulation, session.KeyState}, helpLines),
		timer: core.NewFixedStep(s.TPS()),
		log:   log,
		scale: scale,
		rows:  size.H,
		cols:  size.W,
	}
}

// Update handles per-frame input and advances the simulation at the session
// speed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Randomize(); err != nil {
			g.log.Error("randomize failed", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.Slower()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick()
	}

	g.overlay.Update()
	g.hud.Update(g.cols * g.scale)

	g.timer.SetTPS(g.session.TPS())
	if g.timer.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) handleClick() {
	mx, my := ebiten.CursorPosition()
	row, col, ok := render.CellAtPixel(mx, my, g.scale, g.rows, g.cols)
	if !ok {
		return
	}
	if err := g.session.Toggle(row, col); err != nil && !errors.Is(err, life.ErrOutOfRange) {
		g.log.Error("toggle failed", "row", row, "col", col, "err", err)
	}
}

// Draw renders the current generation, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.session.Snapshot(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.cols*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols*g.scale + g.hud.Width(), g.rows * g.scale
}
