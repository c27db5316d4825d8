//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/bootstrap"
	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse("life-gui", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	logger, closeLog, err := bootstrap.NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	ctx := ctxlog.WithLogger(context.Background(), logger)

	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	s := session.New(engine, session.Options{
		Density: cfg.Density,
		TPS:     session.TPSFromInterval(cfg.Interval),
		Logger:  logger,
	})

	game := app.New(s, cfg.Scale, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifegrid: Conway's Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
