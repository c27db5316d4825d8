// Package bootstrap turns a config.Config into the logger and seeded engine
// the lifegrid commands start from.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"
)

// NewLogger builds a text logger at the configured level. Logs go to
// cfg.LogFile when set, otherwise to fallback. The returned close function
// must be called once logging is done.
func NewLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	out := fallback
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// NewEngine creates the engine described by cfg. Configured patterns are
// stamped onto an empty grid, centred when their placement asks for it;
// without patterns the grid is randomized with cfg.Density.
func NewEngine(ctx context.Context, cfg config.Config) (*life.Engine, error) {
	log := ctxlog.FromContext(ctx)
	engine, err := life.NewWithConfig(life.Config{Rows: cfg.Rows, Cols: cfg.Cols, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}

	if len(cfg.Patterns) == 0 {
		if err := engine.Randomize(cfg.Density); err != nil {
			return nil, err
		}
		log.Info("grid randomized", "rows", cfg.Rows, "cols", cfg.Cols, "density", cfg.Density, "seed", cfg.Seed, "population", engine.Population())
		return engine, nil
	}

	for _, pl := range cfg.Patterns {
		p, err := pattern.Resolve(pl.Name, pl.File)
		if err != nil {
			return nil, err
		}
		row, col := pl.Row, pl.Col
		if pl.Centered {
			row, col = pattern.Centered(p, engine.Size())
		}
		if err := pattern.Place(engine, p, row, col); err != nil {
			return nil, err
		}
		log.Debug("pattern placed", "pattern", p.Name, "row", row, "col", col, "cells", len(p.Cells))
	}
	log.Info("grid seeded", "rows", cfg.Rows, "cols", cfg.Cols, "patterns", len(cfg.Patterns), "population", engine.Population())
	return engine, nil
}
