// Command life runs Conway's Game of Life in the terminal or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/bootstrap"
	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/driver"
	"lifegrid/internal/session"
	"lifegrid/internal/tui"
	"lifegrid/pkg/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command so it can be tested without a process exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Parse("life", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// The terminal UI owns the screen, so it only logs to a file.
	logOut := stderr
	if cfg.UI == config.UITerminal {
		logOut = io.Discard
	}
	logger, closeLog, err := bootstrap.NewLogger(cfg, logOut)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = ctxlog.WithLogger(ctx, logger)

	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		return err
	}

	switch cfg.UI {
	case config.UIHeadless:
		return runHeadless(ctx, cfg, engine, stdout)
	default:
		s := session.New(engine, session.Options{
			Density: cfg.Density,
			TPS:     session.TPSFromInterval(cfg.Interval),
			Logger:  logger,
		})
		return tui.Run(ctx, s, logger)
	}
}

func runHeadless(ctx context.Context, cfg config.Config, engine *life.Engine, stdout io.Writer) error {
	log := ctxlog.FromContext(ctx)
	runner := driver.NewRunner(engine, cfg.Interval)
	runner.OnStep(func(gen uint64) {
		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug("generation", "gen", gen, "population", engine.Population())
		}
	})

	// Cancellation (Ctrl-C, deadline) ends an unbounded run normally.
	err := runner.Run(ctx, cfg.Generations)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run: %w", err)
	}

	snap := engine.Snapshot()
	log.Info("simulation stopped", "generation", snap.Generation(), "population", snap.Population())
	fmt.Fprintf(stdout, "generation %d population %d\n", snap.Generation(), snap.Population())
	_, err = io.WriteString(stdout, snap.String())
	return err
}
