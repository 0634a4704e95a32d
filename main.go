package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"termlife/engine"
	"termlife/utils"
)

const (
	seedFile   = "default.json"
	frameDelay = 1 * time.Second
)

func main() {
	game, renderer, stats, err := initializeGame(seedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %+v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runLoop(ctx, game, renderer, stats)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "termlife: %+v\n", err)
		os.Exit(1)
	}

	displayShutdownSummary(game, stats)
}

// runLoop renders the seeded board, then advances and redraws one
// generation per frame until the context is cancelled.
func runLoop(ctx context.Context, game *engine.Engine, renderer *engine.TerminalRenderer, stats *utils.Stats) error {
	renderer.Clear()
	renderer.Display(game)

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		frameStart := time.Now()
		game.Step()
		generation++
		stats.Update(generation, game.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		renderer.Clear()
		renderer.Display(game)
	}
}
