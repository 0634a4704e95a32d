package main

import (
	"fmt"
	"os"
	"time"

	"termlife/engine"
	"termlife/utils"
)

// initializeGame loads the seed document, detects the display size and
// constructs the engine sized to it.
func initializeGame(seedPath string) (
	*engine.Engine,
	*engine.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed, err := utils.LoadSeed(seedPath)
	if err != nil {
		return nil, nil, nil, err
	}

	rows, cols := utils.DisplaySize()
	game, err := engine.New(seed, rows, cols)
	if err != nil {
		return nil, nil, nil, err
	}

	return game, &engine.TerminalRenderer{}, utils.NewStats(), nil
}

// displayShutdownSummary prints final run statistics to stderr, keeping
// stdout reserved for rendered frames.
func displayShutdownSummary(game *engine.Engine, stats *utils.Stats) {
	fmt.Fprintf(os.Stderr, "\nFinal stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Fprintf(os.Stderr, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	fmt.Fprintf(os.Stderr, "Population: %d | Checksum: %s\n",
		game.Population(), game.Checksum())
}
