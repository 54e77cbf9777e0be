package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/sim"
)

var (
	flagFrames      int
	flagSwipeChance float64
	flagWidth       int
	flagHeight      int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with random swipes",
	Long: `Run the game without a terminal. A simulated player swipes at random
rows; round results are logged to stderr and a summary is printed.

Examples:
  reflex sim
  reflex sim --frames 7200 --swipe-chance 0.1
  reflex sim --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	defaults := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagFrames, "frames", defaults.Frames, "Number of frames to simulate")
	simCmd.Flags().Float64Var(&flagSwipeChance, "swipe-chance", defaults.SwipeChance, "Probability of a swipe per frame")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Playfield width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells, HUD included")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := mustLogger(os.Stderr, "reflex-sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	res, err := sim.Run(cfg, rt, sim.Options{
		Frames:      flagFrames,
		SwipeChance: flagSwipeChance,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"seed", seed,
		"frames", res.Frames,
		"swipes", res.Swipes,
		"obstacles", res.Obstacles,
		"rounds", len(res.Rounds),
		"best", res.Best(),
		"state", res.State,
	)
	fmt.Printf("Rounds: %d  Best: %d  Swipes: %d  Obstacles: %d\n",
		len(res.Rounds), res.Best(), res.Swipes, res.Obstacles)
}
