package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagSimTicks  int
	flagSimPreset string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a preset headless with the autopilot",
	Long: `Run the simulation without any frontend. The autopilot starts the game
and keeps the paddle under the ball. Prints a summary including a hash of
the final state; equal flags always produce equal hashes.

Examples:
  breakout sim
  breakout sim --preset classic --ticks 20000
  breakout sim --concurrent`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimPreset, "preset", "full", "Rule preset: classic, scored, full")
}

func runSim(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagSimPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(false)
	defer closeLog()

	game := breakout.NewWithConfig(preset, loadConfig())
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}

	logger.Debug("simulating", "game", game.ID(), "ticks", flagSimTicks, "concurrent", flagConcurrent)
	sum, err := breakout.Simulate(game, runtime, flagSimTicks)
	if err != nil {
		logger.Error("simulation stopped", "game", sum.Game, "frames", sum.Frames, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Game:        %s\n", sum.Game)
	fmt.Printf("Frames:      %d\n", sum.Frames)
	fmt.Printf("Ticks:       %d\n", sum.Ticks)
	fmt.Printf("Score:       %d\n", sum.Score)
	fmt.Printf("Bricks left: %d\n", sum.Bricks)
	fmt.Printf("Collisions:  %d\n", sum.Collisions)
	fmt.Printf("Explosions:  %d\n", sum.Explosions)
	fmt.Printf("Dropped:     %d\n", sum.Dropped)
	fmt.Printf("Hash:        %016x\n", sum.Hash)
}
