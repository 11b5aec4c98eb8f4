// breakout plays Breakout in the terminal, in a window, or over SSH.
//
// Usage:
//
//	breakout list              - List available rule presets
//	breakout play <game>       - Play a preset (add --gui for a window)
//	breakout menu              - Start menu to pick presets interactively
//	breakout serve             - Start SSH server for remote play
//	breakout scores <game>     - Show best runs for a preset
//	breakout sim               - Run a preset headless with the autopilot
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Load a YAML or TOML config
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
	flagConcurrent bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce, break, repeat",
	Long: `Breakout in your terminal, in a desktop window, or over SSH.

Three rule presets are available:
  breakout_classic  - walls, bricks and paddle, no score
  breakout_scored   - adds the scoreboard and explosion sounds
  breakout          - adds the start screen and pause

Available commands:
  list     - Show all presets
  play     - Play a preset directly
  menu     - Interactive preset picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  sim      - Run headless and print a summary

Examples:
  breakout list
  breakout play breakout
  breakout play breakout_classic --gui
  breakout serve --ssh :2222
  breakout sim --preset scored --ticks 5000`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		breakout.SetConfigPath(flagConfig)
		breakout.SetConcurrentStep(flagConcurrent)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagConcurrent, "concurrent", false, "Run ball and paddle movement in parallel")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
