package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/gui"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagGUI   bool
	flagScale float64
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified rule preset.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Enter/Space  - Start / pause / resume
  Ctrl+S       - Save a screenshot (terminal only)
  Q/Ctrl+C     - Quit (Esc also quits the window)

Examples:
  breakout play breakout
  breakout play breakout_classic --fps 30
  breakout play breakout_scored --gui --scale 1.5
  breakout play breakout --config ./my-breakout.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", gui.DefaultScale, "Window pixels per world unit (with --gui)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// loadConfig validates the config file before any game is created, so a bad
// file is reported instead of silently replaced by defaults.
func loadConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// terminalConfig returns the runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newSink opens the speaker unless sound is muted or disabled in config.
func newSink(cfg config.AudioConfig, logger *log.Logger) audio.Sink {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}
	}
	return audio.New(cfg, logger)
}

func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available games.")
		os.Exit(1)
	}

	gameCfg := loadConfig()
	logger, closeLog := mustLogger(!flagGUI)
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sink := newSink(gameCfg.Audio, logger)

	var runErr error
	if flagGUI {
		bg, ok := game.(*breakout.Game)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %s cannot run in a window\n", gameID)
			os.Exit(1)
		}
		runErr = gui.Run(bg, gui.Options{
			Store:   store,
			Sink:    sink,
			Logger:  logger,
			Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
			Scale:   flagScale,
		})
	} else {
		runErr = tui.Run(game, tui.Options{
			Store:   store,
			Sink:    sink,
			Logger:  logger,
			Runtime: terminalConfig(),
		})
	}

	// Close resources before potential exit
	sink.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		report(logger, "game stopped", runErr, "game", gameID)
		os.Exit(1)
	}
}
