package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rule preset, play, repeat",
	Long: `Open the preset picker. Finishing or quitting a game returns to it.

Keys in the picker:
  up/down, j/k   choose a preset
  enter          play it
  tab            scoreboard
  q              quit

Examples:
  breakout menu
  breakout menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sink := newSink(gameCfg.Audio, logger)
	defer sink.Close()

	rt := terminalConfig()
	for {
		choice, err := tui.RunMenu(store, rt)
		if err != nil {
			report(logger, "menu failed", err)
			return
		}
		rt = choice.Config

		switch {
		case choice.Quit:
			return
		case choice.WantsScoreboard:
			back, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				report(logger, "scoreboard failed", err)
			}
			if !back {
				return
			}
			continue
		}

		game, err := registry.Create(choice.GameID)
		if err != nil {
			report(logger, "cannot create game", err, "game", choice.GameID)
			continue
		}
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}
		opts := tui.Options{Store: store, Sink: sink, Logger: logger, Runtime: rt}
		if err := tui.Run(game, opts); err != nil {
			report(logger, "game stopped", err, "game", choice.GameID)
		}
	}
}
