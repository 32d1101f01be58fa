package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-joy/internal/bounce"
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/platform/tui"
	"github.com/vovakirdan/bounce-joy/internal/registry"
	"github.com/vovakirdan/bounce-joy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start Bounce Joy in interactive menu mode.

Pick campaign or endless with Up/Down and a difficulty with Left/Right.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  bounce menu
  bounce menu --fps 30
  bounce menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("bounce", true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	preset, _ := config.ParseDifficulty(flagDifficulty)

	for {
		result, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		preset = result.Difficulty
		bounce.SetDifficultyPreset(string(preset))

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
