package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-joy/internal/core"
	"github.com/vovakirdan/bounce-joy/internal/platform/tui"
	"github.com/vovakirdan/bounce-joy/internal/registry"
	"github.com/vovakirdan/bounce-joy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Bounce Joy",
	Long: `Start playing the given mode (default: bounce, the campaign).

Controls:
  Left/Right, A/D  - Move the paddle
  Mouse            - Paddle follows the pointer
  Enter/Space      - Start game / start level
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, wider paddle, more power-ups
  normal - Settings from the config file
  hard   - Faster ball, narrower paddle, fewer lives
  fixed  - Ball speed never ramps up

Examples:
  bounce play
  bounce play bounce_endless
  bounce play --difficulty easy
  bounce play --start-level 3
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "bounce"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'bounce list' to see the modes)", err)
	}

	logger, closeLog, err := newLogger("bounce", true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
