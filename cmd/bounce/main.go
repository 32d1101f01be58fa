// bounce is Bounce Joy, a ball-and-paddle game for the terminal.
//
// Usage:
//
//	bounce list              - List game modes
//	bounce play [mode]       - Play a mode (default: bounce)
//	bounce menu              - Pick a mode and difficulty interactively
//	bounce levels            - Show the level layouts
//	bounce sim               - Run a headless autopilot game
//	bounce serve             - Start SSH server for remote play
//	bounce scores [mode]     - Show high scores and recent runs
//	bounce config            - Print the effective settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bounce/scores.db)
//	--config <path>       - Load game settings from a YAML or TOML file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--start-level <n>     - Level new games start on
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-joy/internal/bounce"
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce Joy - break bricks in your terminal",
	Long: `Bounce Joy is a ball-and-paddle brick breaker for the terminal.
Steer with the arrow keys or the mouse, catch power-ups and clear
hand-built layouts of walls and bricks.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  levels   - Show the level layouts
  sim      - Headless autopilot run
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective settings

Examples:
  bounce play
  bounce play bounce_endless --difficulty hard
  bounce menu
  bounce sim --seed 7 --ticks 20000
  bounce serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		if flagStartLevel < 0 {
			return fmt.Errorf("start level must be positive, got %d", flagStartLevel)
		}
		bounce.SetConfigPath(flagConfig)
		bounce.SetDifficultyPreset(flagDifficulty)
		bounce.SetStartLevel(flagStartLevel)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bounce/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagStartLevel, "start-level", 0, "Level new games start on (0 = first)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Full-screen commands pass
// quiet so nothing is written over the game unless --log-file is set.
// The returned close function is never nil.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
