package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-joy/internal/bounce"
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

var (
	flagLevelsWidth  float64
	flagLevelsHeight float64
	flagLevelsMap    bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level layouts",
	Long: `Builds every level layout for a canvas and prints its bricks and walls.

The canvas defaults to the one the current terminal would get.
With --map each level is drawn one character per grid cell:
  #  brick
  *  power-up brick
  |  wall
  .  empty

Examples:
  bounce levels
  bounce levels --map
  bounce levels --difficulty hard
  bounce levels --width 300 --height 534 --seed 7`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().Float64Var(&flagLevelsWidth, "width", 0, "Canvas width in pixels (0 = fit terminal)")
	levelsCmd.Flags().Float64Var(&flagLevelsHeight, "height", 0, "Canvas height in pixels (0 = width * 16/9)")
	levelsCmd.Flags().BoolVar(&flagLevelsMap, "map", false, "Draw each level's brick map")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadBounce(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, _ := config.ParseDifficulty(flagDifficulty) // Checked in PersistentPreRunE
		config.ApplyBouncePreset(&cfg, preset)
	}
	palette, err := cfg.Palette.Resolve()
	if err != nil {
		return err
	}
	speeds := config.NewSpeedTable(cfg.Ball, cfg.Speed)

	width, height := flagLevelsWidth, flagLevelsHeight
	if width <= 0 {
		rc := runtimeConfig()
		view, ok := bounce.CanvasForTerminal(rc.ScreenW, rc.ScreenH)
		if !ok {
			return fmt.Errorf("terminal too small for a canvas, pass --width")
		}
		width, height = view.CanvasW, view.CanvasH
	}
	if height <= 0 {
		height = width * 16 / 9
	}

	fmt.Printf("Levels on a %.0fx%.0f canvas:\n\n", width, height)
	fmt.Printf("  %-3s  %-16s  %6s  %8s  %5s  %5s  %s\n", "#", "Layout", "Bricks", "Power-up", "Walls", "Speed", "Grid")
	fmt.Printf("  %-3s  %-16s  %6s  %8s  %5s  %5s  %s\n", "-", "------", "------", "--------", "-----", "-----", "----")

	rng := core.NewRNG(flagSeed)
	for n := 1; n <= bounce.LayoutCount(); n++ {
		lvl, err := bounce.BuildLevel(bounce.LevelParams{
			Number:        n,
			Width:         width,
			Height:        height,
			Bricks:        cfg.Bricks,
			PowerUpChance: cfg.PowerUps.Chance,
			Palette:       palette.Neon,
		}, rng)
		if err != nil {
			return fmt.Errorf("level %d: %w", n, err)
		}

		powerUps := 0
		for _, b := range lvl.Bricks {
			if b.PowerUp {
				powerUps++
			}
		}
		fmt.Printf("  %-3d  %-16s  %6d  %8d  %5d  %5.1f  %dx%d\n",
			n, lvl.Layout, len(lvl.Bricks), powerUps, len(lvl.Walls), speeds.ForLevel(n), lvl.Grid.Cols, lvl.Grid.Rows)

		if flagLevelsMap {
			fmt.Println()
			fmt.Print(brickMap(lvl))
			fmt.Println()
		}
	}

	fmt.Println()
	if speeds.IsEnabled() {
		fmt.Printf("Endless mode repeats the layouts; ball speed tops out at %.1f from level %d.\n",
			speeds.ForLevel(speeds.CapLevel()), speeds.CapLevel())
	} else {
		fmt.Printf("Ball speed is fixed at %.1f.\n", speeds.ForLevel(1))
	}
	return nil
}

// brickMap draws one character per grid cell.
func brickMap(lvl *bounce.Level) string {
	var b strings.Builder
	g := lvl.Grid
	for row := 0; row < g.Rows; row++ {
		b.WriteString("       ")
		for col := 0; col < g.Cols; col++ {
			b.WriteByte(cellChar(lvl, g.Cell(row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellChar(lvl *bounce.Level, cell core.RectF) byte {
	c := cell.Center()
	for _, br := range lvl.Bricks {
		if br.Rect.Center() == c {
			if br.PowerUp {
				return '*'
			}
			return '#'
		}
	}
	for _, w := range lvl.Walls {
		if w.Interior && w.Rect.Overlaps(cell) {
			return '|'
		}
	}
	return '.'
}
