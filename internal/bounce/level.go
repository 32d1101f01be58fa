package bounce

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Grid is the brick placement area of a level.
type Grid struct {
	Cols, Rows int
	StartX     float64 // Left edge of the first column
	StartY     float64 // Top edge of the first row
	Pitch      float64 // Brick size plus padding
	BrickSize  float64
	AreaW      float64 // Cols * Pitch
	AreaH      float64 // Rows * Pitch
	Thickness  float64 // Wall thickness
}

// NewGrid lays out a centered grid covering heightRatio of the canvas.
func NewGrid(width, height, heightRatio float64, bricks config.BrickConfig) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("bounce: %vx%v: %w", width, height, ErrInvalidGeometry)
	}

	pitch := bricks.Size + bricks.Padding
	cols := int(math.Floor((width - bricks.SideMargin) / pitch))
	rows := int(math.Floor(height * heightRatio / pitch))
	if cols <= 0 || rows <= 0 {
		return Grid{}, fmt.Errorf("bounce: %vx%v canvas gives %dx%d cells: %w", width, height, cols, rows, ErrEmptyGrid)
	}

	areaW := float64(cols) * pitch
	return Grid{
		Cols:      cols,
		Rows:      rows,
		StartX:    (width - areaW) / 2,
		StartY:    bricks.TopOffset,
		Pitch:     pitch,
		BrickSize: bricks.Size,
		AreaW:     areaW,
		AreaH:     float64(rows) * pitch,
		Thickness: bricks.WallThickness,
	}, nil
}

// Cell returns the brick rectangle at row, col.
func (g Grid) Cell(row, col int) core.RectF {
	return core.NewRectF(
		g.StartX+float64(col)*g.Pitch,
		g.StartY+float64(row)*g.Pitch,
		g.BrickSize,
		g.BrickSize,
	)
}

// Level is a generated wall set and brick field.
type Level struct {
	Number int
	Layout string
	Grid   Grid
	Walls  []Wall
	Bricks []Brick
}

// Remaining returns the number of visible bricks.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if l.Bricks[i].Visible {
			n++
		}
	}
	return n
}

// LevelParams is the input of BuildLevel.
type LevelParams struct {
	Number        int
	Width, Height float64
	Endless       bool // Cycle layouts instead of failing past the last one
	Bricks        config.BrickConfig
	PowerUpChance float64
	Palette       []core.Color
}

// BuildLevel generates walls and bricks for a level. Wall placement is a
// pure function of the level number and canvas size; the RNG only decides
// row colors and which bricks carry power-ups.
func BuildLevel(p LevelParams, rng *core.RNG) (*Level, error) {
	layout, err := LayoutFor(p.Number, p.Endless)
	if err != nil {
		return nil, err
	}
	if len(p.Palette) == 0 {
		return nil, fmt.Errorf("bounce: level %d: empty palette: %w", p.Number, ErrInvalidState)
	}

	grid, err := NewGrid(p.Width, p.Height, layout.HeightRatio, p.Bricks)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		Number: p.Number,
		Layout: layout.Name,
		Grid:   grid,
		Walls:  layout.walls(grid),
		Bricks: make([]Brick, 0, grid.Cols*grid.Rows),
	}

	for row := 0; row < grid.Rows; row++ {
		color := layout.rowColor(row, p.Palette, rng)
		for col := 0; col < grid.Cols; col++ {
			cell := grid.Cell(row, col)
			if !layout.includes(grid, row, cell) || blocked(lvl.Walls, cell, p.Bricks.WallTolerance) {
				continue
			}
			lvl.Bricks = append(lvl.Bricks, NewBrick(cell, color, rng.Chance(p.PowerUpChance)))
		}
	}
	return lvl, nil
}

func blocked(walls []Wall, cell core.RectF, tolerance float64) bool {
	for _, w := range walls {
		if w.blocks(cell, tolerance) {
			return true
		}
	}
	return false
}
