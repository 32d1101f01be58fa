package bounce

import "github.com/vovakirdan/bounce-joy/internal/core"

// Brick is a destructible square. Once invisible it stays invisible.
type Brick struct {
	Rect    core.RectF
	Color   core.Color
	Visible bool
	PowerUp bool    // Drops a power-up when destroyed
	Glow    float64 // Pulse intensity in [0, 1], power-up bricks only

	glowDir float64
}

// NewBrick creates a visible brick.
func NewBrick(rect core.RectF, color core.Color, powerUp bool) Brick {
	return Brick{
		Rect:    rect,
		Color:   color,
		Visible: true,
		PowerUp: powerUp,
		glowDir: 1,
	}
}

// UpdateGlow advances the pulse of a visible power-up brick.
func (b *Brick) UpdateGlow(step float64) {
	if !b.PowerUp || !b.Visible {
		return
	}
	b.Glow += step * b.glowDir
	if b.Glow >= 1 {
		b.Glow = 1
		b.glowDir = -1
	}
	if b.Glow <= 0 {
		b.Glow = 0
		b.glowDir = 1
	}
}

// Wall is an indestructible obstacle.
type Wall struct {
	Rect core.RectF

	// Interior walls sit inside the brick area; bricks keep a clearance around them.
	Interior bool
}

// blocks reports whether a brick cell must be left empty because of this wall.
func (w Wall) blocks(cell core.RectF, tolerance float64) bool {
	if !w.Interior {
		return cell.Overlaps(w.Rect)
	}
	if cell.Overlaps(w.Rect.Expand(tolerance)) {
		return true
	}
	// Top-left corner inside the wall's tolerance band
	return cell.Y >= w.Rect.Y-tolerance && cell.Y <= w.Rect.Bottom()+tolerance &&
		cell.X >= w.Rect.X && cell.X <= w.Rect.Right()
}
