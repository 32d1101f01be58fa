package bounce

import (
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Paddle is the player's bat, pinned near the bottom of the canvas.
type Paddle struct {
	X, Y float64 // Top-left corner
	W, H float64

	canvasW float64
	cfg     config.PaddleConfig
}

// NewPaddle creates a paddle centered horizontally on the canvas.
func NewPaddle(canvasW, canvasH float64, cfg config.PaddleConfig) Paddle {
	p := Paddle{H: cfg.Height, cfg: cfg}
	p.Reset(canvasW, canvasH)
	return p
}

// Reset recomputes width and position from the canvas size and recenters.
func (p *Paddle) Reset(canvasW, canvasH float64) {
	p.W = canvasW * p.cfg.WidthRatio
	p.X = (canvasW - p.W) / 2
	p.Y = canvasH - p.cfg.MarginBottom - p.H
	p.canvasW = canvasW
}

// MoveTo centers the paddle on targetX, clamped to the canvas.
func (p *Paddle) MoveTo(targetX float64) {
	p.X = core.ClampF(targetX-p.W/2, 0, p.canvasW-p.W)
}

// CenterX returns the horizontal center.
func (p Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}
