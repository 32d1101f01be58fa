package bounce

import (
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

// PowerUpKind identifies a power-up effect.
type PowerUpKind int

const (
	PowerUpSplit     PowerUpKind = iota // Every active ball splits into three
	PowerUpMultiBall                    // Three new balls launch from the paddle
)

// powerUpKinds lists every kind for uniform random choice.
var powerUpKinds = []PowerUpKind{PowerUpSplit, PowerUpMultiBall}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSplit:
		return "split"
	case PowerUpMultiBall:
		return "multi-ball"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for the kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSplit:
		return '×'
	case PowerUpMultiBall:
		return '+'
	default:
		return '?'
	}
}

// PowerUp is a falling collectible dropped by a power-up brick.
type PowerUp struct {
	Kind   PowerUpKind
	Pos    core.Vec // Center
	VY     float64
	Size   float64 // Diameter
	Angle  float64 // Cosmetic spin
	Active bool
}

// NewPowerUp creates an active power-up at pos.
func NewPowerUp(kind PowerUpKind, pos core.Vec, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		Kind:   kind,
		Pos:    pos,
		VY:     cfg.FallSpeed,
		Size:   cfg.Size,
		Active: true,
	}
}

// Update moves the power-up down and deactivates it once it is a full size
// below the canvas. Returns whether it is still active.
func (p *PowerUp) Update(canvasH, spin float64) bool {
	p.Pos.Y += p.VY
	p.Angle += spin
	if p.Pos.Y > canvasH+p.Size {
		p.Active = false
	}
	return p.Active
}

// Touches reports whether the power-up overlaps the paddle.
func (p *PowerUp) Touches(pd Paddle) bool {
	half := p.Size / 2
	return p.Pos.Y+half >= pd.Y &&
		p.Pos.Y-half <= pd.Y+pd.H &&
		p.Pos.X >= pd.X &&
		p.Pos.X <= pd.X+pd.W
}
