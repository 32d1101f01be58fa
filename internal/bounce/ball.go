package bounce

import (
	"math"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// MaxBounceAngle is the largest paddle launch deflection from vertical.
const MaxBounceAngle = math.Pi / 3

// SplitAngle is the heading offset of each ball produced by a split.
const SplitAngle = math.Pi / 6

// Ball is a moving circle. |Vel| equals Speed except inside a bounce.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Pixels per tick
	Speed  float64
	Radius float64
	Active bool

	trail    []core.Vec
	trailCap int
}

// NewBall creates an active ball heading at angle radians.
func NewBall(pos core.Vec, angle, speed, radius float64, trailLen int) *Ball {
	return &Ball{
		Pos:      pos,
		Vel:      core.FromAngle(angle, speed),
		Speed:    speed,
		Radius:   radius,
		Active:   true,
		trail:    make([]core.Vec, 0, trailLen),
		trailCap: trailLen,
	}
}

// Trail returns recent positions, oldest first.
func (b *Ball) Trail() []core.Vec {
	return b.trail
}

func (b *Ball) recordTrail() {
	if b.trailCap <= 0 {
		return
	}
	if len(b.trail) == b.trailCap {
		copy(b.trail, b.trail[1:])
		b.trail = b.trail[:len(b.trail)-1]
	}
	b.trail = append(b.trail, b.Pos)
}

// World is everything a ball can collide with during one tick.
// Bricks are shared with the level so hits mark them invisible in place.
type World struct {
	Width  float64
	Height float64
	Walls  []Wall
	Paddle Paddle
	Bricks []Brick
}

// Advance moves the ball one tick and resolves collisions.
// It returns whether the ball is still in play and what it hit.
// At most one wall and one brick are resolved per tick.
func (b *Ball) Advance(w World) (bool, []Event) {
	if !b.Active {
		return false, nil
	}

	b.recordTrail()
	b.Pos = b.Pos.Add(b.Vel)

	// Canvas sides and ceiling: clamp and negate, whatever the direction
	if b.Pos.X-b.Radius <= 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X+b.Radius >= w.Width {
		b.Pos.X = w.Width - b.Radius
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y-b.Radius <= 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
	}

	if b.Pos.Y+b.Radius >= w.Height {
		b.Active = false
		return false, []Event{BallLost{Pos: b.Pos}}
	}

	var events []Event
	if ev, ok := b.collideWalls(w.Walls); ok {
		events = append(events, ev)
	}
	if ev, ok := b.collidePaddle(w.Paddle); ok {
		events = append(events, ev)
	}
	if ev, ok := b.collideBricks(w.Bricks); ok {
		events = append(events, ev)
	}
	return true, events
}

// Split returns two new balls at the same position and speed, heading
// ±30° from this ball's current direction. The receiver is not modified.
func (b *Ball) Split() [2]*Ball {
	heading := b.Vel.Angle()
	return [2]*Ball{
		NewBall(b.Pos, heading+SplitAngle, b.Speed, b.Radius, b.trailCap),
		NewBall(b.Pos, heading-SplitAngle, b.Speed, b.Radius, b.trailCap),
	}
}
