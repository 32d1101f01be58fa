package bounce

import (
	"math"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// bounceAxis picks the axis of least penetration between a circle and a box.
// Ties go to Y.
func bounceAxis(pos core.Vec, radius float64, r core.RectF) Axis {
	c := r.Center()
	overlapX := r.W/2 + radius - math.Abs(pos.X-c.X)
	overlapY := r.H/2 + radius - math.Abs(pos.Y-c.Y)
	if overlapX < overlapY {
		return AxisX
	}
	return AxisY
}

// collideWalls reflects off the first wall touched and pushes the ball
// just outside it along the bounce axis.
func (b *Ball) collideWalls(walls []Wall) (Event, bool) {
	for i, wall := range walls {
		r := wall.Rect
		if !r.CircleHits(b.Pos, b.Radius) {
			continue
		}

		axis := bounceAxis(b.Pos, b.Radius, r)
		c := r.Center()
		switch axis {
		case AxisX:
			b.Vel.X = -b.Vel.X
			if b.Pos.X < c.X {
				b.Pos.X = r.X - b.Radius
			} else {
				b.Pos.X = r.Right() + b.Radius
			}
		case AxisY:
			b.Vel.Y = -b.Vel.Y
			if b.Pos.Y < c.Y {
				b.Pos.Y = r.Y - b.Radius
			} else {
				b.Pos.Y = r.Bottom() + b.Radius
			}
		}
		return WallBounced{Wall: i, Rect: r, Axis: axis}, true
	}
	return nil, false
}

// collidePaddle launches a descending ball from the paddle. The launch angle
// depends only on where along the paddle the ball landed.
func (b *Ball) collidePaddle(p Paddle) (Event, bool) {
	if b.Pos.Y+b.Radius < p.Y || b.Pos.Y-b.Radius > p.Y+p.H {
		return nil, false
	}
	if b.Vel.Y <= 0 || b.Pos.X < p.X || b.Pos.X > p.X+p.W {
		return nil, false
	}

	hit := (b.Pos.X - p.X) / p.W
	angle := -math.Pi/2 + (hit-0.5)*2*MaxBounceAngle
	b.Vel = core.FromAngle(angle, b.Speed)
	b.Pos.Y = p.Y - b.Radius
	return PaddleBounced{HitPoint: hit, Angle: angle}, true
}

// collideBricks destroys the first visible brick touched and reflects.
// The ball is not pushed out; the brick is gone by the next tick.
func (b *Ball) collideBricks(bricks []Brick) (Event, bool) {
	for i := range bricks {
		brick := &bricks[i]
		if !brick.Visible || !brick.Rect.CircleHits(b.Pos, b.Radius) {
			continue
		}

		brick.Visible = false
		axis := bounceAxis(b.Pos, b.Radius, brick.Rect)
		if axis == AxisX {
			b.Vel.X = -b.Vel.X
		} else {
			b.Vel.Y = -b.Vel.Y
		}
		return BrickDestroyed{
			Brick:   i,
			Center:  brick.Rect.Center(),
			Color:   brick.Color,
			PowerUp: brick.PowerUp,
			Axis:    axis,
		}, true
	}
	return nil, false
}
