package bounce

import "math"

// Autopilot plays a session without input: it starts pending levels and
// moves the paddle under the next ball to come down. Used by the sim
// command and for soak tests.
type Autopilot struct {
	// Offset is where on the paddle the pilot aims, as a fraction of the
	// half-width. 0 hits dead center, which sends the ball straight up.
	Offset float64

	// SwapEvery alternates the aim side every n ticks so the ball does not
	// settle into one column. 0 never swaps.
	SwapEvery uint64
}

// DefaultAutopilot aims a little off center and swaps sides every ten seconds.
func DefaultAutopilot() Autopilot {
	return Autopilot{Offset: 0.4, SwapEvery: 600}
}

// Drive performs the pilot's commands for one tick. Call it before Update.
func (a Autopilot) Drive(s *Session) error {
	switch s.State() {
	case StateMenu:
		return s.StartGame()
	case StateLevelIntro:
		return s.StartLevel()
	case StatePlaying:
		if x, ok := a.Target(s); ok {
			s.SetPaddleTarget(x)
		}
	}
	return nil
}

// Target returns the paddle center that meets the lowest falling ball.
// Returns false when no ball is falling.
func (a Autopilot) Target(s *Session) (float64, bool) {
	var next *Ball
	for _, b := range s.Balls() {
		if !b.Active || b.Vel.Y <= 0 {
			continue
		}
		if next == nil || b.Pos.Y > next.Pos.Y {
			next = b
		}
	}
	if next == nil {
		return 0, false
	}

	w, _ := s.Canvas()
	p := s.Paddle()
	x := predictX(next, p.Y-next.Radius, w)

	side := 1.0
	if a.SwapEvery > 0 && (s.Tick()/a.SwapEvery)%2 == 1 {
		side = -1
	}
	return x + side*a.Offset*p.W/2, true
}

// predictX folds the straight-line path of b off the side walls until it
// reaches height y. Obstacle walls are ignored.
func predictX(b *Ball, y, width float64) float64 {
	if b.Vel.Y <= 0 || y <= b.Pos.Y {
		return b.Pos.X
	}
	x := b.Pos.X + b.Vel.X*(y-b.Pos.Y)/b.Vel.Y

	lo, hi := b.Radius, width-b.Radius
	span := hi - lo
	if span <= 0 {
		return width / 2
	}
	// Reflect into [lo, hi]
	t := math.Mod(x-lo, 2*span)
	if t < 0 {
		t += 2 * span
	}
	if t > span {
		t = 2*span - t
	}
	return lo + t
}
