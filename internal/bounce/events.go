package bounce

import (
	"fmt"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Event is something that happened during an update pass.
// The set of events is closed: only types in this package implement it.
type Event interface {
	bounceEvent()
}

// Axis identifies the reflected velocity component of a bounce.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Ball events, produced by (*Ball).Advance.

// WallBounced reports a ball reflecting off an obstacle wall.
type WallBounced struct {
	Wall int // Index into the level's walls
	Rect core.RectF
	Axis Axis
}

// PaddleBounced reports a ball launched off the paddle.
type PaddleBounced struct {
	HitPoint float64 // 0 at the left edge, 1 at the right edge
	Angle    float64 // Launch angle in radians
}

// BrickDestroyed reports a brick removed by a ball.
type BrickDestroyed struct {
	Brick   int // Index into the level's bricks
	Center  core.Vec
	Color   core.Color
	PowerUp bool
	Axis    Axis
}

// BallLost reports a ball leaving through the bottom of the canvas.
type BallLost struct {
	Pos core.Vec
}

// Session events, produced by the controller.

// PowerUpSpawned reports a power-up starting to fall.
type PowerUpSpawned struct {
	Kind PowerUpKind
	Pos  core.Vec
}

// PowerUpCollected reports a power-up caught by the paddle.
type PowerUpCollected struct {
	Kind       PowerUpKind
	BallsAdded int
}

// LifeLost reports that every ball left play.
type LifeLost struct {
	Lives int // Lives remaining
}

// LevelStarted reports that a level was built and play began.
type LevelStarted struct {
	Level  int
	Layout string
	Bricks int
	Walls  int
}

// LevelIntro reports that a level is waiting for the player to start it.
type LevelIntro struct {
	Level int
}

// LevelCompleted reports that the last brick of a level was destroyed.
type LevelCompleted struct {
	Level int
	Score int
}

// GameOver reports that the last life was lost.
type GameOver struct {
	Level int
	Score int
}

// GameWon reports that the final campaign level was cleared.
type GameWon struct {
	Level int
	Score int
}

func (WallBounced) bounceEvent()      {}
func (PaddleBounced) bounceEvent()    {}
func (BrickDestroyed) bounceEvent()   {}
func (BallLost) bounceEvent()         {}
func (PowerUpSpawned) bounceEvent()   {}
func (PowerUpCollected) bounceEvent() {}
func (LifeLost) bounceEvent()         {}
func (LevelStarted) bounceEvent()     {}
func (LevelIntro) bounceEvent()       {}
func (LevelCompleted) bounceEvent()   {}
func (GameOver) bounceEvent()         {}
func (GameWon) bounceEvent()          {}

// Describe returns a short human-readable description of an event.
func Describe(ev Event) string {
	switch e := ev.(type) {
	case WallBounced:
		return fmt.Sprintf("wall %d bounce on %s", e.Wall, e.Axis)
	case PaddleBounced:
		return fmt.Sprintf("paddle hit at %.2f", e.HitPoint)
	case BrickDestroyed:
		if e.PowerUp {
			return fmt.Sprintf("power-up brick %d destroyed", e.Brick)
		}
		return fmt.Sprintf("brick %d destroyed", e.Brick)
	case BallLost:
		return fmt.Sprintf("ball lost at x=%.1f", e.Pos.X)
	case PowerUpSpawned:
		return fmt.Sprintf("%s power-up spawned", e.Kind)
	case PowerUpCollected:
		return fmt.Sprintf("%s power-up collected, +%d balls", e.Kind, e.BallsAdded)
	case LifeLost:
		return fmt.Sprintf("life lost, %d left", e.Lives)
	case LevelStarted:
		return fmt.Sprintf("level %d (%s) started with %d bricks", e.Level, e.Layout, e.Bricks)
	case LevelIntro:
		return fmt.Sprintf("level %d ready", e.Level)
	case LevelCompleted:
		return fmt.Sprintf("level %d complete, score %d", e.Level, e.Score)
	case GameOver:
		return fmt.Sprintf("game over on level %d, score %d", e.Level, e.Score)
	case GameWon:
		return fmt.Sprintf("game won, score %d", e.Score)
	default:
		return "unknown event"
	}
}
