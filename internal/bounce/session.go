// Package bounce implements the Bounce Joy engine: ball kinematics and
// collision, level generation, and the session controller that owns score,
// lives and level progression. It has no I/O; hosts drive it one tick at a
// time and consume the events each tick returns.
package bounce

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

// State is the session state machine.
type State int

const (
	StateMenu          State = iota // Before the first game
	StateLevelIntro                 // Level ready, waiting for the player
	StatePlaying                    // Simulation running
	StateLevelComplete              // Level cleared, next intro pending
	StateGameOver                   // No lives left
	StateWin                        // Final campaign level cleared
	StatePaused                     // Play suspended by the player
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateLevelIntro:
		return "level-intro"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	case StateWin:
		return "win"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only leaves through RestartGame.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}

// Mode selects campaign or endless play.
type Mode int

const (
	ModeCampaign Mode = iota // Fixed level sequence, win after the last
	ModeEndless              // Layouts cycle forever, speed ramps to the cap
)

// SessionConfig is the input of NewSession.
type SessionConfig struct {
	Width, Height float64 // Canvas size
	Seed          int64
	Mode          Mode
	StartLevel    int // Level used by StartGame and RestartGame; 0 means 1
	Game          config.BounceConfig
}

// particleSeedMix decorrelates the particle stream from the gameplay stream.
const particleSeedMix uint64 = 0x9e3779b97f4a7c15

// Session owns all mutable game state. It is not safe for concurrent use;
// the host must call every method from the goroutine that drives ticks.
type Session struct {
	cfg     config.BounceConfig
	palette config.Palette
	speeds  config.SpeedTable
	mode    Mode
	first   int

	width, height float64

	state   State
	score   int
	lives   int
	level   int
	tick    uint64
	running bool // Frame loop active

	paddle    Paddle
	target    float64
	balls     []*Ball
	lvl       *Level
	powerUps  []*PowerUp
	particles []Particle

	rng     *core.RNG // Gameplay: launch angles, row colors, power-ups
	fx      *core.RNG // Particles only
	pending Deferred  // Level-complete to next intro
	outbox  []Event   // Lifecycle events delivered by the next Update
}

// NewSession validates the configuration and returns a session in StateMenu.
func NewSession(sc SessionConfig) (*Session, error) {
	if err := sc.Game.Validate(); err != nil {
		return nil, fmt.Errorf("bounce: %w", err)
	}
	palette, err := sc.Game.Palette.Resolve()
	if err != nil {
		return nil, fmt.Errorf("bounce: %w", err)
	}
	if sc.Mode == ModeCampaign && sc.Game.Gameplay.MaxLevel > LayoutCount() {
		return nil, fmt.Errorf("bounce: max level %d: %w", sc.Game.Gameplay.MaxLevel, ErrUnknownLevel)
	}

	first := sc.StartLevel
	if first == 0 {
		first = 1
	}
	if first < 1 || (sc.Mode == ModeCampaign && first > sc.Game.Gameplay.MaxLevel) {
		return nil, fmt.Errorf("bounce: start level %d: %w", first, ErrUnknownLevel)
	}

	s := &Session{
		cfg:     sc.Game,
		palette: palette,
		speeds:  config.NewSpeedTable(sc.Game.Ball, sc.Game.Speed),
		mode:    sc.Mode,
		first:   first,
		state:   StateMenu,
		lives:   sc.Game.Gameplay.Lives,
		level:   first,
		rng:     core.NewRNG(sc.Seed),
		fx:      core.NewRNG(int64(uint64(sc.Seed) ^ particleSeedMix)), //#nosec G115 -- bit mixing
	}
	if err := s.setCanvas(sc.Width, sc.Height); err != nil {
		return nil, err
	}
	s.paddle = NewPaddle(s.width, s.height, s.cfg.Paddle)
	s.target = s.paddle.CenterX()
	return s, nil
}

// setCanvas checks that every layout fits before accepting a size.
func (s *Session) setCanvas(width, height float64) error {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return fmt.Errorf("bounce: canvas %vx%v: %w", width, height, ErrInvalidGeometry)
	}
	for _, l := range layouts {
		if _, err := NewGrid(width, height, l.HeightRatio, s.cfg.Bricks); err != nil {
			return err
		}
	}
	s.width, s.height = width, height
	return nil
}

// StartGame leaves the menu and shows the first level intro.
func (s *Session) StartGame() error {
	if s.state != StateMenu {
		return fmt.Errorf("bounce: start game in %s: %w", s.state, ErrInvalidState)
	}
	s.resetRun()
	return nil
}

// RestartGame resets score, lives and level and shows the first level intro.
// Works from any state and cancels a pending level transition.
func (s *Session) RestartGame() {
	s.resetRun()
	s.particles = s.particles[:0]
	s.powerUps = s.powerUps[:0]
}

func (s *Session) resetRun() {
	s.pending.Cancel()
	s.Stop()
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = s.first
	s.enterLevelIntro()
}

func (s *Session) enterLevelIntro() {
	s.state = StateLevelIntro
	s.outbox = append(s.outbox, LevelIntro{Level: s.level})
}

// StartLevel builds the current level and begins play.
// On error the session is left unchanged.
func (s *Session) StartLevel() error {
	if s.state != StateLevelIntro {
		return fmt.Errorf("bounce: start level in %s: %w", s.state, ErrInvalidState)
	}

	lvl, err := BuildLevel(LevelParams{
		Number:        s.level,
		Width:         s.width,
		Height:        s.height,
		Endless:       s.mode == ModeEndless,
		Bricks:        s.cfg.Bricks,
		PowerUpChance: s.cfg.PowerUps.Chance,
		Palette:       s.palette.Neon,
	}, s.rng)
	if err != nil {
		return err
	}

	s.lvl = lvl
	s.paddle = NewPaddle(s.width, s.height, s.cfg.Paddle)
	s.target = s.paddle.CenterX()
	s.balls = []*Ball{s.serveBall()}
	s.particles = s.particles[:0]
	s.powerUps = s.powerUps[:0]
	s.state = StatePlaying
	s.running = true
	s.outbox = append(s.outbox, LevelStarted{
		Level:  s.level,
		Layout: lvl.Layout,
		Bricks: len(lvl.Bricks),
		Walls:  len(lvl.Walls),
	})
	return nil
}

// serveBall creates a ball above the paddle heading up at a random angle
// within 45° of vertical.
func (s *Session) serveBall() *Ball {
	b := s.cfg.Ball
	pos := core.Vec{
		X: s.width / 2,
		Y: s.height - s.cfg.Paddle.MarginBottom - s.cfg.Paddle.Height - b.Radius - b.SpawnLift,
	}
	angle := s.rng.Range(-math.Pi/4, -3*math.Pi/4)
	return NewBall(pos, angle, s.speeds.ForLevel(s.level), b.Radius, b.TrailLength)
}

// SetPaddleTarget moves the paddle to center on x (canvas space, clamped).
// Ignored unless the session is playing, and for non-finite x.
func (s *Session) SetPaddleTarget(x float64) {
	if s.state != StatePlaying || math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	s.target = x
	s.paddle.MoveTo(x)
}

// NudgePaddle moves the paddle target by dx.
func (s *Session) NudgePaddle(dx float64) {
	s.SetPaddleTarget(core.ClampF(s.target+dx, 0, s.width))
}

// Resize changes the canvas. The paddle is recomputed immediately; the
// level grid is rebuilt when the next level starts.
func (s *Session) Resize(width, height float64) error {
	if err := s.setCanvas(width, height); err != nil {
		return err
	}
	s.paddle.Reset(width, height)
	s.target = s.paddle.CenterX()
	return nil
}

// TogglePause suspends or resumes play. Returns whether the session is paused.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
	return s.state == StatePaused
}

// Stop ends the frame loop. Calling it more than once is harmless.
func (s *Session) Stop() {
	s.running = false
}

// Running reports whether the frame loop is active.
func (s *Session) Running() bool {
	return s.running
}

// Update runs one tick and returns everything that happened since the
// previous call. Only a playing session simulates; a completed level counts
// down to the next intro.
func (s *Session) Update() []Event {
	out := s.outbox
	s.outbox = nil

	switch s.state {
	case StatePlaying:
		if s.running {
			s.tick++
			out = s.step(out)
		}
	case StateLevelComplete:
		s.tick++
		s.particles = updateParticles(s.particles)
		if s.pending.Tick() {
			s.enterLevelIntro()
			out = append(out, s.outbox...)
			s.outbox = nil
		}
	}
	return out
}

func (s *Session) step(out []Event) []Event {
	for i := range s.lvl.Bricks {
		s.lvl.Bricks[i].UpdateGlow(s.cfg.Bricks.GlowStep)
	}

	world := World{
		Width:  s.width,
		Height: s.height,
		Walls:  s.lvl.Walls,
		Paddle: s.paddle,
		Bricks: s.lvl.Bricks,
	}

	inPlay, survivors := 0, 0
	for _, b := range s.balls {
		if !b.Active {
			continue
		}
		inPlay++
		alive, events := b.Advance(world)
		if alive {
			survivors++
		}
		out = s.handleBallEvents(events, out)
		if s.state != StatePlaying {
			break // Level finished mid-pass
		}
	}

	if s.state == StatePlaying {
		s.balls = activeBalls(s.balls)
		if inPlay > 0 && survivors == 0 {
			out = s.loseLife(out)
		}
	}
	if s.state == StatePlaying {
		out = s.updatePowerUps(out)
	}
	s.particles = updateParticles(s.particles)
	return out
}

func activeBalls(balls []*Ball) []*Ball {
	n := 0
	for _, b := range balls {
		if b.Active {
			balls[n] = b
			n++
		}
	}
	clear(balls[n:])
	return balls[:n]
}

func (s *Session) handleBallEvents(events []Event, out []Event) []Event {
	for _, ev := range events {
		out = append(out, ev)
		switch e := ev.(type) {
		case BrickDestroyed:
			out = s.onBrickDestroyed(e, out)
		case WallBounced:
			c := e.Rect.Center()
			s.burst(c, s.palette.WallGlow, s.cfg.Particles.WallHitCount)
		case PaddleBounced, BallLost:
		}
	}
	return out
}

func (s *Session) onBrickDestroyed(e BrickDestroyed, out []Event) []Event {
	s.score += s.cfg.Gameplay.BrickPoints * s.level

	color := e.Color
	if e.PowerUp {
		color = s.palette.PowerUp
	}
	s.burst(e.Center, color, s.cfg.Particles.Count)

	if e.PowerUp {
		kind := core.Choice(s.rng, powerUpKinds)
		s.powerUps = append(s.powerUps, NewPowerUp(kind, e.Center, s.cfg.PowerUps))
		out = append(out, PowerUpSpawned{Kind: kind, Pos: e.Center})
	}

	if s.lvl.Remaining() == 0 {
		out = s.completeLevel(out)
	}
	return out
}

func (s *Session) completeLevel(out []Event) []Event {
	s.state = StateLevelComplete
	s.Stop()
	out = append(out, LevelCompleted{Level: s.level, Score: s.score})

	if s.mode == ModeCampaign && s.level >= s.cfg.Gameplay.MaxLevel {
		s.state = StateWin
		return append(out, GameWon{Level: s.level, Score: s.score})
	}

	s.level++
	s.pending.Schedule(s.cfg.Gameplay.LevelCompleteDelay)
	return out
}

func (s *Session) loseLife(out []Event) []Event {
	if s.lives > 0 {
		s.lives--
	}
	out = append(out, LifeLost{Lives: s.lives})

	if s.lives == 0 {
		s.state = StateGameOver
		s.Stop()
		return append(out, GameOver{Level: s.level, Score: s.score})
	}

	s.balls = append(s.balls[:0], s.serveBall())
	s.paddle.Reset(s.width, s.height)
	s.target = s.paddle.CenterX()
	s.powerUps = s.powerUps[:0]
	return out
}

func (s *Session) updatePowerUps(out []Event) []Event {
	n := 0
	for _, p := range s.powerUps {
		p.Update(s.height, s.cfg.PowerUps.Spin)
		if p.Active && p.Touches(s.paddle) {
			p.Active = false
			added := s.applyPowerUp(p.Kind)
			out = append(out, PowerUpCollected{Kind: p.Kind, BallsAdded: added})
		}
		if p.Active {
			s.powerUps[n] = p
			n++
		}
	}
	clear(s.powerUps[n:])
	s.powerUps = s.powerUps[:n]
	return out
}

// applyPowerUp returns the number of balls added.
func (s *Session) applyPowerUp(kind PowerUpKind) int {
	before := len(s.balls)
	switch kind {
	case PowerUpSplit:
		for _, b := range s.balls[:before] {
			if b.Active {
				pair := b.Split()
				s.balls = append(s.balls, pair[0], pair[1])
			}
		}
	case PowerUpMultiBall:
		bc := s.cfg.Ball
		pos := core.Vec{X: s.paddle.CenterX(), Y: s.paddle.Y - bc.Radius - bc.SpawnLift}
		speed := s.speeds.ForLevel(s.level)
		for i := 0; i < 3; i++ {
			angle := -math.Pi/2 + float64(i-1)*SplitAngle
			s.balls = append(s.balls, NewBall(pos, angle, speed, bc.Radius, bc.TrailLength))
		}
	}
	return len(s.balls) - before
}

func (s *Session) burst(pos core.Vec, color core.Color, n int) {
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, NewParticle(s.fx, pos, color, s.cfg.Particles))
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Mode returns the play mode.
func (s *Session) Mode() Mode { return s.mode }

// Tick returns the number of simulated ticks.
func (s *Session) Tick() uint64 { return s.tick }

// Canvas returns the canvas size.
func (s *Session) Canvas() (width, height float64) { return s.width, s.height }

// Paddle returns the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Balls returns the balls in play. Callers must not modify the slice.
func (s *Session) Balls() []*Ball { return s.balls }

// ActiveBalls returns the number of active balls.
func (s *Session) ActiveBalls() int {
	n := 0
	for _, b := range s.balls {
		if b.Active {
			n++
		}
	}
	return n
}

// Level data; nil before the first level starts.

// Bricks returns the current level's bricks, including destroyed ones.
func (s *Session) Bricks() []Brick {
	if s.lvl == nil {
		return nil
	}
	return s.lvl.Bricks
}

// Walls returns the current level's walls.
func (s *Session) Walls() []Wall {
	if s.lvl == nil {
		return nil
	}
	return s.lvl.Walls
}

// CurrentLevel returns the generated level, or nil before the first start.
func (s *Session) CurrentLevel() *Level { return s.lvl }

// PowerUps returns the falling power-ups.
func (s *Session) PowerUps() []*PowerUp { return s.powerUps }

// Particles returns the live particles.
func (s *Session) Particles() []Particle { return s.particles }

// Palette returns the resolved colors.
func (s *Session) Palette() config.Palette { return s.palette }

// PendingTransition returns the ticks until the next level intro, if one is scheduled.
func (s *Session) PendingTransition() (int, bool) {
	return s.pending.Remaining(), s.pending.Pending()
}
