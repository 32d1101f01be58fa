package bounce

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

func newSession(t *testing.T, mode Mode, seed int64, tweak func(*config.BounceConfig)) *Session {
	t.Helper()
	cfg := config.DefaultBounceConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	s, err := NewSession(SessionConfig{Width: 300, Height: 534, Seed: seed, Mode: mode, Game: cfg})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// playing returns a session with level 1 running.
func playing(t *testing.T, tweak func(*config.BounceConfig)) *Session {
	t.Helper()
	s := newSession(t, ModeCampaign, 1, tweak)
	if err := s.StartGame(); err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
	if err := s.StartLevel(); err != nil {
		t.Fatalf("StartLevel() error = %v", err)
	}
	s.Update() // Drain lifecycle events
	return s
}

// isolateBrick hides every brick except one clear of walls and returns its index.
func isolateBrick(t *testing.T, s *Session) int {
	t.Helper()
	bricks := s.Bricks()
	keep := -1
	for i, b := range bricks {
		c := b.Rect.Center()
		free := true
		for _, w := range s.Walls() {
			if w.Rect.CircleHits(c, s.cfg.Ball.Radius+1) {
				free = false
				break
			}
		}
		if free {
			keep = i
			break
		}
	}
	if keep < 0 {
		t.Fatal("no brick clear of walls")
	}
	for i := range bricks {
		bricks[i].Visible = i == keep
	}
	return keep
}

// aimAt places the only ball one step below the brick center, moving up.
func aimAt(s *Session, brick int) {
	c := s.Bricks()[brick].Rect.Center()
	b := s.Balls()[0]
	b.Vel = core.Vec{X: 0, Y: -1}
	b.Pos = core.Vec{X: c.X, Y: c.Y + 1}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s := newSession(t, ModeCampaign, 1, nil)
	if s.State() != StateMenu {
		t.Errorf("State() = %v, expected %v", s.State(), StateMenu)
	}
	if s.Lives() != 3 || s.Score() != 0 || s.Level() != 1 {
		t.Errorf("lives, score, level = %d, %d, %d, expected 3, 0, 1", s.Lives(), s.Score(), s.Level())
	}
	if s.Running() {
		t.Error("Running() = true before play")
	}
	if events := s.Update(); len(events) != 0 || s.Tick() != 0 {
		t.Errorf("Update() in menu = %v, tick %d, expected nothing", events, s.Tick())
	}
}

func TestNewSessionErrors(t *testing.T) {
	cfg := config.DefaultBounceConfig()

	tests := []struct {
		name string
		sc   SessionConfig
		want error
	}{
		{"zero canvas", SessionConfig{Width: 0, Height: 534, Game: cfg}, ErrInvalidGeometry},
		{"tiny canvas", SessionConfig{Width: 25, Height: 534, Game: cfg}, ErrEmptyGrid},
		{"start past last level", SessionConfig{Width: 300, Height: 534, StartLevel: 4, Game: cfg}, ErrUnknownLevel},
		{"negative start", SessionConfig{Width: 300, Height: 534, StartLevel: -1, Game: cfg}, ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSession(tt.sc); !errors.Is(err, tt.want) {
				t.Errorf("NewSession() error = %v, expected %v", err, tt.want)
			}
		})
	}

	t.Run("max level beyond layouts", func(t *testing.T) {
		bad := config.DefaultBounceConfig()
		bad.Gameplay.MaxLevel = LayoutCount() + 1
		_, err := NewSession(SessionConfig{Width: 300, Height: 534, Game: bad})
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("NewSession() error = %v, expected ErrUnknownLevel", err)
		}

		_, err = NewSession(SessionConfig{Width: 300, Height: 534, Mode: ModeEndless, Game: bad})
		if err != nil {
			t.Errorf("NewSession() endless error = %v, expected nil", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := config.DefaultBounceConfig()
		bad.Gameplay.Lives = 0
		_, err := NewSession(SessionConfig{Width: 300, Height: 534, Game: bad})
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("NewSession() error = %v, expected ErrInvalidConfig", err)
		}
	})
}

func TestLifecycleCommands(t *testing.T) {
	s := newSession(t, ModeCampaign, 1, nil)

	if err := s.StartLevel(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartLevel() from menu error = %v, expected ErrInvalidState", err)
	}
	if err := s.StartGame(); err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
	if err := s.StartGame(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second StartGame() error = %v, expected ErrInvalidState", err)
	}

	events := s.Update()
	if countEvents[LevelIntro](events) != 1 {
		t.Errorf("Update() after StartGame = %v, expected one LevelIntro", events)
	}

	if err := s.StartLevel(); err != nil {
		t.Fatalf("StartLevel() error = %v", err)
	}
	if s.State() != StatePlaying || !s.Running() {
		t.Errorf("State() = %v, running %v, expected playing", s.State(), s.Running())
	}
	if s.ActiveBalls() != 1 {
		t.Errorf("ActiveBalls() = %d, expected 1", s.ActiveBalls())
	}
	events = s.Update()
	if countEvents[LevelStarted](events) != 1 {
		t.Errorf("Update() after StartLevel = %v, expected one LevelStarted", events)
	}
}

func TestServeBall(t *testing.T) {
	s := playing(t, nil)
	b := s.Balls()[0]

	w, _ := s.Canvas()
	if !near(b.Speed, s.cfg.Ball.BaseSpeed) {
		t.Errorf("Speed = %v, expected %v", b.Speed, s.cfg.Ball.BaseSpeed)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, expected the ball to rise", b.Vel.Y)
	}
	heading := b.Vel.Angle()
	if heading > -math.Pi/4+1e-6 || heading < -3*math.Pi/4-1e-6 {
		t.Errorf("heading = %v, expected within 45° of vertical", heading)
	}
	if math.Abs(b.Pos.X-w/2) > b.Speed*2 {
		t.Errorf("Pos.X = %v, expected near %v", b.Pos.X, w/2)
	}
}

func TestPaddleCommands(t *testing.T) {
	s := newSession(t, ModeCampaign, 1, nil)
	before := s.Paddle().X
	s.SetPaddleTarget(10)
	if s.Paddle().X != before {
		t.Error("SetPaddleTarget() moved the paddle outside play")
	}

	s = playing(t, nil)
	s.SetPaddleTarget(-100)
	if s.Paddle().X != 0 {
		t.Errorf("X = %v, expected 0", s.Paddle().X)
	}
	s.SetPaddleTarget(150)
	if !near(s.Paddle().CenterX(), 150) {
		t.Errorf("CenterX() = %v, expected 150", s.Paddle().CenterX())
	}
	s.NudgePaddle(20)
	if !near(s.Paddle().CenterX(), 170) {
		t.Errorf("CenterX() after nudge = %v, expected 170", s.Paddle().CenterX())
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s.SetPaddleTarget(x)
		if !near(s.Paddle().CenterX(), 170) {
			t.Errorf("SetPaddleTarget(%v) moved the paddle to %v", x, s.Paddle().CenterX())
		}
	}
	s.NudgePaddle(-20)
	if !near(s.Paddle().CenterX(), 150) {
		t.Errorf("CenterX() after bad targets and nudge = %v, expected 150", s.Paddle().CenterX())
	}
}

func TestLastBallLostEndsGame(t *testing.T) {
	s := playing(t, func(c *config.BounceConfig) { c.Gameplay.Lives = 1 })
	_, h := s.Canvas()

	b := s.Balls()[0]
	b.Pos = core.Vec{X: 5.5, Y: h - 6}
	b.Vel = core.Vec{X: 0, Y: 6}

	events := s.Update()
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected %v", s.State(), StateGameOver)
	}
	if s.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", s.Lives())
	}
	if countEvents[GameOver](events) != 1 || countEvents[LifeLost](events) != 1 {
		t.Errorf("events = %v, expected one LifeLost and one GameOver", events)
	}
	if s.Running() {
		t.Error("Running() = true after game over")
	}

	tick := s.Tick()
	s.Update()
	if s.Tick() != tick {
		t.Error("Update() simulated after game over")
	}
}

func TestLifeLostServesNewBall(t *testing.T) {
	s := playing(t, nil)
	_, h := s.Canvas()

	s.SetPaddleTarget(0)
	s.powerUps = append(s.powerUps, NewPowerUp(PowerUpSplit, core.Vec{X: 150, Y: 100}, s.cfg.PowerUps))

	b := s.Balls()[0]
	b.Pos = core.Vec{X: 290, Y: h - 6}
	b.Vel = core.Vec{X: 0, Y: 6}

	events := s.Update()
	if s.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", s.State())
	}
	if s.Lives() != 2 {
		t.Errorf("Lives() = %d, expected 2", s.Lives())
	}
	if countEvents[LifeLost](events) != 1 {
		t.Errorf("events = %v, expected one LifeLost", events)
	}
	if s.ActiveBalls() != 1 || s.Balls()[0] == b {
		t.Error("expected a fresh ball after losing a life")
	}
	if !near(s.Paddle().CenterX(), 150) {
		t.Errorf("paddle CenterX() = %v, expected recentered at 150", s.Paddle().CenterX())
	}
	if len(s.PowerUps()) != 0 {
		t.Errorf("len(PowerUps()) = %d, expected 0", len(s.PowerUps()))
	}
}

func TestLosingOneOfSeveralBalls(t *testing.T) {
	s := playing(t, nil)
	_, h := s.Canvas()

	s.applyPowerUp(PowerUpMultiBall)
	b := s.Balls()[0]
	b.Pos = core.Vec{X: 290, Y: h - 6}
	b.Vel = core.Vec{X: 0, Y: 6}

	events := s.Update()
	if countEvents[LifeLost](events) != 0 {
		t.Error("LifeLost with balls still in play")
	}
	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}
	if countEvents[BallLost](events) != 1 {
		t.Errorf("events = %v, expected one BallLost", events)
	}
	for _, b := range s.Balls() {
		if !b.Active {
			t.Error("inactive ball kept in play")
		}
	}
}

func TestBrickScoring(t *testing.T) {
	s := playing(t, nil)
	keep := isolateBrick(t, s)
	// A second visible brick keeps the level going
	other := (keep + len(s.Bricks())/2) % len(s.Bricks())
	s.Bricks()[other].Visible = true
	s.Bricks()[keep].PowerUp = false
	aimAt(s, keep)

	events := s.Update()
	if countEvents[BrickDestroyed](events) != 1 {
		t.Fatalf("events = %v, expected one BrickDestroyed", events)
	}
	if s.Score() != s.cfg.Gameplay.BrickPoints {
		t.Errorf("Score() = %d, expected %d", s.Score(), s.cfg.Gameplay.BrickPoints)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", s.State())
	}
	if got := len(s.Particles()); got != s.cfg.Particles.Count {
		t.Errorf("len(Particles()) = %d, expected %d", got, s.cfg.Particles.Count)
	}
	for _, p := range s.Particles() {
		if p.Color != s.Bricks()[keep].Color {
			t.Fatalf("particle color = %v, expected brick color %v", p.Color, s.Bricks()[keep].Color)
		}
	}
}

func TestPowerUpBrickDropsPowerUp(t *testing.T) {
	s := playing(t, nil)
	keep := isolateBrick(t, s)
	other := (keep + len(s.Bricks())/2) % len(s.Bricks())
	s.Bricks()[other].Visible = true
	s.Bricks()[keep].PowerUp = true
	aimAt(s, keep)

	events := s.Update()
	if countEvents[PowerUpSpawned](events) != 1 {
		t.Fatalf("events = %v, expected one PowerUpSpawned", events)
	}
	if len(s.PowerUps()) != 1 {
		t.Fatalf("len(PowerUps()) = %d, expected 1", len(s.PowerUps()))
	}
	for _, p := range s.Particles() {
		if p.Color != s.Palette().PowerUp {
			t.Fatalf("particle color = %v, expected %v", p.Color, s.Palette().PowerUp)
		}
	}
}

func TestPowerUpCollection(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		added int
	}{
		{PowerUpSplit, 2},
		{PowerUpMultiBall, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := playing(t, nil)
			pd := s.Paddle()
			s.powerUps = append(s.powerUps, NewPowerUp(tt.kind, core.Vec{X: pd.CenterX(), Y: pd.Y}, s.cfg.PowerUps))

			events := s.Update()
			if countEvents[PowerUpCollected](events) != 1 {
				t.Fatalf("events = %v, expected one PowerUpCollected", events)
			}
			if s.ActiveBalls() != 1+tt.added {
				t.Errorf("ActiveBalls() = %d, expected %d", s.ActiveBalls(), 1+tt.added)
			}
			if len(s.PowerUps()) != 0 {
				t.Errorf("len(PowerUps()) = %d, expected 0", len(s.PowerUps()))
			}
			for i, b := range s.Balls() {
				if !near(b.Vel.Len(), b.Speed) {
					t.Errorf("ball %d |v| = %v, expected %v", i, b.Vel.Len(), b.Speed)
				}
			}
		})
	}
}

func TestMultiBallAngles(t *testing.T) {
	s := playing(t, nil)
	s.applyPowerUp(PowerUpMultiBall)

	balls := s.Balls()[1:]
	want := []float64{-math.Pi/2 - SplitAngle, -math.Pi / 2, -math.Pi/2 + SplitAngle}
	for i, b := range balls {
		if !near(b.Vel.Angle(), want[i]) {
			t.Errorf("ball %d heading = %v, expected %v", i, b.Vel.Angle(), want[i])
		}
		if !near(b.Pos.X, s.Paddle().CenterX()) {
			t.Errorf("ball %d X = %v, expected paddle center", i, b.Pos.X)
		}
	}
}

func TestLevelCompleteFiresOnce(t *testing.T) {
	s := playing(t, nil)
	keep := isolateBrick(t, s)
	aimAt(s, keep)
	s.applyPowerUp(PowerUpMultiBall) // Extra balls must not re-trigger completion

	events := s.Update()
	if countEvents[LevelCompleted](events) != 1 {
		t.Fatalf("events = %v, expected one LevelCompleted", events)
	}
	if s.State() != StateLevelComplete {
		t.Fatalf("State() = %v, expected %v", s.State(), StateLevelComplete)
	}
	if s.Level() != 2 || s.Running() {
		t.Errorf("Level() = %d, running %v, expected 2 and stopped", s.Level(), s.Running())
	}
	if _, ok := s.PendingTransition(); !ok {
		t.Error("no pending transition after level complete")
	}

	completed, intros := 0, 0
	for i := 0; i <= s.cfg.Gameplay.LevelCompleteDelay; i++ {
		events = s.Update()
		completed += countEvents[LevelCompleted](events)
		intros += countEvents[LevelIntro](events)
	}
	if completed != 0 {
		t.Errorf("LevelCompleted fired %d more times", completed)
	}
	if intros != 1 || s.State() != StateLevelIntro {
		t.Errorf("intros = %d, State() = %v, expected one intro", intros, s.State())
	}

	if err := s.StartLevel(); err != nil {
		t.Fatalf("StartLevel() level 2 error = %v", err)
	}
	if !near(s.Balls()[0].Speed, s.speeds.ForLevel(2)) {
		t.Errorf("level 2 speed = %v, expected %v", s.Balls()[0].Speed, s.speeds.ForLevel(2))
	}
	if s.CurrentLevel().Layout != "V Canyon" {
		t.Errorf("Layout = %q, expected V Canyon", s.CurrentLevel().Layout)
	}
}

func TestFinalLevelWins(t *testing.T) {
	s := playing(t, func(c *config.BounceConfig) { c.Gameplay.MaxLevel = 1 })
	aimAt(s, isolateBrick(t, s))

	events := s.Update()
	if s.State() != StateWin {
		t.Fatalf("State() = %v, expected %v", s.State(), StateWin)
	}
	if countEvents[GameWon](events) != 1 {
		t.Errorf("events = %v, expected one GameWon", events)
	}
	if _, ok := s.PendingTransition(); ok {
		t.Error("transition scheduled after winning")
	}
}

func TestEndlessNeverWins(t *testing.T) {
	s := newSession(t, ModeEndless, 1, func(c *config.BounceConfig) { c.Gameplay.MaxLevel = 1 })
	_ = s.StartGame()
	_ = s.StartLevel()
	aimAt(s, isolateBrick(t, s))

	s.Update()
	if s.State() != StateLevelComplete {
		t.Errorf("State() = %v, expected %v", s.State(), StateLevelComplete)
	}
	if s.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", s.Level())
	}
}

func TestRestartCancelsTransition(t *testing.T) {
	s := playing(t, nil)
	aimAt(s, isolateBrick(t, s))
	s.Update()
	if s.State() != StateLevelComplete {
		t.Fatalf("State() = %v, expected %v", s.State(), StateLevelComplete)
	}

	s.RestartGame()
	if _, ok := s.PendingTransition(); ok {
		t.Error("transition still pending after restart")
	}
	if s.State() != StateLevelIntro || s.Level() != 1 || s.Score() != 0 || s.Lives() != 3 {
		t.Errorf("after restart: state %v level %d score %d lives %d", s.State(), s.Level(), s.Score(), s.Lives())
	}
	if len(s.Particles()) != 0 {
		t.Errorf("len(Particles()) = %d, expected 0", len(s.Particles()))
	}

	for i := 0; i < 100; i++ {
		s.Update()
	}
	if s.State() != StateLevelIntro || s.Level() != 1 {
		t.Errorf("cancelled transition fired: state %v level %d", s.State(), s.Level())
	}
}

func TestPause(t *testing.T) {
	s := playing(t, nil)
	if !s.TogglePause() || s.State() != StatePaused {
		t.Fatalf("TogglePause() did not pause, state %v", s.State())
	}
	tick := s.Tick()
	pos := s.Balls()[0].Pos
	s.Update()
	if s.Tick() != tick || s.Balls()[0].Pos != pos {
		t.Error("Update() advanced a paused session")
	}
	if s.TogglePause() || s.State() != StatePlaying {
		t.Errorf("TogglePause() did not resume, state %v", s.State())
	}

	menu := newSession(t, ModeCampaign, 1, nil)
	if menu.TogglePause() || menu.State() != StateMenu {
		t.Error("TogglePause() changed the menu state")
	}
}

func TestStopIdempotent(t *testing.T) {
	s := playing(t, nil)
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("Running() = true after Stop()")
	}
	tick := s.Tick()
	s.Update()
	if s.Tick() != tick {
		t.Error("Update() simulated with the loop stopped")
	}
}

func TestResize(t *testing.T) {
	s := playing(t, nil)
	if err := s.Resize(444, 789); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	w, h := s.Canvas()
	if w != 444 || h != 789 {
		t.Errorf("Canvas() = %v, %v, expected 444, 789", w, h)
	}
	if !near(s.Paddle().W, 444*s.cfg.Paddle.WidthRatio) {
		t.Errorf("paddle W = %v, expected %v", s.Paddle().W, 444*s.cfg.Paddle.WidthRatio)
	}
	if err := s.Resize(0, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Resize(0, 10) error = %v, expected ErrInvalidGeometry", err)
	}
	if w, _ := s.Canvas(); w != 444 {
		t.Error("failed Resize() changed the canvas")
	}
}

func TestBallSpeedStaysInRange(t *testing.T) {
	s := playing(t, nil)
	lo, hi := s.cfg.Ball.BaseSpeed, s.cfg.Ball.MaxSpeed

	for i := 0; i < 2000 && s.State() == StatePlaying; i++ {
		if len(s.Balls()) > 0 {
			s.SetPaddleTarget(s.Balls()[0].Pos.X)
		}
		s.Update()
		for _, b := range s.Balls() {
			if v := b.Vel.Len(); v < lo-1e-6 || v > hi+1e-6 {
				t.Fatalf("tick %d: |v| = %v outside [%v, %v]", s.Tick(), v, lo, hi)
			}
		}
	}
}

func autoplay(s *Session, ticks int) {
	for i := 0; i < ticks; i++ {
		switch s.State() {
		case StateLevelIntro:
			_ = s.StartLevel()
		case StateGameOver, StateWin:
			return
		}
		if balls := s.Balls(); len(balls) > 0 {
			s.SetPaddleTarget(balls[0].Pos.X + float64(i%7) - 3)
		}
		s.Update()
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		s := newSession(t, ModeCampaign, seed, nil)
		_ = s.StartGame()
		autoplay(s, 3000)
		return s.Snapshot()
	}

	a, b := run(12345), run(12345)
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ for the same seed: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("runs differ: score %d/%d tick %d/%d", a.Score, b.Score, a.Tick, b.Tick)
	}

	c := run(54321)
	if a.RNGState == c.RNGState {
		t.Error("different seeds produced the same RNG state")
	}
}

func TestSnapshot(t *testing.T) {
	s := playing(t, nil)
	s.Update()
	snap := s.Snapshot()

	if snap.Tick != s.Tick() || snap.Score != s.Score() || snap.Lives != s.Lives() {
		t.Errorf("Snapshot() = %+v, does not match session", snap)
	}
	if snap.State != "playing" || snap.Layout != "Open Fortress" {
		t.Errorf("State, Layout = %q, %q", snap.State, snap.Layout)
	}
	if snap.BallCount != 1 || len(snap.BallData) != 5 {
		t.Errorf("BallCount = %d, len(BallData) = %d, expected 1 and 5", snap.BallCount, len(snap.BallData))
	}
	if snap.BricksRemaining != s.CurrentLevel().Remaining() {
		t.Errorf("BricksRemaining = %d, expected %d", snap.BricksRemaining, s.CurrentLevel().Remaining())
	}
	if snap.Pending != -1 {
		t.Errorf("Pending = %d, expected -1", snap.Pending)
	}

	if snap.ParticleState != s.fx.State() {
		t.Errorf("ParticleState = %d, expected %d", snap.ParticleState, s.fx.State())
	}

	again := s.Snapshot()
	if snap.Hash() != again.Hash() {
		t.Error("Hash() not stable for an unchanged session")
	}
	s.fx.Next()
	if moved := s.Snapshot(); moved.Hash() == snap.Hash() {
		t.Error("Hash() ignores the particle stream")
	}
	s.Update()
	after := s.Snapshot()
	if snap.Hash() == after.Hash() {
		t.Error("Hash() unchanged after a tick")
	}
}

func TestStreamsSeparateForAnySeed(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		s := newSession(t, ModeCampaign, seed, nil)
		if s.fx.State() == s.rng.State() {
			t.Errorf("seed %d: particle and gameplay streams share state %d", seed, s.rng.State())
		}
		again := newSession(t, ModeCampaign, seed, nil)
		if again.fx.State() != s.fx.State() {
			t.Errorf("seed %d: particle stream not reproducible", seed)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateMenu, "menu"},
		{StateLevelIntro, "level-intro"},
		{StatePlaying, "playing"},
		{StateLevelComplete, "level-complete"},
		{StateGameOver, "game-over"},
		{StateWin, "win"},
		{StatePaused, "paused"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.want)
		}
	}
}
