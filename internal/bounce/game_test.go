package bounce

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bounce-joy/internal/core"
	"github.com/vovakirdan/bounce-joy/internal/registry"
)

func TestCanvasForTerminal(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		ok         bool
		vc, vr     int
		canvasW    float64
	}{
		{"standard", 80, 24, true, 24, 22, 288},
		{"large", 200, 60, true, MaxViewCols, 33, 444},
		{"narrow", 30, 60, true, 30, 27, 360},
		{"too short", 80, 10, false, 0, 0, 0},
		{"too narrow", 15, 40, false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := CanvasForTerminal(tt.cols, tt.rows)
			if ok != tt.ok {
				t.Fatalf("CanvasForTerminal() ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if v.Cols != tt.vc || v.Rows != tt.vr {
				t.Errorf("view = %dx%d, expected %dx%d", v.Cols, v.Rows, tt.vc, tt.vr)
			}
			if v.CanvasW != tt.canvasW {
				t.Errorf("CanvasW = %v, expected %v", v.CanvasW, tt.canvasW)
			}
			if !near(v.CanvasH/v.CanvasW, 16.0/9.0) {
				t.Errorf("aspect = %v, expected 16/9", v.CanvasH/v.CanvasW)
			}
			if v.X < 0 || v.X+v.Cols > tt.cols || v.Y+v.Rows+footerRows > tt.rows {
				t.Errorf("view %+v does not fit %dx%d", v, tt.cols, tt.rows)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v, ok := CanvasForTerminal(80, 24)
	if !ok {
		t.Fatal("CanvasForTerminal(80, 24) not ok")
	}

	if got := v.ToCanvasX(v.X); !near(got, CellWidth/2) {
		t.Errorf("ToCanvasX(left) = %v, expected %v", got, CellWidth/2)
	}
	if got := v.ToCanvasX(0); got != 0 {
		t.Errorf("ToCanvasX(0) = %v, expected clamp to 0", got)
	}
	if got := v.ToCanvasX(79); got != v.CanvasW {
		t.Errorf("ToCanvasX(79) = %v, expected clamp to %v", got, v.CanvasW)
	}

	col, row, ok := v.ToCell(core.Vec{X: 1, Y: 1})
	if !ok || col != v.X || row != v.Y {
		t.Errorf("ToCell(1, 1) = %d, %d, %v, expected %d, %d", col, row, ok, v.X, v.Y)
	}
	if _, _, ok := v.ToCell(core.Vec{X: v.CanvasW, Y: 1}); ok {
		t.Error("ToCell() accepted a point outside the canvas")
	}
}

func TestRasterHalfBlocks(t *testing.T) {
	v := Viewport{X: 0, Y: 0, Cols: 2, Rows: 1, CanvasW: 24, CanvasH: 24}
	r := newRaster(v)
	r.plot(core.Vec{X: 3, Y: 3}, core.ColorRed)    // Column 0, top half
	r.plot(core.Vec{X: 15, Y: 20}, core.ColorBlue) // Column 1, bottom half

	dst := core.NewScreen(2, 1)
	r.blit(dst)

	if c := dst.GetCell(0, 0); c.Rune != '▀' || c.Color != core.ColorRed {
		t.Errorf("cell 0 = %q %v, expected ▀ red", c.Rune, c.Color)
	}
	if c := dst.GetCell(1, 0); c.Rune != '▄' || c.Color != core.ColorBlue {
		t.Errorf("cell 1 = %q %v, expected ▄ blue", c.Rune, c.Color)
	}

	r.fillRect(core.NewRectF(0, 0, 24, 24), core.ColorGreen)
	r.blit(dst)
	if c := dst.GetCell(1, 0); c.Rune != '█' || c.Color != core.ColorGreen {
		t.Errorf("filled cell = %q %v, expected █ green", c.Rune, c.Color)
	}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"bounce", "bounce_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestGameFlow(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	if g.Session() == nil {
		t.Fatalf("Session() = nil, err = %v", g.Err())
	}
	if g.Session().State() != StateMenu {
		t.Fatalf("State() = %v, expected menu", g.Session().State())
	}

	g.Step(press(core.ActionConfirm))
	if g.Session().State() != StateLevelIntro {
		t.Fatalf("State() = %v, expected level intro", g.Session().State())
	}
	g.Step(press(core.ActionConfirm))
	if g.Session().State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", g.Session().State())
	}
	if countEvents[LevelStarted](g.Events()) != 1 {
		t.Errorf("Events() = %v, expected LevelStarted", g.Events())
	}
	if notes := g.Notes(); len(notes) != len(g.Events()) {
		t.Errorf("Notes() = %v, expected one note per event", notes)
	}

	x := g.Session().Paddle().CenterX()
	g.Step(press(core.ActionLeft))
	if got := g.Session().Paddle().CenterX(); !near(got, x-g.cfg.Paddle.NudgeStep) {
		t.Errorf("CenterX() after left = %v, expected %v", got, x-g.cfg.Paddle.NudgeStep)
	}

	in := core.NewInputFrame()
	in.SetPointer(g.view.X)
	g.Step(in)
	if got := g.Session().Paddle().X; got != 0 {
		t.Errorf("paddle X after pointer at left edge = %v, expected 0", got)
	}

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Error("State.Paused = false after pause")
	}
	res = g.Step(press(core.ActionPause))
	if res.State.Paused {
		t.Error("State.Paused = true after resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	s.lives = 1
	_, h := s.Canvas()
	s.Balls()[0].Pos = core.Vec{X: 6, Y: h - 6}
	s.Balls()[0].Vel = core.Vec{X: 0, Y: 6}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("State = %+v, expected game over", res.State)
	}

	g.Step(press(core.ActionRestart, core.ActionConfirm))
	if s.State() != StateLevelIntro || s.Lives() != 3 {
		t.Errorf("after restart with confirm: state %v lives %d, expected level intro", s.State(), s.Lives())
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	if !strings.Contains(dst.String(), "BOUNCE JOY") {
		t.Error("menu overlay not rendered")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(dst)
	if !strings.Contains(dst.String(), "LEVEL 1: Open Fortress") {
		t.Error("level intro overlay not rendered")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(dst)
	out := dst.String()
	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", dst.Row(0))
	}
	if !strings.Contains(out, string(BallChar)) {
		t.Error("ball not rendered")
	}
	if !strings.ContainsAny(out, "▀▄█") {
		t.Error("no bricks or walls rendered")
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8})
	if g.Session() != nil {
		t.Error("Session() != nil on a tiny screen")
	}

	dst := core.NewScreen(20, 8)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Error("too-small message not rendered")
	}
	g.Step(press(core.ActionConfirm)) // Must not panic

	g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if g.Session() == nil {
		t.Error("Resize() to a usable size did not create a session")
	}
}

func TestGameResizeKeepsProgress(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionConfirm))
	s := g.Session()
	s.score = 120

	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40})
	if g.Session() != s || s.Score() != 120 || s.State() != StatePlaying {
		t.Error("Resize() lost the running session")
	}
	if w, _ := s.Canvas(); w != g.view.CanvasW {
		t.Errorf("canvas width = %v, expected %v", w, g.view.CanvasW)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"wall", WallBounced{Wall: 2, Axis: AxisX}, "wall 2 bounce on x"},
		{"paddle", PaddleBounced{HitPoint: 0.25}, "paddle hit at 0.25"},
		{"brick", BrickDestroyed{Brick: 4}, "brick 4 destroyed"},
		{"power-up brick", BrickDestroyed{Brick: 5, PowerUp: true}, "power-up brick 5 destroyed"},
		{"life", LifeLost{Lives: 2}, "life lost, 2 left"},
		{"level", LevelStarted{Level: 1, Layout: "Open Fortress", Bricks: 90}, "level 1 (Open Fortress) started with 90 bricks"},
		{"complete", LevelCompleted{Level: 2, Score: 300}, "level 2 complete, score 300"},
		{"won", GameWon{Level: 3, Score: 900}, "game won, score 900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.ev); got != tt.want {
				t.Errorf("Describe() = %q, expected %q", got, tt.want)
			}
		})
	}
}
