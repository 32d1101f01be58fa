package bounce

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	TrailChar    = '∙'
	ParticleChar = '·'
	SparkChar    = '•' // Particle still near full size
	LifeChar     = '♥'
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinViewCols, MinViewRows+hudRows+footerRows)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start: "+errText(g.err))
		return
	}

	s := g.session
	r := newRaster(g.view)
	pal := s.Palette()

	for _, w := range s.Walls() {
		r.fillRect(w.Rect, pal.Wall)
	}
	for _, b := range s.Bricks() {
		if !b.Visible {
			continue
		}
		c := b.Color
		if b.PowerUp {
			c = pal.PowerUp
		}
		r.plot(b.Rect.Center(), c)
	}
	if s.State() != StateMenu {
		r.fillRect(s.Paddle().Rect(), pal.Paddle)
	}
	r.blit(dst)

	g.renderFrame(dst)
	g.renderParticles(dst)
	g.renderPowerUps(dst)
	g.renderBalls(dst)
	g.renderHUD(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// renderFrame draws faint side rails around the playfield.
func (g *Game) renderFrame(dst *core.Screen) {
	v := g.view
	for y := v.Y; y < v.Y+v.Rows; y++ {
		dst.SetColored(v.X-1, y, '│', core.ColorGray)
		dst.SetColored(v.X+v.Cols, y, '│', core.ColorGray)
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.session.Particles() {
		x, y, ok := g.view.ToCell(p.Pos)
		if !ok || dst.Get(x, y) != ' ' {
			continue
		}
		ch := ParticleChar
		if p.Alpha() > 0.6 {
			ch = SparkChar
		}
		dst.SetColored(x, y, ch, p.Color)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	c := g.session.Palette().PowerUp
	for _, p := range g.session.PowerUps() {
		if x, y, ok := g.view.ToCell(p.Pos); ok {
			dst.SetColored(x, y, p.Kind.Glyph(), c)
		}
	}
}

func (g *Game) renderBalls(dst *core.Screen) {
	c := g.session.Palette().Ball
	for _, b := range g.session.Balls() {
		if !b.Active {
			continue
		}
		for _, p := range b.Trail() {
			if x, y, ok := g.view.ToCell(p); ok && dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, TrailChar, c)
			}
		}
	}
	for _, b := range g.session.Balls() {
		if !b.Active {
			continue
		}
		if x, y, ok := g.view.ToCell(b.Pos); ok {
			dst.SetColored(x, y, BallChar, c)
		}
	}
}

// renderHUD draws score, lives and level above the playfield.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	v := g.view

	score := fmt.Sprintf("Score: %d", s.Score())
	dst.DrawTextColored(v.X, 0, score, core.ColorBrightWhite)

	lives := strings.Repeat(string(LifeChar), s.Lives())
	dst.DrawTextColored(v.X+(v.Cols-utf8.RuneCountInString(lives))/2, 0, lives, core.ColorPink)

	var level string
	if s.Mode() == ModeEndless {
		level = fmt.Sprintf("Lv %d", s.Level())
	} else {
		level = fmt.Sprintf("Lv %d/%d", s.Level(), s.cfg.Gameplay.MaxLevel)
	}
	dst.DrawTextColored(v.X+v.Cols-len(level), 0, level, core.ColorBrightCyan)
}

// renderFooter shows the ball count during multi-ball play, otherwise hints.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.view.Y + g.view.Rows
	if n := g.session.ActiveBalls(); n > 1 && g.session.State() == StatePlaying {
		dst.DrawTextCenteredColored(y, fmt.Sprintf("Balls: %d", n), g.session.Palette().Ball)
		return
	}
	dst.DrawTextCenteredColored(y, "←/→ or mouse  P pause  Q quit", core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.session
	switch s.State() {
	case StateMenu:
		g.drawCenteredBox(dst, "BOUNCE JOY", "Press ENTER to start")

	case StateLevelIntro:
		title := fmt.Sprintf("LEVEL %d", s.Level())
		if l, err := LayoutFor(s.Level(), s.Mode() == ModeEndless); err == nil {
			title += ": " + l.Name
		}
		g.drawCenteredBox(dst, title, "Press ENTER to play")

	case StateLevelComplete:
		g.drawCenteredBox(dst, "LEVEL CLEAR", "Get ready...")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d | R to restart", s.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d | R to restart", s.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), core.ColorLavender)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightMagenta)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
