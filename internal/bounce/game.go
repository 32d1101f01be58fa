package bounce

import (
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
	"github.com/vovakirdan/bounce-joy/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the first level set via CLI; 0 means level 1
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the level new games start on.
func SetStartLevel(level int) {
	startLevel = level
}

// Game adapts a Session to the terminal host: it maps input frames to
// session commands and rasterizes the canvas into a screen buffer.
type Game struct {
	mode    Mode
	session *Session
	runtime core.RuntimeConfig
	cfg     config.BounceConfig
	view    Viewport
	err     error // Set when the session could not be created

	screenTooSmall bool
	events         []Event // Produced by the last Step
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "bounce_endless"
	}
	return "bounce"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Bounce Joy (Endless)"
	}
	return "Bounce Joy"
}

// Reset loads configuration and creates a fresh session in the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.session = nil
	g.events = nil
	g.err = nil

	cfg, err := config.LoadBounce(configPath)
	if err != nil {
		cfg = config.DefaultBounceConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBouncePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.view, g.screenTooSmall = fitView(runtime)
	if g.screenTooSmall {
		return
	}

	g.session, g.err = NewSession(SessionConfig{
		Width:      g.view.CanvasW,
		Height:     g.view.CanvasH,
		Seed:       runtime.Seed,
		Mode:       g.mode,
		StartLevel: startLevel,
		Game:       cfg,
	})
}

func fitView(runtime core.RuntimeConfig) (Viewport, bool) {
	v, ok := CanvasForTerminal(runtime.ScreenW, runtime.ScreenH)
	return v, !ok
}

// Resize refits the canvas to a new screen size without ending the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.session == nil {
		g.Reset(runtime)
		return
	}
	g.runtime = runtime

	view, tooSmall := fitView(runtime)
	g.screenTooSmall = tooSmall
	if tooSmall {
		return
	}
	if err := g.session.Resize(view.CanvasW, view.CanvasH); err != nil {
		g.screenTooSmall = true
		return
	}
	g.view = view
}

// Step processes one tick of input and simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	s := g.session
	if g.screenTooSmall || s == nil {
		return core.StepResult{State: g.State()}
	}

	// A restart and a confirm in one frame must not skip the level intro
	restarted := false
	if in.Has(core.ActionRestart) && s.State().Terminal() {
		s.RestartGame()
		restarted = true
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionConfirm) && !restarted {
		g.confirm()
	}

	if in.Has(core.ActionLeft) {
		s.NudgePaddle(-g.cfg.Paddle.NudgeStep)
	}
	if in.Has(core.ActionRight) {
		s.NudgePaddle(g.cfg.Paddle.NudgeStep)
	}
	if col, ok := in.Pointer(); ok {
		s.SetPaddleTarget(g.view.ToCanvasX(col))
	}

	g.events = s.Update()
	return core.StepResult{State: g.State()}
}

// confirm advances whichever screen is waiting for the player.
func (g *Game) confirm() {
	s := g.session
	switch s.State() {
	case StateMenu:
		g.err = s.StartGame()
	case StateLevelIntro:
		g.err = s.StartLevel()
	case StateGameOver, StateWin:
		s.RestartGame()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: st.Terminal(),
		Won:      st == StateWin,
		Paused:   st == StatePaused,
	}
}

// Session returns the underlying session, or nil if the screen is too small.
func (g *Game) Session() *Session {
	return g.session
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Notes describes the events produced by the last Step.
func (g *Game) Notes() []string {
	if len(g.events) == 0 {
		return nil
	}
	notes := make([]string, len(g.events))
	for i, ev := range g.events {
		notes[i] = Describe(ev)
	}
	return notes
}

// Err returns the last error reported by the session.
func (g *Game) Err() error {
	return g.err
}

func init() {
	registry.Register("bounce", func() registry.Game {
		return New()
	})
	registry.Register("bounce_endless", func() registry.Game {
		return NewEndless()
	})
}
