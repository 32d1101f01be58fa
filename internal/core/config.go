package core

// RuntimeConfig is what the host tells a game about the terminal and the
// run. Step results depend only on this config and the input frames.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second
	Seed     int64 // 0 lets the host pick a time-based seed
}

// Fallback terminal geometry when the size cannot be read.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 40
	DefaultTickRate = 60
)

// DefaultConfig returns the config used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// GameState is the part of a game's state the host acts on: the scoreboard
// entry and whether the run has finished.
type GameState struct {
	Score    int
	Level    int
	GameOver bool // Lost or won; the host records the run
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
