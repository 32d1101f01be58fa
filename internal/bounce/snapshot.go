package bounce

import "math"

// Snapshot is a flat copy of the session state for replays and determinism
// checks. Floats are kept as-is; Hash compares them bit for bit.
type Snapshot struct {
	Tick   uint64 `yaml:"tick"`
	State  string `yaml:"state"`
	Mode   int    `yaml:"mode"` // 0=Campaign, 1=Endless
	Score  int    `yaml:"score"`
	Lives  int    `yaml:"lives"`
	Level  int    `yaml:"level"`
	Layout string `yaml:"layout,omitempty"`

	PaddleX float64 `yaml:"paddle_x"`
	PaddleW float64 `yaml:"paddle_w"`

	// Each ball is 5 floats: X, Y, VX, VY, Speed
	BallCount int       `yaml:"balls"`
	BallData  []float64 `yaml:"ball_data,flow"`

	// Each power-up is 3 floats: Kind, X, Y
	PowerUpCount int       `yaml:"powerups"`
	PowerUpData  []float64 `yaml:"powerup_data,flow"`

	BricksRemaining int `yaml:"bricks_remaining"`
	// One entry per brick: 0=destroyed, 1=visible, 2=visible power-up brick
	BrickData []int `yaml:"-"`

	Particles int `yaml:"particles"`
	Pending   int `yaml:"pending"` // Ticks to the next intro, -1 if none

	RNGState      uint64 `yaml:"rng_state"`
	ParticleState uint64 `yaml:"particle_rng_state"`
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		State:     s.state.String(),
		Mode:      int(s.mode),
		Score:     s.score,
		Lives:     s.lives,
		Level:     s.level,
		PaddleX:   s.paddle.X,
		PaddleW:   s.paddle.W,
		Particles: len(s.particles),
		Pending:   -1,
		RNGState:  s.rng.State(),

		ParticleState: s.fx.State(),
	}
	if s.pending.Pending() {
		snap.Pending = s.pending.Remaining()
	}

	for _, b := range s.balls {
		if !b.Active {
			continue
		}
		snap.BallCount++
		snap.BallData = append(snap.BallData, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Speed)
	}

	for _, p := range s.powerUps {
		snap.PowerUpCount++
		snap.PowerUpData = append(snap.PowerUpData, float64(p.Kind), p.Pos.X, p.Pos.Y)
	}

	if s.lvl != nil {
		snap.Layout = s.lvl.Layout
		snap.BrickData = make([]int, len(s.lvl.Bricks))
		for i, b := range s.lvl.Bricks {
			switch {
			case !b.Visible:
				snap.BrickData[i] = 0
			case b.PowerUp:
				snap.BrickData[i] = 2
				snap.BricksRemaining++
			default:
				snap.BrickData[i] = 1
				snap.BricksRemaining++
			}
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)         //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleW)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	h = h*31 + snap.ParticleState

	return h
}
