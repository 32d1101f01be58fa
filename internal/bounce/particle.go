package bounce

import (
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/core"
)

// Particle is a short-lived decorative dot. It has no gameplay effect.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Radius  float64
	Color   core.Color
	Life    int
	MaxLife int
	Gravity float64
}

// NewParticle creates a particle flying off in a random direction.
func NewParticle(rng *core.RNG, pos core.Vec, color core.Color, cfg config.ParticleConfig) Particle {
	angle := rng.Angle()
	speed := rng.Range(cfg.MinSpeed, cfg.MaxSpeed)
	return Particle{
		Pos:     pos,
		Vel:     core.FromAngle(angle, speed),
		Radius:  rng.Range(cfg.MinRadius, cfg.MaxRadius),
		Color:   color,
		Life:    cfg.Lifetime,
		MaxLife: cfg.Lifetime,
		Gravity: cfg.Gravity,
	}
}

// Update advances the particle one tick. Returns false once it has expired.
func (p *Particle) Update() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += p.Gravity
	p.Life--
	return p.Life > 0
}

// Alpha returns the remaining opacity, fading linearly to zero.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// DrawRadius returns the radius scaled by opacity.
func (p Particle) DrawRadius() float64 {
	return p.Radius * p.Alpha()
}

// updateParticles advances all particles and drops expired ones in place.
func updateParticles(ps []Particle) []Particle {
	n := 0
	for i := range ps {
		if ps[i].Update() {
			ps[n] = ps[i]
			n++
		}
	}
	return ps[:n]
}
