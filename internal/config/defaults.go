package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the hardcoded default configuration.
// It mirrors defaults/bounce.yaml.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Gameplay: GameplayConfig{
			Lives:              3,
			MaxLevel:           3,
			BrickPoints:        10,
			LevelCompleteDelay: 30, // 500ms at 60 ticks per second
		},
		Ball: BallConfig{
			Radius:         5,
			BaseSpeed:      6,
			SpeedIncrement: 0.5,
			MaxSpeed:       10,
			TrailLength:    6,
			SpawnLift:      5,
		},
		Paddle: PaddleConfig{
			WidthRatio:   0.28,
			Height:       12,
			MarginBottom: 30,
			NudgeStep:    24,
		},
		Bricks: BrickConfig{
			Size:          10,
			Padding:       2,
			TopOffset:     50,
			SideMargin:    20,
			WallThickness: 6,
			WallTolerance: 2,
			GlowStep:      0.05,
		},
		PowerUps: PowerUpConfig{
			Chance:    0.10,
			FallSpeed: 2,
			Size:      15,
			Spin:      0.1,
		},
		Particles: ParticleConfig{
			Count:        8,
			WallHitCount: 3,
			Lifetime:     30,
			MinSpeed:     1,
			MaxSpeed:     3,
			MinRadius:    2,
			MaxRadius:    4,
			Gravity:      0.08,
		},
		Palette: PaletteConfig{
			Neon: []string{
				"cyan", "magenta", "purple", "orange",
				"bright-green", "bright-yellow", "pink", "mint",
			},
			PowerUp:  "gold",
			Wall:     "slate",
			WallGlow: "lavender",
			Ball:     "bright-magenta",
			Paddle:   "bright-cyan",
		},
		Speed: SpeedCurve{Enabled: true},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
