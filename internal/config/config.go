// Package config loads Bounce Joy settings from YAML or TOML files over
// embedded defaults and applies difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bounce-joy/internal/core"
)

// BounceConfig contains all tunables of the bounce engine.
// Lengths are canvas pixels, speeds are pixels per tick.
type BounceConfig struct {
	Gameplay  GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Ball      BallConfig     `yaml:"ball" toml:"ball"`
	Paddle    PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Bricks    BrickConfig    `yaml:"bricks" toml:"bricks"`
	PowerUps  PowerUpConfig  `yaml:"powerups" toml:"powerups"`
	Particles ParticleConfig `yaml:"particles" toml:"particles"`
	Palette   PaletteConfig  `yaml:"palette" toml:"palette"`
	Speed     SpeedCurve     `yaml:"speed_curve" toml:"speed_curve"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives              int `yaml:"lives" toml:"lives"`
	MaxLevel           int `yaml:"max_level" toml:"max_level"`
	BrickPoints        int `yaml:"brick_points" toml:"brick_points"`                 // Multiplied by the current level
	LevelCompleteDelay int `yaml:"level_complete_delay" toml:"level_complete_delay"` // Ticks before the next level intro
}

// BallConfig defines ball size and speed.
type BallConfig struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"` // Added per level after the first
	MaxSpeed       float64 `yaml:"max_speed" toml:"max_speed"`
	TrailLength    int     `yaml:"trail_length" toml:"trail_length"`
	SpawnLift      float64 `yaml:"spawn_lift" toml:"spawn_lift"` // Gap between a spawned ball and the paddle
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	WidthRatio   float64 `yaml:"width_ratio" toml:"width_ratio"`
	Height       float64 `yaml:"height" toml:"height"`
	MarginBottom float64 `yaml:"margin_bottom" toml:"margin_bottom"`
	NudgeStep    float64 `yaml:"nudge_step" toml:"nudge_step"` // Keyboard movement per key press
}

// BrickConfig defines the brick grid and wall geometry.
type BrickConfig struct {
	Size          float64 `yaml:"size" toml:"size"`
	Padding       float64 `yaml:"padding" toml:"padding"`
	TopOffset     float64 `yaml:"top_offset" toml:"top_offset"`
	SideMargin    float64 `yaml:"side_margin" toml:"side_margin"`
	WallThickness float64 `yaml:"wall_thickness" toml:"wall_thickness"`
	WallTolerance float64 `yaml:"wall_tolerance" toml:"wall_tolerance"` // Clearance kept around interior walls
	GlowStep      float64 `yaml:"glow_step" toml:"glow_step"`
}

// PowerUpConfig defines falling power-ups.
type PowerUpConfig struct {
	Chance    float64 `yaml:"chance" toml:"chance"`
	FallSpeed float64 `yaml:"fall_speed" toml:"fall_speed"`
	Size      float64 `yaml:"size" toml:"size"`
	Spin      float64 `yaml:"spin" toml:"spin"`
}

// ParticleConfig defines decorative particle bursts.
type ParticleConfig struct {
	Count        int     `yaml:"count" toml:"count"`
	WallHitCount int     `yaml:"wall_hit_count" toml:"wall_hit_count"`
	Lifetime     int     `yaml:"lifetime" toml:"lifetime"`
	MinSpeed     float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`
	MinRadius    float64 `yaml:"min_radius" toml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius" toml:"max_radius"`
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
}

// PaletteConfig names terminal colors for game elements.
type PaletteConfig struct {
	Neon     []string `yaml:"neon" toml:"neon"`
	PowerUp  string   `yaml:"powerup" toml:"powerup"`
	Wall     string   `yaml:"wall" toml:"wall"`
	WallGlow string   `yaml:"wall_glow" toml:"wall_glow"`
	Ball     string   `yaml:"ball" toml:"ball"`
	Paddle   string   `yaml:"paddle" toml:"paddle"`
}

// SpeedCurve controls whether ball speed ramps with the level.
type SpeedCurve struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
}

// Palette is the resolved form of PaletteConfig.
type Palette struct {
	Neon     []core.Color
	PowerUp  core.Color
	Wall     core.Color
	WallGlow core.Color
	Ball     core.Color
	Paddle   core.Color
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for values the engine cannot run with.
func (c BounceConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"ball.radius", c.Ball.Radius},
		{"ball.base_speed", c.Ball.BaseSpeed},
		{"ball.max_speed", c.Ball.MaxSpeed},
		{"paddle.width_ratio", c.Paddle.WidthRatio},
		{"paddle.height", c.Paddle.Height},
		{"bricks.size", c.Bricks.Size},
		{"bricks.wall_thickness", c.Bricks.WallThickness},
		{"powerups.size", c.PowerUps.Size},
		{"powerups.fall_speed", c.PowerUps.FallSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	switch {
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive", ErrInvalidConfig)
	case c.Gameplay.MaxLevel <= 0:
		return fmt.Errorf("%w: gameplay.max_level must be positive", ErrInvalidConfig)
	case c.Gameplay.LevelCompleteDelay < 0:
		return fmt.Errorf("%w: gameplay.level_complete_delay must not be negative", ErrInvalidConfig)
	case c.Ball.BaseSpeed > c.Ball.MaxSpeed:
		return fmt.Errorf("%w: ball.base_speed %v exceeds max_speed %v", ErrInvalidConfig, c.Ball.BaseSpeed, c.Ball.MaxSpeed)
	case c.Ball.SpeedIncrement < 0:
		return fmt.Errorf("%w: ball.speed_increment must not be negative", ErrInvalidConfig)
	case c.Paddle.WidthRatio > 1:
		return fmt.Errorf("%w: paddle.width_ratio must be at most 1", ErrInvalidConfig)
	case c.Bricks.Padding < 0:
		return fmt.Errorf("%w: bricks.padding must not be negative", ErrInvalidConfig)
	case c.PowerUps.Chance < 0 || c.PowerUps.Chance > 1:
		return fmt.Errorf("%w: powerups.chance must be within [0, 1]", ErrInvalidConfig)
	case c.Particles.MinSpeed > c.Particles.MaxSpeed:
		return fmt.Errorf("%w: particles.min_speed exceeds max_speed", ErrInvalidConfig)
	case c.Particles.MinRadius > c.Particles.MaxRadius:
		return fmt.Errorf("%w: particles.min_radius exceeds max_radius", ErrInvalidConfig)
	case len(c.Palette.Neon) == 0:
		return fmt.Errorf("%w: palette.neon must not be empty", ErrInvalidConfig)
	}

	if _, err := c.Palette.Resolve(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Resolve maps palette names to terminal colors.
func (p PaletteConfig) Resolve() (Palette, error) {
	var out Palette
	for _, name := range p.Neon {
		c, err := core.ParseColor(name)
		if err != nil {
			return out, fmt.Errorf("palette.neon: %w", err)
		}
		out.Neon = append(out.Neon, c)
	}

	singles := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"powerup", p.PowerUp, &out.PowerUp},
		{"wall", p.Wall, &out.Wall},
		{"wall_glow", p.WallGlow, &out.WallGlow},
		{"ball", p.Ball, &out.Ball},
		{"paddle", p.Paddle, &out.Paddle},
	}
	for _, s := range singles {
		c, err := core.ParseColor(s.name)
		if err != nil {
			return out, fmt.Errorf("palette.%s: %w", s.field, err)
		}
		*s.dst = c
	}
	return out, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Difficulties lists the presets in menu order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
