package config

import "math"

// SpeedTable derives ball speed from the level.
type SpeedTable struct {
	ball    BallConfig
	enabled bool
}

// NewSpeedTable creates a speed table from the ball config and speed curve.
func NewSpeedTable(ball BallConfig, curve SpeedCurve) SpeedTable {
	return SpeedTable{ball: ball, enabled: curve.Enabled}
}

// IsEnabled returns whether speed ramps with the level.
func (t SpeedTable) IsEnabled() bool {
	return t.enabled
}

// ForLevel returns min(base + (level-1)*increment, max).
// Levels below 1 are treated as level 1; a disabled curve always returns base.
func (t SpeedTable) ForLevel(level int) float64 {
	if !t.enabled || level < 1 {
		return math.Min(t.ball.BaseSpeed, t.ball.MaxSpeed)
	}
	return math.Min(t.ball.BaseSpeed+float64(level-1)*t.ball.SpeedIncrement, t.ball.MaxSpeed)
}

// CapLevel returns the first level at which the speed stops increasing.
func (t SpeedTable) CapLevel() int {
	if !t.enabled || t.ball.SpeedIncrement <= 0 {
		return 1
	}
	return 1 + int(math.Ceil((t.ball.MaxSpeed-t.ball.BaseSpeed)/t.ball.SpeedIncrement))
}
