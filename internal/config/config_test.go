package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBounce(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBounceConfig()) {
		t.Errorf("embedded defaults differ from DefaultBounceConfig():\n got %+v\nwant %+v", cfg, DefaultBounceConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadBounceCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nball:\n  base_speed: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBounce(path)
	if err != nil {
		t.Fatalf("LoadBounce() error: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Ball.BaseSpeed != 4 {
		t.Errorf("BaseSpeed = %v, expected 4", cfg.Ball.BaseSpeed)
	}
	// Keys not named in the file keep their defaults
	if cfg.Ball.MaxSpeed != 10 || cfg.Bricks.Size != 10 {
		t.Errorf("unset keys should keep defaults, got max_speed=%v size=%v", cfg.Ball.MaxSpeed, cfg.Bricks.Size)
	}
}

func TestLoadBounceErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadBounce(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("ball: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadBounce(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("bricks:\n  size: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadBounce(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadBounce() error = %v, expected ErrInvalidConfig", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BounceConfig)
	}{
		{"zero radius", func(c *BounceConfig) { c.Ball.Radius = 0 }},
		{"base above max", func(c *BounceConfig) { c.Ball.BaseSpeed = 12 }},
		{"no lives", func(c *BounceConfig) { c.Gameplay.Lives = 0 }},
		{"chance above one", func(c *BounceConfig) { c.PowerUps.Chance = 1.5 }},
		{"empty palette", func(c *BounceConfig) { c.Palette.Neon = nil }},
		{"unknown color", func(c *BounceConfig) { c.Palette.Wall = "ultraviolet" }},
		{"particle speed range", func(c *BounceConfig) { c.Particles.MinSpeed = 5 }},
		{"paddle wider than canvas", func(c *BounceConfig) { c.Paddle.WidthRatio = 1.2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBounceConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyBouncePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		baseSpeed float64
		ramp      bool
	}{
		{DifficultyEasy, 5, 5, true},
		{DifficultyNormal, 3, 6, true},
		{DifficultyHard, 2, 7, true},
		{DifficultyFixed, 3, 6, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBounceConfig()
			ApplyBouncePreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Ball.BaseSpeed != tc.baseSpeed {
				t.Errorf("BaseSpeed = %v, expected %v", cfg.Ball.BaseSpeed, tc.baseSpeed)
			}
			if cfg.Speed.Enabled != tc.ramp {
				t.Errorf("Speed.Enabled = %v, expected %v", cfg.Speed.Enabled, tc.ramp)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(\"hard\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSpeedTable(t *testing.T) {
	cfg := DefaultBounceConfig()
	table := NewSpeedTable(cfg.Ball, cfg.Speed)

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 6},
		{1, 6},
		{2, 6.5},
		{3, 7},
		{9, 10},
		{20, 10},
	}
	for _, tc := range tests {
		if got := table.ForLevel(tc.level); got != tc.expected {
			t.Errorf("ForLevel(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
	if table.CapLevel() != 9 {
		t.Errorf("CapLevel() = %d, expected 9", table.CapLevel())
	}

	fixed := NewSpeedTable(cfg.Ball, SpeedCurve{Enabled: false})
	if fixed.ForLevel(3) != 6 {
		t.Errorf("fixed ForLevel(3) = %v, expected 6", fixed.ForLevel(3))
	}
	if fixed.IsEnabled() || fixed.CapLevel() != 1 {
		t.Error("fixed table should report disabled and cap at level 1")
	}
}

func TestLoadBounceTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[gameplay]\nlives = 6\n\n[ball]\nbase_speed = 4.5\n\n[palette]\nwall = \"mint\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBounce(path)
	if err != nil {
		t.Fatalf("LoadBounce() error: %v", err)
	}
	if cfg.Gameplay.Lives != 6 || cfg.Ball.BaseSpeed != 4.5 || cfg.Palette.Wall != "mint" {
		t.Errorf("lives, base_speed, wall = %d, %v, %q, expected 6, 4.5, mint",
			cfg.Gameplay.Lives, cfg.Ball.BaseSpeed, cfg.Palette.Wall)
	}
	if cfg.Bricks.Size != DefaultBounceConfig().Bricks.Size {
		t.Errorf("unset keys should keep defaults, got size=%v", cfg.Bricks.Size)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"bounce.yaml", FormatYAML},
		{"bounce.yml", FormatYAML},
		{"BOUNCE.TOML", FormatTOML},
		{"configs/bounce.toml", FormatTOML},
		{"bounce", FormatYAML},
	}
	for _, tc := range tests {
		if got := FormatFor(tc.path); got != tc.want {
			t.Errorf("FormatFor(%q) = %q, expected %q", tc.path, got, tc.want)
		}
	}
}

func TestEncodeLoadsBack(t *testing.T) {
	cfg := DefaultBounceConfig()
	ApplyBouncePreset(&cfg, DifficultyHard)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(cfg, format)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			path := filepath.Join(t.TempDir(), "bounce."+string(format))
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatal(err)
			}
			got, err := LoadBounce(path)
			if err != nil {
				t.Fatalf("LoadBounce() error: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("loaded config differs:\n got %+v\nwant %+v", got, cfg)
			}
		})
	}
}
