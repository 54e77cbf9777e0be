package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"spawn interval min equals max", func(c *Config) { c.Spawn.MaxInterval = c.Spawn.MinInterval }},
		{"spawn interval inverted", func(c *Config) { c.Spawn.MinInterval, c.Spawn.MaxInterval = 1.5, 0.5 }},
		{"travel inverted", func(c *Config) { c.Obstacle.MinTravel = 4 }},
		{"spawn x inverted", func(c *Config) { c.Obstacle.MinX = 0.9 }},
		{"spawn x outside playfield", func(c *Config) { c.Obstacle.MaxX = 1.2 }},
		{"zero launch duration", func(c *Config) { c.Marker.LaunchDuration = 0 }},
		{"unknown resample policy", func(c *Config) { c.Spawn.Resample = "sometimes" }},
		{"zero theme period", func(c *Config) { c.Rules.ThemeEvery = 0 }},
		{"negative effect", func(c *Config) { c.Effects.Splash = -1 }},
		{"empty marker body", func(c *Config) { c.Bodies.Marker.W = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  min_interval: 0.25\n  resample: tick\nrules:\n  guard_collisions: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.MinInterval != 0.25 {
		t.Errorf("min_interval = %v, expected 0.25", cfg.Spawn.MinInterval)
	}
	if cfg.Spawn.MaxInterval != 1.5 {
		t.Errorf("unset max_interval should keep default, got %v", cfg.Spawn.MaxInterval)
	}
	if cfg.Spawn.Resample != ResampleEveryTick {
		t.Errorf("resample = %q, expected tick", cfg.Spawn.Resample)
	}
	if !cfg.Rules.GuardCollisions {
		t.Error("guard_collisions should be true")
	}
}

func TestLoadRejectsInvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("obstacle:\n  min_travel: 3.0\n  max_travel: 2.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("spawn: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(0.8); got != 800*time.Millisecond {
		t.Errorf("Seconds(0.8) = %v, expected 800ms", got)
	}
}
