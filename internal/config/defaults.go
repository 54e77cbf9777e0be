package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/reflex.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/reflex.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Marker: MarkerConfig{
			LaunchDuration: 0.8,
			Spin:           math.Pi,
		},
		Obstacle: ObstacleConfig{
			MinX:      0.2,
			MaxX:      0.8,
			MinTravel: 2.0,
			MaxTravel: 3.0,
			SpinRate:  math.Pi,
		},
		Spawn: SpawnConfig{
			MinInterval: 0.5,
			MaxInterval: 1.5,
			Resample:    ResampleOnSpawn,
		},
		Effects: EffectsConfig{
			ScoreShake:      0.4,
			OverShake:       1.0,
			Splash:          1.0,
			Fade:            0.5,
			ShakeStep:       0.04,
			ShakeAmplitudeX: 1,
			ShakeAmplitudeY: 0.5,
		},
		Rules: RulesConfig{
			ThemeEvery:      10,
			GuardCollisions: false,
		},
		Bodies: BodiesConfig{
			Marker:   Size{W: 2, H: 1},
			Obstacle: Size{W: 4, H: 2},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
