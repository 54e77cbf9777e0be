// Package config provides YAML-based game configuration loading and
// validation for the reflex game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tunables of the game.
type Config struct {
	Marker   MarkerConfig   `yaml:"marker"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Effects  EffectsConfig  `yaml:"effects"`
	Rules    RulesConfig    `yaml:"rules"`
	Bodies   BodiesConfig   `yaml:"bodies"`
}

// MarkerConfig defines the player-launched marker.
type MarkerConfig struct {
	LaunchDuration float64 `yaml:"launch_duration"` // Seconds to cross the playfield
	Spin           float64 `yaml:"spin"`            // Radians turned during one launch
}

// ObstacleConfig defines scheduler-spawned obstacles.
type ObstacleConfig struct {
	MinX      float64 `yaml:"min_x"`      // Spawn x as a fraction of width
	MaxX      float64 `yaml:"max_x"`      // Spawn x as a fraction of width (inclusive)
	MinTravel float64 `yaml:"min_travel"` // Seconds, inclusive
	MaxTravel float64 `yaml:"max_travel"` // Seconds, exclusive
	SpinRate  float64 `yaml:"spin_rate"`  // Radians per second of travel
}

// Resample policies for the spawn threshold.
const (
	ResampleOnSpawn   = "spawn" // New threshold only when an obstacle spawns
	ResampleEveryTick = "tick"  // New threshold on every scheduler check
)

// SpawnConfig defines the obstacle spawn interval.
type SpawnConfig struct {
	MinInterval float64 `yaml:"min_interval"` // Seconds, inclusive
	MaxInterval float64 `yaml:"max_interval"` // Seconds, exclusive
	Resample    string  `yaml:"resample"`     // "spawn" or "tick"
}

// EffectsConfig defines cosmetic effect magnitudes, in seconds.
type EffectsConfig struct {
	ScoreShake      float64 `yaml:"score_shake"`
	OverShake       float64 `yaml:"over_shake"`
	Splash          float64 `yaml:"splash"`
	Fade            float64 `yaml:"fade"`
	ShakeStep       float64 `yaml:"shake_step"`        // Seconds per shake offset
	ShakeAmplitudeX float64 `yaml:"shake_amplitude_x"` // Playfield units
	ShakeAmplitudeY float64 `yaml:"shake_amplitude_y"` // Playfield units
}

// RulesConfig defines scoring and state rules.
type RulesConfig struct {
	ThemeEvery      int  `yaml:"theme_every"`      // Theme changes when score is a multiple of this
	GuardCollisions bool `yaml:"guard_collisions"` // Only end the round on collisions during play
}

// Size is a body size in playfield units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BodiesConfig defines contact box sizes.
type BodiesConfig struct {
	Marker   Size `yaml:"marker"`
	Obstacle Size `yaml:"obstacle"`
}

// Seconds converts a seconds value from the config into a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate checks every range and magnitude. It is meant to be called once,
// at configuration time, so that sampling never sees a malformed range.
func (c Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Marker.LaunchDuration > 0, "marker.launch_duration must be positive"},
		{c.Obstacle.MinX >= 0 && c.Obstacle.MaxX <= 1, "obstacle.min_x/max_x must lie in [0, 1]"},
		{c.Obstacle.MinX < c.Obstacle.MaxX, "obstacle.min_x must be less than obstacle.max_x"},
		{c.Obstacle.MinTravel > 0, "obstacle.min_travel must be positive"},
		{c.Obstacle.MinTravel < c.Obstacle.MaxTravel, "obstacle.min_travel must be less than obstacle.max_travel"},
		{c.Spawn.MinInterval > 0, "spawn.min_interval must be positive"},
		{c.Spawn.MinInterval < c.Spawn.MaxInterval, "spawn.min_interval must be less than spawn.max_interval"},
		{c.Spawn.Resample == ResampleOnSpawn || c.Spawn.Resample == ResampleEveryTick, "spawn.resample must be \"spawn\" or \"tick\""},
		{c.Effects.ScoreShake >= 0 && c.Effects.OverShake >= 0 && c.Effects.Splash >= 0 && c.Effects.Fade >= 0, "effects must not be negative"},
		{c.Effects.ShakeStep > 0, "effects.shake_step must be positive"},
		{c.Rules.ThemeEvery > 0, "rules.theme_every must be positive"},
		{c.Bodies.Marker.W > 0 && c.Bodies.Marker.H > 0, "bodies.marker must have a positive size"},
		{c.Bodies.Obstacle.W > 0 && c.Bodies.Obstacle.H > 0, "bodies.obstacle must have a positive size"},
	}

	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, ch.msg)
		}
	}
	return nil
}
