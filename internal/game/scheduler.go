package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
)

// SpawnTimer tracks time since the last obstacle spawn.
type SpawnTimer struct {
	Elapsed   time.Duration
	Threshold time.Duration
}

// Spawn describes an obstacle the scheduler wants created.
type Spawn struct {
	From     core.Vec
	To       core.Vec
	Duration time.Duration
	Rotation float64
}

// Scheduler decides when to introduce obstacles. It only sees time while
// the machine is in Play.
type Scheduler struct {
	minInterval time.Duration
	maxInterval time.Duration
	everyTick   bool
	minX, maxX  float64
	minTravel   time.Duration
	maxTravel   time.Duration
	spinRate    float64

	rng    Rand
	timer  SpawnTimer
	width  float64
	height float64
}

// NewScheduler creates a scheduler for a playfield of the given size.
// Malformed ranges are rejected here so that OnTick never sees them.
func NewScheduler(cfg config.Config, rng Rand, width, height float64) (*Scheduler, error) {
	s := &Scheduler{
		minInterval: config.Seconds(cfg.Spawn.MinInterval),
		maxInterval: config.Seconds(cfg.Spawn.MaxInterval),
		everyTick:   cfg.Spawn.Resample == config.ResampleEveryTick,
		minX:        cfg.Obstacle.MinX,
		maxX:        cfg.Obstacle.MaxX,
		minTravel:   config.Seconds(cfg.Obstacle.MinTravel),
		maxTravel:   config.Seconds(cfg.Obstacle.MaxTravel),
		spinRate:    cfg.Obstacle.SpinRate,
		rng:         rng,
		width:       width,
		height:      height,
	}

	if s.minInterval >= s.maxInterval {
		return nil, fmt.Errorf("game: spawn interval [%v, %v) is empty", s.minInterval, s.maxInterval)
	}
	if s.minTravel >= s.maxTravel {
		return nil, fmt.Errorf("game: travel duration [%v, %v) is empty", s.minTravel, s.maxTravel)
	}
	if s.minX >= s.maxX {
		return nil, fmt.Errorf("game: spawn x range [%v, %v] is empty", s.minX, s.maxX)
	}

	s.timer.Threshold = s.sampleThreshold()
	return s, nil
}

// SetPlayfield updates the playfield size used for new spawns.
func (s *Scheduler) SetPlayfield(width, height float64) {
	s.width = width
	s.height = height
}

// Timer returns the current spawn timer.
func (s *Scheduler) Timer() SpawnTimer {
	return s.timer
}

// OnTick accumulates dt and reports whether an obstacle should spawn now.
func (s *Scheduler) OnTick(dt time.Duration) (Spawn, bool) {
	s.timer.Elapsed += dt

	if s.everyTick {
		s.timer.Threshold = s.sampleThreshold()
	}
	if s.timer.Elapsed < s.timer.Threshold {
		return Spawn{}, false
	}

	s.timer.Elapsed = 0
	s.timer.Threshold = s.sampleThreshold()
	return s.sampleSpawn(), true
}

func (s *Scheduler) sampleThreshold() time.Duration {
	return uniformDuration(s.rng, s.minInterval, s.maxInterval)
}

// sampleSpawn places an obstacle at the far edge, falling straight across.
func (s *Scheduler) sampleSpawn() Spawn {
	x := uniform(s.rng, s.minX*s.width, s.maxX*s.width)
	d := uniformDuration(s.rng, s.minTravel, s.maxTravel)
	return Spawn{
		From:     core.V(x, s.height),
		To:       core.V(x, 0),
		Duration: d,
		Rotation: s.spinRate * d.Seconds(),
	}
}
