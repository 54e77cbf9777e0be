package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
)

// State is the round state.
type State int

const (
	StateMenu State = iota
	StatePlay
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlay:
		return "Play"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Machine owns the round state, the score and the entity lifecycle.
// It is not safe for concurrent use; all events must come from one goroutine.
type Machine struct {
	cfg       config.Config
	presenter Presenter
	rng       Rand
	logger    *log.Logger

	state     State
	score     int
	nextID    EntityID
	width     float64
	height    float64
	clock     Clock
	registry  *Registry
	scheduler *Scheduler
}

// NewMachine creates a machine in the Menu state.
// A nil presenter or logger is replaced with a no-op one.
func NewMachine(cfg config.Config, rt core.RuntimeConfig, p Presenter, rng Rand, logger *log.Logger) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if p == nil {
		p = NopPresenter{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := rt.PlayfieldSize()
	scheduler, err := NewScheduler(cfg, rng, width, height)
	if err != nil {
		return nil, err
	}

	return &Machine{
		cfg:       cfg,
		presenter: p,
		rng:       rng,
		logger:    logger,
		state:     StateMenu,
		width:     width,
		height:    height,
		registry:  NewRegistry(p),
		scheduler: scheduler,
	}, nil
}

// Start issues the initial theme and score label.
func (m *Machine) Start() {
	m.presenter.SetScore(m.score)
	m.changeTheme()
}

// State returns the current round state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() int {
	return m.score
}

// Registry exposes the live entities.
func (m *Machine) Registry() *Registry {
	return m.registry
}

// SpawnTimer returns the scheduler's timer.
func (m *Machine) SpawnTimer() SpawnTimer {
	return m.scheduler.Timer()
}

// Resize updates the playfield size used for new spawns.
func (m *Machine) Resize(rt core.RuntimeConfig) {
	m.width, m.height = rt.PlayfieldSize()
	m.scheduler.SetPlayfield(m.width, m.height)
}

// Handle processes one non-contact event. Collisions must go through a
// Resolver; a Collision passed here is treated as an unfiltered hit.
func (m *Machine) Handle(ev Event) error {
	switch ev := ev.(type) {
	case SwipeInput:
		return m.Swipe(ev.Side, ev.Y)
	case TraversalComplete:
		m.Complete(ev.ID)
	case Collision:
		m.Collide()
	case FrameTick:
		return m.Tick(m.clock.Tick(ev.Time))
	}
	return nil
}

// Swipe starts a round if none is running and launches a marker.
func (m *Machine) Swipe(side core.Side, y float64) error {
	if m.state != StatePlay {
		m.setState(StatePlay)
		m.score = 0
		m.presenter.SetScore(m.score)
		m.presenter.PlayEffect(Effect{Kind: EffectFadeOut, Target: LabelDescription, Magnitude: m.cfg.Effects.Fade})
	}

	m.presenter.PlaySound(SoundLaunch)

	fromX, toX := side.Edges(m.width)
	return m.spawn(Entity{
		Kind:     KindMarker,
		From:     core.V(fromX, y),
		To:       core.V(toX, y),
		Duration: config.Seconds(m.cfg.Marker.LaunchDuration),
		Rotation: m.cfg.Marker.Spin,
	})
}

// Complete handles the end of an entity's traversal. Unknown IDs are
// ignored: the entity may already have been cleared by a collision.
func (m *Machine) Complete(id EntityID) {
	e, ok := m.registry.Get(id)
	if !ok {
		return
	}
	m.registry.Remove(id)

	if e.Kind != KindMarker || m.state != StatePlay {
		return
	}

	m.score++
	m.logger.Debug("marker crossed", "id", id, "score", m.score)
	m.presenter.PlaySound(SoundScore)
	m.presenter.PlayEffect(Effect{Kind: EffectShake, Target: LabelScene, Magnitude: m.cfg.Effects.ScoreShake})
	m.presenter.SetScore(m.score)

	if m.score%m.cfg.Rules.ThemeEvery == 0 {
		m.changeTheme()
	}
}

// Collide ends the round. Unless rules.guard_collisions is set, this runs
// in any state.
func (m *Machine) Collide() {
	if m.cfg.Rules.GuardCollisions && m.state != StatePlay {
		m.logger.Debug("collision ignored", "state", m.state)
		return
	}

	m.setState(StateOver)
	m.presenter.PlaySound(SoundGameOver)
	m.presenter.PlayEffect(Effect{Kind: EffectSplash, Target: LabelScene, Magnitude: m.cfg.Effects.Splash})
	m.presenter.PlayEffect(Effect{Kind: EffectShake, Target: LabelScene, Magnitude: m.cfg.Effects.OverShake})
	m.registry.Clear()
	m.presenter.PlayEffect(Effect{Kind: EffectFadeIn, Target: LabelDescription, Magnitude: m.cfg.Effects.Fade})
}

// Tick forwards an elapsed-time delta to the scheduler while in Play.
func (m *Machine) Tick(dt time.Duration) error {
	if m.state != StatePlay {
		return nil
	}
	s, ok := m.scheduler.OnTick(dt)
	if !ok {
		return nil
	}
	return m.spawn(Entity{
		Kind:     KindObstacle,
		From:     s.From,
		To:       s.To,
		Duration: s.Duration,
		Rotation: s.Rotation,
	})
}

// spawn assigns an ID, registers e and asks the presenter to create its body.
func (m *Machine) spawn(e Entity) error {
	m.nextID++
	e.ID = m.nextID
	if err := m.registry.Add(e); err != nil {
		return err
	}
	m.logger.Debug("spawned", "id", e.ID, "kind", e.Kind, "from", e.From, "to", e.To, "duration", e.Duration)
	m.presenter.SpawnEntity(e)
	return nil
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.logger.Debug("state changed", "from", m.state, "to", s, "score", m.score)
	m.state = s
}

func (m *Machine) changeTheme() {
	m.presenter.SetTheme(m.rng.Intn(core.PaletteSize))
}
