// Package stage is the headless collaborator behind game.Presenter. It moves
// bodies along their traversals, reports completions and begin-contacts
// back to the core, and keeps the state of cosmetic effects for rendering.
package stage

import (
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
)

// Contact categories. A body reports contacts only against bodies whose
// category is in its contact mask.
const (
	CategoryNone     uint32 = 0
	CategoryMarker   uint32 = 1 << 0
	CategoryObstacle uint32 = 1 << 1
)

// Sink receives events produced by the stage, usually game.Engine.Push.
type Sink func(game.Event)

// Body is the physical counterpart of an entity.
type Body struct {
	Entity      game.Entity
	Elapsed     time.Duration
	Pos         core.Vec
	Angle       float64
	Size        config.Size
	Category    uint32
	ContactMask uint32
	done        bool // completion already reported
}

// Box returns the body's contact box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.Pos, b.Size.W, b.Size.H)
}

// Progress returns the traversal fraction in [0, 1].
func (b *Body) Progress() float64 {
	if b.Entity.Duration <= 0 {
		return 1
	}
	return core.ClampF(float64(b.Elapsed)/float64(b.Entity.Duration), 0, 1)
}

type pair struct {
	a, b game.EntityID
}

// Stage implements game.Presenter.
type Stage struct {
	cfg      config.Config
	sink     Sink
	clock    game.Clock
	bodies   map[game.EntityID]*Body
	contacts map[pair]bool
	fx       effects
	theme    int
	score    int
	cue      cue
	width    float64
	height   float64
}

var _ game.Presenter = (*Stage)(nil)

// New creates an empty stage. rng drives the shake offsets.
func New(cfg config.Config, rt core.RuntimeConfig, rng game.Rand, sink Sink) *Stage {
	w, h := rt.PlayfieldSize()
	return &Stage{
		cfg:      cfg,
		sink:     sink,
		bodies:   make(map[game.EntityID]*Body),
		contacts: make(map[pair]bool),
		fx:       newEffects(cfg.Effects, rng),
		width:    w,
		height:   h,
	}
}

// SetSink sets the event receiver.
func (s *Stage) SetSink(sink Sink) {
	s.sink = sink
}

// Resize updates the playfield size.
func (s *Stage) Resize(rt core.RuntimeConfig) {
	s.width, s.height = rt.PlayfieldSize()
}

// Size returns the playfield size.
func (s *Stage) Size() (w, h float64) {
	return s.width, s.height
}

// SpawnEntity creates a body at the entity's spawn position.
func (s *Stage) SpawnEntity(e game.Entity) {
	b := &Body{
		Entity: e,
		Pos:    e.From,
	}
	switch e.Kind {
	case game.KindMarker:
		b.Size = s.cfg.Bodies.Marker
		b.Category = CategoryMarker
		b.ContactMask = CategoryObstacle
	case game.KindObstacle:
		b.Size = s.cfg.Bodies.Obstacle
		b.Category = CategoryObstacle
		b.ContactMask = CategoryMarker
	}
	s.bodies[e.ID] = b
}

// RemoveEntity detaches a body. Unknown IDs are ignored.
func (s *Stage) RemoveEntity(id game.EntityID) {
	delete(s.bodies, id)
	for p := range s.contacts {
		if p.a == id || p.b == id {
			delete(s.contacts, p)
		}
	}
}

// PlaySound records the cue for the HUD.
func (s *Stage) PlaySound(snd game.Sound) {
	s.cue = cue{sound: snd, left: cueDuration, count: s.cue.count + 1}
}

// PlayEffect starts a visual effect.
func (s *Stage) PlayEffect(fx game.Effect) {
	s.fx.start(fx)
}

// SetTheme switches the background palette color.
func (s *Stage) SetTheme(index int) {
	if !core.ValidColor(index) {
		return
	}
	s.theme = index
}

// SetScore updates the score label.
func (s *Stage) SetScore(score int) {
	s.score = score
}

// Body returns the body for id.
func (s *Stage) Body(id game.EntityID) (*Body, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

// BodyCount returns the number of attached bodies.
func (s *Stage) BodyCount() int {
	return len(s.bodies)
}

// Step advances the stage to now. The first call only sets the baseline.
func (s *Stage) Step(now time.Time) {
	s.Advance(s.clock.Tick(now))
}

// Advance moves every body by dt, then reports finished traversals and
// new contacts, in that order.
func (s *Stage) Advance(dt time.Duration) {
	ids := slices.Sorted(maps.Keys(s.bodies))

	for _, id := range ids {
		b := s.bodies[id]
		b.Elapsed += dt
		t := b.Progress()
		b.Pos = core.Lerp(b.Entity.From, b.Entity.To, t)
		b.Angle = b.Entity.Rotation * t
	}

	for _, id := range ids {
		b := s.bodies[id]
		if !b.done && b.Elapsed >= b.Entity.Duration {
			b.done = true
			s.emit(game.TraversalComplete{ID: id})
		}
	}

	s.detectContacts(ids)
	s.fx.advance(dt)
	s.cue.advance(dt)
}

// detectContacts reports each touching marker/obstacle pair once, when the
// contact begins.
func (s *Stage) detectContacts(ids []game.EntityID) {
	for i, ida := range ids {
		a := s.bodies[ida]
		for _, idb := range ids[i+1:] {
			b := s.bodies[idb]
			if a.Category&b.ContactMask == 0 && b.Category&a.ContactMask == 0 {
				continue
			}

			p := pair{a: ida, b: idb}
			touching := !a.done && !b.done && a.Box().Intersects(b.Box())
			switch {
			case touching && !s.contacts[p]:
				s.contacts[p] = true
				s.emit(game.Collision{A: ida, B: idb})
			case !touching:
				delete(s.contacts, p)
			}
		}
	}
}

func (s *Stage) emit(ev game.Event) {
	if s.sink != nil {
		s.sink(ev)
	}
}
