package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
)

// Engine serializes inbound events into the machine. Input, completion and
// contact events are queued with Push and drained at the start of each
// Frame, in arrival order, before the frame's tick is processed.
type Engine struct {
	machine  *Machine
	resolver *Resolver
	queue    []Event
}

// NewEngine creates an engine with a fresh machine.
func NewEngine(cfg config.Config, rt core.RuntimeConfig, p Presenter, rng Rand, logger *log.Logger) (*Engine, error) {
	m, err := NewMachine(cfg, rt, p, rng, logger)
	if err != nil {
		return nil, err
	}
	return &Engine{
		machine:  m,
		resolver: NewResolver(m.Registry(), m.Collide),
		queue:    make([]Event, 0, 16),
	}, nil
}

// Machine returns the underlying state machine.
func (e *Engine) Machine() *Machine {
	return e.machine
}

// Push queues an event for the next Frame.
func (e *Engine) Push(ev Event) {
	e.queue = append(e.queue, ev)
}

// Pending returns the number of queued events.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Frame drains the queue and then processes a FrameTick at now.
// Events queued while draining are processed in the same frame.
// The first error stops the frame; the remaining events stay queued.
func (e *Engine) Frame(now time.Time) error {
	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]
		if err := e.Dispatch(ev); err != nil {
			return err
		}
	}
	return e.Dispatch(FrameTick{Time: now})
}

// Dispatch processes a single event immediately.
func (e *Engine) Dispatch(ev Event) error {
	if c, ok := ev.(Collision); ok {
		e.resolver.OnContact(c.A, c.B)
		return nil
	}
	return e.machine.Handle(ev)
}
