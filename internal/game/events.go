package game

import (
	"time"

	"github.com/vovakirdan/reflex/internal/core"
)

// Event is an inbound notification for the core.
type Event interface {
	event()
}

// SwipeInput is a player swipe. Y is the playfield row of the swipe.
type SwipeInput struct {
	Side core.Side
	Y    float64
}

func (SwipeInput) event() {}

// FrameTick is sent once per rendered frame.
type FrameTick struct {
	Time time.Time
}

func (FrameTick) event() {}

// Collision is a contact notification between two bodies.
type Collision struct {
	A, B EntityID
}

func (Collision) event() {}

// TraversalComplete is sent by the collaborator when an entity's motion finishes.
type TraversalComplete struct {
	ID EntityID
}

func (TraversalComplete) event() {}
