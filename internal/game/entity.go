// Package game implements the reflex gameplay core: the Menu/Play/Over state
// machine, the obstacle spawn scheduler, the entity registry and
// collision-driven scoring. It has no terminal, clock or I/O dependencies;
// everything visible or audible is requested through a Presenter.
package game

import (
	"time"

	"github.com/vovakirdan/reflex/internal/core"
)

// EntityID identifies a live entity. IDs are never reused within a Machine.
type EntityID uint64

// Kind distinguishes player markers from obstacles.
type Kind int

const (
	KindMarker Kind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "Marker"
	case KindObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Entity is a marker or obstacle traversing the playfield.
type Entity struct {
	ID       EntityID
	Kind     Kind
	From     core.Vec      // Spawn position
	To       core.Vec      // Traversal target
	Duration time.Duration // Time to reach To
	Rotation float64       // Radians turned over the traversal
}
