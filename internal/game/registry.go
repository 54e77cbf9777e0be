package game

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrDuplicateIdentity is returned when adding an entity whose ID is already live.
var ErrDuplicateIdentity = errors.New("game: duplicate entity identity")

// Registry owns every live entity, keyed by identity.
type Registry struct {
	entities  map[EntityID]Entity
	presenter Presenter
}

// NewRegistry creates an empty registry. Removals are forwarded to p.
func NewRegistry(p Presenter) *Registry {
	if p == nil {
		p = NopPresenter{}
	}
	return &Registry{
		entities:  make(map[EntityID]Entity),
		presenter: p,
	}
}

// Add inserts e. Fails with ErrDuplicateIdentity if e.ID is live.
func (r *Registry) Add(e Entity) error {
	if _, exists := r.entities[e.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateIdentity, e.ID)
	}
	r.entities[e.ID] = e
	return nil
}

// Remove deletes the entity and detaches its body.
// Returns false (and does nothing) if id is not live.
func (r *Registry) Remove(id EntityID) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)
	r.presenter.RemoveEntity(id)
	return true
}

// Clear removes every entity, detaching each body. Safe on an empty registry.
func (r *Registry) Clear() {
	for _, id := range r.ids() {
		r.presenter.RemoveEntity(id)
	}
	clear(r.entities)
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id EntityID) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Count returns the number of live entities.
func (r *Registry) Count() int {
	return len(r.entities)
}

// ForEach calls fn for every live entity in spawn order.
func (r *Registry) ForEach(fn func(Entity)) {
	for _, id := range r.ids() {
		fn(r.entities[id])
	}
}

// ids returns live IDs in ascending (spawn) order.
func (r *Registry) ids() []EntityID {
	return slices.Sorted(maps.Keys(r.entities))
}
