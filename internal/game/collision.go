package game

// Resolver turns contact notifications into round-ending collisions.
type Resolver struct {
	registry *Registry
	onHit    func()
}

// NewResolver creates a resolver that calls onHit for every marker/obstacle contact.
func NewResolver(registry *Registry, onHit func()) *Resolver {
	return &Resolver{registry: registry, onHit: onHit}
}

// OnContact reports whether the pair was a marker/obstacle hit.
// Pairs of the same kind and pairs naming an entity that is no longer
// live are ignored.
func (r *Resolver) OnContact(a, b EntityID) bool {
	ea, ok := r.registry.Get(a)
	if !ok {
		return false
	}
	eb, ok := r.registry.Get(b)
	if !ok {
		return false
	}
	if !isHit(ea.Kind, eb.Kind) {
		return false
	}
	r.onHit()
	return true
}

// isHit reports whether the kinds are exactly one marker and one obstacle.
func isHit(a, b Kind) bool {
	return (a == KindMarker && b == KindObstacle) || (a == KindObstacle && b == KindMarker)
}
