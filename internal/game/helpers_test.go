package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
)

// recorder is a Presenter that remembers every request.
type recorder struct {
	spawned []Entity
	removed []EntityID
	sounds  []Sound
	effects []Effect
	themes  []int
	scores  []int
}

func (r *recorder) SpawnEntity(e Entity)     { r.spawned = append(r.spawned, e) }
func (r *recorder) RemoveEntity(id EntityID) { r.removed = append(r.removed, id) }
func (r *recorder) PlaySound(s Sound)        { r.sounds = append(r.sounds, s) }
func (r *recorder) PlayEffect(fx Effect)     { r.effects = append(r.effects, fx) }
func (r *recorder) SetTheme(index int)       { r.themes = append(r.themes, index) }
func (r *recorder) SetScore(score int)       { r.scores = append(r.scores, score) }
func (r *recorder) hasSound(s Sound) bool    { return containsSound(r.sounds, s) }
func (r *recorder) reset()                   { *r = recorder{} }

func containsSound(sounds []Sound, s Sound) bool {
	for _, x := range sounds {
		if x == s {
			return true
		}
	}
	return false
}

func (r *recorder) hasEffect(k EffectKind, target Label) bool {
	for _, fx := range r.effects {
		if fx.Kind == k && fx.Target == target {
			return true
		}
	}
	return false
}

// fixedRand returns the same value every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

// seqRand returns values from a list, cycling.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func (r *seqRand) Intn(n int) int { return 0 }

func testRuntime() core.RuntimeConfig {
	// Playfield 100x100 (two HUD rows below).
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 100 + core.HUDRows, TickRate: 60, Seed: 1}
}

func newTestMachine(t *testing.T, cfg config.Config, rng Rand) (*Machine, *recorder) {
	t.Helper()
	rec := &recorder{}
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	m, err := NewMachine(cfg, testRuntime(), rec, rng, nil)
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	return m, rec
}

// lastMarker returns the most recently spawned marker.
func (r *recorder) lastMarker(t *testing.T) Entity {
	t.Helper()
	for i := len(r.spawned) - 1; i >= 0; i-- {
		if r.spawned[i].Kind == KindMarker {
			return r.spawned[i]
		}
	}
	t.Fatal("no marker spawned")
	return Entity{}
}
