package stage

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/reflex/internal/config"
	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 100 + core.HUDRows, TickRate: 60, Seed: 1}
}

type eventLog struct {
	events []game.Event
}

func (l *eventLog) push(ev game.Event) { l.events = append(l.events, ev) }

func (l *eventLog) count(match func(game.Event) bool) int {
	n := 0
	for _, ev := range l.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func isCollision(ev game.Event) bool { _, ok := ev.(game.Collision); return ok }
func isComplete(ev game.Event) bool  { _, ok := ev.(game.TraversalComplete); return ok }

func newTestStage() (*Stage, *eventLog) {
	log := &eventLog{}
	s := New(config.Default(), testRuntime(), rand.New(rand.NewSource(1)), log.push)
	return s, log
}

func TestTraversal(t *testing.T) {
	s, log := newTestStage()
	s.SpawnEntity(game.Entity{
		ID:       1,
		Kind:     game.KindMarker,
		From:     core.V(0, 50),
		To:       core.V(100, 50),
		Duration: time.Second,
		Rotation: math.Pi,
	})

	s.Advance(500 * time.Millisecond)
	b, ok := s.Body(1)
	if !ok {
		t.Fatal("body should exist")
	}
	if math.Abs(b.Pos.X-50) > 1e-9 || b.Pos.Y != 50 {
		t.Errorf("position at half time = %v, expected (50, 50)", b.Pos)
	}
	if math.Abs(b.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle at half time = %v, expected pi/2", b.Angle)
	}
	if len(log.events) != 0 {
		t.Fatalf("no events expected mid-traversal, got %v", log.events)
	}

	s.Advance(500 * time.Millisecond)
	s.Advance(500 * time.Millisecond)

	if n := log.count(isComplete); n != 1 {
		t.Fatalf("completion reported %d times, expected once", n)
	}
	if ev := log.events[0].(game.TraversalComplete); ev.ID != 1 {
		t.Errorf("completion for %d, expected 1", ev.ID)
	}
	if b.Pos != core.V(100, 50) {
		t.Errorf("final position = %v, expected (100, 50)", b.Pos)
	}
}

func TestStepUsesFrameClock(t *testing.T) {
	s, log := newTestStage()
	s.SpawnEntity(game.Entity{ID: 1, Kind: game.KindMarker, To: core.V(10, 0), Duration: 100 * time.Millisecond})
	base := time.Unix(500, 0)

	s.Step(base)
	if b, _ := s.Body(1); b.Elapsed != 0 {
		t.Errorf("first Step should not advance, elapsed = %v", b.Elapsed)
	}
	s.Step(base.Add(100 * time.Millisecond))
	if log.count(isComplete) != 1 {
		t.Error("traversal should complete after 100ms of frames")
	}
}

func TestContactFiltering(t *testing.T) {
	tests := []struct {
		name     string
		a, b     game.Kind
		expected int
	}{
		{"marker and obstacle", game.KindMarker, game.KindObstacle, 1},
		{"two markers", game.KindMarker, game.KindMarker, 0},
		{"two obstacles", game.KindObstacle, game.KindObstacle, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, log := newTestStage()
			at := core.V(50, 50)
			s.SpawnEntity(game.Entity{ID: 1, Kind: tc.a, From: at, To: at, Duration: time.Hour})
			s.SpawnEntity(game.Entity{ID: 2, Kind: tc.b, From: at, To: at, Duration: time.Hour})

			for i := 0; i < 5; i++ {
				s.Advance(16 * time.Millisecond)
			}

			if n := log.count(isCollision); n != tc.expected {
				t.Errorf("collisions = %d, expected %d (begin-contact only)", n, tc.expected)
			}
		})
	}
}

func TestContactBeginsAgainAfterSeparation(t *testing.T) {
	s, log := newTestStage()
	s.SpawnEntity(game.Entity{ID: 1, Kind: game.KindObstacle, From: core.V(50, 50), To: core.V(50, 50), Duration: time.Hour})
	// Marker passes through the obstacle and leaves it.
	s.SpawnEntity(game.Entity{ID: 2, Kind: game.KindMarker, From: core.V(40, 50), To: core.V(60, 50), Duration: time.Second})

	for i := 0; i < 10; i++ {
		s.Advance(100 * time.Millisecond)
	}
	if n := log.count(isCollision); n != 1 {
		t.Fatalf("collisions after one pass = %d, expected 1", n)
	}

	s.RemoveEntity(2)
	s.SpawnEntity(game.Entity{ID: 3, Kind: game.KindMarker, From: core.V(50, 50), To: core.V(50, 50), Duration: time.Hour})
	s.Advance(time.Millisecond)
	if n := log.count(isCollision); n != 2 {
		t.Errorf("collisions = %d, expected a new contact for the new body", n)
	}
}

func TestRemoveUnknownEntity(t *testing.T) {
	s, _ := newTestStage()
	s.RemoveEntity(42)
	if s.BodyCount() != 0 {
		t.Error("body count should stay 0")
	}
}

func TestSetThemeIgnoresOutOfRange(t *testing.T) {
	s, _ := newTestStage()
	s.SetTheme(4)
	s.SetTheme(14)
	s.SetTheme(-1)
	if s.Snapshot().Theme != 4 {
		t.Errorf("theme = %d, expected 4", s.Snapshot().Theme)
	}
}

func TestShakeEffect(t *testing.T) {
	s, _ := newTestStage()
	s.PlayEffect(game.Effect{Kind: game.EffectShake, Target: game.LabelScene, Magnitude: 0.4})

	moved := false
	for i := 0; i < 20; i++ {
		s.Advance(16 * time.Millisecond)
		off := s.Snapshot().Shake
		if math.Abs(off.X) > 1 || math.Abs(off.Y) > 0.5 {
			t.Fatalf("shake offset %v exceeds amplitude", off)
		}
		if off != (core.Vec{}) {
			moved = true
		}
	}
	if !moved {
		t.Error("shake should move the camera")
	}

	s.Advance(500 * time.Millisecond)
	if off := s.Snapshot().Shake; off != (core.Vec{}) {
		t.Errorf("offset after shake = %v, expected zero", off)
	}
}

func TestSplashAndFade(t *testing.T) {
	s, _ := newTestStage()
	if s.Snapshot().Description != 1 {
		t.Fatal("description should start visible")
	}

	s.PlayEffect(game.Effect{Kind: game.EffectSplash, Target: game.LabelScene, Magnitude: 1})
	s.PlayEffect(game.Effect{Kind: game.EffectFadeOut, Target: game.LabelDescription, Magnitude: 0.5})

	s.Advance(250 * time.Millisecond)
	snap := s.Snapshot()
	if math.Abs(snap.Splash-0.75) > 1e-9 {
		t.Errorf("splash = %v, expected 0.75", snap.Splash)
	}
	if math.Abs(snap.Description-0.5) > 1e-9 {
		t.Errorf("description alpha = %v, expected 0.5", snap.Description)
	}

	s.Advance(time.Second)
	snap = s.Snapshot()
	if snap.Splash != 0 || snap.Description != 0 {
		t.Errorf("splash = %v, description = %v; expected both 0", snap.Splash, snap.Description)
	}

	s.PlayEffect(game.Effect{Kind: game.EffectFadeIn, Target: game.LabelDescription, Magnitude: 0.5})
	s.Advance(time.Second)
	if s.Snapshot().Description != 1 {
		t.Error("description should fade back in")
	}
}

func TestSoundCue(t *testing.T) {
	s, _ := newTestStage()
	s.PlaySound(game.SoundLaunch)
	if snap := s.Snapshot(); snap.Cue != "launch" || snap.CueCount != 1 {
		t.Errorf("cue = %q (%d), expected launch (1)", snap.Cue, snap.CueCount)
	}
	s.Advance(time.Second)
	if s.Snapshot().Cue != "" {
		t.Error("cue should expire")
	}
}

func TestGlyph(t *testing.T) {
	if glyph(game.KindMarker, 0) != '■' || glyph(game.KindMarker, math.Pi/2) != '◆' {
		t.Error("marker glyph should alternate per quarter turn")
	}
	if glyph(game.KindObstacle, -math.Pi/2) != '◥' {
		t.Error("negative angles should wrap")
	}
}

func TestDraw(t *testing.T) {
	rt := core.RuntimeConfig{ScreenW: 40, ScreenH: 20 + core.HUDRows}
	s := New(config.Default(), rt, rand.New(rand.NewSource(1)), nil)
	s.SetScore(7)
	s.SpawnEntity(game.Entity{ID: 1, Kind: game.KindObstacle, From: core.V(10, 20), To: core.V(10, 0), Duration: time.Second})
	s.SpawnEntity(game.Entity{ID: 2, Kind: game.KindMarker, From: core.V(0, 5), To: core.V(40, 5), Duration: time.Second})

	screen := core.NewScreen(40, 20)
	s.Snapshot().Draw(screen)

	// Obstacle box is 4x2 centered on (10, 20): columns 8..11, rows 0 (row -1 clipped).
	if c := screen.GetCell(8, 0); c.Ink != core.InkObstacle {
		t.Errorf("cell (8,0) = %+v, expected obstacle ink", c)
	}
	// Marker box is 2x1 centered on (0, 5): column 0, rows 14..15.
	if c := screen.GetCell(0, 14); c.Ink != core.InkMarker {
		t.Errorf("cell (0,14) = %+v, expected marker ink\n%s", c, screen.String())
	}
	if row := screen.Row(9); !strings.Contains(row, "[ 7 ]") {
		t.Errorf("score row = %q, expected score label", row)
	}
	if row := screen.Row(11); !strings.Contains(row, Description) {
		t.Errorf("description row = %q", row)
	}
}
