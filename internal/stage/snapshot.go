package stage

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/game"
)

// Description is the hint shown while no round is running.
const Description = "Swipe left or right."

// BodyView is a read-only view of a body for rendering.
type BodyView struct {
	ID    game.EntityID
	Kind  game.Kind
	Box   core.Box
	Angle float64
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height float64
	Bodies        []BodyView
	Shake         core.Vec // Camera offset
	Splash        float64  // Remaining splash intensity, 0..1
	Description   float64  // Description label alpha, 0..1
	Theme         int      // Palette index
	Score         int
	Cue           string // Name of a recently played sound, or empty
	CueCount      int    // Sounds played so far
}

// Snapshot captures the current stage state.
func (s *Stage) Snapshot() Snapshot {
	snap := Snapshot{
		Width:       s.width,
		Height:      s.height,
		Bodies:      make([]BodyView, 0, len(s.bodies)),
		Shake:       s.fx.offset,
		Splash:      s.fx.splash(),
		Description: s.fx.descAlpha,
		Theme:       s.theme,
		Score:       s.score,
		CueCount:    s.cue.count,
	}
	if s.cue.left > 0 {
		snap.Cue = s.cue.sound.String()
	}
	for _, id := range slices.Sorted(maps.Keys(s.bodies)) {
		b := s.bodies[id]
		snap.Bodies = append(snap.Bodies, BodyView{
			ID:    id,
			Kind:  b.Entity.Kind,
			Box:   b.Box(),
			Angle: b.Angle,
		})
	}
	return snap
}

var (
	markerGlyphs   = []rune{'■', '◆'}
	obstacleGlyphs = []rune{'◢', '◣', '◤', '◥'}
)

// glyph picks a rune for the body's current quarter turn.
func glyph(kind game.Kind, angle float64) rune {
	glyphs := markerGlyphs
	if kind == game.KindObstacle {
		glyphs = obstacleGlyphs
	}
	quarter := int(math.Floor(angle / (math.Pi / 2)))
	return glyphs[((quarter%len(glyphs))+len(glyphs))%len(glyphs)]
}

// Draw renders the snapshot into dst. Playfield y grows upward; screen
// rows grow downward. The screen is expected to be playfield-sized.
func (snap Snapshot) Draw(dst *core.Screen) {
	dst.Clear()

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, scoreText(snap.Score), core.InkScore)
	if snap.Description >= 0.5 {
		dst.DrawTextCentered(mid+1, Description, core.InkText)
	}

	for _, b := range snap.Bodies {
		min, max := b.Box.Min().Add(snap.Shake), b.Box.Max().Add(snap.Shake)
		x0 := int(math.Floor(min.X))
		x1 := int(math.Ceil(max.X))
		// Flip y: playfield top (y = Height) is screen row 0.
		y0 := int(math.Floor(snap.Height - max.Y))
		y1 := int(math.Ceil(snap.Height - min.Y))

		ink := core.InkMarker
		if b.Kind == game.KindObstacle {
			ink = core.InkObstacle
		}
		dst.DrawRect(x0, y0, x1-x0, y1-y0, glyph(b.Kind, b.Angle), ink)
	}
}

func scoreText(score int) string {
	return "[ " + strconv.Itoa(score) + " ]"
}
