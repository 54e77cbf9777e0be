package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/stage"
)

// Theme holds the styles for one frame.
type Theme struct {
	Background lipgloss.Color
	inks       map[core.Ink]lipgloss.Style
	HUD        lipgloss.Style
	HUDValue   lipgloss.Style
	HUDDim     lipgloss.Style
}

// NewTheme builds the frame styles for a palette index, brightened toward
// white by the splash intensity in [0, 1].
func NewTheme(index int, splash float64) Theme {
	bg := lipgloss.Color(blend(core.PaletteColor(index).Hex, "#ffffff", splash))
	base := lipgloss.NewStyle().Background(bg)
	hud := lipgloss.NewStyle().Background(lipgloss.Color(core.HexBackground))

	return Theme{
		Background: bg,
		inks: map[core.Ink]lipgloss.Style{
			core.InkDefault:  base,
			core.InkMarker:   base.Foreground(lipgloss.Color(core.HexMarker)),
			core.InkObstacle: base.Foreground(lipgloss.Color(core.HexObstacle)),
			core.InkScore:    base.Foreground(lipgloss.Color("#ffffff")).Bold(true),
			core.InkText:     base.Foreground(lipgloss.Color("#ecf0f1")),
			core.InkSplash:   base.Foreground(lipgloss.Color("#ffffff")),
		},
		HUD:      hud.Foreground(lipgloss.Color("245")),
		HUDValue: hud.Foreground(lipgloss.Color("255")).Bold(true),
		HUDDim:   hud.Foreground(lipgloss.Color("240")),
	}
}

// Style returns the style for an ink.
func (t Theme) Style(ink core.Ink) lipgloss.Style {
	if s, ok := t.inks[ink]; ok {
		return s
	}
	return t.inks[core.InkDefault]
}

// blend mixes two hex colors; t = 0 yields a, t = 1 yields b.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendRgb(cb, core.ClampF(t, 0, 1)).Clamped().Hex()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same ink to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same ink for efficiency
		x := 0
		for x < s.Width() {
			startInk := s.GetCell(x, y).Ink

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Ink != startInk {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startInk).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame draws a stage snapshot and the aim row markers, then renders
// the screen with the snapshot's theme. A negative aim draws no markers.
func RenderFrame(s *core.Screen, snap stage.Snapshot, aim int) (string, Theme) {
	snap.Draw(s)
	drawAim(s, aim)
	theme := NewTheme(snap.Theme, snap.Splash)
	return RenderScreen(s, theme), theme
}

// drawAim marks the aim row at both playfield edges, leaving bodies and
// labels in place.
func drawAim(s *core.Screen, row int) {
	w := s.Width()
	if w < 2 || row < 0 || row >= s.Height() {
		return
	}
	if s.Get(0, row) == ' ' {
		s.Set(0, row, '›', core.InkText)
	}
	if s.Get(w-1, row) == ' ' {
		s.Set(w-1, row, '‹', core.InkText)
	}
}
