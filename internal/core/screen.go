package core

import (
	"strings"
)

// Ink tells the renderer how to style a cell.
type Ink uint8

const (
	InkDefault Ink = iota
	InkMarker
	InkObstacle
	InkScore
	InkText
	InkSplash
)

// Cell is a single character on the screen with its ink.
type Cell struct {
	Rune rune
	Ink  Ink
}

// Screen is a 2D character buffer for rendering the playfield.
// It decouples drawing from the terminal: the stage draws runes with an
// ink, the platform turns inks into styles.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is cleared.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ', InkDefault)
}

// Fill fills the entire screen with the given rune and ink.
func (s *Screen) Fill(r rune, ink Ink) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Ink: ink}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, ink Ink) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Ink: ink}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, ink Ink) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, ink)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, ink Ink) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, ink)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(x, y, w, h int, fill rune, ink Ink) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.Set(col, row, fill, ink)
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, ink Ink) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, ink)
	}
}

// String converts the screen buffer to a plain string without styles.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
