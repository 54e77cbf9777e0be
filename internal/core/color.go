package core

// Color is an index into the Palette.
type Color uint8

// NamedColor is one entry of the theme palette.
type NamedColor struct {
	Name string
	Hex  string
}

// Palette colors, in order.
const (
	ColorTurquoise Color = iota
	ColorGreenSea
	ColorEmerald
	ColorNephritis
	ColorPeterRiver
	ColorBelizeHole
	ColorAmethyst
	ColorWisteria
	ColorSunflower
	ColorOrange
	ColorCarrot
	ColorPumpkin
	ColorAlizarin
	ColorPomegranate

	// PaletteSize is the number of theme colors.
	PaletteSize = 14
)

// palette is fixed for the process lifetime. Read it through PaletteColor
// or Palette, which return copies.
var palette = [PaletteSize]NamedColor{
	{"turquoise", "#1abc9c"},
	{"green sea", "#16a085"},
	{"emerald", "#2ecc71"},
	{"nephritis", "#27ae60"},
	{"peter river", "#3498db"},
	{"belize hole", "#2980b9"},
	{"amethyst", "#9b59b6"},
	{"wisteria", "#8e44ad"},
	{"sunflower", "#f1c40f"},
	{"orange", "#f39c12"},
	{"carrot", "#e67e22"},
	{"pumpkin", "#d35400"},
	{"alizarin", "#e74c3c"},
	{"pomegranate", "#c0392b"},
}

// Palette returns the ordered theme palette.
func Palette() [PaletteSize]NamedColor {
	return palette
}

// PaletteColor returns the palette entry for index i.
// Out-of-range indices, negative ones included, wrap around.
func PaletteColor(i int) NamedColor {
	return palette[((i%PaletteSize)+PaletteSize)%PaletteSize]
}

// ValidColor reports whether i is a palette index.
func ValidColor(i int) bool {
	return i >= 0 && i < PaletteSize
}

// Fixed non-theme colors used by the front-end.
const (
	HexMarker     = "#ffffff"
	HexObstacle   = "#34495e" // wet asphalt
	HexBackground = "#000000"
)
