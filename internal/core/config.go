package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The screen size doubles as the playfield size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// PlayfieldSize returns the playfield dimensions in playfield units.
// Two rows at the bottom are reserved for the HUD.
func (c RuntimeConfig) PlayfieldSize() (w, h float64) {
	return float64(c.ScreenW), float64(Max(c.ScreenH-HUDRows, 1))
}

// HUDRows is the number of screen rows below the playfield.
const HUDRows = 2

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
