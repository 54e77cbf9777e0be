package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reflex/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	AimUp      key.Binding
	AimDown    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwipeLeft, k.SwipeRight, k.AimUp, k.AimDown, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwipeLeft, k.SwipeRight},
		{k.AimUp, k.AimDown},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwipeLeft: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "swipe left"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "swipe right"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "aim down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.SwipeLeft):
		return core.ActionSwipeLeft
	case key.Matches(msg, km.keys.SwipeRight):
		return core.ActionSwipeRight
	case key.Matches(msg, km.keys.AimUp):
		return core.ActionAimUp
	case key.Matches(msg, km.keys.AimDown):
		return core.ActionAimDown
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// minDrag is the horizontal distance, in cells, a mouse drag must cover to
// count as a swipe.
const minDrag = 2

// dragSide returns the swipe direction of a drag from x0 to x1.
func dragSide(x0, x1 int) (core.Side, bool) {
	dx := x1 - x0
	if core.Abs(dx) < minDrag {
		return core.SideLeft, false
	}
	if dx > 0 {
		return core.SideRight, true
	}
	return core.SideLeft, true
}
