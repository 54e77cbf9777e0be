package core

// Side is the direction of a swipe.
// A right swipe launches from the left edge toward the right edge.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Edges returns the launch and target x coordinates of a swipe
// on a playfield of the given width.
func (s Side) Edges(width float64) (from, to float64) {
	if s == SideRight {
		return 0, width
	}
	return width, 0
}

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionSwipeLeft         // Left arrow, H, A
	ActionSwipeRight        // Right arrow, L, D
	ActionAimUp             // Up arrow, K, W
	ActionAimDown           // Down arrow, J, S
	ActionHelp              // ?
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwipeLeft:
		return "SwipeLeft"
	case ActionSwipeRight:
		return "SwipeRight"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SwipeSide returns the swipe side for a swipe action.
func (a Action) SwipeSide() (Side, bool) {
	switch a {
	case ActionSwipeLeft:
		return SideLeft, true
	case ActionSwipeRight:
		return SideRight, true
	}
	return 0, false
}
