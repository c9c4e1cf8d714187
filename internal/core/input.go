package core

import "time"

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - skip intro / continue
	ActionBack           // B, Escape - abandon the round and return to menu
	ActionRestart        // R - start a new match after the winner screen
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GestureKind classifies a completed pointer press/release pair.
type GestureKind int

const (
	GestureClick GestureKind = iota
	GestureSwipe
)

// Gesture is a pointer interaction in course pixel coordinates.
type Gesture struct {
	Kind           GestureKind
	StartX, StartY int
	EndX, EndY     int
	Elapsed        time.Duration // between press and release
}

// ElapsedMillis returns the gesture duration in whole milliseconds.
func (g Gesture) ElapsedMillis() int {
	return int(g.Elapsed / time.Millisecond)
}

// ClickRadiusSq is the squared distance under which a release counts as a click.
const ClickRadiusSq = 9

// PointerTracker pairs presses with releases and classifies them.
type PointerTracker struct {
	pressed        bool
	startX, startY int
	startAt        time.Time
}

// Press records the start of a gesture.
func (p *PointerTracker) Press(x, y int, at time.Time) {
	p.pressed = true
	p.startX, p.startY = x, y
	p.startAt = at
}

// Release completes the gesture. It returns false when no press is pending.
func (p *PointerTracker) Release(x, y int, at time.Time) (Gesture, bool) {
	if !p.pressed {
		return Gesture{}, false
	}
	p.pressed = false
	g := Gesture{
		Kind:    GestureSwipe,
		StartX:  p.startX,
		StartY:  p.startY,
		EndX:    x,
		EndY:    y,
		Elapsed: at.Sub(p.startAt),
	}
	if DistSq(p.startX, p.startY, x, y) < ClickRadiusSq {
		g.Kind = GestureClick
	}
	return g, true
}
