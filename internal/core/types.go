package core

// Mode is the interaction state of a session.
type Mode uint8

const (
	// ModeEdit lets pointer presses toggle cells; the rule engine is idle.
	ModeEdit Mode = iota
	// ModeRun advances generations on the throttle cadence; pointer input is ignored.
	ModeRun
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeRun:
		return "run"
	default:
		return "unknown"
	}
}

// Toggled returns the other mode.
func (m Mode) Toggled() Mode {
	if m == ModeRun {
		return ModeEdit
	}
	return ModeRun
}

// EventKind enumerates the input events a host can feed to a session.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventPointerPress
	EventKeyPress
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Key is a lower-case key name such as "space", "escape" or "a".
type Key string

const (
	KeySpace  Key = "space"
	KeyEscape Key = "escape"
	KeyEnter  Key = "enter"
)

// Event is a single input item drained from the host once per frame.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button Button
	Key    Key
}

// Quit builds a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// PointerPress builds a pointer press at canvas pixel (x, y).
func PointerPress(x, y int, b Button) Event {
	return Event{Kind: EventPointerPress, X: x, Y: y, Button: b}
}

// KeyPress builds a key press event.
func KeyPress(k Key) Event { return Event{Kind: EventKeyPress, Key: k} }
