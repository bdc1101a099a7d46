package resize

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PointerID identifies an input stream: the mouse, or one touch contact.
type PointerID int

// MousePointer is the pointer ID of the mouse stream.
const MousePointer PointerID = 0

// PointerKind enumerates canonical pointer event kinds.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
	// PointerDouble is a double-activation (double-click or double-tap).
	PointerDouble
)

// PointerEvent is the canonical interaction event consumed by the engine.
// Both mouse and touch streams are bridged into this one model.
type PointerEvent struct {
	ID   PointerID
	Kind PointerKind
	X    float64
}

// DefaultDoubleInterval is the maximum gap between two activations for them
// to count as a double-activation.
const DefaultDoubleInterval = 400 * time.Millisecond

// doubleDetector turns two presses in quick succession at roughly the same
// position into a double-activation.
type doubleDetector struct {
	interval time.Duration
	last     time.Time
	lastX    float64
}

func (d *doubleDetector) press(x float64, at time.Time) bool {
	double := !d.last.IsZero() &&
		at.Sub(d.last) <= d.interval &&
		x >= d.lastX-1 && x <= d.lastX+1
	if double {
		// Require a fresh pair of presses for the next double.
		d.last = time.Time{}
	} else {
		d.last = at
		d.lastX = x
	}
	return double
}

// MouseAdapter bridges bubbletea mouse messages into canonical pointer
// events. Only the left button participates in resizing; motion events are
// forwarded regardless of button so the engine can track hover.
type MouseAdapter struct {
	double doubleDetector
	now    func() time.Time
}

func NewMouseAdapter(doubleInterval time.Duration) *MouseAdapter {
	if doubleInterval <= 0 {
		doubleInterval = DefaultDoubleInterval
	}
	return &MouseAdapter{
		double: doubleDetector{interval: doubleInterval},
		now:    time.Now,
	}
}

// Translate converts a mouse message into a canonical pointer event. The x
// coordinate is made grid-local by subtracting originX, the screen column of
// the grid's leading edge. Returns false for messages that are not part of
// the interaction model.
func (a *MouseAdapter) Translate(msg tea.MouseMsg, originX int) (PointerEvent, bool) {
	x := float64(msg.X - originX)
	ev := PointerEvent{ID: MousePointer, X: x}
	switch msg.Action {
	case tea.MouseActionMotion:
		ev.Kind = PointerMove
		return ev, true
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return PointerEvent{}, false
		}
		if a.double.press(x, a.now()) {
			ev.Kind = PointerDouble
		} else {
			ev.Kind = PointerDown
		}
		return ev, true
	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return PointerEvent{}, false
		}
		ev.Kind = PointerUp
		return ev, true
	}
	return PointerEvent{}, false
}

// TouchPhase enumerates the lifecycle phases of a touch contact.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Touch is one event in a touch contact's stream.
type Touch struct {
	// Contact distinguishes simultaneous fingers.
	Contact int
	Phase   TouchPhase
	X       float64
}

// TouchAdapter bridges single-touch streams into canonical pointer events
// with the same semantics as the mouse. A second simultaneous contact is
// never interpreted as a resize gesture: it cancels the first contact's
// gesture and suppresses all events until every contact has lifted.
type TouchAdapter struct {
	double   doubleDetector
	now      func() time.Time
	contacts map[int]struct{}
	primary  int
	// suppressed is set while a multi-touch gesture is in flight.
	suppressed bool
}

func NewTouchAdapter(doubleInterval time.Duration) *TouchAdapter {
	if doubleInterval <= 0 {
		doubleInterval = DefaultDoubleInterval
	}
	return &TouchAdapter{
		double:   doubleDetector{interval: doubleInterval},
		now:      time.Now,
		contacts: make(map[int]struct{}),
		primary:  -1,
	}
}

// Translate converts a touch into a canonical pointer event. Touch pointer
// IDs are offset so they can never collide with MousePointer.
func (a *TouchAdapter) Translate(t Touch) (PointerEvent, bool) {
	ev := PointerEvent{ID: PointerID(1 + t.Contact), X: t.X}
	switch t.Phase {
	case TouchBegan:
		a.contacts[t.Contact] = struct{}{}
		if len(a.contacts) > 1 {
			// Multi-touch: cancel the primary contact's gesture and go quiet
			// until all contacts lift.
			if a.suppressed {
				return PointerEvent{}, false
			}
			a.suppressed = true
			a.double = doubleDetector{interval: a.double.interval}
			return PointerEvent{ID: PointerID(1 + a.primary), Kind: PointerCancel, X: t.X}, true
		}
		a.primary = t.Contact
		if a.double.press(t.X, a.now()) {
			ev.Kind = PointerDouble
		} else {
			ev.Kind = PointerDown
		}
		return ev, true
	case TouchMoved:
		if a.suppressed || t.Contact != a.primary {
			return PointerEvent{}, false
		}
		ev.Kind = PointerMove
		return ev, true
	case TouchEnded, TouchCancelled:
		delete(a.contacts, t.Contact)
		if len(a.contacts) == 0 {
			suppressed := a.suppressed
			primary := a.primary
			a.suppressed = false
			a.primary = -1
			if suppressed || t.Contact != primary {
				return PointerEvent{}, false
			}
			if t.Phase == TouchCancelled {
				ev.Kind = PointerCancel
			} else {
				ev.Kind = PointerUp
			}
			return ev, true
		}
		return PointerEvent{}, false
	}
	return PointerEvent{}, false
}
