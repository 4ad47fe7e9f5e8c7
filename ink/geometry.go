package ink

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Trigger identifies the input pair that started an ink press. Activation and
// deactivation only pair up within the same trigger kind, so a stray mouse
// release can never cancel a keyboard-initiated press.
type Trigger uint8

const (
	TriggerNone Trigger = iota
	// TriggerKey pairs key press with key release.
	TriggerKey
	// TriggerMouse pairs mouse button press with release.
	TriggerMouse
	// TriggerPointer pairs generic pointer down with pointer up.
	TriggerPointer
	// TriggerTouch pairs touch start with touch end.
	TriggerTouch
)

func (t Trigger) String() string {
	switch t {
	case TriggerKey:
		return "key"
	case TriggerMouse:
		return "mouse"
	case TriggerPointer:
		return "pointer"
	case TriggerTouch:
		return "touch"
	default:
		return "none"
	}
}

// pointerDriven reports whether the trigger carries a meaningful press
// position. Keyboard presses always start from the surface center.
func (t Trigger) pointerDriven() bool {
	return t == TriggerMouse || t == TriggerPointer || t == TriggerTouch
}

// Point is a position in terminal cell coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is a surface bounding box in terminal cell coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the rect in absolute coordinates.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// FromZone measures a marked view region. Zones spanning a single row still
// count one cell of height.
func FromZone(info *zone.ZoneInfo) Rect {
	if info == nil || info.IsZero() {
		return Rect{}
	}

	width := float64(info.EndX - info.StartX)
	height := float64(info.EndY - info.StartY)

	return Rect{
		X:      float64(info.StartX),
		Y:      float64(info.StartY),
		Width:  math.Max(width, 1),
		Height: math.Max(height, 1),
	}
}

// Event is a normalized activation input: which trigger pair fired and, for
// pointer-driven triggers, where.
type Event struct {
	Trigger Trigger
	// Page is the press position in absolute cell coordinates. Only
	// meaningful when Pointer is true.
	Page    Point
	Pointer bool
}

// MouseEvent normalizes a terminal mouse press.
func MouseEvent(msg tea.MouseMsg) Event {
	return Event{
		Trigger: TriggerMouse,
		Page:    Point{X: float64(msg.X), Y: float64(msg.Y)},
		Pointer: true,
	}
}

// KeyEvent normalizes a keyboard press. Key presses carry no position; the
// ink always grows from the surface center.
func KeyEvent() Event {
	return Event{Trigger: TriggerKey}
}

// TouchEvent normalizes a touch start from its changed-touch positions. The
// first entry wins; an empty list degrades to the origin.
func TouchEvent(points []Point) Event {
	ev := Event{Trigger: TriggerTouch, Pointer: true}
	if len(points) > 0 {
		ev.Page = points[0]
	}

	return ev
}

// Geometry is the measurement captured at activation time: the surface frame
// and the event that pressed it. It stays frozen for the whole press cycle.
type Geometry struct {
	Frame Rect
	Event Event
}
