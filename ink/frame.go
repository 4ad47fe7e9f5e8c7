package ink

import "math"

// expandPadding widens the bounded splash radius a little past the surface
// diagonal so the fully grown ink always covers the corners.
const expandPadding = 10

// initialSizeRatio is the fraction of the surface's larger dimension the
// splash starts at before scaling up.
const initialSizeRatio = 0.6

// Frame is the geometry a renderer needs for one splash: where the ink
// starts, where it travels, and how far it scales. All positions are
// relative to the surface origin.
type Frame struct {
	InitialSize float64
	MaxRadius   float64
	Scale       float64
	Start       Point
	End         Point
}

// ComputeFrame derives the splash geometry from a captured measurement.
// Bounded surfaces expand past their diagonal; unbounded ones stop at the
// larger dimension. Pointer-driven presses on bounded surfaces start at the
// press position, everything else starts from the rounded surface center.
// The travel end point only applies to bounded surfaces.
func ComputeFrame(geom Geometry, unbounded bool) Frame {
	width := geom.Frame.Width
	height := geom.Frame.Height

	initialSize := math.Max(width, height) * initialSizeRatio

	var maxRadius float64
	if unbounded {
		maxRadius = math.Max(width, height)
	} else {
		maxRadius = math.Hypot(width, height) + expandPadding
	}

	frame := Frame{
		InitialSize: initialSize,
		MaxRadius:   maxRadius,
	}
	if initialSize > 0 {
		frame.Scale = maxRadius / initialSize
	}

	if geom.Event.Trigger.pointerDriven() && !unbounded {
		frame.Start = Point{
			X: geom.Event.Page.X - geom.Frame.X - initialSize/2,
			Y: geom.Event.Page.Y - geom.Frame.Y - initialSize/2,
		}
	} else {
		frame.Start = Point{
			X: math.Round((width - initialSize) / 2),
			Y: math.Round((height - initialSize) / 2),
		}
	}

	if !unbounded {
		frame.End = Point{
			X: (width - initialSize) / 2,
			Y: (height - initialSize) / 2,
		}
	}

	return frame
}

// Frame returns the splash geometry for the current press, and whether the
// renderer should attach it at all. The geometry exists only while the ink
// is visible.
func (m Model) Frame() (Frame, bool) {
	if !m.Visible() {
		return Frame{}, false
	}

	return ComputeFrame(m.geom, m.unbounded), true
}

// Classes are the render-phase flags a presentation layer maps to its own
// styling. They mirror the machine state without exposing it.
type Classes struct {
	Visible                bool
	Unbounded              bool
	BackgroundActive       bool
	ForegroundActivation   bool
	ForegroundDeactivation bool
	Focused                bool
}

// Classes returns the current render-phase flags.
func (m Model) Classes() Classes {
	return Classes{
		Visible:                m.Visible(),
		Unbounded:              m.unbounded,
		BackgroundActive:       m.active,
		ForegroundActivation:   m.animating && !m.deactivating,
		ForegroundDeactivation: m.deactivating,
		Focused:                m.focused,
	}
}
