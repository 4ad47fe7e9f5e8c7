package ink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeFrameBoundedKeyboard(t *testing.T) {
	geom := Geometry{
		Frame: Rect{Width: 100, Height: 50},
		Event: KeyEvent(),
	}

	frame := ComputeFrame(geom, false)

	// initialSize = max(100, 50) * 0.6; the splash overshoots the short axis,
	// so the centered start sits above the surface.
	require.InDelta(t, 60, frame.InitialSize, 1e-9)
	require.InDelta(t, 121.80339887498949, frame.MaxRadius, 1e-9)
	require.InDelta(t, 2.0300566479164914, frame.Scale, 1e-9)
	require.Equal(t, Point{X: 20, Y: -5}, frame.Start)
	require.Equal(t, Point{X: 20, Y: -5}, frame.End)
}

func TestComputeFramePointerStartsAtPress(t *testing.T) {
	geom := Geometry{
		Frame: Rect{X: 10, Y: 5, Width: 40, Height: 10},
		Event: Event{
			Trigger: TriggerMouse,
			Page:    Point{X: 30, Y: 8},
			Pointer: true,
		},
	}

	frame := ComputeFrame(geom, false)

	// initialSize = 40 * 0.6 = 24; start is the press point relative to the
	// surface, shifted back by half the initial size.
	require.InDelta(t, 24, frame.InitialSize, 1e-9)
	require.InDelta(t, 30-10-12, frame.Start.X, 1e-9)
	require.InDelta(t, 8-5-12, frame.Start.Y, 1e-9)
}

func TestComputeFrameUnbounded(t *testing.T) {
	geom := Geometry{
		Frame: Rect{Width: 8, Height: 3},
		Event: Event{Trigger: TriggerMouse, Page: Point{X: 2, Y: 1}, Pointer: true},
	}

	frame := ComputeFrame(geom, true)

	// Unbounded splashes cap at the larger dimension and always start from
	// the rounded center, even for pointer presses.
	require.InDelta(t, 8, frame.MaxRadius, 1e-9)
	require.Equal(t, Point{X: 2, Y: -1}, frame.Start)
	require.Equal(t, Point{}, frame.End)
}

func TestFrameOnlyWhileVisible(t *testing.T) {
	m := New()
	_, ok := m.Frame()
	require.False(t, ok)

	pressed := true
	require.NotNil(t, m.Activate(Geometry{Frame: Rect{Width: 100, Height: 50}, Event: KeyEvent()}, &pressed))

	frame, ok := m.Frame()
	require.True(t, ok)
	require.Equal(t, Point{X: 20, Y: -5}, frame.Start)
}

func TestTouchEventFallsBackToOrigin(t *testing.T) {
	ev := TouchEvent(nil)
	require.True(t, ev.Pointer)
	require.Equal(t, Point{}, ev.Page)

	ev = TouchEvent([]Point{{X: 7, Y: 2}, {X: 9, Y: 9}})
	require.Equal(t, Point{X: 7, Y: 2}, ev.Page)
}

func TestFromZoneNilSafe(t *testing.T) {
	require.Equal(t, Rect{}, FromZone(nil))
}
