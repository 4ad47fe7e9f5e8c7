package ink

import (
	"os"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func pressedGeom(trigger Trigger) Geometry {
	ev := Event{Trigger: trigger}
	if trigger.pointerDriven() {
		ev.Pointer = true
		ev.Page = Point{X: 12, Y: 3}
	}

	return Geometry{
		Frame: Rect{X: 4, Y: 2, Width: 20, Height: 3},
		Event: ev,
	}
}

func TestActivateStartsSingleAnimatingPeriod(t *testing.T) {
	m := New(WithID("surface"))
	pressed := true

	cmd := m.Activate(pressedGeom(TriggerMouse), &pressed)
	require.NotNil(t, cmd)
	require.True(t, m.Active())
	require.True(t, m.Animating())
	require.Equal(t, 1, m.Token())

	// Only the matching token may end the period.
	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerMouse, Token: 0})
	require.True(t, m.Animating())

	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerMouse, Token: 1})
	require.False(t, m.Animating())
}

func TestActivateWhileVisibleIsNoOp(t *testing.T) {
	m := New(WithID("surface"))
	pressed := true

	first := pressedGeom(TriggerTouch)
	require.NotNil(t, m.Activate(first, &pressed))

	// A synthetic mouse press trailing the touch start must change nothing.
	replay := pressedGeom(TriggerMouse)
	cmd := m.Activate(replay, &pressed)
	require.Nil(t, cmd, "re-entrant activation must not schedule a second timer")
	require.Equal(t, 1, m.Token())
	require.Equal(t, first, m.Geometry())
}

func TestDeactivateRequiresCounterpartTrigger(t *testing.T) {
	cases := []struct {
		name       string
		activated  Trigger
		deactivate Trigger
		cleared    bool
	}{
		{name: "mouse press mouse release", activated: TriggerMouse, deactivate: TriggerMouse, cleared: true},
		{name: "key press mouse release", activated: TriggerKey, deactivate: TriggerMouse, cleared: false},
		{name: "key press key release", activated: TriggerKey, deactivate: TriggerKey, cleared: true},
		{name: "touch start pointer up", activated: TriggerTouch, deactivate: TriggerPointer, cleared: false},
		{name: "pointer down pointer up", activated: TriggerPointer, deactivate: TriggerPointer, cleared: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New()
			pressed := true
			require.NotNil(t, m.Activate(pressedGeom(tc.activated), &pressed))

			m.Deactivate(tc.deactivate)
			require.Equal(t, !tc.cleared, m.Active())
		})
	}
}

func TestStaleTimerAfterReactivation(t *testing.T) {
	m := New(WithID("surface"))
	pressed := true

	require.NotNil(t, m.Activate(pressedGeom(TriggerMouse), &pressed))
	m.Deactivate(TriggerMouse)
	firstToken := m.Token()

	// End the first period so a fresh press can start, then start one.
	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerMouse, Token: firstToken})
	require.NotNil(t, m.Activate(pressedGeom(TriggerKey), &pressed))
	require.Equal(t, firstToken+1, m.Token())

	// The first press's timer finally fires; it belongs to a dead generation.
	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerMouse, Token: firstToken})
	require.True(t, m.Animating(), "stale timer must not end the new activation")

	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerKey, Token: m.Token()})
	require.False(t, m.Animating())
}

func TestUpdateIgnoresOtherInstances(t *testing.T) {
	m := New(WithID("a"))
	pressed := true
	require.NotNil(t, m.Activate(pressedGeom(TriggerMouse), &pressed))

	m, _ = m.Update(AnimationEndMsg{ID: "b", Trigger: TriggerMouse, Token: m.Token()})
	require.True(t, m.Animating())
}

func TestScheduledCommandCarriesGeneration(t *testing.T) {
	m := New(WithID("surface"))
	pressed := true
	cmd := m.Activate(pressedGeom(TriggerMouse), &pressed)
	require.NotNil(t, cmd)

	// Executing the command waits out the animation window and yields the
	// exact message Update expects.
	msg := cmd()
	end, ok := msg.(AnimationEndMsg)
	require.True(t, ok)
	require.Equal(t, AnimationEndMsg{ID: "surface", Trigger: TriggerMouse, Token: 1}, end)

	m, _ = m.Update(end)
	require.False(t, m.Animating())
}

func TestPressKeyFlashesThroughAnimationWindow(t *testing.T) {
	m := New(WithID("surface"))

	cmd := m.PressKey(Rect{Width: 10, Height: 1})
	require.NotNil(t, cmd)

	// The press released immediately, but the minimum window keeps the ink
	// visible and marks the foreground as deactivating.
	require.False(t, m.Active())
	require.True(t, m.Visible())
	require.True(t, m.Classes().ForegroundDeactivation)
	require.False(t, m.Classes().ForegroundActivation)

	m, _ = m.Update(AnimationEndMsg{ID: "surface", Trigger: TriggerKey, Token: 1})
	require.False(t, m.Visible())
	require.False(t, m.Classes().ForegroundDeactivation)
}

func TestFocusBlurHaveNoAnimationSideEffects(t *testing.T) {
	m := New()

	m.Focus()
	require.True(t, m.Focused())
	require.False(t, m.Visible())
	require.Equal(t, 0, m.Token())

	m.Blur()
	require.False(t, m.Focused())
}

func TestClassesMirrorPhases(t *testing.T) {
	m := New(WithUnbounded())
	require.Equal(t, Classes{Unbounded: true}, m.Classes())

	pressed := true
	require.NotNil(t, m.Activate(pressedGeom(TriggerMouse), &pressed))
	require.Equal(t, Classes{
		Visible:              true,
		Unbounded:            true,
		BackgroundActive:     true,
		ForegroundActivation: true,
	}, m.Classes())

	m.Deactivate(TriggerMouse)
	require.Equal(t, Classes{
		Visible:                true,
		Unbounded:              true,
		ForegroundDeactivation: true,
	}, m.Classes())
}
