package snackbar

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// drain executes a command tree, collecting every produced message. Timer
// commands block until they fire, so tests only drain short fades and
// immediate re-signals.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, sub := range batch {
		msgs = append(msgs, drain(sub)...)
	}

	return msgs
}

func TestDefaults(t *testing.T) {
	toast := Toast("saved")
	require.Equal(t, 2750*time.Millisecond, toast.Timeout)
	require.Equal(t, 250*time.Millisecond, toast.Fade)
	require.False(t, toast.Multiline)
	require.True(t, toast.DismissOnAction)
	require.Empty(t, toast.Action)

	snack := Snack("undo that?", "UNDO")
	require.Equal(t, 2750*time.Millisecond, snack.Timeout)
	require.Equal(t, 250*time.Millisecond, snack.Fade)
	require.True(t, snack.Multiline)
	require.True(t, snack.DismissOnAction)
	require.Equal(t, "UNDO", snack.Action)
}

func TestAddDisplaysImmediatelyWhenIdle(t *testing.T) {
	m := New(WithID("sb"))

	cmd := m.Add(Toast("first"))
	require.NotNil(t, cmd, "promoting the head must schedule its timeout")
	require.Equal(t, PhaseActive, m.Phase())
	require.Equal(t, 1, m.Seq())

	current, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, "first", current.Message)
	require.Zero(t, m.Pending())
}

func TestQueueProgressionInArrivalOrder(t *testing.T) {
	m := New(WithID("sb"))

	require.NotNil(t, m.Add(Toast("A")))
	require.Nil(t, m.Add(Toast("B")), "a queued message must not schedule anything while another is shown")

	current, _ := m.Current()
	require.Equal(t, "A", current.Message)
	require.Equal(t, 1, m.Pending())

	// A's display timeout fires.
	m, fade := m.Update(SignalMsg{ID: "sb", Seq: m.Seq(), Signal: SignalTimeout})
	require.Equal(t, PhaseFading, m.Phase())
	require.NotNil(t, fade)

	current, _ = m.Current()
	require.Equal(t, "A", current.Message)

	// A's fade completes; the machine goes inert and immediately re-signals
	// to pull B in.
	m, resignal := m.Update(SignalMsg{ID: "sb", Seq: m.Seq(), Signal: SignalTimeout})
	require.NotNil(t, resignal)

	msgs := drain(resignal)
	require.Len(t, msgs, 1)

	m, _ = m.Update(msgs[0])
	require.Equal(t, PhaseActive, m.Phase())
	require.Equal(t, 2, m.Seq())

	current, _ = m.Current()
	require.Equal(t, "B", current.Message)
	require.Zero(t, m.Pending())
}

func TestStaleSequenceIsNoOp(t *testing.T) {
	m := New(WithID("sb"))
	require.NotNil(t, m.Add(Toast("live")))

	m, cmd := m.Update(SignalMsg{ID: "sb", Seq: m.Seq() - 1, Signal: SignalTimeout})
	require.Nil(t, cmd)
	require.Equal(t, PhaseActive, m.Phase(), "a superseded cycle's timer must not advance the machine")
}

func TestSignalsForOtherInstancesIgnored(t *testing.T) {
	m := New(WithID("sb"))
	require.NotNil(t, m.Add(Toast("live")))

	m, cmd := m.Update(SignalMsg{ID: "other", Seq: m.Seq(), Signal: SignalTimeout})
	require.Nil(t, cmd)
	require.Equal(t, PhaseActive, m.Phase())
}

func TestDismissViaActionFadesImmediately(t *testing.T) {
	calls := 0
	contents := Snack("deleted 3 drafts", "UNDO")
	contents.OnDismiss = func() tea.Msg {
		calls++

		return nil
	}

	m := New(WithID("sb"))
	require.NotNil(t, m.Add(contents))

	cmd := m.Dismiss(true)
	require.Equal(t, PhaseFading, m.Phase(), "dismiss must not wait for the display timeout")

	// The batch carries the fade timer and the callback; draining runs both.
	msgs := drain(cmd)
	require.Equal(t, 1, calls)
	require.Len(t, msgs, 2)

	// Dismissing again while fading must not re-run the callback.
	require.Nil(t, m.Dismiss(true))
	require.Equal(t, 1, calls)
}

func TestDismissHonorsDismissOnAction(t *testing.T) {
	calls := 0
	contents := Snack("sent", "OK")
	contents.DismissOnAction = false
	contents.OnDismiss = func() tea.Msg {
		calls++

		return nil
	}

	m := New(WithID("sb"))
	require.NotNil(t, m.Add(contents))

	// Via the action button: no transition, but the callback still runs.
	cmd := m.Dismiss(true)
	require.Equal(t, PhaseActive, m.Phase())
	drain(cmd)
	require.Equal(t, 1, calls)

	// An unconditional dismiss path always applies.
	m.Dismiss(false)
	require.Equal(t, PhaseFading, m.Phase())
}

func TestDismissWhileInertDoesNothing(t *testing.T) {
	m := New(WithID("sb"))
	require.Nil(t, m.Dismiss(false))
	require.Equal(t, PhaseInert, m.Phase())
}

func TestEnqueueAloneDisplaysNothing(t *testing.T) {
	m := New(WithID("sb"))
	m.Enqueue(Toast("later"))

	require.Equal(t, PhaseInert, m.Phase())
	require.Equal(t, 1, m.Pending())

	require.NotNil(t, m.TryDequeue())
	require.Equal(t, PhaseActive, m.Phase())
	require.Zero(t, m.Pending())
}

func TestLateTimeoutAfterEarlyDismissIsHarmless(t *testing.T) {
	m := New(WithID("sb"))
	require.NotNil(t, m.Add(Toast("A")))
	require.Nil(t, m.Add(Toast("B")))

	// A dismissed early; fade completes; B promoted under seq 2.
	m.Dismiss(false)
	m, resignal := m.Update(SignalMsg{ID: "sb", Seq: m.Seq(), Signal: SignalTimeout})
	m, _ = m.Update(drain(resignal)[0])

	current, _ := m.Current()
	require.Equal(t, "B", current.Message)
	require.Equal(t, 2, m.Seq())

	// A's original display timeout finally fires under seq 1.
	m, cmd := m.Update(SignalMsg{ID: "sb", Seq: 1, Signal: SignalTimeout})
	require.Nil(t, cmd)

	current, _ = m.Current()
	require.Equal(t, "B", current.Message, "B must keep its full display window")
}

func TestViewRendersOnlyWhenVisible(t *testing.T) {
	m := New(WithID("sb"))
	m.SetWidth(40)
	require.Empty(t, m.View())

	require.NotNil(t, m.Add(Snack("two lines of text that should wrap nicely", "OK")))
	view := m.View()
	require.NotEmpty(t, view)
	require.Contains(t, view, "OK")
}
