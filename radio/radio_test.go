package radio

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func options() []string {
	return []string{"Toast", "Snack", "Custom"}
}

func TestSelectIsExclusive(t *testing.T) {
	model := New(options())
	require.Equal(t, 0, model.Selected())

	require.NotNil(t, model.Select(2))
	require.Equal(t, 2, model.Selected())
	require.Equal(t, "Custom", model.Value())

	require.True(t, model.Ink(2).Visible())
	require.False(t, model.Ink(0).Visible(), "pressing one option must not splash another")
}

func TestReselectSplashesWithoutReporting(t *testing.T) {
	model := New(options(), WithSelected(1))

	cmd := model.Select(1)
	require.NotNil(t, cmd, "press feedback still runs")
	require.Equal(t, 1, model.Selected())

	// A plain press cycle schedules exactly one follow-up signal; a changed
	// selection would batch a report alongside it.
	msg := cmd()
	_, isBatch := msg.(tea.BatchMsg)
	require.False(t, isBatch)
}

func TestCursorWrapsWithKeys(t *testing.T) {
	model := New(options())
	model.Focus()

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 2, model.Selected(), "the cursor wraps from the first option to the last")
}

func TestOutOfRangeSelectIgnored(t *testing.T) {
	model := New(options())
	require.Nil(t, model.Select(-1))
	require.Nil(t, model.Select(3))
	require.Equal(t, 0, model.Selected())
}

func TestDisabledIgnoresInput(t *testing.T) {
	model := New(options())
	model.SetDisabled(true)
	model.Focus()

	require.Nil(t, model.Select(1))

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	require.Equal(t, 0, model.Selected())
}

func TestViewMarksSelection(t *testing.T) {
	model := New(options(), WithSelected(1))
	view := model.View()

	require.Contains(t, view, glyphSelected)
	require.Contains(t, view, "Snack")
	require.Contains(t, view, glyphUnselected)
}
