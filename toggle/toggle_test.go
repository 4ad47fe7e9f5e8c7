package toggle

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

func TestFlip(t *testing.T) {
	model := New("Wi-Fi")
	require.False(t, model.Value())

	require.NotNil(t, model.Flip())
	require.True(t, model.Value())
	require.True(t, model.Ink().Visible())
}

func TestRunsUnboundedInk(t *testing.T) {
	model := New("Wi-Fi")
	require.True(t, model.Ink().Unbounded())
}

func TestKeyFlipRequiresFocus(t *testing.T) {
	model := New("Wi-Fi", WithOn())

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.True(t, model.Value())

	model.Focus()

	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.False(t, model.Value())
}

func TestDisabledIgnoresFlip(t *testing.T) {
	model := New("Wi-Fi")
	model.SetDisabled(true)

	require.Nil(t, model.Flip())
	require.False(t, model.Value())
}

func TestViewShowsPosition(t *testing.T) {
	model := New("Wi-Fi")
	require.Contains(t, model.View(), glyphOff)

	model.SetValue(true)
	require.Contains(t, model.View(), glyphOn)
	require.Contains(t, model.View(), "Wi-Fi")
}
