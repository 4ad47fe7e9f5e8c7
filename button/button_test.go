package button

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/paper-kit/paper/ink"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

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

func TestKeyboardPressCycle(t *testing.T) {
	model := New("Save")
	model.Focus()

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	classes := model.Ink().Classes()
	require.True(t, classes.Visible)
	require.True(t, classes.ForegroundDeactivation, "terminal presses release in the same frame")

	// The batch carries the press report alongside the animation-end signal;
	// draining waits out the minimum animation window.
	var sawPress bool

	for _, msg := range drain(cmd) {
		switch msg := msg.(type) {
		case PressMsg:
			require.Equal(t, model.ID(), msg.ID)

			sawPress = true
		case ink.AnimationEndMsg:
			model, _ = model.Update(msg)
		}
	}

	require.True(t, sawPress)
	require.False(t, model.Ink().Visible(), "the splash must end with its animation window")
}

func TestKeysIgnoredWithoutFocus(t *testing.T) {
	model := New("Save")

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, model.Ink().Visible())
}

func TestDisabledIgnoresInput(t *testing.T) {
	model := New("Save")
	model.SetDisabled(true)
	model.Focus()

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.False(t, model.Ink().Visible())
	require.Nil(t, model.Press())
}

func TestViewRendersLabelPerVariant(t *testing.T) {
	type tc struct {
		name    string
		variant Variant
	}

	cases := []tc{
		{name: "text", variant: VariantText},
		{name: "raised", variant: VariantRaised},
		{name: "icon", variant: VariantIcon},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			model := New("OK", WithVariant(testCase.variant))
			require.Contains(t, model.View(), "OK")
		})
	}
}

func TestUnboundedInkOption(t *testing.T) {
	model := New("*", WithVariant(VariantIcon), WithUnboundedInk())
	require.True(t, model.Ink().Unbounded())
}
