// Package toggle provides an on/off switch. Its press feedback runs an
// unbounded ink surface, the variant meant for small square controls where
// the splash overflows the glyph.
package toggle

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/paper-kit/paper/ink"
	"github.com/paper-kit/paper/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	glyphOn  = "──●"
	glyphOff = "●──"
)

// ToggleMsg is emitted whenever the switch flips.
type ToggleMsg struct {
	ID string
	On bool
}

type keyMap struct {
	flip key.Binding
}

var defaultKeyMap = keyMap{
	flip: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "flip")),
}

// Model is a single switch instance.
type Model struct {
	ink      ink.Model
	label    string
	on       bool
	disabled bool
}

// Option configures a Model during New.
type Option func(*Model)

// WithOn starts the switch in its on position.
func WithOn() Option {
	return func(m *Model) { m.on = true }
}

// New returns a switch with the given label.
func New(label string, opts ...Option) Model {
	model := Model{
		label: label,
		ink:   ink.New(ink.WithUnbounded()),
	}

	for _, opt := range opts {
		opt(&model)
	}

	return model
}

// ID returns the instance identity shared with the underlying ink surface.
func (m Model) ID() string { return m.ink.ID() }

// Label returns the rendered label text.
func (m Model) Label() string { return m.label }

// Value reports the switch position.
func (m Model) Value() bool { return m.on }

// Disabled reports whether the control ignores input.
func (m Model) Disabled() bool { return m.disabled }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.ink.Focused() }

// Ink exposes the press-feedback machine state.
func (m Model) Ink() ink.Model { return m.ink }

// SetValue sets the switch position without press feedback or notification.
func (m *Model) SetValue(on bool) { m.on = on }

// SetDisabled toggles input handling.
func (m *Model) SetDisabled(disabled bool) { m.disabled = disabled }

// Focus moves keyboard focus onto the control.
func (m *Model) Focus() { m.ink.Focus() }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.ink.Blur() }

// Flip inverts the switch through a keyboard press cycle and reports the new
// position.
func (m *Model) Flip() tea.Cmd {
	if m.disabled {
		return nil
	}

	frame := ink.FromZone(zone.Get(m.ink.ID()))
	cmd := m.ink.PressKey(frame)
	m.on = !m.on

	return tea.Batch(cmd, flipped(m.ink.ID(), m.on))
}

// Update consumes key input while focused, mouse input over the marked
// control and the ink machine's animation signals.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.disabled || !m.ink.Focused() {
			return m, nil
		}

		if key.Matches(msg, defaultKeyMap.flip) {
			cmd := m.Flip()

			return m, cmd
		}
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)

		return m, cmd
	case ink.AnimationEndMsg:
		var cmd tea.Cmd
		m.ink, cmd = m.ink.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.disabled {
		return nil
	}

	cmd := m.ink.HandleMouse(msg)

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
		zone.Get(m.ink.ID()).InBounds(msg) {
		m.on = !m.on

		return tea.Batch(cmd, flipped(m.ink.ID(), m.on))
	}

	return cmd
}

func flipped(id string, on bool) tea.Cmd {
	return func() tea.Msg {
		return ToggleMsg{ID: id, On: on}
	}
}

// View renders the track glyph and label inside the control's hit-test zone.
func (m Model) View() string {
	glyph := glyphOff
	glyphStyle := theme.ControlGlyph

	if m.on {
		glyph = glyphOn
		glyphStyle = theme.ControlGlyphChecked
	}

	labelStyle := theme.ControlLabel
	classes := m.ink.Classes()

	switch {
	case m.disabled:
		glyphStyle = theme.ControlDisabled
		labelStyle = theme.ControlDisabled
	case classes.Visible:
		glyphStyle = theme.ControlSplash
	case classes.Focused:
		labelStyle = theme.ControlLabelFocused
	}

	return m.ink.Mark(lipgloss.JoinHorizontal(lipgloss.Top,
		glyphStyle.Render(glyph), " ", labelStyle.Render(m.label)))
}
