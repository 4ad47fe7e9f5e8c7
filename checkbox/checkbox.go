// Package checkbox provides a two-state selection control with ink press
// feedback.
package checkbox

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/paper-kit/paper/ink"
	"github.com/paper-kit/paper/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	glyphChecked   = "[x]"
	glyphUnchecked = "[ ]"
)

// ToggleMsg is emitted whenever the checked state flips.
type ToggleMsg struct {
	ID      string
	Checked bool
}

type keyMap struct {
	toggle key.Binding
}

var defaultKeyMap = keyMap{
	toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "toggle")),
}

// Model is a single checkbox instance.
type Model struct {
	ink      ink.Model
	label    string
	checked  bool
	disabled bool
}

// Option configures a Model during New.
type Option func(*Model)

// WithChecked starts the checkbox in its checked state.
func WithChecked() Option {
	return func(m *Model) { m.checked = true }
}

// New returns a checkbox with the given label.
func New(label string, opts ...Option) Model {
	model := Model{
		label: label,
		ink:   ink.New(),
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

// Value reports the checked state.
func (m Model) Value() bool { return m.checked }

// Disabled reports whether the control ignores input.
func (m Model) Disabled() bool { return m.disabled }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.ink.Focused() }

// Ink exposes the press-feedback machine state.
func (m Model) Ink() ink.Model { return m.ink }

// SetValue sets the checked state without press feedback or notification.
func (m *Model) SetValue(checked bool) { m.checked = checked }

// SetDisabled toggles input handling.
func (m *Model) SetDisabled(disabled bool) { m.disabled = disabled }

// Focus moves keyboard focus onto the control.
func (m *Model) Focus() { m.ink.Focus() }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.ink.Blur() }

// Toggle flips the checked state through a keyboard press cycle and reports
// the new value.
func (m *Model) Toggle() tea.Cmd {
	if m.disabled {
		return nil
	}

	frame := ink.FromZone(zone.Get(m.ink.ID()))
	cmd := m.ink.PressKey(frame)
	m.checked = !m.checked

	return tea.Batch(cmd, toggled(m.ink.ID(), m.checked))
}

// Update consumes key input while focused, mouse input over the marked
// control and the ink machine's animation signals.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.disabled || !m.ink.Focused() {
			return m, nil
		}

		if key.Matches(msg, defaultKeyMap.toggle) {
			cmd := m.Toggle()

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
		m.checked = !m.checked

		return tea.Batch(cmd, toggled(m.ink.ID(), m.checked))
	}

	return cmd
}

func toggled(id string, checked bool) tea.Cmd {
	return func() tea.Msg {
		return ToggleMsg{ID: id, Checked: checked}
	}
}

// View renders the glyph and label inside the control's hit-test zone.
func (m Model) View() string {
	glyph := glyphUnchecked
	glyphStyle := theme.ControlGlyph

	if m.checked {
		glyph = glyphChecked
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
