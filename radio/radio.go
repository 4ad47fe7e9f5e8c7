// Package radio provides an exclusive-selection group. Every option carries
// its own independent ink surface, so pressing one never disturbs the press
// feedback of another.
package radio

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/paper-kit/paper/ink"
	"github.com/paper-kit/paper/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	glyphSelected   = "(*)"
	glyphUnselected = "( )"
)

// SelectMsg is emitted when the selected option changes.
type SelectMsg struct {
	ID    string
	Index int
	Value string
}

type keyMap struct {
	prev   key.Binding
	next   key.Binding
	choose key.Binding
}

var defaultKeyMap = keyMap{
	prev:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous")),
	next:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
	choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
}

// Model is a radio group.
type Model struct {
	id       string
	inks     []ink.Model
	options  []string
	selected int
	cursor   int
	focused  bool
	disabled bool
}

// Option configures a Model during New.
type Option func(*Model)

// WithSelected starts the group with the given option selected.
func WithSelected(index int) Option {
	return func(m *Model) {
		if index >= 0 && index < len(m.options) {
			m.selected = index
			m.cursor = index
		}
	}
}

// New returns a radio group over the given option labels. The first option
// starts selected.
func New(options []string, opts ...Option) Model {
	inks := make([]ink.Model, len(options))
	for i := range options {
		inks[i] = ink.New()
	}

	model := Model{
		id:      zone.NewPrefix(),
		inks:    inks,
		options: options,
	}

	for _, opt := range opts {
		opt(&model)
	}

	return model
}

// ID returns the group identity.
func (m Model) ID() string { return m.id }

// Options returns the option labels.
func (m Model) Options() []string { return m.options }

// Selected returns the selected option index.
func (m Model) Selected() int { return m.selected }

// Value returns the selected option label.
func (m Model) Value() string {
	if len(m.options) == 0 {
		return ""
	}

	return m.options[m.selected]
}

// Focused reports keyboard focus on the group.
func (m Model) Focused() bool { return m.focused }

// Disabled reports whether the group ignores input.
func (m Model) Disabled() bool { return m.disabled }

// Ink exposes the press-feedback machine of one option.
func (m Model) Ink(index int) ink.Model {
	if index < 0 || index >= len(m.inks) {
		return ink.Model{}
	}

	return m.inks[index]
}

// SetSelected sets the selection without press feedback or notification.
func (m *Model) SetSelected(index int) {
	if index >= 0 && index < len(m.options) {
		m.selected = index
		m.cursor = index
	}
}

// SetDisabled toggles input handling.
func (m *Model) SetDisabled(disabled bool) { m.disabled = disabled }

// Focus moves keyboard focus onto the group.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Select chooses an option through a keyboard press cycle on its surface.
// Choosing the already selected option still splashes but reports nothing.
func (m *Model) Select(index int) tea.Cmd {
	if m.disabled || index < 0 || index >= len(m.options) {
		return nil
	}

	frame := ink.FromZone(zone.Get(m.inks[index].ID()))
	cmd := m.inks[index].PressKey(frame)
	m.cursor = index

	if index == m.selected {
		return cmd
	}

	m.selected = index

	return tea.Batch(cmd, selected(m.id, index, m.options[index]))
}

// Update consumes key input while focused, mouse input over the option zones
// and the animation signals of every option surface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.disabled || !m.focused || len(m.options) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, defaultKeyMap.prev):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.options) - 1
			}
		case key.Matches(msg, defaultKeyMap.next):
			m.cursor++
			if m.cursor >= len(m.options) {
				m.cursor = 0
			}
		case key.Matches(msg, defaultKeyMap.choose):
			cmd := m.Select(m.cursor)

			return m, cmd
		}
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)

		return m, cmd
	case ink.AnimationEndMsg:
		var cmds []tea.Cmd

		for i := range m.inks {
			var cmd tea.Cmd
			m.inks[i], cmd = m.inks[i].Update(msg)
			cmds = append(cmds, cmd) //nolint:makezero
		}

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.disabled {
		return nil
	}

	var cmds []tea.Cmd

	for i := range m.inks {
		cmds = append(cmds, m.inks[i].HandleMouse(msg)) //nolint:makezero
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for i := range m.inks {
			if !zone.Get(m.inks[i].ID()).InBounds(msg) {
				continue
			}

			m.cursor = i

			if i != m.selected {
				m.selected = i
				cmds = append(cmds, selected(m.id, i, m.options[i]))
			}

			break
		}
	}

	return tea.Batch(cmds...)
}

func selected(id string, index int, value string) tea.Cmd {
	return func() tea.Msg {
		return SelectMsg{ID: id, Index: index, Value: value}
	}
}

// View renders the options vertically, each inside its own hit-test zone.
func (m Model) View() string {
	rows := make([]string, 0, len(m.options))

	for i, label := range m.options {
		glyph := glyphUnselected
		glyphStyle := theme.ControlGlyph

		if i == m.selected {
			glyph = glyphSelected
			glyphStyle = theme.ControlGlyphChecked
		}

		labelStyle := theme.ControlLabel
		classes := m.inks[i].Classes()

		switch {
		case m.disabled:
			glyphStyle = theme.ControlDisabled
			labelStyle = theme.ControlDisabled
		case classes.Visible:
			glyphStyle = theme.ControlSplash
		case m.focused && i == m.cursor:
			labelStyle = theme.ControlLabelFocused
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			glyphStyle.Render(glyph), " ", labelStyle.Render(label))
		rows = append(rows, m.inks[i].Mark(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
