// Package button provides a pressable labelled surface backed by an ink
// press-feedback machine.
package button

import (
	"github.com/charmbracelet/bubbles/key"
	zone "github.com/lrstanley/bubblezone"
	"github.com/paper-kit/paper/ink"
	"github.com/paper-kit/paper/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the rendered button treatment.
type Variant int

const (
	// VariantText is a flat label that highlights on interaction.
	VariantText Variant = iota
	// VariantRaised carries a filled background.
	VariantRaised
	// VariantIcon is a compact glyph without label padding.
	VariantIcon
)

// PressMsg is emitted after a completed press, whether by keyboard or by a
// mouse release over the button.
type PressMsg struct {
	ID string
}

type keyMap struct {
	press key.Binding
}

var defaultKeyMap = keyMap{
	press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
}

// Model is a single button instance.
type Model struct {
	ink      ink.Model
	label    string
	variant  Variant
	disabled bool
}

// Option configures a Model during New.
type Option func(*Model)

// WithVariant selects the rendered treatment.
func WithVariant(variant Variant) Option {
	return func(m *Model) { m.variant = variant }
}

// WithUnboundedInk lets the press feedback overflow the label bounds. Mostly
// useful together with VariantIcon.
func WithUnboundedInk() Option {
	return func(m *Model) { m.ink = ink.New(ink.WithUnbounded()) }
}

// New returns an idle button.
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

// Disabled reports whether the button ignores input.
func (m Model) Disabled() bool { return m.disabled }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.ink.Focused() }

// Ink exposes the press-feedback machine state, mostly for hosts that render
// their own splash treatment.
func (m Model) Ink() ink.Model { return m.ink }

// SetLabel replaces the label text.
func (m *Model) SetLabel(label string) { m.label = label }

// SetDisabled toggles input handling.
func (m *Model) SetDisabled(disabled bool) { m.disabled = disabled }

// Focus moves keyboard focus onto the button.
func (m *Model) Focus() { m.ink.Focus() }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.ink.Blur() }

// Press runs a full keyboard press cycle and reports the press. Terminals
// deliver no key release, so activation and its counterpart deactivation are
// applied back to back; the minimum animation window keeps the feedback
// visible.
func (m *Model) Press() tea.Cmd {
	if m.disabled {
		return nil
	}

	frame := ink.FromZone(zone.Get(m.ink.ID()))

	return tea.Batch(m.ink.PressKey(frame), press(m.ink.ID()))
}

// Update consumes key input while focused, mouse input over the marked
// surface and the ink machine's animation signals.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.disabled || !m.ink.Focused() {
			return m, nil
		}

		if key.Matches(msg, defaultKeyMap.press) {
			cmd := m.Press()

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
		return tea.Batch(cmd, press(m.ink.ID()))
	}

	return cmd
}

func press(id string) tea.Cmd {
	return func() tea.Msg {
		return PressMsg{ID: id}
	}
}

func (m Model) style() lipgloss.Style {
	classes := m.ink.Classes()

	var style lipgloss.Style

	switch {
	case m.disabled:
		style = theme.ButtonDisabled
	case m.variant == VariantRaised && classes.Visible:
		style = theme.ButtonRaisedPressed
	case m.variant == VariantRaised && classes.Focused:
		style = theme.ButtonRaisedFocused
	case m.variant == VariantRaised:
		style = theme.ButtonRaised
	case classes.Visible:
		style = theme.ButtonTextPressed
	case classes.Focused:
		style = theme.ButtonTextFocused
	default:
		style = theme.ButtonText
	}

	if m.variant == VariantIcon {
		style = style.Padding(0)
	}

	return style
}

// View renders the button inside its hit-test zone.
func (m Model) View() string {
	return m.ink.Mark(m.style().Render(m.label))
}
