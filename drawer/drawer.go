// Package drawer provides a side navigation panel. The panel opens and
// closes instantly; sliding animations are a host concern, not modelled here.
package drawer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/paper-kit/paper/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// Item is one drawer entry.
type Item struct {
	Label string
	Icon  string
}

// ItemMsg is emitted when an entry is chosen.
type ItemMsg struct {
	ID    string
	Index int
	Label string
}

type keyMap struct {
	prev   key.Binding
	next   key.Binding
	choose key.Binding
	close  key.Binding
}

var defaultKeyMap = keyMap{
	prev:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous")),
	next:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next")),
	choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// Model is a drawer instance.
type Model struct {
	id     string
	title  string
	items  []Item
	cursor int
	open   bool
	scrim  bool
	width  int
	height int
}

// Option configures a Model during New.
type Option func(*Model)

// WithScrim asks hosts to dim the content behind the open drawer.
func WithScrim() Option {
	return func(m *Model) { m.scrim = true }
}

// WithWidth fixes the rendered panel width.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// New returns a closed drawer.
func New(title string, items []Item, opts ...Option) Model {
	model := Model{
		id:    zone.NewPrefix(),
		title: title,
		items: items,
		width: 24,
	}

	for _, opt := range opts {
		opt(&model)
	}

	return model
}

// ID returns the instance identity.
func (m Model) ID() string { return m.id }

// Open reports whether the panel is shown.
func (m Model) Open() bool { return m.open }

// Scrim reports whether hosts should dim the content behind the open panel.
func (m Model) Scrim() bool { return m.scrim && m.open }

// Items returns the drawer entries.
func (m Model) Items() []Item { return m.items }

// Cursor returns the highlighted entry index.
func (m Model) Cursor() int { return m.cursor }

// SetHeight fixes the rendered panel height.
func (m *Model) SetHeight(height int) { m.height = height }

// Show opens the panel.
func (m *Model) Show() { m.open = true }

// Hide closes the panel.
func (m *Model) Hide() { m.open = false }

// Toggle flips the panel open or closed.
func (m *Model) Toggle() { m.open = !m.open }

// Update consumes key navigation while open and mouse clicks on the marked
// entries.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.prev):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.items) - 1
			}
		case key.Matches(msg, defaultKeyMap.next):
			m.cursor++
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
		case key.Matches(msg, defaultKeyMap.choose):
			if len(m.items) == 0 {
				return m, nil
			}

			m.open = false

			return m, chosen(m.id, m.cursor, m.items[m.cursor].Label)
		case key.Matches(msg, defaultKeyMap.close):
			m.open = false
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for i, item := range m.items {
			if !zone.Get(m.itemZone(i)).InBounds(msg) {
				continue
			}

			m.cursor = i
			m.open = false

			return m, chosen(m.id, i, item.Label)
		}
	}

	return m, nil
}

func (m Model) itemZone(index int) string {
	return m.id + m.items[index].Label
}

// InBounds reports whether a mouse event landed on the open panel. Hosts use
// it to tell panel clicks apart from scrim clicks.
func (m Model) InBounds(msg tea.MouseMsg) bool {
	if !m.open {
		return false
	}

	return zone.Get(m.id + "panel").InBounds(msg)
}

func chosen(id string, index int, label string) tea.Cmd {
	return func() tea.Msg {
		return ItemMsg{ID: id, Index: index, Label: label}
	}
}

// View renders the open panel, or nothing while closed.
func (m Model) View() string {
	if !m.open {
		return ""
	}

	rows := make([]string, 0, len(m.items)+1)
	rows = append(rows, theme.DrawerTitle.Render(m.title))

	for i, item := range m.items {
		style := theme.DrawerItem
		if i == m.cursor {
			style = theme.DrawerItemSelected
		}

		label := item.Label
		if item.Icon != "" {
			label = item.Icon + " " + label
		}

		rows = append(rows, zone.Mark(m.itemZone(i), style.Render(label)))
	}

	panel := theme.DrawerPanel.Width(m.width)
	if m.height > 0 {
		panel = panel.Height(m.height)
	}

	return zone.Mark(m.id+"panel", panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}
