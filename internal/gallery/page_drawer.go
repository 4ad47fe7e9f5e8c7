package gallery

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paper-kit/paper/button"
	"github.com/paper-kit/paper/drawer"
	"github.com/paper-kit/paper/theme"
)

type drawerPageModel struct {
	activeTab     tabView
	drawer        drawer.Model
	openButton    button.Model
	lastSelection string
	width         int
	height        int
}

func newDrawerPageModel() drawerPageModel {
	model := drawerPageModel{
		activeTab: tabButtons,
		drawer: drawer.New("Navigate", []drawer.Item{
			{Label: "Inbox", Icon: "✉"},
			{Label: "Starred", Icon: "★"},
			{Label: "Sent", Icon: "➤"},
			{Label: "Trash", Icon: "✗"},
		}, drawer.WithScrim()),
		openButton:    button.New("Open drawer", button.WithVariant(button.VariantRaised)),
		lastSelection: "none",
	}
	model.openButton.Focus()

	return model
}

func (m drawerPageModel) active() bool {
	return m.activeTab == tabDrawer
}

func (m drawerPageModel) Update(msg tea.Msg) (drawerPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg

		return m, nil
	case contentSizeMsg:
		m.width = msg.width
		m.height = msg.contentHeight
		m.drawer.SetHeight(msg.contentHeight - 4)

		return m, nil
	case button.PressMsg:
		if msg.ID == m.openButton.ID() {
			m.drawer.Show()
		}

		return m, nil
	case drawer.ItemMsg:
		if msg.ID == m.drawer.ID() {
			m.lastSelection = msg.Label

			return m, setStatusMessage("Navigate to "+msg.Label, false)
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active() {
			return m, nil
		}
		// The open drawer owns the keyboard until it closes.
		if m.drawer.Open() {
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)

			return m, cmd
		}
		var cmd tea.Cmd
		m.openButton, cmd = m.openButton.Update(msg)

		return m, cmd
	case tea.MouseMsg:
		if !m.active() {
			return m, nil
		}
		if m.drawer.Open() {
			onPanel := m.drawer.InBounds(msg)
			var cmd tea.Cmd
			m.drawer, cmd = m.drawer.Update(msg)
			if m.drawer.Open() && !onPanel && msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
				// A click that landed on the scrim closes without selecting.
				m.drawer.Hide()
			}

			return m, cmd
		}
	}

	return m.propagate(msg)
}

func (m drawerPageModel) propagate(msg tea.Msg) (drawerPageModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 2)
	m.openButton, cmds[0] = m.openButton.Update(msg)
	m.drawer, cmds[1] = m.drawer.Update(msg)

	return m, tea.Batch(cmds...)
}

func (m drawerPageModel) View() string {
	body := theme.PageBody.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.PageTitle.Render("Drawer"),
		"",
		m.openButton.View(),
		"",
		theme.DetailRow("Selected", m.lastSelection),
		theme.DetailRow("Keys", "enter opens, ↑/↓ move, esc closes"),
	))

	if !m.drawer.Open() {
		return body
	}

	if m.drawer.Scrim() {
		// The scrim swallows the page behind the panel.
		body = theme.HelpBox.Render(theme.DrawerScrim.Render("▒▒ esc or click away to close ▒▒"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.drawer.View(), body)
}
