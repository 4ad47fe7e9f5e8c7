package gallery

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paper-kit/paper/button"
	"github.com/paper-kit/paper/theme"
)

type buttonsPageModel struct {
	activeTab  tabView
	buttons    []button.Model
	focusIndex int
	presses    int
	width      int
}

func newButtonsPageModel() buttonsPageModel {
	buttons := []button.Model{
		button.New("OK"),
		button.New("Submit", button.WithVariant(button.VariantRaised)),
		button.New("✚", button.WithVariant(button.VariantIcon), button.WithUnboundedInk()),
		button.New("Disabled", button.WithVariant(button.VariantRaised)),
	}
	buttons[3].SetDisabled(true)
	buttons[0].Focus()

	return buttonsPageModel{activeTab: tabButtons, buttons: buttons}
}

func (m buttonsPageModel) active() bool {
	return m.activeTab == tabButtons
}

func (m buttonsPageModel) Update(msg tea.Msg) (buttonsPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg

		return m, nil
	case contentSizeMsg:
		m.width = msg.width

		return m, nil
	case button.PressMsg:
		for index := range m.buttons {
			if m.buttons[index].ID() == msg.ID {
				m.presses++

				return m, setStatusMessage("Pressed "+m.buttons[index].Label(), false)
			}
		}

		return m, nil
	case tea.KeyMsg:
		if !m.active() {
			return m, nil
		}
		switch {
		case key.Matches(msg, defaultKeyMap.prevWidget):
			m.moveFocus(-1)

			return m, nil
		case key.Matches(msg, defaultKeyMap.nextWidget):
			m.moveFocus(1)

			return m, nil
		}
	case tea.MouseMsg:
		if !m.active() {
			return m, nil
		}
	}

	return m.propagate(msg)
}

// moveFocus shifts keyboard focus between buttons, skipping disabled ones.
func (m *buttonsPageModel) moveFocus(delta int) {
	count := len(m.buttons)
	index := m.focusIndex
	for range count {
		index = (index + delta + count) % count
		if !m.buttons[index].Disabled() {
			break
		}
	}

	m.buttons[m.focusIndex].Blur()
	m.focusIndex = index
	m.buttons[m.focusIndex].Focus()
}

func (m buttonsPageModel) propagate(msg tea.Msg) (buttonsPageModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.buttons))
	for index := range m.buttons {
		m.buttons[index], cmds[index] = m.buttons[index].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m buttonsPageModel) View() string {
	var row []string
	for index := range m.buttons {
		row = append(row, m.buttons[index].View())
	}

	return theme.PageBody.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.PageTitle.Render("Buttons"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, row...),
		"",
		theme.DetailRow("Presses", strconv.Itoa(m.presses)),
		theme.DetailRow("Keys", "←/→ move focus, enter or space presses"),
	))
}
