package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paper-kit/paper/checkbox"
	"github.com/paper-kit/paper/radio"
	"github.com/paper-kit/paper/theme"
	"github.com/paper-kit/paper/toggle"
)

const (
	focusWifi = iota
	focusBluetooth
	focusDensity
	focusDarkMode
	focusCount
)

type selectionPageModel struct {
	activeTab  tabView
	wifi       checkbox.Model
	bluetooth  checkbox.Model
	density    radio.Model
	darkMode   toggle.Model
	focusIndex int
	width      int
}

func newSelectionPageModel() selectionPageModel {
	model := selectionPageModel{
		activeTab: tabButtons,
		wifi:      checkbox.New("Wi-Fi", checkbox.WithChecked()),
		bluetooth: checkbox.New("Bluetooth"),
		density:   radio.New([]string{"Comfortable", "Cozy", "Compact"}),
		darkMode:  toggle.New("Dark mode", toggle.WithOn()),
	}
	model.wifi.Focus()

	return model
}

func (m selectionPageModel) active() bool {
	return m.activeTab == tabSelection
}

func (m selectionPageModel) Update(msg tea.Msg) (selectionPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg

		return m, nil
	case contentSizeMsg:
		m.width = msg.width

		return m, nil
	case checkbox.ToggleMsg:
		if status := m.checkboxStatus(msg); status != "" {
			return m, setStatusMessage(status, false)
		}

		return m, nil
	case radio.SelectMsg:
		if msg.ID == m.density.ID() {
			return m, setStatusMessage("Density: "+msg.Value, false)
		}

		return m, nil
	case toggle.ToggleMsg:
		if msg.ID == m.darkMode.ID() {
			if msg.On {
				return m, setStatusMessage("Dark mode on", false)
			}

			return m, setStatusMessage("Dark mode off", false)
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

func (m selectionPageModel) checkboxStatus(msg checkbox.ToggleMsg) string {
	var label string
	switch msg.ID {
	case m.wifi.ID():
		label = m.wifi.Label()
	case m.bluetooth.ID():
		label = m.bluetooth.Label()
	default:
		return ""
	}

	if msg.Checked {
		return label + " enabled"
	}

	return label + " disabled"
}

func (m *selectionPageModel) moveFocus(delta int) {
	m.wifi.Blur()
	m.bluetooth.Blur()
	m.density.Blur()
	m.darkMode.Blur()

	m.focusIndex = (m.focusIndex + delta + focusCount) % focusCount
	switch m.focusIndex {
	case focusWifi:
		m.wifi.Focus()
	case focusBluetooth:
		m.bluetooth.Focus()
	case focusDensity:
		m.density.Focus()
	case focusDarkMode:
		m.darkMode.Focus()
	}
}

func (m selectionPageModel) propagate(msg tea.Msg) (selectionPageModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 4)
	m.wifi, cmds[0] = m.wifi.Update(msg)
	m.bluetooth, cmds[1] = m.bluetooth.Update(msg)
	m.density, cmds[2] = m.density.Update(msg)
	m.darkMode, cmds[3] = m.darkMode.Update(msg)

	return m, tea.Batch(cmds...)
}

func (m selectionPageModel) View() string {
	return theme.PageBody.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.PageTitle.Render("Selection controls"),
		"",
		m.wifi.View(),
		m.bluetooth.View(),
		"",
		theme.PageTitle.Render("Density"),
		m.density.View(),
		"",
		m.darkMode.View(),
		"",
		theme.DetailRow("Keys", "←/→ move focus, ↑/↓ pick density, enter toggles"),
	))
}
