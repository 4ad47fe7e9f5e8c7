package gallery

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/paper-kit/paper/theme"
)

type statusBarModel struct {
	width       int
	statusMsg   string
	statusError bool
	activeTab   tabView
	lastNotice  time.Time
	version     string
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version, activeTab: tabButtons}
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case noticePostedMsg:
		m.lastNotice = msg.record.PostedOn
	case contentSizeMsg:
		m.width = msg.width
	}

	return m, nil
}

func (m statusBarModel) View() string {
	args := []string{
		theme.StatusTitle.Render("paper"),
		theme.StatusVersion.Render(m.version),
		theme.StatusHelp.Render(fmt.Sprintf("%s %s", defaultKeyMap.help.Help().Key, defaultKeyMap.help.Help().Desc)),
		m.status(),
	}

	if !m.lastNotice.IsZero() {
		args = append(args, theme.StatusVersion.Render("last notice "+humanize.Time(m.lastNotice)))
	}

	return lipgloss.NewStyle().Width(m.width).Background(theme.Surface).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return theme.StatusError.Render(m.statusMsg)
		}

		return theme.StatusMessage.Render(m.statusMsg)
	}

	return theme.StatusMessage.Render(m.activeTab.String())
}
