package gallery

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/paper-kit/paper/internal/logfeed"
	"github.com/paper-kit/paper/theme"
)

// maxLogEntries bounds the tail kept in memory. The file keeps everything.
const maxLogEntries = 500

func renderEntry(entry logfeed.Entry, width int) string {
	stamp := " --:--:-- "
	if !entry.Time.IsZero() {
		stamp = " " + entry.Time.Format(time.TimeOnly) + " "
	}
	timeStamp := theme.LogTime.Render(stamp)

	var level lipgloss.Style
	switch {
	case entry.Level >= slog.LevelError:
		level = theme.LogError
	case entry.Level >= slog.LevelWarn:
		level = theme.LogWarn
	case entry.Level >= slog.LevelInfo:
		level = theme.LogInfo
	default:
		level = theme.LogDebug
	}

	body := entry.Message
	if entry.Attrs != "" {
		body += " " + entry.Attrs
	}
	body = " " + strings.TrimSpace(wordwrap.String(body, width-lipgloss.Width(timeStamp)-2)) + " "

	return lipgloss.JoinHorizontal(lipgloss.Top, timeStamp, level.Render(body))
}

type activityPageModel struct {
	activeTab tabView
	viewPort  viewport.Model
	entries   []logfeed.Entry
	rendered  string
	width     int
}

func newActivityPageModel() *activityPageModel {
	return &activityPageModel{
		activeTab: tabButtons,
		viewPort:  viewport.New(10, 20),
	}
}

func (m *activityPageModel) active() bool {
	return m.activeTab == tabActivity
}

func (m *activityPageModel) Update(msg tea.Msg) (*activityPageModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.active() {
		m.viewPort, cmd = m.viewPort.Update(msg)
	}

	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg
	case contentSizeMsg:
		m.width = msg.width
		m.viewPort.Width = msg.width
		m.rerender()
	case logfeed.Entry:
		m.entries = append(m.entries, msg)
		if len(m.entries) > maxLogEntries {
			m.entries = m.entries[len(m.entries)-maxLogEntries:]
			m.rerender()
		} else {
			m.rendered += "\n" + renderEntry(msg, m.wrapWidth())
		}
	}

	return m, cmd
}

// wrapWidth keeps log lines readable on both tiny and very wide terminals.
func (m *activityPageModel) wrapWidth() int {
	return clamp(m.width-10, 20, 200)
}

func (m *activityPageModel) rerender() {
	rows := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		rows = append(rows, renderEntry(entry, m.wrapWidth()))
	}
	m.rendered = strings.Join(rows, "\n")
}

func (m *activityPageModel) Render(height int) string {
	title := theme.PageTitle.Render(fmt.Sprintf("Activity log: %d entries", len(m.entries)))

	content := m.rendered
	if content == "" {
		content = "<<< Start of activity log >>>\n"
	}

	m.viewPort.Height = height - lipgloss.Height(title)
	wasBottom := m.viewPort.AtBottom()

	m.viewPort.SetContent(content)
	if wasBottom {
		m.viewPort.GotoBottom()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewPort.View())
}
