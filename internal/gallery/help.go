package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paper-kit/paper/internal/config"
	"github.com/paper-kit/paper/theme"
)

func newHelpModel(buildVersion string, buildDate string, buildCommit string) helpModel {
	return helpModel{
		configPath:   config.Path(config.DefaultConfigName + ".yaml"),
		dbPath:       config.Path(config.DefaultDBName),
		logPath:      config.LogPath(),
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	view         contentView
	configPath   string
	dbPath       string
	logPath      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Update(msg tea.Msg) (helpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, defaultKeyMap.back):
			// go back to main view
			if m.view == viewHelp {
				m.view = viewMain

				return m, setContentView(viewMain)
			}
		}
	case config.Config:
		if msg.DBPath != "" {
			m.dbPath = msg.DBPath
		}
	case contentView:
		m.view = msg
	}

	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.help,
			defaultKeyMap.quit,
			defaultKeyMap.back,
			defaultKeyMap.accept,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.buttons,
			defaultKeyMap.selection,
			defaultKeyMap.drawer,
			defaultKeyMap.playground,
			defaultKeyMap.activity,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.nextTab,
			defaultKeyMap.prevTab,
			defaultKeyMap.prevWidget,
			defaultKeyMap.nextWidget,
			defaultKeyMap.up,
			defaultKeyMap.down,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.HelpBox.Render(left), theme.HelpBox.Render(middle), theme.HelpBox.Render(right))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		theme.DetailRow("Version", m.buildVersion),
		theme.DetailRow("Commit", commit),
		theme.DetailRow("Date", m.buildDate),
		theme.DetailRow("Config Path", m.configPath),
		theme.DetailRow("DB Path", m.dbPath),
		theme.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
