package gallery

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/paper-kit/paper/ink"
	"github.com/paper-kit/paper/internal/config"
	"github.com/paper-kit/paper/internal/logfeed"
	"github.com/paper-kit/paper/snackbar"
	"github.com/paper-kit/paper/theme"
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	currentView  contentView
	previousView contentView
	height       int
	width        int
	activeTab    tabView

	buttonsModel    buttonsPageModel
	selectionModel  selectionPageModel
	drawerModel     drawerPageModel
	playgroundModel playgroundModel
	activityModel   *activityPageModel
	helpModel       helpModel
	tabsModel       tabsModel
	statusModel     statusBarModel

	userConfig        config.Config
	sawConfig         bool
	headerHeight      int
	footerHeight      int
	parentContextChan chan any
}

func newRootModel(userConfig config.Config, buildVersion string, buildDate string, buildCommit string, parentChan chan any) *rootModel {
	return &rootModel{
		parentContextChan: parentChan,
		currentView:       viewMain,
		previousView:      viewMain,
		activeTab:         tabButtons,
		buttonsModel:      newButtonsPageModel(),
		selectionModel:    newSelectionPageModel(),
		drawerModel:       newDrawerPageModel(),
		playgroundModel:   newPlaygroundModel(),
		activityModel:     newActivityPageModel(),
		helpModel:         newHelpModel(buildVersion, buildDate, buildCommit),
		tabsModel:         newTabsModel(),
		statusModel:       newStatusBarModel(buildVersion),
		userConfig:        userConfig,
		headerHeight:      1,
		footerHeight:      1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("paper-gallery"),
		func() tea.Msg { return m.userConfig },
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		// Settings can land before the first size message and must not be lost.
		switch inMsg.(type) {
		case tea.WindowSizeMsg, config.Config:
		default:
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		contentHeight := m.height - m.headerHeight - m.footerHeight

		return m, setContentSize(m.width, m.height, contentHeight)
	case tabView:
		m.activeTab = msg
	case noticePostedMsg:
		m.forward(msg.record)
	case noticeDismissedMsg:
		m.forward(msg.record)
	case config.Config:
		var announce tea.Cmd
		if m.sawConfig {
			announce = setStatusMessage("Configuration reloaded", false)
		}
		m.sawConfig = true
		model, cmd := m.propagate(inMsg)

		return model, tea.Batch(cmd, announce)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.quit):
			if m.currentView != viewMain {
				break
			}

			return m, tea.Quit
		case key.Matches(msg, defaultKeyMap.help):
			if m.currentView == viewHelp {
				m.currentView = m.previousView
			} else {
				m.previousView = m.currentView
				m.currentView = viewHelp
			}
		}
	case contentView:
		m.currentView = msg
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	header := m.tabsModel.View()
	hdr := theme.HeaderContainer.Width(m.width).Render(header)
	_, hdrHeight := lipgloss.Size(hdr)

	ftr := theme.FooterContainer.Width(m.width).Render(m.statusModel.View())
	_, ftrHeight := lipgloss.Size(ftr)

	contentViewPortHeight := m.height - hdrHeight - ftrHeight

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		switch m.activeTab {
		case tabButtons:
			content = m.buttonsModel.View()
		case tabSelection:
			content = m.selectionModel.View()
		case tabDrawer:
			content = m.drawerModel.View()
		case tabPlayground:
			content = m.playgroundModel.View()
		case tabActivity:
			content = m.activityModel.Render(contentViewPortHeight)
		}
	}

	ctr := theme.ContentContainer.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

// forward hands a record to the owning application without blocking the
// event loop. A full channel drops the record rather than stalling a frame.
func (m rootModel) forward(record any) {
	if m.parentContextChan == nil {
		return
	}

	select {
	case m.parentContextChan <- record:
	default:
		slog.Warn("Parent channel full, dropping record")
	}
}

func (m rootModel) propagate(msg tea.Msg, _ ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 8)

	m.buttonsModel, cmds[0] = m.buttonsModel.Update(msg)
	m.selectionModel, cmds[1] = m.selectionModel.Update(msg)
	m.drawerModel, cmds[2] = m.drawerModel.Update(msg)
	m.playgroundModel, cmds[3] = m.playgroundModel.Update(msg)
	m.activityModel, cmds[4] = m.activityModel.Update(msg)
	m.helpModel, cmds[5] = m.helpModel.Update(msg)
	m.tabsModel, cmds[6] = m.tabsModel.Update(msg)
	m.statusModel, cmds[7] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/paper/paper-gallery.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff. Entries especially: logging a tailed log
	// line writes a new line to the same file.
	switch inMsg.(type) {
	case logfeed.Entry:
	case ink.AnimationEndMsg:
		break
	case snackbar.SignalMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
