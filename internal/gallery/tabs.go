package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/paper-kit/paper/theme"
)

type tabView int

const (
	tabButtons tabView = iota
	tabSelection
	tabDrawer
	tabPlayground
	tabActivity
)

func (t tabView) String() string {
	switch t {
	case tabButtons:
		return "Buttons"
	case tabSelection:
		return "Selection"
	case tabDrawer:
		return "Drawer"
	case tabPlayground:
		return "Snackbar"
	case tabActivity:
		return "Activity"
	default:
		return ""
	}
}

type tabLabel struct {
	label string
	tab   tabView
}

func newTabsModel() tabsModel {
	return tabsModel{
		id: zone.NewPrefix(),
		tabs: []tabLabel{
			{label: tabButtons.String(), tab: tabButtons},
			{label: tabSelection.String(), tab: tabSelection},
			{label: tabDrawer.String(), tab: tabDrawer},
			{label: tabPlayground.String(), tab: tabPlayground},
			{label: tabActivity.String(), tab: tabActivity},
		},
		selectedTab: tabButtons,
	}
}

type tabsModel struct {
	id          string
	tabs        []tabLabel
	selectedTab tabView
	width       int
}

func (m tabsModel) Update(msg tea.Msg) (tabsModel, tea.Cmd) {
	changed := false
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, item := range m.tabs {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.label).InBounds(msg) {
				m.selectedTab = item.tab

				return m, setTab(m.selectedTab)
			}
		}

		return m, nil
	case contentSizeMsg:
		m.width = msg.width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.nextTab):
			m.selectedTab++
			if m.selectedTab > tabActivity {
				m.selectedTab = tabButtons
			}
			changed = true
		case key.Matches(msg, defaultKeyMap.prevTab):
			m.selectedTab--
			if m.selectedTab < tabButtons {
				m.selectedTab = tabActivity
			}
			changed = true
		case key.Matches(msg, defaultKeyMap.buttons):
			m.selectedTab = tabButtons
			changed = true
		case key.Matches(msg, defaultKeyMap.selection):
			m.selectedTab = tabSelection
			changed = true
		case key.Matches(msg, defaultKeyMap.drawer):
			m.selectedTab = tabDrawer
			changed = true
		case key.Matches(msg, defaultKeyMap.playground):
			m.selectedTab = tabPlayground
			changed = true
		case key.Matches(msg, defaultKeyMap.activity):
			m.selectedTab = tabActivity
			changed = true
		}
	}

	if changed {
		return m, setTab(m.selectedTab)
	}

	return m, nil
}

func (m tabsModel) View() string {
	if m.width == 0 {
		return ""
	}
	var tabs []string

	for _, tab := range m.tabs {
		if tab.tab == m.selectedTab {
			tabs = append(tabs, zone.Mark(m.id+tab.label, theme.TabActive.Render(tab.label)))
		} else {
			tabs = append(tabs, zone.Mark(m.id+tab.label, theme.TabInactive.Render(tab.label)))
		}
	}

	return theme.WrapX(m.width, theme.TabContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)), " ")
}
