// Package theme holds the shared palette and lipgloss styles used by the
// component kit and the gallery application.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Primary       = lipgloss.Color("#7C4DFF")
	PrimaryDark   = lipgloss.Color("#651FFF")
	Secondary     = lipgloss.Color("#1DE9B6")
	Surface       = lipgloss.Color("#121212")
	SurfaceRaised = lipgloss.Color("#1E1E1E")
	OnSurface     = lipgloss.Color("#E0E0E0")
	OnSurfaceDim  = lipgloss.Color("#9E9E9E")
	OnPrimary     = lipgloss.Color("#FFFFFF")
	Outline       = lipgloss.Color("#3E3E3E")
	Warning       = lipgloss.Color("#FFD54F")
	Error         = lipgloss.Color("#CF6679")

	// Buttons.
	ButtonText          = lipgloss.NewStyle().Foreground(Primary).Bold(true).Padding(0, 2)
	ButtonTextFocused   = ButtonText.Underline(true)
	ButtonTextPressed   = lipgloss.NewStyle().Foreground(OnPrimary).Background(PrimaryDark).Bold(true).Padding(0, 2)
	ButtonRaised        = lipgloss.NewStyle().Foreground(OnPrimary).Background(Primary).Bold(true).Padding(0, 2)
	ButtonRaisedFocused = ButtonRaised.Background(PrimaryDark).Underline(true)
	ButtonRaisedPressed = ButtonRaised.Background(Secondary).Foreground(Surface)
	ButtonDisabled      = lipgloss.NewStyle().Foreground(OnSurfaceDim).Padding(0, 2)

	// Selection controls.
	ControlLabel        = lipgloss.NewStyle().Foreground(OnSurface)
	ControlLabelFocused = ControlLabel.Bold(true)
	ControlGlyph        = lipgloss.NewStyle().Foreground(OnSurfaceDim)
	ControlGlyphChecked = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	ControlSplash       = lipgloss.NewStyle().Foreground(Surface).Background(Secondary).Bold(true)
	ControlDisabled     = lipgloss.NewStyle().Foreground(Outline)

	// Drawer.
	DrawerPanel        = lipgloss.NewStyle().Background(SurfaceRaised).Foreground(OnSurface).Padding(1, 2)
	DrawerTitle        = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	DrawerItem         = lipgloss.NewStyle().Foreground(OnSurface).PaddingLeft(1)
	DrawerItemSelected = lipgloss.NewStyle().Foreground(Secondary).Bold(true).PaddingLeft(1)
	DrawerScrim        = lipgloss.NewStyle().Foreground(Outline)

	// Gallery chrome.
	HeaderContainer  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainer = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainer  = lipgloss.NewStyle().Align(lipgloss.Center)

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabActive    = lipgloss.NewStyle().Foreground(Secondary).Bold(true).PaddingLeft(2).PaddingRight(2)
	TabInactive  = lipgloss.NewStyle().Foreground(OnSurfaceDim).Bold(true).PaddingLeft(2).PaddingRight(2)

	StatusTitle   = lipgloss.NewStyle().Foreground(Primary).Bold(true).PaddingLeft(1).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Secondary).Bold(true).Align(lipgloss.Right).PaddingRight(2)
	StatusError   = lipgloss.NewStyle().Foreground(Error).Bold(true).Align(lipgloss.Right).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(OnSurfaceDim).Align(lipgloss.Center)
	StatusHelp    = lipgloss.NewStyle().Foreground(Outline).Bold(true).Align(lipgloss.Center)

	PageTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true).Padding(0, 1)
	PageBody  = lipgloss.NewStyle().Padding(1, 2)
	HelpBox   = lipgloss.NewStyle().Padding(1, 3)

	PanelLabel = lipgloss.NewStyle().Foreground(OnSurfaceDim).Align(lipgloss.Right).Width(18)
	PanelValue = lipgloss.NewStyle().Foreground(OnSurface)

	// Activity log page.
	LogTime  = lipgloss.NewStyle().Foreground(Outline)
	LogDebug = lipgloss.NewStyle().Foreground(OnSurfaceDim)
	LogInfo  = lipgloss.NewStyle().Foreground(Secondary)
	LogWarn  = lipgloss.NewStyle().Foreground(Warning)
	LogError = lipgloss.NewStyle().Foreground(Error)
)

// DetailRow renders an aligned label/value pair for the playground panels.
func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX pads a centered string with the supplied character out to width.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}
