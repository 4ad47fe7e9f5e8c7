package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticePosted is handed to the parent channel whenever the playground posts
// a notification. Token is a client-side serial used to correlate the later
// NoticePosted/NoticeDismissed pair.
type NoticePosted struct {
	Token    int64
	Kind     string
	Message  string
	Action   string
	PostedOn time.Time
}

// NoticeDismissed is handed to the parent channel when a displayed
// notification leaves the screen, with the reason it did.
type NoticeDismissed struct {
	Token       int64
	Reason      string
	DismissedOn time.Time
}

type noticePostedMsg struct {
	record NoticePosted
}

func reportPosted(record NoticePosted) tea.Cmd {
	return func() tea.Msg { return noticePostedMsg{record: record} }
}

type noticeDismissedMsg struct {
	record NoticeDismissed
}

func reportDismissed(record NoticeDismissed) tea.Cmd {
	return func() tea.Msg { return noticeDismissedMsg{record: record} }
}

// dismissCallbackMsg is emitted by a notification's dismiss callback. It
// proves the exactly-once callback contract to the playground page.
type dismissCallbackMsg struct {
	token int64
}

func dismissCallback(token int64) tea.Cmd {
	return func() tea.Msg { return dismissCallbackMsg{token: token} }
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{Message: msg, Err: err} }
}

func setTab(tab tabView) tea.Cmd {
	return func() tea.Msg { return tab }
}

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

func setContentView(view contentView) tea.Cmd {
	return func() tea.Msg { return view }
}

// contentSizeMsg carries the terminal dimensions plus the height left for
// page content once the header and footer are laid out.
type contentSizeMsg struct {
	width         int
	height        int
	contentHeight int
}

func setContentSize(width int, height int, contentHeight int) tea.Cmd {
	return func() tea.Msg {
		return contentSizeMsg{width: width, height: height, contentHeight: contentHeight}
	}
}
