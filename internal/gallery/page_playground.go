package gallery

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paper-kit/paper/button"
	"github.com/paper-kit/paper/internal/config"
	"github.com/paper-kit/paper/snackbar"
	"github.com/paper-kit/paper/theme"
)

// Dismissal reasons recorded with each NoticeDismissed.
const (
	reasonTimeout   = "timeout"
	reasonAction    = "action"
	reasonDismissed = "dismissed"
)

// playgroundModel drives a live snackbar and mirrors its scheduling state so
// the page can show phase, sequence and queue depth while recording every
// posted notification for the history store.
type playgroundModel struct {
	activeTab  tabView
	snackbar   snackbar.Model
	postToast  button.Model
	postSnack  button.Model
	dismiss    button.Model
	focusIndex int
	width      int

	// Client-side serials kept in step with the scheduler queue. pending
	// holds tokens not yet displayed, showing the one on screen.
	nextToken int64
	pending   []int64
	showing   int64
	lastSeq   int
	lastPhase snackbar.Phase

	posted    int
	dismissed int
	callbacks int

	toastTimeout time.Duration
	toastFade    time.Duration
}

func newPlaygroundModel() playgroundModel {
	model := playgroundModel{
		activeTab: tabButtons,
		snackbar:  snackbar.New(),
		postToast: button.New("Toast", button.WithVariant(button.VariantRaised)),
		postSnack: button.New("Snack", button.WithVariant(button.VariantRaised)),
		dismiss:   button.New("Dismiss"),
	}
	model.postToast.Focus()

	return model
}

func (m playgroundModel) active() bool {
	return m.activeTab == tabPlayground
}

func (m playgroundModel) Update(msg tea.Msg) (playgroundModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabView:
		m.activeTab = msg

		return m, nil
	case contentSizeMsg:
		m.width = msg.width
		m.snackbar.SetWidth(clamp(msg.width-8, 16, 48))

		return m, nil
	case config.Config:
		m.toastTimeout = msg.ToastTimeout()
		m.toastFade = msg.ToastFade()

		return m, nil
	case snackbar.SignalMsg:
		var cmd tea.Cmd
		m.snackbar, cmd = m.snackbar.Update(msg)
		cmds := append([]tea.Cmd{cmd}, m.observe(reasonTimeout)...)

		return m, tea.Batch(cmds...)
	case dismissCallbackMsg:
		m.callbacks++

		return m, setStatusMessage(fmt.Sprintf("Dismiss callback for notice %d", msg.token), false)
	case button.PressMsg:
		return m.onPress(msg)
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
		// The action label zone wins over the buttons.
		if cmd := m.snackbar.HandleMouse(msg); cmd != nil {
			cmds := append([]tea.Cmd{cmd}, m.observe(reasonAction)...)

			return m, tea.Batch(cmds...)
		}
	}

	return m.propagate(msg)
}

func (m playgroundModel) onPress(msg button.PressMsg) (playgroundModel, tea.Cmd) {
	switch msg.ID {
	case m.postToast.ID():
		m.nextToken++
		contents := snackbar.Toast(fmt.Sprintf("Toast %d posted", m.nextToken))
		cmds := m.post("toast", contents)

		return m, tea.Batch(cmds...)
	case m.postSnack.ID():
		m.nextToken++
		contents := snackbar.Snack(
			fmt.Sprintf("Snack %d posted, with enough text that the multiline wrap has something to do", m.nextToken),
			"UNDO")
		cmds := m.post("snack", contents)

		return m, tea.Batch(cmds...)
	case m.dismiss.ID():
		cmd := m.snackbar.Dismiss(false)
		if cmd == nil && m.snackbar.Phase() == snackbar.PhaseInert {
			return m, setStatusMessage("Nothing to dismiss", false)
		}
		cmds := append([]tea.Cmd{cmd}, m.observe(reasonDismissed)...)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// post enqueues contents under a fresh token. The token travels with the
// dismiss callback and the parent channel records, letting the host stitch
// the posted/dismissed pair back together.
func (m *playgroundModel) post(kind string, contents snackbar.Contents) []tea.Cmd {
	token := m.nextToken
	if m.toastTimeout > 0 {
		contents.Timeout = m.toastTimeout
	}
	if m.toastFade > 0 {
		contents.Fade = m.toastFade
	}
	contents.OnDismiss = dismissCallback(token)

	m.pending = append(m.pending, token)
	m.posted++

	cmds := []tea.Cmd{
		m.snackbar.Add(contents),
		reportPosted(NoticePosted{
			Token:    token,
			Kind:     kind,
			Message:  contents.Message,
			Action:   contents.Action,
			PostedOn: time.Now(),
		}),
	}

	return append(cmds, m.observe(reasonTimeout)...)
}

// observe reconciles token bookkeeping after any call that may have advanced
// the scheduler: a sequence bump means the next pending token is now on
// screen, an Active to Fading edge means the showing one was dismissed.
func (m *playgroundModel) observe(reason string) []tea.Cmd {
	var cmds []tea.Cmd

	if seq := m.snackbar.Seq(); seq != m.lastSeq {
		m.lastSeq = seq
		if len(m.pending) > 0 {
			m.showing = m.pending[0]
			m.pending = m.pending[1:]
		}
	}

	if phase := m.snackbar.Phase(); phase != m.lastPhase {
		if phase == snackbar.PhaseFading && m.showing != 0 {
			m.dismissed++
			cmds = append(cmds, reportDismissed(NoticeDismissed{
				Token:       m.showing,
				Reason:      reason,
				DismissedOn: time.Now(),
			}))
		}
		if phase == snackbar.PhaseInert {
			m.showing = 0
		}
		m.lastPhase = phase
	}

	return cmds
}

func (m *playgroundModel) moveFocus(delta int) {
	m.postToast.Blur()
	m.postSnack.Blur()
	m.dismiss.Blur()

	m.focusIndex = (m.focusIndex + delta + 3) % 3
	switch m.focusIndex {
	case 0:
		m.postToast.Focus()
	case 1:
		m.postSnack.Focus()
	case 2:
		m.dismiss.Focus()
	}
}

func (m playgroundModel) propagate(msg tea.Msg) (playgroundModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)
	m.postToast, cmds[0] = m.postToast.Update(msg)
	m.postSnack, cmds[1] = m.postSnack.Update(msg)
	m.dismiss, cmds[2] = m.dismiss.Update(msg)

	return m, tea.Batch(cmds...)
}

func (m playgroundModel) View() string {
	rows := []string{
		theme.PageTitle.Render("Snackbar playground"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.postToast.View(), m.postSnack.View(), m.dismiss.View()),
		"",
		theme.DetailRow("Phase", m.snackbar.Phase().String()),
		theme.DetailRow("Sequence", strconv.Itoa(m.snackbar.Seq())),
		theme.DetailRow("Queued", strconv.Itoa(m.snackbar.Pending())),
		theme.DetailRow("Posted", strconv.Itoa(m.posted)),
		theme.DetailRow("Dismissed", strconv.Itoa(m.dismissed)),
		theme.DetailRow("Callbacks", strconv.Itoa(m.callbacks)),
	}

	if view := m.snackbar.View(); view != "" {
		rows = append(rows, "", view)
	}

	return theme.PageBody.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
