// Package snackbar implements a queued, single-slot notification banner.
// Messages are shown one at a time in arrival order. Timers drive the
// active, fading and inert phases, and every scheduled signal carries the
// sequence number of the display cycle that created it, so signals from a
// superseded cycle are discarded instead of cancelled.
package snackbar

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultWidth = 48

// Signal is the kind of event routed through a SignalMsg.
type Signal int

const (
	// SignalTimeout marks the expiry of a display or fade timer.
	SignalTimeout Signal = iota
	// SignalClicked marks a user dismissal.
	SignalClicked
)

func (s Signal) String() string {
	if s == SignalClicked {
		return "clicked"
	}

	return "timeout"
}

// Phase is the lifecycle phase of the displayed slot.
type Phase int

const (
	// PhaseInert means nothing is displayed.
	PhaseInert Phase = iota
	// PhaseActive means the current contents are fully shown.
	PhaseActive
	// PhaseFading means the current contents are on their way out.
	PhaseFading
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseFading:
		return "fading"
	default:
		return "inert"
	}
}

// SignalMsg is delivered when a scheduled snackbar timer fires. Seq is the
// sequence number captured when the timer was scheduled; Update drops the
// message unless it still matches.
type SignalMsg struct {
	ID     string
	Seq    int
	Signal Signal
}

// Styles configures the rendered banner.
type Styles struct {
	Base   lipgloss.Style
	Fading lipgloss.Style
	Action lipgloss.Style
}

// DefaultStyles returns the stock dark banner.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("#ECEFF1")).
		Background(lipgloss.Color("#37474F"))

	return Styles{
		Base:   base,
		Fading: base.Foreground(lipgloss.Color("#78909C")),
		Action: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1DE9B6")),
	}
}

// Model is the notification machine. The zero value is not usable; construct
// instances with New.
type Model struct {
	id      string
	styles  Styles
	queue   []Contents
	current Contents
	phase   Phase
	seq     int
	width   int
}

// Option mutates a Model during New.
type Option func(*Model)

// WithID overrides the generated instance id. Hosts only need this when they
// render the same model in more than one place.
func WithID(id string) Option {
	return func(m *Model) {
		m.id = id
	}
}

// WithStyles overrides the default banner styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// New creates an inert machine with an empty queue.
func New(opts ...Option) Model {
	model := Model{
		id:     zone.NewPrefix(),
		styles: DefaultStyles(),
		width:  defaultWidth,
	}

	for _, opt := range opts {
		opt(&model)
	}

	return model
}

// ID returns the instance id used to tag scheduled signals.
func (m Model) ID() string {
	return m.id
}

// Phase returns the current lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Visible is true while any contents are displayed, fading included.
func (m Model) Visible() bool {
	return m.phase != PhaseInert
}

// Fading is true while the displayed contents are on their way out.
func (m Model) Fading() bool {
	return m.phase == PhaseFading
}

// Current returns the displayed contents, if any.
func (m Model) Current() (Contents, bool) {
	if m.phase == PhaseInert {
		return Contents{}, false
	}

	return m.current, true
}

// Pending returns the number of queued, not yet displayed messages.
func (m Model) Pending() int {
	return len(m.queue)
}

// Seq returns the sequence number of the current display cycle.
func (m Model) Seq() int {
	return m.seq
}

// SetWidth fixes the rendered banner width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Enqueue appends contents to the queue without displaying anything.
func (m *Model) Enqueue(contents Contents) {
	m.queue = append(m.queue, contents)
}

// TryDequeue promotes the queue head when nothing is displayed. It starts a
// new display cycle and returns the command that will deliver its timeout.
func (m *Model) TryDequeue() tea.Cmd {
	if m.phase != PhaseInert || len(m.queue) == 0 {
		return nil
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.phase = PhaseActive
	m.seq++

	return m.signalAfter(m.current.Timeout, SignalTimeout)
}

// Add enqueues contents and displays them right away when the machine is
// idle. This is the entry point hosts use to post a notification.
func (m *Model) Add(contents Contents) tea.Cmd {
	m.Enqueue(contents)

	return m.TryDequeue()
}

// Dismiss removes the displayed contents ahead of their timeout. Dismissals
// that arrive via the action button are honoured only when the contents opt
// in with DismissOnAction; every other path applies unconditionally. The
// OnDismiss callback runs once either way.
func (m *Model) Dismiss(viaAction bool) tea.Cmd {
	if m.phase == PhaseInert {
		return nil
	}

	var cmds []tea.Cmd

	if (!viaAction || m.current.DismissOnAction) && m.phase == PhaseActive {
		m.phase = PhaseFading
		cmds = append(cmds, m.signalAfter(m.current.Fade, SignalTimeout))
	}

	if m.current.OnDismiss != nil {
		cmds = append(cmds, m.current.OnDismiss)
		m.current.OnDismiss = nil
	}

	return tea.Batch(cmds...)
}

// Update consumes SignalMsg values addressed to this instance. Signals whose
// sequence number no longer matches belong to a superseded display cycle and
// are dropped.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	signal, ok := msg.(SignalMsg)
	if !ok || signal.ID != m.id || signal.Seq != m.seq {
		return m, nil
	}

	switch {
	case m.phase == PhaseInert && signal.Signal == SignalTimeout:
		cmd := m.TryDequeue()

		return m, cmd
	case m.phase == PhaseActive:
		m.phase = PhaseFading

		return m, m.signalAfter(m.current.Fade, SignalTimeout)
	case m.phase == PhaseFading && signal.Signal == SignalTimeout:
		m.phase = PhaseInert
		m.current = Contents{}

		// Re-signal without delay so a waiting message is promoted in the
		// same frame the slot frees up.
		return m, m.signalNow(SignalTimeout)
	}

	return m, nil
}

// HandleMouse dismisses the displayed contents when their action label is
// clicked.
func (m *Model) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if m.phase != PhaseActive || m.current.Action == "" {
		return nil
	}

	if !zone.Get(m.id + "action").InBounds(msg) {
		return nil
	}

	return m.Dismiss(true)
}

func (m *Model) signalAfter(duration time.Duration, signal Signal) tea.Cmd {
	id, seq := m.id, m.seq

	return tea.Tick(duration, func(time.Time) tea.Msg {
		return SignalMsg{ID: id, Seq: seq, Signal: signal}
	})
}

func (m *Model) signalNow(signal Signal) tea.Cmd {
	id, seq := m.id, m.seq

	return func() tea.Msg {
		return SignalMsg{ID: id, Seq: seq, Signal: signal}
	}
}

// View renders the banner, or nothing while inert.
func (m Model) View() string {
	if m.phase == PhaseInert {
		return ""
	}

	base := m.styles.Base
	if m.phase == PhaseFading {
		base = m.styles.Fading
	}

	inner := m.width - base.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	message := m.current.Message
	if m.current.Multiline {
		message = wordwrap.String(message, inner)
	} else {
		message = truncate.StringWithTail(message, uint(inner), "…") //nolint:gosec
	}

	body := message

	if m.current.Action != "" {
		label := zone.Mark(m.id+"action", m.styles.Action.Render(m.current.Action))
		if m.current.ActionOnBottom {
			body = lipgloss.JoinVertical(lipgloss.Left, message, label)
		} else {
			body = lipgloss.JoinHorizontal(lipgloss.Center, message, "  ", label)
		}
	}

	return base.Width(m.width).Render(body)
}
