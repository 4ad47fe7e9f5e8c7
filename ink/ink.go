// Package ink implements the press-feedback state machine behind every
// pressable surface in the kit. It tracks one interactive surface through
// focus, activation and deactivation, guards against overlapping input pairs,
// and computes the geometry a renderer needs to draw an expanding ink splash.
//
// The machine never touches a timer directly. Activation returns a tea.Cmd
// that delivers an AnimationEndMsg after the minimum animation window; the
// message carries the activation token it was scheduled under, and Update
// discards it unless the token still matches. Stale timers from superseded
// presses are therefore harmless by comparison, not by cancellation.
package ink

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// minAnimationDuration is how long a press stays in its animating phase even
// when the press itself ends sooner. Matches the Material ink timing.
const minAnimationDuration = 300 * time.Millisecond

// AnimationEndMsg closes an activation's animating phase. ID routes the
// message to its instance; Trigger and Token must both match the live state
// or the message is ignored as stale.
type AnimationEndMsg struct {
	ID      string
	Trigger Trigger
	Token   int
}

// Model is a single ink surface. Many instances coexist independently; each
// owns a bubblezone prefix used both as its identity and its hit-test zone.
type Model struct {
	id        string
	unbounded bool

	focused      bool
	active       bool
	animating    bool
	deactivating bool

	geom  Geometry
	token int
}

// Option configures a Model during New.
type Option func(*Model)

// WithUnbounded lets the ink overflow the surface instead of clipping to it.
// Used for small square surfaces like icon toggles.
func WithUnbounded() Option {
	return func(m *Model) { m.unbounded = true }
}

// WithID overrides the generated instance ID.
func WithID(id string) Option {
	return func(m *Model) { m.id = id }
}

// New returns an idle ink surface.
func New(opts ...Option) Model {
	m := Model{id: zone.NewPrefix()}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// ID returns the instance identity, which doubles as its zone prefix.
func (m Model) ID() string { return m.id }

// Unbounded reports whether the ink may overflow its surface.
func (m Model) Unbounded() bool { return m.unbounded }

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Active reports whether the ink is in its grown visual phase.
func (m Model) Active() bool { return m.active }

// Animating reports whether an activation animation is still in flight.
func (m Model) Animating() bool { return m.animating }

// Visible reports whether a renderer should attach the ink frame at all.
func (m Model) Visible() bool { return m.active || m.animating }

// Geometry returns the measurement captured by the current press cycle.
func (m Model) Geometry() Geometry { return m.geom }

// Token returns the current activation generation.
func (m Model) Token() int { return m.token }

// Focus records keyboard focus landing on the surface. No animation side
// effects.
func (m *Model) Focus() { m.focused = true }

// Blur records keyboard focus leaving the surface.
func (m *Model) Blur() { m.focused = false }

// Activate starts a press cycle from the given measurement. While a press is
// already visible the call is a no-op: overlapping trigger pairs (a synthetic
// mouse press trailing a touch start) must not restart the animation, move
// the captured geometry, or schedule a second timer.
//
// override, when non-nil, forces the grown phase on or off at activation
// time; otherwise the prior value is kept.
//
// The returned command delivers the animation-end signal for this activation
// and must be handed to the runtime.
func (m *Model) Activate(geom Geometry, override *bool) tea.Cmd {
	if m.active || m.animating {
		return nil
	}

	if override != nil {
		m.active = *override
	}
	m.animating = true
	m.deactivating = false
	m.geom = geom
	m.token++

	id := m.id
	trigger := geom.Event.Trigger
	token := m.token

	return tea.Tick(minAnimationDuration, func(time.Time) tea.Msg {
		return AnimationEndMsg{ID: id, Trigger: trigger, Token: token}
	})
}

// Deactivate ends the grown phase, but only when the trigger is the logical
// counterpart of the one that started the press. Mismatched pairs are
// ignored.
func (m *Model) Deactivate(trigger Trigger) {
	if trigger == TriggerNone || trigger != m.geom.Event.Trigger {
		return
	}

	m.active = false
	if m.animating {
		m.deactivating = true
	}
}

// Update consumes runtime messages. Animation-end signals take effect only
// when instance, trigger and token all match the live state; anything else
// is a stale echo from a superseded press and is dropped.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	end, ok := msg.(AnimationEndMsg)
	if !ok || end.ID != m.id {
		return m, nil
	}

	if end.Trigger != m.geom.Event.Trigger || end.Token != m.token {
		return m, nil
	}

	m.animating = false
	m.deactivating = false

	return m, nil
}

// Mark wraps a rendered surface in the instance's zone so later mouse input
// can be resolved back to it. The host must have called zone.NewGlobal (or
// provide a zone manager) before the first render.
func (m Model) Mark(view string) string {
	return zone.Mark(m.id, view)
}

// HandleMouse binds terminal mouse input to the machine: a left press inside
// the marked surface measures the zone and activates; any left release
// deactivates, relying on the trigger pairing to reject unrelated releases.
// The returned command, when non-nil, carries the activation's
// animation-end signal.
func (m *Model) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		info := zone.Get(m.id)
		if info.IsZero() || !info.InBounds(msg) {
			return nil
		}

		pressed := true

		return m.Activate(Geometry{Frame: FromZone(info), Event: MouseEvent(msg)}, &pressed)
	case tea.MouseActionRelease:
		m.Deactivate(TriggerMouse)
	}

	return nil
}

// PressKey runs the full keyboard press cycle. Terminals deliver no key
// release, so the counterpart deactivation is applied immediately; the
// minimum animation window keeps the ink visible regardless.
func (m *Model) PressKey(frame Rect) tea.Cmd {
	pressed := true
	cmd := m.Activate(Geometry{Frame: frame, Event: KeyEvent()}, &pressed)
	m.Deactivate(TriggerKey)

	return cmd
}
