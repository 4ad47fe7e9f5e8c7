package snackbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultTimeout is how long a message stays on screen before fading.
	DefaultTimeout = 2750 * time.Millisecond
	// DefaultFade is how long the fade-out phase lasts.
	DefaultFade = 250 * time.Millisecond
)

// Contents is one notification: its text, optional action, and timing. A
// Contents is created by the caller, waits in the queue, is displayed once,
// and is discarded when its fade completes.
type Contents struct {
	Message string
	// Action is the label of the optional action button. Empty means no
	// action is rendered.
	Action  string
	Timeout time.Duration
	Fade    time.Duration
	// Multiline allows the message to wrap instead of clipping to one row.
	Multiline bool
	// ActionOnBottom stacks the action under the message instead of trailing
	// it.
	ActionOnBottom bool
	// DismissOnAction makes the action button also dismiss the message.
	DismissOnAction bool
	// OnDismiss runs at most once, when the message is dismissed by the
	// user via the action or an unconditional dismiss. Timeouts do not fire
	// it.
	OnDismiss tea.Cmd
}

// Toast builds a plain single-line message with default timing.
func Toast(message string) Contents {
	return Contents{
		Message:         message,
		Timeout:         DefaultTimeout,
		Fade:            DefaultFade,
		DismissOnAction: true,
	}
}

// Snack builds a multiline message with an action label and default timing.
func Snack(message string, action string) Contents {
	return Contents{
		Message:         message,
		Action:          action,
		Timeout:         DefaultTimeout,
		Fade:            DefaultFade,
		Multiline:       true,
		DismissOnAction: true,
	}
}
