package gallery

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit       key.Binding
	help       key.Binding
	back       key.Binding
	accept     key.Binding
	up         key.Binding
	down       key.Binding
	prevWidget key.Binding
	nextWidget key.Binding
	prevTab    key.Binding
	nextTab    key.Binding
	buttons    key.Binding
	selection  key.Binding
	drawer     key.Binding
	playground key.Binding
	activity   key.Binding
}

var defaultKeyMap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	accept: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "Activate"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	prevWidget: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Prev widget"),
	),
	nextWidget: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next widget"),
	),
	prevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Prev Page"),
	),
	nextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Page"),
	),
	buttons: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "Buttons"),
	),
	selection: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Selection"),
	),
	drawer: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "Drawer"),
	),
	playground: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "Snackbar"),
	),
	activity: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "Activity"),
	),
}
