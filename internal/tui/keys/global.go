package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Grid   key.Binding
	Logs   key.Binding
	Escape key.Binding
	Quit   key.Binding
	Help   key.Binding
}

var Global = global{
	Grid: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "grid"),
	),
	Logs: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "logs"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "`"),
		key.WithHelp("esc, `", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
