package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type grid struct {
	Single       key.Binding
	Proportional key.Binding
	Symmetric    key.Binding
	AutoFit      key.Binding
	AutoFitAll   key.Binding
	Undo         key.Binding
	Redo         key.Binding
	Inspect      key.Binding
}

var Grid = grid{
	Single: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "single strategy"),
	),
	Proportional: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "proportional strategy"),
	),
	Symmetric: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "symmetric strategy"),
	),
	AutoFit: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "auto-fit hovered column"),
	),
	AutoFitAll: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "auto-fit all columns"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo resize"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("^r", "redo resize"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect layout"),
	),
}
