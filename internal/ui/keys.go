package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todolist/internal/config"
)

type keyMap struct {
	Quit    key.Binding
	Add     key.Binding
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Grab    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Grab:    key.NewBinding(key.WithKeys(k.Grab), key.WithHelp(k.Grab, "move")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "confirm")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
	}
}

// modeHelp narrows the help line to the bindings that do something in the
// current mode.
type modeHelp struct {
	keys keyMap
	mode mode
}

func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.mode {
	case modeAdd:
		return []key.Binding{withDesc(k.Confirm, "add"), withDesc(k.Cancel, "back")}
	case modeDrag:
		return []key.Binding{k.Up, k.Down, withDesc(k.Confirm, "drop"), k.Cancel}
	default:
		return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Grab, k.Quit}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

func withDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
