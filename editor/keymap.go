package editor

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Quit, Save, Find key.Binding

	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	// Prompt bindings.
	Accept, Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Find: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// searchDirKeys are the prompt keys that steer an incremental search.
type searchDirKeys struct {
	Forward, Backward key.Binding
}

func (km KeyMap) searchKeys() searchDirKeys {
	return searchDirKeys{
		Forward:  key.NewBinding(key.WithKeys(slices.Concat(km.Right.Keys(), km.Down.Keys())...)),
		Backward: key.NewBinding(key.WithKeys(slices.Concat(km.Left.Keys(), km.Up.Keys())...)),
	}
}
