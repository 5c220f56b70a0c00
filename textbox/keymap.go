package textbox

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the text box key bindings.
//
// Word bindings list both alt and ctrl variants because terminals disagree on
// which one they send.
type KeyMap struct {
	Left, Right             key.Binding
	SelectLeft, SelectRight key.Binding

	WordLeft, WordRight             key.Binding
	SelectWordLeft, SelectWordRight key.Binding

	Home, End             key.Binding
	SelectHome, SelectEnd key.Binding
	SelectAll             key.Binding

	Backspace, Delete key.Binding
	DeleteWordLeft    key.Binding

	Copy, Cut, Paste key.Binding

	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:        key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		WordLeft:        key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:       key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt/ctrl+→", "word right")),
		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:       key.NewBinding(key.WithKeys("home", "ctrl+home"), key.WithHelp("home", "start")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+end", "ctrl+e"), key.WithHelp("end", "end")),
		SelectHome: key.NewBinding(key.WithKeys("shift+home", "ctrl+shift+home"), key.WithHelp("shift+home", "select to start")),
		SelectEnd:  key.NewBinding(key.WithKeys("shift+end", "ctrl+shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace:      key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:         key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		DeleteWordLeft: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word left")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	}
}
