package panes

import "charm.land/bubbles/v2/key"

// pageSize is the number of lines moved by page up/down in content panes.
const pageSize = 10

// ContentKeyMap holds the bindings understood by Source and Output panes.
type ContentKeyMap struct {
	Search    key.Binding
	Confirm   key.Binding
	NextMatch key.Binding
	PrevMatch key.Binding
	Cancel    key.Binding
	Erase     key.Binding
	LineUp    key.Binding
	LineDown  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
}

// CommandKeyMap holds the bindings understood by command lines.
type CommandKeyMap struct {
	Submit      key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	ClearLine   key.Binding
	Complete    key.Binding
}

// BookmarkKeyMap holds the bindings understood by the bookmark list.
type BookmarkKeyMap struct {
	Load   key.Binding
	Delete key.Binding
	Up     key.Binding
	Down   key.Binding
}

// ContentKeys is the fixed content pane keymap.
var ContentKeys = ContentKeyMap{
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "start pattern search")),
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply search pattern")),
	NextMatch: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	PrevMatch: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
	Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+l"), key.WithHelp("ctrl+l", "clear search")),
	Erase:     key.NewBinding(key.WithKeys("backspace")),
	LineUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	LineDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
	Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
}

// CommandKeys is the fixed command line keymap.
var CommandKeys = CommandKeyMap{
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Backspace:   key.NewBinding(key.WithKeys("backspace")),
	Delete:      key.NewBinding(key.WithKeys("delete")),
	Left:        key.NewBinding(key.WithKeys("left")),
	Right:       key.NewBinding(key.WithKeys("right")),
	Home:        key.NewBinding(key.WithKeys("home")),
	End:         key.NewBinding(key.WithKeys("end")),
	HistoryPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	HistoryNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	ClearLine:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear line")),
	Complete:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete jq builtin")),
}

// BookmarkKeys is the fixed bookmark list keymap.
var BookmarkKeys = BookmarkKeyMap{
	Load:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use bookmark")),
	Delete: key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("ctrl+d/del", "delete bookmark")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
}
