package session

import (
	"charm.land/bubbles/v2/key"

	"github.com/oakwood-commons/ijqrs/internal/panes"
)

// KeyMap holds the global bindings checked before any pane sees a key.
type KeyMap struct {
	Quit        key.Binding
	Cycle       key.Binding
	Bookmarks   key.Binding
	AddBookmark key.Binding
	Mode        key.Binding
	Help        key.Binding
	CloseHelp   key.Binding
}

// Keys is the fixed global keymap.
var Keys = KeyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	Cycle:       key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "switch panel")),
	Bookmarks:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "open/close bookmarks")),
	AddBookmark: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "bookmark current query")),
	Mode:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "switch shell/internal mode")),
	Help:        key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
	CloseHelp:   key.NewBinding(key.WithKeys("?", "f1", "esc", "q"), key.WithHelp("q/esc", "close help")),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Cycle, k.Mode, k.Help}
}

// FullHelp implements help.KeyMap. Columns group global, content pane,
// command line and bookmark bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	c := panes.ContentKeys
	cmd := panes.CommandKeys
	b := panes.BookmarkKeys
	return [][]key.Binding{
		{k.Quit, k.Cycle, k.Mode, k.Help, k.Bookmarks, k.AddBookmark},
		{c.Search, c.Confirm, c.NextMatch, c.PrevMatch, c.Cancel},
		{c.LineUp, c.LineDown, c.PageUp, c.PageDown, c.Top, c.Bottom},
		{cmd.Submit, cmd.Complete, cmd.HistoryPrev, cmd.HistoryNext, cmd.ClearLine, b.Load, b.Delete},
	}
}
