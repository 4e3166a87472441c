// Package panes holds the focusable regions of the dashboard: the two content
// panes, the command buffers and the bookmark list. Each pane owns its scroll
// state and interprets the keystrokes routed to it.
package panes

import (
	tea "charm.land/bubbletea/v2"
)

// Kind identifies a pane.
type Kind int

const (
	// KindSource displays the loaded document.
	KindSource Kind = iota
	// KindOutput displays the result of the last query run.
	KindOutput
	// KindCommand is the editable command line.
	KindCommand
	// KindBookmarks is the bookmark overlay list.
	KindBookmarks
	// KindHelp is the help overlay.
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindOutput:
		return "output"
	case KindCommand:
		return "command"
	case KindBookmarks:
		return "bookmarks"
	case KindHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SignalKind is the outward instruction produced by key handling.
type SignalKind int

const (
	// SignalNop means the key was handled (or ignored) locally.
	SignalNop SignalKind = iota
	// SignalQuit ends the session.
	SignalQuit
	// SignalRun submits the active command line.
	SignalRun
	// SignalAddBookmark asks the host to bookmark the current query.
	SignalAddBookmark
	// SignalLoadBookmark asks the host to load Signal.Text into the query line.
	SignalLoadBookmark
)

func (k SignalKind) String() string {
	switch k {
	case SignalNop:
		return "nop"
	case SignalQuit:
		return "quit"
	case SignalRun:
		return "run"
	case SignalAddBookmark:
		return "add_bookmark"
	case SignalLoadBookmark:
		return "load_bookmark"
	default:
		return "unknown"
	}
}

// Signal is returned from every HandleKey call for the host loop to act on.
type Signal struct {
	Kind SignalKind
	Text string // payload for SignalLoadBookmark
}

// Nop is the zero signal.
var Nop = Signal{Kind: SignalNop}

// Pane is the behaviour shared by every focusable region.
type Pane interface {
	Kind() Kind
	HandleKey(msg tea.KeyPressMsg) Signal
}

// TextEntry is implemented by panes that can capture literal keystrokes,
// such as a command line or a search prompt. While Capturing reports true,
// single-character global shortcuts are delivered to the pane as text.
type TextEntry interface {
	Capturing() bool
}

// typedText returns the printable text carried by a key press, or "" when the
// key is a control/alt chord or a non-printable key.
func typedText(msg tea.KeyPressMsg) string {
	k := msg.Key()
	if k.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return ""
	}
	return k.Text
}
