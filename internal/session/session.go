// Package session routes keystrokes between the dashboard panes and tracks
// which pane has focus and which mode the command line is in.
package session

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/ijqrs/internal/completion"
	"github.com/oakwood-commons/ijqrs/internal/panes"
)

// Mode selects which command buffer is live and which overlay is drawn.
type Mode int

const (
	// ModeShell runs the command line as a query.
	ModeShell Mode = iota
	// ModeInternal runs the internal command line.
	ModeInternal
	// ModeHelp shows the help overlay.
	ModeHelp
	// ModeBookmarks shows the bookmark overlay.
	ModeBookmarks
)

func (m Mode) String() string {
	switch m {
	case ModeShell:
		return "shell"
	case ModeInternal:
		return "internal"
	case ModeHelp:
		return "help"
	case ModeBookmarks:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// cycleOrder is the ctrl+w rotation.
var cycleOrder = map[panes.Kind]panes.Kind{
	panes.KindSource:  panes.KindOutput,
	panes.KindOutput:  panes.KindCommand,
	panes.KindCommand: panes.KindSource,
}

// Session owns every pane. Exactly one pane has focus at a time.
type Session struct {
	source    *panes.ContentPane
	output    *panes.ContentPane
	command   *panes.CommandBuffer
	internal  *panes.CommandBuffer
	bookmarks *panes.BookmarkList

	focus panes.Kind
	mode  Mode

	// restored when help closes
	prevFocus panes.Kind
	prevMode  Mode
}

// New builds a session over the source document with query preloaded on the
// command line. Focus starts on the command line in shell mode. Tab
// completes jq builtins on the query line only.
func New(sourceBody, query string, bookmarks *panes.BookmarkList) *Session {
	command := panes.NewCommandBuffer(query)
	command.SetCompleter(completion.Complete)
	return &Session{
		source:    panes.NewContentPane(panes.KindSource, sourceBody),
		output:    panes.NewContentPane(panes.KindOutput, ""),
		command:   command,
		internal:  panes.NewCommandBuffer(""),
		bookmarks: bookmarks,
		focus:     panes.KindCommand,
		mode:      ModeShell,
	}
}

func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Focus() panes.Kind { return s.focus }
func (s *Session) Source() *panes.ContentPane { return s.source }
func (s *Session) Output() *panes.ContentPane { return s.output }
func (s *Session) Command() *panes.CommandBuffer { return s.command }
func (s *Session) Internal() *panes.CommandBuffer { return s.internal }
func (s *Session) Bookmarks() *panes.BookmarkList { return s.bookmarks }

// ActiveCommand returns the internal line in internal mode and the query
// line otherwise.
func (s *Session) ActiveCommand() *panes.CommandBuffer {
	if s.mode == ModeInternal || (s.mode == ModeHelp && s.prevMode == ModeInternal) {
		return s.internal
	}
	return s.command
}

// SetOutput replaces the output pane with a fresh one over body.
func (s *Session) SetOutput(body string) {
	s.output = panes.NewContentPane(panes.KindOutput, body)
}

// LoadBookmark puts text on the query line and returns to shell mode with
// the command line focused.
func (s *Session) LoadBookmark(text string) {
	s.command.SetText(text)
	s.mode = ModeShell
	s.focus = panes.KindCommand
}

// focused returns the pane that receives non-global keys.
func (s *Session) focused() panes.Pane {
	switch s.focus {
	case panes.KindSource:
		return s.source
	case panes.KindOutput:
		return s.output
	case panes.KindBookmarks:
		return s.bookmarks
	case panes.KindCommand:
		return s.ActiveCommand()
	default:
		return nil
	}
}

func (s *Session) focusedContent() *panes.ContentPane {
	switch s.focus {
	case panes.KindSource:
		return s.source
	case panes.KindOutput:
		return s.output
	default:
		return nil
	}
}

// capturing reports whether the focused pane is taking typed text.
func (s *Session) capturing() bool {
	if te, ok := s.focused().(panes.TextEntry); ok {
		return te.Capturing()
	}
	return false
}

// Dispatch applies msg to the session and returns what the host must do.
// Global keys are handled first; everything else goes to the focused pane.
func (s *Session) Dispatch(msg tea.KeyPressMsg) panes.Signal {
	if key.Matches(msg, Keys.Quit) {
		return panes.Signal{Kind: panes.SignalQuit}
	}

	switch s.mode {
	case ModeHelp:
		if key.Matches(msg, Keys.CloseHelp) {
			s.closeHelp()
		}
		return panes.Nop
	case ModeBookmarks:
		return s.dispatchBookmarks(msg)
	}

	switch {
	case key.Matches(msg, Keys.Bookmarks):
		s.mode = ModeBookmarks
		s.focus = panes.KindBookmarks
		return panes.Nop
	case key.Matches(msg, Keys.Cycle):
		s.focus = cycleOrder[s.focus]
		return panes.Nop
	case key.Matches(msg, Keys.AddBookmark):
		return panes.Signal{Kind: panes.SignalAddBookmark}
	case key.Matches(msg, Keys.Mode):
		if cp := s.focusedContent(); cp != nil && cp.Searching() {
			return cp.HandleKey(msg)
		}
		s.toggleMode()
		return panes.Nop
	case key.Matches(msg, Keys.Help):
		if msg.String() == "?" && s.capturing() {
			break
		}
		s.openHelp()
		return panes.Nop
	}

	if p := s.focused(); p != nil {
		return p.HandleKey(msg)
	}
	return panes.Nop
}

func (s *Session) dispatchBookmarks(msg tea.KeyPressMsg) panes.Signal {
	switch {
	case key.Matches(msg, Keys.Bookmarks):
		s.mode = ModeShell
		s.focus = panes.KindCommand
		return panes.Signal{Kind: panes.SignalAddBookmark}
	case key.Matches(msg, Keys.Mode):
		s.mode = ModeShell
		s.focus = panes.KindCommand
		return panes.Nop
	case key.Matches(msg, Keys.Help):
		s.openHelp()
		return panes.Nop
	}
	return s.bookmarks.HandleKey(msg)
}

func (s *Session) toggleMode() {
	s.focus = panes.KindCommand
	if s.mode == ModeInternal {
		s.mode = ModeShell
	} else {
		s.mode = ModeInternal
	}
}

func (s *Session) openHelp() {
	s.prevMode = s.mode
	s.prevFocus = s.focus
	s.mode = ModeHelp
	s.focus = panes.KindHelp
}

func (s *Session) closeHelp() {
	s.mode = s.prevMode
	s.focus = s.prevFocus
}
