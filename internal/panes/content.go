package panes

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// ContentPane displays an immutable text blob with its own scroll offset and
// search state. A fresh pane is built whenever the underlying content changes.
type ContentPane struct {
	kind   Kind
	body   string
	lines  []string
	scroll Scroller
	search SearchState
}

// NewContentPane builds a pane over body. The scroll bound is the number of
// newline-delimited lines in body.
func NewContentPane(kind Kind, body string) *ContentPane {
	lines := strings.Split(body, "\n")
	return &ContentPane{
		kind:   kind,
		body:   body,
		lines:  lines,
		scroll: NewScroller(len(lines)),
		search: SearchState{highlight: -1},
	}
}

// Kind implements Pane.
func (p *ContentPane) Kind() Kind { return p.kind }

// Content returns the pane body.
func (p *ContentPane) Content() string { return p.body }

// Lines returns the body split on newlines.
func (p *ContentPane) Lines() []string { return p.lines }

// Position returns the scroll offset for the renderer.
func (p *ContentPane) Position() int { return p.scroll.Position() }

// Search exposes the search state for rendering.
func (p *ContentPane) Search() SearchState { return p.search }

// ScrollUp moves the view one line up.
func (p *ContentPane) ScrollUp() { p.scroll.Prev() }

// ScrollDown moves the view one line down.
func (p *ContentPane) ScrollDown() { p.scroll.Next() }

// Capturing reports whether keystrokes are being typed into the search prompt.
func (p *ContentPane) Capturing() bool { return p.search.mode == SearchEntering }

// Searching reports whether a search is being entered or is applied.
func (p *ContentPane) Searching() bool { return p.search.mode != SearchInactive }

// StartSearch begins pattern entry.
func (p *ContentPane) StartSearch() { p.search.Start() }

// ConfirmSearch applies the typed pattern and jumps to the next match.
func (p *ContentPane) ConfirmSearch() {
	if p.search.mode != SearchEntering {
		return
	}
	p.search.mode = SearchActive
	p.FindNext()
}

// CancelSearch clears the pattern and highlight.
func (p *ContentPane) CancelSearch() { p.search.Cancel() }

// FindNext moves to the next line after the current scroll position that
// contains the pattern. Nothing happens when there is no later match.
func (p *ContentPane) FindNext() {
	if p.search.pattern == "" {
		return
	}
	if line, ok := findNext(p.lines, p.search.pattern, p.scroll.Position()); ok {
		p.jumpTo(line)
	}
}

// FindPrev moves to the closest line before the current scroll position that
// contains the pattern. Nothing happens when there is no earlier match.
func (p *ContentPane) FindPrev() {
	if p.search.pattern == "" {
		return
	}
	if line, ok := findPrev(p.lines, p.search.pattern, p.scroll.Position()); ok {
		p.jumpTo(line)
	}
}

func (p *ContentPane) jumpTo(line int) {
	p.scroll.SetPosition(line)
	p.search.highlight = line
}

// HandleKey implements Pane. Content panes never emit a signal.
func (p *ContentPane) HandleKey(msg tea.KeyPressMsg) Signal {
	switch p.search.mode {
	case SearchEntering:
		p.handleEntering(msg)
	case SearchActive:
		p.handleActive(msg)
	default:
		p.handleBrowse(msg)
	}
	return Nop
}

func (p *ContentPane) handleEntering(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, ContentKeys.Confirm):
		p.ConfirmSearch()
	case key.Matches(msg, ContentKeys.Cancel):
		p.CancelSearch()
	case key.Matches(msg, ContentKeys.Erase):
		p.search.Backspace()
	case msg.Code == tea.KeyUp, msg.Code == tea.KeyDown:
		p.handleScroll(msg)
	default:
		if text := typedText(msg); text != "" {
			p.search.TypeText(text)
		}
	}
}

func (p *ContentPane) handleActive(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, ContentKeys.Confirm, ContentKeys.NextMatch):
		p.FindNext()
	case key.Matches(msg, ContentKeys.PrevMatch):
		p.FindPrev()
	case key.Matches(msg, ContentKeys.Cancel):
		p.CancelSearch()
	default:
		p.handleScroll(msg)
	}
}

func (p *ContentPane) handleBrowse(msg tea.KeyPressMsg) {
	if key.Matches(msg, ContentKeys.Search) {
		p.StartSearch()
		return
	}
	p.handleScroll(msg)
}

func (p *ContentPane) handleScroll(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, ContentKeys.LineUp):
		p.ScrollUp()
	case key.Matches(msg, ContentKeys.LineDown):
		p.ScrollDown()
	case key.Matches(msg, ContentKeys.PageUp):
		for range pageSize {
			p.scroll.Prev()
		}
	case key.Matches(msg, ContentKeys.PageDown):
		for range pageSize {
			p.scroll.Next()
		}
	case key.Matches(msg, ContentKeys.Top):
		p.scroll.SetPosition(0)
	case key.Matches(msg, ContentKeys.Bottom):
		p.scroll.SetPosition(p.scroll.Max())
	}
}
