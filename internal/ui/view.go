package ui

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/ijqrs/internal/panes"
	"github.com/oakwood-commons/ijqrs/internal/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 20
	minHeight     = 8
	commandHeight = 3
	statusHeight  = 1
	overlayPad    = 3
)

// Render draws the whole frame: Source and Result side by side above the
// command line and status bar, with the bookmark overlay on top when open.
// Help replaces everything.
func (m *Model) Render() string {
	w, h := max(m.width, minWidth), max(m.height, minHeight)
	if m.sess.Mode() == session.ModeHelp {
		return strings.Join(m.helpBox(w, h), "\n")
	}

	topH := h - commandHeight - statusHeight
	leftW := w / 2
	focus := m.sess.Focus()
	rows := joinColumns(
		m.contentBox("Source", m.sess.Source(), leftW, topH, focus == panes.KindSource),
		m.contentBox("Result", m.sess.Output(), w-leftW, topH, focus == panes.KindOutput),
	)
	rows = append(rows, m.commandBox(w)...)
	rows = append(rows, m.statusLine(w))

	if m.sess.Mode() == session.ModeBookmarks {
		pad := min(overlayPad, (h-4)/2)
		rows = overlay(rows, m.bookmarkBox(w-2*pad, h-2*pad), pad, pad)
	}
	return strings.Join(rows, "\n")
}

// contentTitle decorates a pane title with the search state.
func contentTitle(name string, s panes.SearchState) string {
	switch s.Mode() {
	case panes.SearchEntering:
		return fmt.Sprintf("%s: %s_", name, s.Pattern())
	case panes.SearchActive:
		return fmt.Sprintf("%s: [%s] <%d>", name, s.Pattern(), s.Highlight())
	default:
		return name
	}
}

func (m *Model) contentBox(name string, p *panes.ContentPane, width, height int, active bool) []string {
	inner := width - 2
	lines := p.Lines()
	hl := p.Search().Highlight()
	body := make([]string, 0, height)
	for i := 0; i < height-2; i++ {
		idx := p.Position() + i
		if idx >= len(lines) {
			break
		}
		line := fit(lines[idx], inner)
		if idx == hl {
			line = m.styles.Highlight.Render(line)
		}
		body = append(body, line)
	}
	return box(contentTitle(name, p.Search()), body, width, height, active, m.styles)
}

func (m *Model) commandTitle() string {
	if m.sess.ActiveCommand() == m.sess.Internal() {
		return "Internal Command"
	}
	return m.engineName + " Command"
}

func (m *Model) commandBox(width int) []string {
	inner := width - 2
	buf := m.sess.ActiveCommand()
	var line string
	switch {
	case buf.Failed():
		line = m.styles.Error.Render(fit(buf.Content(), inner))
	case m.sess.Focus() == panes.KindCommand:
		line = m.editLine(buf, inner)
	default:
		line = fit(buf.Text(), inner)
	}
	return box(m.commandTitle(), []string{line}, width, commandHeight, m.sess.Focus() == panes.KindCommand, m.styles)
}

// editLine renders the buffer with a block cursor, scrolled so the cursor
// stays inside width cells.
func (m *Model) editLine(buf *panes.CommandBuffer, width int) string {
	runes := []rune(buf.Text())
	cur := buf.Cursor()
	at := " "
	if cur < len(runes) {
		at = string(runes[cur])
	}
	atW := max(runewidth.StringWidth(at), 1)

	start := 0
	for start < cur && runewidth.StringWidth(string(runes[start:cur]))+atW > width {
		start++
	}
	before := string(runes[start:cur])
	after := ""
	if cur+1 < len(runes) {
		after = string(runes[cur+1:])
	}
	room := width - runewidth.StringWidth(before) - atW
	return before + m.styles.Cursor.Render(at) + fit(after, max(room, 0))
}

func (m *Model) statusLine(width int) string {
	line := fit(m.status, width)
	if m.status == "" {
		return line
	}
	if m.statusErr {
		return m.styles.Error.Render(line)
	}
	return m.styles.Success.Render(line)
}

func (m *Model) bookmarkBox(width, height int) []string {
	inner := width - 2
	innerH := max(height-2, 1)
	list := m.sess.Bookmarks()
	items := list.Items()
	if len(items) == 0 {
		return box("Bookmarks", []string{fit("no bookmarks yet, ctrl+a saves the current query", inner)}, width, height, true, m.styles)
	}
	sel := list.Selected()
	start := max(sel-innerH+1, 0)
	body := make([]string, 0, innerH)
	for i := start; i < len(items) && len(body) < innerH; i++ {
		line := fit(items[i], inner)
		if i == sel {
			line = m.styles.Highlight.Render(line)
		}
		body = append(body, line)
	}
	return box("Bookmarks", body, width, height, true, m.styles)
}

func (m *Model) helpBox(width, height int) []string {
	inner := width - 2
	src := helpLines(m.styles)
	body := make([]string, 0, len(src))
	for _, l := range src {
		body = append(body, fitStyled(l, inner))
	}
	return box("Help", body, width, height, true, m.styles)
}
