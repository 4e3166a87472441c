package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

const (
	tabWidth = 4
	// sgrReset stops styles leaking across overlay seams.
	sgrReset = "\x1b[m"
)

var frame = lipgloss.NormalBorder()

// expandTabs replaces tabs with spaces; runewidth gives tabs no width.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// fit truncates or pads plain text to exactly width display cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = expandTabs(s)
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// box draws a bordered rectangle of the given outer size around body lines
// that are already exactly width-2 cells wide (styling applied). Missing
// lines are padded with blanks.
func box(title string, body []string, width, height int, active bool, st Styles) []string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	inner := width - 2
	border := st.Border
	if active {
		border = st.BorderActive
	}

	label := ""
	if title != "" {
		label = runewidth.Truncate(" "+title+" ", inner-1, "")
	}
	fill := inner - 1 - runewidth.StringWidth(label)
	top := render(border, frame.TopLeft+frame.Top) +
		render(st.Title, label) +
		render(border, strings.Repeat(frame.Top, max(fill, 0))+frame.TopRight)

	out := make([]string, 0, height)
	out = append(out, top)
	blank := strings.Repeat(" ", inner)
	side := render(border, frame.Left)
	sideR := render(border, frame.Right)
	for i := 0; i < height-2; i++ {
		line := blank
		if i < len(body) {
			line = body[i]
		}
		out = append(out, side+line+sideR)
	}
	out = append(out, render(border, frame.BottomLeft+strings.Repeat(frame.Bottom, inner)+frame.BottomRight))
	return out
}

// joinColumns concatenates two stacks of rows side by side.
func joinColumns(left, right []string) []string {
	n := max(len(left), len(right))
	out := make([]string, n)
	for i := range n {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out[i] = l + r
	}
	return out
}

// overlay draws top over base with its upper-left corner at row, col.
// Both are slices of styled rows; cells outside top keep base styling.
func overlay(base, top []string, row, col int) []string {
	out := append([]string(nil), base...)
	for i, line := range top {
		r := row + i
		if r < 0 || r >= len(out) {
			continue
		}
		w := ansi.StringWidth(line)
		left := ansi.Truncate(out[r], col, "")
		if pad := col - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(out[r], col+w, "")
		out[r] = left + sgrReset + line + sgrReset + right
	}
	return out
}

// fitStyled truncates or pads a styled string to exactly width cells.
func fitStyled(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(expandTabs(s), width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
