package ui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"

	"github.com/oakwood-commons/ijqrs/internal/instruction"
	"github.com/oakwood-commons/ijqrs/internal/session"
	"github.com/oakwood-commons/ijqrs/pkg/settings"
)

var helpSections = []string{"Global", "Search (Source/Result)", "Scrolling (Source/Result)", "Query line and bookmarks"}

var commandHelp = [][2]string{
	{":r", "re-run the query"},
	{":w [FILE]", "write the result to FILE (default " + instruction.DefaultOutFile + ")"},
	{":wc [FILE]", "write the query to FILE (default " + instruction.DefaultCmdFile + ")"},
	{":y", "copy the result to the clipboard"},
	{":yc", "copy the query to the clipboard"},
	{":q", "quit"},
}

// helpLines renders the help page body: usage, key bindings from the global
// keymap, then the internal command reference.
func helpLines(st Styles) []string {
	h := help.New()
	if st.NoColor {
		h.Styles = help.Styles{}
	}

	lines := []string{
		render(st.Title, "Usage"),
		"  " + settings.CliBinaryName + " [FILE]",
		"  If FILE is omitted the document is read from stdin.",
		"",
	}
	for i, group := range session.Keys.FullHelp() {
		title := "Keys"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		lines = append(lines, render(st.Title, title))
		for _, l := range strings.Split(h.FullHelpView([][]key.Binding{group}), "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	lines = append(lines, render(st.Title, "Internal commands (esc switches mode)"))
	for _, c := range commandHelp {
		lines = append(lines, "  "+fit(c[0], 12)+c[1])
	}
	return lines
}
