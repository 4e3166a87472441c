package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/ijqrs/internal/config"
)

// Styles are the lipgloss styles used by the renderer.
type Styles struct {
	NoColor      bool
	Border       lipgloss.Style
	BorderActive lipgloss.Style
	Title        lipgloss.Style
	Highlight    lipgloss.Style
	Cursor       lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
}

// NewStyles builds styles from theme colours. With noColor only reverse
// video is kept so the search highlight and cursor stay visible.
func NewStyles(th config.ThemeConfig, noColor bool) Styles {
	s := Styles{
		NoColor:      noColor,
		Border:       lipgloss.NewStyle(),
		BorderActive: lipgloss.NewStyle().Bold(true),
		Title:        lipgloss.NewStyle().Bold(true),
		Highlight:    lipgloss.NewStyle().Reverse(true),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Error:        lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle(),
	}
	if noColor {
		s.BorderActive = lipgloss.NewStyle()
		s.Title = lipgloss.NewStyle()
		return s
	}
	s.Border = withForeground(s.Border, th.Border)
	s.BorderActive = withForeground(s.BorderActive, th.BorderActive)
	s.Title = withForeground(s.Title, th.Title)
	if th.HighlightFG != "" && th.HighlightBG != "" {
		s.Highlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.HighlightFG)).
			Background(lipgloss.Color(th.HighlightBG))
	}
	s.Error = withForeground(s.Error, th.Error)
	s.Success = withForeground(s.Success, th.Success)
	return s
}

func withForeground(st lipgloss.Style, c string) lipgloss.Style {
	if c == "" {
		return st
	}
	return st.Foreground(lipgloss.Color(c))
}

// render applies st unless the string is empty.
func render(st lipgloss.Style, s string) string {
	if s == "" {
		return s
	}
	return st.Render(s)
}
