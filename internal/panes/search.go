package panes

import (
	"strings"
	"unicode/utf8"
)

// SearchMode is the state of an incremental search.
type SearchMode int

const (
	// SearchInactive means no search is in progress.
	SearchInactive SearchMode = iota
	// SearchEntering means the pattern is being typed.
	SearchEntering
	// SearchActive means a pattern is applied and n/N navigate matches.
	SearchActive
)

func (m SearchMode) String() string {
	switch m {
	case SearchInactive:
		return "inactive"
	case SearchEntering:
		return "entering"
	case SearchActive:
		return "active"
	default:
		return "unknown"
	}
}

// SearchState tracks an incremental substring search over a text blob.
// Pattern is non-empty only while the mode is not SearchInactive, and
// Highlight is meaningful only in SearchActive.
type SearchState struct {
	mode      SearchMode
	pattern   string
	highlight int
}

// Mode returns the current search mode.
func (s SearchState) Mode() SearchMode { return s.mode }

// Pattern returns the pattern typed so far.
func (s SearchState) Pattern() string { return s.pattern }

// Highlight returns the line of the current match, or -1 when no match is shown.
func (s SearchState) Highlight() int {
	if s.mode != SearchActive {
		return -1
	}
	return s.highlight
}

// Start begins pattern entry. It only applies from SearchInactive.
func (s *SearchState) Start() bool {
	if s.mode != SearchInactive {
		return false
	}
	s.mode = SearchEntering
	s.pattern = ""
	s.highlight = -1
	return true
}

// TypeText appends to the pattern while entering.
func (s *SearchState) TypeText(text string) {
	if s.mode != SearchEntering {
		return
	}
	s.pattern += text
}

// Backspace removes the last pattern character while entering.
func (s *SearchState) Backspace() {
	if s.mode != SearchEntering || s.pattern == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.pattern)
	s.pattern = s.pattern[:len(s.pattern)-size]
}

// Cancel drops the search from either entering or active mode.
func (s *SearchState) Cancel() {
	s.mode = SearchInactive
	s.pattern = ""
	s.highlight = -1
}

// findNext returns the first line after from whose text contains pattern.
// The scan does not wrap around the end of the body.
func findNext(lines []string, pattern string, from int) (int, bool) {
	for i := from + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], pattern) {
			return i, true
		}
	}
	return 0, false
}

// findPrev returns the last line before from whose text contains pattern.
// The scan does not wrap around the start of the body.
func findPrev(lines []string, pattern string, from int) (int, bool) {
	if from > len(lines) {
		from = len(lines)
	}
	for i := from - 1; i >= 0; i-- {
		if strings.Contains(lines[i], pattern) {
			return i, true
		}
	}
	return 0, false
}
