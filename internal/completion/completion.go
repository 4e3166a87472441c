// Package completion extends a partly typed jq builtin name on the query
// line. It looks only at the word under the cursor; the query itself is never
// parsed.
package completion

import (
	"strings"
	"unicode"
)

// Functions returns a copy of the known builtins sorted by name.
func Functions() []FunctionMetadata {
	out := make([]FunctionMetadata, len(builtins))
	copy(out, builtins)
	return out
}

// Match returns the builtins whose name starts with prefix, in name order.
// An empty prefix matches nothing.
func Match(prefix string) []FunctionMetadata {
	if prefix == "" {
		return nil
	}
	var out []FunctionMetadata
	for _, fn := range builtins {
		if strings.HasPrefix(fn.Name, prefix) {
			out = append(out, fn)
		}
	}
	return out
}

// Complete extends the word ending at cursor (a rune offset into text) to
// the longest prefix shared by every matching builtin. Field accesses
// (`.na`) and variables (`$na`) are left alone. It returns the new text and
// cursor, which equal the inputs when nothing could be added.
func Complete(text string, cursor int) (string, int) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		return text, cursor
	}
	start := cursor
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	if start == cursor {
		return text, cursor
	}
	if start > 0 && (runes[start-1] == '.' || runes[start-1] == '$') {
		return text, cursor
	}

	word := string(runes[start:cursor])
	matches := Match(word)
	if len(matches) == 0 {
		return text, cursor
	}
	common := matches[0].Name
	for _, m := range matches[1:] {
		common = sharedPrefix(common, m.Name)
	}
	add := []rune(strings.TrimPrefix(common, word))
	if len(add) == 0 {
		return text, cursor
	}

	out := make([]rune, 0, len(runes)+len(add))
	out = append(out, runes[:cursor]...)
	out = append(out, add...)
	out = append(out, runes[cursor:]...)
	return string(out), cursor + len(add)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func sharedPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
