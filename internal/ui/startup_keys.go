package ui

import (
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
)

// ApplyStartupKeys feeds simulated key presses to the model before the
// program starts. Tokens use Vim notation (`<Esc>`, `<CR>`, `<C-w>`, `<F1>`)
// mixed with literal text; a leading backslash makes a token fully literal.
// Processing stops once the model quits.
func ApplyStartupKeys(m *Model, keys []string) {
	if m == nil {
		return
	}
	for _, raw := range keys {
		for _, msg := range parseStartupToken(raw) {
			if m.quitting {
				return
			}
			m.Update(msg)
		}
	}
}

func parseStartupToken(raw string) []tea.KeyPressMsg {
	token := strings.TrimSpace(raw)
	if token == "" {
		return nil
	}
	if strings.HasPrefix(token, `\`) {
		return literalKeys(strings.TrimPrefix(token, `\`))
	}
	var msgs []tea.KeyPressMsg
	for _, seg := range parseTokenSegments(token) {
		if !seg.isVimKey {
			msgs = append(msgs, literalKeys(seg.text)...)
			continue
		}
		if msg, ok := keyMsgFromToken(seg.text); ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, literalKeys(seg.text)...)
		}
	}
	return msgs
}

func literalKeys(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// tokenSegment is either a <...> key or a run of literal text.
type tokenSegment struct {
	text     string
	isVimKey bool
}

// parseTokenSegments splits "<C-w>abc<CR>" into key and literal segments.
// An unterminated "<" is kept as literal text.
func parseTokenSegments(token string) []tokenSegment {
	var segments []tokenSegment
	remaining := token
	for remaining != "" {
		start := strings.Index(remaining, "<")
		if start == -1 {
			segments = append(segments, tokenSegment{text: remaining})
			break
		}
		if start > 0 {
			segments = append(segments, tokenSegment{text: remaining[:start]})
		}
		end := strings.Index(remaining[start:], ">")
		if end == -1 {
			segments = append(segments, tokenSegment{text: remaining[start:]})
			break
		}
		segments = append(segments, tokenSegment{text: remaining[start : start+end+1], isVimKey: true})
		remaining = remaining[start+end+1:]
	}
	return segments
}

var namedKeys = map[string]tea.KeyPressMsg{
	"esc":       {Code: tea.KeyEscape},
	"escape":    {Code: tea.KeyEscape},
	"c-[":       {Code: tea.KeyEscape},
	"cr":        {Code: tea.KeyEnter},
	"enter":     {Code: tea.KeyEnter},
	"return":    {Code: tea.KeyEnter},
	"tab":       {Code: tea.KeyTab},
	"space":     {Code: ' ', Text: " "},
	"bs":        {Code: tea.KeyBackspace},
	"backspace": {Code: tea.KeyBackspace},
	"del":       {Code: tea.KeyDelete},
	"delete":    {Code: tea.KeyDelete},
	"left":      {Code: tea.KeyLeft},
	"right":     {Code: tea.KeyRight},
	"up":        {Code: tea.KeyUp},
	"down":      {Code: tea.KeyDown},
	"home":      {Code: tea.KeyHome},
	"end":       {Code: tea.KeyEnd},
	"pageup":    {Code: tea.KeyPgUp},
	"pgup":      {Code: tea.KeyPgUp},
	"pagedown":  {Code: tea.KeyPgDown},
	"pgdn":      {Code: tea.KeyPgDown},
	"lt":        {Code: '<', Text: "<"},
	"f1":        {Code: tea.KeyF1},
}

// keyMsgFromToken parses a single <...> token.
func keyMsgFromToken(token string) (tea.KeyPressMsg, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">")
	lower := strings.ToLower(inner)
	if msg, ok := namedKeys[lower]; ok {
		return msg, true
	}
	if rest, ok := strings.CutPrefix(lower, "c-"); ok && utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}, true
	}
	return tea.KeyPressMsg{}, false
}
