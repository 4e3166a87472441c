package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseTokenSegments(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []tokenSegment
	}{
		{name: "literal", token: "abc", want: []tokenSegment{{text: "abc"}}},
		{name: "key", token: "<CR>", want: []tokenSegment{{text: "<CR>", isVimKey: true}}},
		{
			name:  "mixed",
			token: "<C-w>ab<CR>",
			want: []tokenSegment{
				{text: "<C-w>", isVimKey: true},
				{text: "ab"},
				{text: "<CR>", isVimKey: true},
			},
		},
		{name: "unterminated", token: "a<b", want: []tokenSegment{{text: "a"}, {text: "<b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTokenSegments(tt.token))
		})
	}
}

func TestKeyMsgFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  tea.KeyPressMsg
		ok    bool
	}{
		{token: "<Esc>", want: tea.KeyPressMsg{Code: tea.KeyEscape}, ok: true},
		{token: "<cr>", want: tea.KeyPressMsg{Code: tea.KeyEnter}, ok: true},
		{token: "<F1>", want: tea.KeyPressMsg{Code: tea.KeyF1}, ok: true},
		{token: "<lt>", want: tea.KeyPressMsg{Code: '<', Text: "<"}, ok: true},
		{token: "<C-w>", want: tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}, ok: true},
		{token: "<nope>", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := keyMsgFromToken(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseStartupToken(t *testing.T) {
	assert.Nil(t, parseStartupToken("   "))
	assert.Equal(t, []tea.KeyPressMsg{
		{Code: '<', Text: "<"},
		{Code: 'C', Text: "C"},
		{Code: 'R', Text: "R"},
		{Code: '>', Text: ">"},
	}, parseStartupToken(`\<CR>`))
	assert.Equal(t, []tea.KeyPressMsg{
		{Code: '<', Text: "<"},
		{Code: 'x', Text: "x"},
		{Code: '>', Text: ">"},
	}, parseStartupToken("<x>"))
}

func TestApplyStartupKeysStopsAfterQuit(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<Esc>", "q<CR>", "<Esc>", "x")
	assert.True(t, f.model.Quitting())
	assert.Equal(t, "q", f.model.Session().Internal().History()[1])
	assert.Equal(t, ".|keys", f.model.Session().Command().Text())
}

func TestApplyStartupKeysNilModel(t *testing.T) {
	assert.NotPanics(t, func() { ApplyStartupKeys(nil, []string{"<CR>"}) })
}
