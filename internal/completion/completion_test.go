package completion

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsSortedAndUnique(t *testing.T) {
	fns := Functions()
	require.NotEmpty(t, fns)
	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = fn.Name
		assert.NotEmpty(t, fn.Description, fn.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))
	for i := 1; i < len(names); i++ {
		assert.NotEqual(t, names[i-1], names[i])
	}
}

func TestFunctionsIsACopy(t *testing.T) {
	fns := Functions()
	fns[0].Name = "changed"
	assert.NotEqual(t, "changed", Functions()[0].Name)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "", want: nil},
		{prefix: "zzz", want: nil},
		{prefix: "to_", want: []string{"to_entries"}},
		{prefix: "key", want: []string{"keys", "keys_unsorted"}},
		{prefix: "min", want: []string{"min", "min_by"}},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			var got []string
			for _, fn := range Match(tt.prefix) {
				got = append(got, fn.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{name: "unique match", text: ".items | to_en", cursor: 14, wantText: ".items | to_entries", wantCursor: 19},
		{name: "shared prefix", text: "ascii", cursor: 5, wantText: "ascii_", wantCursor: 6},
		{name: "already complete", text: "keys", cursor: 4, wantText: "keys", wantCursor: 4},
		{name: "mid line", text: "map(sel) | length", cursor: 7, wantText: "map(select) | length", wantCursor: 10},
		{name: "field access untouched", text: ".ke", cursor: 3, wantText: ".ke", wantCursor: 3},
		{name: "variable untouched", text: "$en", cursor: 3, wantText: "$en", wantCursor: 3},
		{name: "no word", text: ". | ", cursor: 4, wantText: ". | ", wantCursor: 4},
		{name: "no match", text: "frob", cursor: 4, wantText: "frob", wantCursor: 4},
		{name: "cursor out of range", text: "ma", cursor: 9, wantText: "ma", wantCursor: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, cursor := Complete(tt.text, tt.cursor)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}
