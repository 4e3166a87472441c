package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func() context.Context
		wantOk bool
		want   *Run
	}{
		{
			name: "context_with_settings",
			ctx: func() context.Context {
				return IntoContext(context.Background(), &Run{NoColor: true, LogFile: "x.log"})
			},
			wantOk: true,
			want:   &Run{NoColor: true, LogFile: "x.log"},
		},
		{
			name:   "context_without_settings",
			ctx:    context.Background,
			wantOk: false,
		},
		{
			name: "context_with_wrong_type",
			ctx: func() context.Context {
				return context.WithValue(context.Background(), settingsContextKey, "wrong type")
			},
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromContext(tt.ctx())
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntoContextKeepsPointer(t *testing.T) {
	s := &Run{Source: SourceSettings{FromStdin: true}}
	got, ok := FromContext(IntoContext(context.Background(), s))
	assert.True(t, ok)
	assert.Same(t, s, got)
}
