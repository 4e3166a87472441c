package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	assert.Equal(t, &Run{ExitOnError: true}, got)
}

func TestConfigDir(t *testing.T) {
	tests := []struct {
		name string
		xdg  string
		home string
		want string
	}{
		{name: "xdg set", xdg: "/tmp/xdg", home: "/home/u", want: filepath.Join("/tmp/xdg", "ijqrs")},
		{name: "home fallback", xdg: "", home: "/home/u", want: filepath.Join("/home/u", ".config", "ijqrs")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)
			t.Setenv("HOME", tt.home)
			got, err := ConfigDir()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	got, err := ConfigFile("bookmarks")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "ijqrs", "bookmarks"), got)
}
