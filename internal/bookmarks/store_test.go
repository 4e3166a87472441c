package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ijqrs/internal/panes"
)

func TestNewFileStoreCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookmarks")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	items, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewFileStoreDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	s, err := NewFileStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ijqrs", "bookmarks"), s.Path())
}

func TestLoadDropsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	require.NoError(t, os.WriteFile(path, []byte(".a\n\n.b | keys\r\n\n"), 0o600))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	items, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{".a", ".b | keys"}, items)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Save([]string{".x", ".y[0]"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".x\n.y[0]\n", string(data))

	items, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{".x", ".y[0]"}, items)

	require.NoError(t, s.Save(nil))
	items, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListPersistsThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	list, err := panes.NewBookmarkList(s)
	require.NoError(t, err)
	_, err = list.Add(".a")
	require.NoError(t, err)
	_, err = list.Add(".b")
	require.NoError(t, err)

	reopened, err := panes.NewBookmarkList(s)
	require.NoError(t, err)
	assert.Equal(t, []string{".a", ".b"}, reopened.Items())
}
