// Package bookmarks persists saved queries as a plain text file with one
// query per line.
package bookmarks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oakwood-commons/ijqrs/pkg/settings"
)

// DefaultFileName is the bookmark file name inside the per-user config dir.
const DefaultFileName = "bookmarks"

// FileStore reads and rewrites a bookmark file.
type FileStore struct {
	path string
}

// NewFileStore returns a store at path, or at the default per-user location
// when path is empty. The file and its directory are created when absent.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := settings.ConfigFile(DefaultFileName)
		if err != nil {
			return nil, fmt.Errorf("resolving bookmark file: %w", err)
		}
		path = p
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

// Load returns the non-empty lines of the bookmark file.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading bookmarks %s: %w", s.path, err)
	}
	var items []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items, nil
}

// Save replaces the file contents with items, one per line.
func (s *FileStore) Save(items []string) error {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing bookmarks %s: %w", s.path, err)
	}
	return nil
}

func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking bookmarks %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating bookmark directory: %w", err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		return fmt.Errorf("creating bookmarks %s: %w", path, err)
	}
	return nil
}
