package panes

import (
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Store persists bookmark lists.
type Store interface {
	Load() ([]string, error)
	Save(items []string) error
}

// BookmarkList is an ordered set of saved queries with a selection cursor.
// Every mutation is written through to the store.
type BookmarkList struct {
	items    []string
	selected Scroller
	store    Store
	err      error
}

// NewBookmarkList loads the initial items from store.
func NewBookmarkList(store Store) (*BookmarkList, error) {
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}
	l := &BookmarkList{store: store}
	for _, item := range items {
		if item != "" && !slices.Contains(l.items, item) {
			l.items = append(l.items, item)
		}
	}
	l.resize()
	return l, nil
}

// Kind implements Pane.
func (l *BookmarkList) Kind() Kind { return KindBookmarks }

// Items returns a copy of the bookmarks in insertion order.
func (l *BookmarkList) Items() []string { return slices.Clone(l.items) }

// Selected returns the index of the current bookmark.
func (l *BookmarkList) Selected() int { return l.selected.Position() }

// Current returns the selected bookmark, or "" when the list is empty.
func (l *BookmarkList) Current() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.selected.Position()]
}

// Err returns the last persistence error raised from a key press and resets it.
func (l *BookmarkList) Err() error {
	err := l.err
	l.err = nil
	return err
}

// Add appends item unless it is empty or already present, then persists.
func (l *BookmarkList) Add(item string) (bool, error) {
	if item == "" || slices.Contains(l.items, item) {
		return false, nil
	}
	l.items = append(l.items, item)
	l.resize()
	if err := l.store.Save(l.items); err != nil {
		return true, fmt.Errorf("saving bookmarks: %w", err)
	}
	return true, nil
}

// DeleteCurrent removes the selected bookmark and persists. It reports
// whether anything was removed.
func (l *BookmarkList) DeleteCurrent() (bool, error) {
	if len(l.items) == 0 {
		return false, nil
	}
	l.items = slices.Delete(l.items, l.selected.Position(), l.selected.Position()+1)
	l.resize()
	if err := l.store.Save(l.items); err != nil {
		return true, fmt.Errorf("saving bookmarks: %w", err)
	}
	return true, nil
}

func (l *BookmarkList) resize() {
	l.selected.SetMax(max(len(l.items)-1, 0))
}

func (l *BookmarkList) Up()   { l.selected.Prev() }
func (l *BookmarkList) Down() { l.selected.Next() }

// HandleKey implements Pane. Enter loads the selected bookmark.
func (l *BookmarkList) HandleKey(msg tea.KeyPressMsg) Signal {
	switch {
	case key.Matches(msg, BookmarkKeys.Load):
		if cur := l.Current(); cur != "" {
			return Signal{Kind: SignalLoadBookmark, Text: cur}
		}
	case key.Matches(msg, BookmarkKeys.Delete):
		if _, err := l.DeleteCurrent(); err != nil {
			l.err = err
		}
	case key.Matches(msg, BookmarkKeys.Up):
		l.Up()
	case key.Matches(msg, BookmarkKeys.Down):
		l.Down()
	}
	return Nop
}
