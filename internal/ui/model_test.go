package ui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/ijqrs/internal/engine"
	"github.com/oakwood-commons/ijqrs/internal/instruction"
	"github.com/oakwood-commons/ijqrs/internal/panes"
	"github.com/oakwood-commons/ijqrs/internal/session"
)

func TestNewRunsInitialQuery(t *testing.T) {
	f := newFixture(t, `{"a":1,"b":2}`)
	require.Len(t, f.runner.calls, 1)
	assert.Equal(t, runCall{query: ".|keys", source: "/data/doc.json"}, f.runner.calls[0])
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n", f.model.Session().Output().Content())
}

func TestNewFailsWhenEngineMissing(t *testing.T) {
	list, err := panes.NewBookmarkList(&memStore{})
	require.NoError(t, err)
	_, err = New(context.Background(), Options{
		Session: session.New("{}", ".", list),
		Runner:  &fakeRunner{err: errEngineMissing},
	})
	assert.ErrorIs(t, err, engine.ErrStart)
}

func TestNewRequiresRunner(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.Error(t, err)
}

func TestShellEnterRunsQuery(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<C-u>.a<CR>")

	assert.Equal(t, runCall{query: ".a", source: "/data/doc.json"}, f.runner.last())
	assert.Equal(t, "ran .a\n", f.model.Session().Output().Content())
	assert.Equal(t, []string{".|keys", ".a"}, f.model.Session().Command().History())
}

func TestStderrShownWhenStdoutEmpty(t *testing.T) {
	f := newFixture(t, "{}")
	f.runner.answers[".["] = engine.Result{Stderr: "jq: error: syntax error\n", ExitCode: 3}
	f.press("<C-u>.[<CR>")
	assert.Equal(t, "jq: error: syntax error\n", f.model.Session().Output().Content())
	assert.False(t, f.model.Quitting())
}

func TestEngineFailureDuringSessionIsFatal(t *testing.T) {
	f := newFixture(t, "{}")
	f.runner.err = errEngineMissing
	f.press("<CR>")
	assert.True(t, f.model.Quitting())
	assert.ErrorIs(t, f.model.Err(), engine.ErrStart)
}

func TestQuitKey(t *testing.T) {
	f := newFixture(t, "{}")
	_, cmd := f.model.Update(tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.True(t, f.model.Quitting())
	assert.NoError(t, f.model.Err())
	assert.False(t, f.model.View().AltScreen)
}

func TestInternalWriteOutput(t *testing.T) {
	rec, restore := instruction.StubPlatformActions()
	t.Cleanup(restore)

	f := newFixture(t, "{}")
	f.runner.answers[".[]"] = engine.Result{Stdout: "[1,2,3]"}
	f.press("<C-u>.[]<CR>", "<Esc>w out.json<CR>")

	assert.Equal(t, map[string]string{"out.json": "[1,2,3]"}, rec.Files)
	internal := f.model.Session().Internal()
	assert.Empty(t, internal.Text())
	assert.Equal(t, []string{"", "w out.json"}, internal.History())
	msg, isErr := f.model.Status()
	assert.False(t, isErr)
	assert.Contains(t, msg, "out.json")
	assert.Equal(t, session.ModeInternal, f.model.Session().Mode())
}

func TestInternalDefaultNames(t *testing.T) {
	rec, restore := instruction.StubPlatformActions()
	t.Cleanup(restore)

	f := newFixture(t, "{}")
	f.press("<Esc>w<CR>", "wc<CR>")
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]\n", rec.Files[instruction.DefaultOutFile])
	assert.Equal(t, ".|keys", rec.Files[instruction.DefaultCmdFile])
}

func TestInternalUnknownCommand(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<Esc>wq<CR>")

	internal := f.model.Session().Internal()
	assert.True(t, internal.Failed())
	assert.Equal(t, "Unknown command: wq", internal.Content())
	assert.False(t, f.model.Quitting())

	f.press("r")
	assert.False(t, internal.Failed())
	assert.Equal(t, "r", internal.Text())
}

func TestInternalWriteFailureIsRecoverable(t *testing.T) {
	rec, restore := instruction.StubPlatformActions()
	t.Cleanup(restore)
	rec.Err = errors.New("permission denied")

	f := newFixture(t, "{}")
	f.press("<Esc>w /root/out<CR>")
	assert.True(t, f.model.Session().Internal().Failed())
	assert.Contains(t, f.model.Session().Internal().Content(), "permission denied")
	assert.False(t, f.model.Quitting())
}

func TestInternalRerunAndQuit(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<Esc>r<CR>")
	assert.Len(t, f.runner.calls, 2)

	f.runner.err = errEngineMissing
	f.press("r<CR>")
	assert.True(t, f.model.Quitting())
	assert.ErrorIs(t, f.model.Err(), engine.ErrStart)
}

func TestInternalQuit(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<Esc>:q<CR>")
	assert.True(t, f.model.Quitting())
	assert.NoError(t, f.model.Err())
}

func TestAddBookmarkKey(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<C-a>")
	assert.Equal(t, []string{".|keys"}, f.store.items)
	msg, isErr := f.model.Status()
	assert.False(t, isErr)
	assert.Equal(t, "bookmarked .|keys", msg)
}

func TestBookmarkToggleAddsOnClose(t *testing.T) {
	f := newFixture(t, "{}", ".x")
	f.press("<C-s>")
	assert.Equal(t, session.ModeBookmarks, f.model.Session().Mode())
	f.press("<C-s>")
	assert.Equal(t, session.ModeShell, f.model.Session().Mode())
	assert.Equal(t, []string{".x", ".|keys"}, f.store.items)
}

func TestBookmarkSaveErrorShownInStatus(t *testing.T) {
	f := newFixture(t, "{}", ".x")
	f.store.err = errors.New("read-only")
	f.press("<C-a>")
	msg, isErr := f.model.Status()
	assert.True(t, isErr)
	assert.Contains(t, msg, "read-only")

	f.press("<C-s>", "<Del>")
	msg, isErr = f.model.Status()
	assert.True(t, isErr)
	assert.Contains(t, msg, "read-only")
}

func TestLoadBookmarkReruns(t *testing.T) {
	f := newFixture(t, "{}", ".x", ".y")
	f.press("<C-s>", "<Down><CR>")

	s := f.model.Session()
	assert.Equal(t, session.ModeShell, s.Mode())
	assert.Equal(t, panes.KindCommand, s.Focus())
	assert.Equal(t, ".y", s.Command().Text())
	assert.Equal(t, ".y", f.runner.last().query)
	assert.Equal(t, "ran .y\n", s.Output().Content())
}

func TestWindowSize(t *testing.T) {
	f := newFixture(t, "{}")
	f.model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	lines := plain(f.model.Render())
	assert.Len(t, lines, 30)
	assert.True(t, f.model.View().AltScreen)
}

func TestKeysIgnoredAfterQuit(t *testing.T) {
	f := newFixture(t, "{}")
	f.press("<C-q>")
	_, cmd := f.model.Update(pressMsg(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Len(t, f.runner.calls, 1)
}
