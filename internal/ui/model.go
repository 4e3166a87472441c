// Package ui hosts the dashboard: a bubbletea model that feeds key presses
// to the session, acts on the signals it returns and renders the panes.
package ui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/ijqrs/internal/engine"
	"github.com/oakwood-commons/ijqrs/internal/instruction"
	"github.com/oakwood-commons/ijqrs/internal/panes"
	"github.com/oakwood-commons/ijqrs/internal/session"
	"github.com/oakwood-commons/ijqrs/pkg/logger"
)

// Options configure a Model.
type Options struct {
	Session    *session.Session
	Runner     engine.Runner
	SourcePath string
	EngineName string
	Styles     Styles
	Width      int
	Height     int
}

// Model is the bubbletea model for one dashboard session.
type Model struct {
	ctx        context.Context
	sess       *session.Session
	runner     engine.Runner
	sourcePath string
	engineName string
	styles     Styles

	width  int
	height int

	status    string
	statusErr bool

	err      error
	quitting bool
}

// New builds the model and evaluates the initial query. An engine that
// cannot be started is reported as an error.
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Session == nil || opts.Runner == nil {
		return nil, fmt.Errorf("ui: session and runner are required")
	}
	m := &Model{
		ctx:        ctx,
		sess:       opts.Session,
		runner:     opts.Runner,
		sourcePath: opts.SourcePath,
		engineName: opts.EngineName,
		styles:     opts.Styles,
		width:      opts.Width,
		height:     opts.Height,
	}
	if m.engineName == "" {
		m.engineName = engine.DefaultBinary
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.height <= 0 {
		m.height = defaultHeight
	}
	if err := m.runQuery(); err != nil {
		return nil, err
	}
	return m, nil
}

// Session exposes the underlying session.
func (m *Model) Session() *session.Session { return m.sess }

// Err returns the fatal error that ended the session, if any.
func (m *Model) Err() error { return m.err }

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }

// Status returns the status line message and whether it is an error.
func (m *Model) Status() (string, bool) { return m.status, m.statusErr }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	sig := m.sess.Dispatch(msg)
	if err := m.sess.Bookmarks().Err(); err != nil {
		m.setStatus(err.Error(), true)
	}

	switch sig.Kind {
	case panes.SignalQuit:
		return m.quit(nil)
	case panes.SignalRun:
		if m.sess.Mode() == session.ModeInternal {
			return m.runInternal()
		}
		m.sess.Command().Record()
		if err := m.runQuery(); err != nil {
			return m.quit(err)
		}
	case panes.SignalAddBookmark:
		m.addBookmark()
	case panes.SignalLoadBookmark:
		m.sess.LoadBookmark(sig.Text)
		if err := m.runQuery(); err != nil {
			return m.quit(err)
		}
	}
	return nil
}

// runQuery evaluates the query line and replaces the result pane.
func (m *Model) runQuery() error {
	res, err := m.runner.Run(m.ctx, m.sess.Command().Text(), m.sourcePath)
	if err != nil {
		return err
	}
	m.sess.SetOutput(res.Display())
	return nil
}

func (m *Model) runInternal() tea.Cmd {
	line := m.sess.Internal()
	text := line.Text()
	line.Record()

	h := &host{m: m}
	msg, err := instruction.Execute(m.ctx, text, h)
	line.Clear()
	switch {
	case h.fatal != nil:
		return m.quit(h.fatal)
	case err != nil:
		logger.FromContext(m.ctx).V(1).Info("internal command failed", "command", text, "error", err.Error())
		line.SetError(err.Error())
	case h.quit:
		return m.quit(nil)
	case msg != "":
		m.setStatus(msg, false)
	}
	return nil
}

func (m *Model) addBookmark() {
	text := m.sess.Command().Text()
	added, err := m.sess.Bookmarks().Add(text)
	switch {
	case err != nil:
		m.setStatus(err.Error(), true)
	case added:
		m.setStatus("bookmarked "+text, false)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m *Model) quit(err error) tea.Cmd {
	if err != nil {
		logger.FromContext(m.ctx).Error(err, "session ended")
	}
	m.err = err
	m.quitting = true
	return tea.Quit
}

// host adapts the model to instruction.Host.
type host struct {
	m     *Model
	quit  bool
	fatal error
}

func (h *host) Output() string { return h.m.sess.Output().Content() }
func (h *host) Query() string { return h.m.sess.Command().Text() }
func (h *host) Quit() { h.quit = true }

func (h *host) Rerun(context.Context) error {
	if err := h.m.runQuery(); err != nil {
		h.fatal = err
		return err
	}
	return nil
}
