// Package instruction parses and executes the housekeeping commands typed on
// the internal command line (`r`, `w`, `wc`, `y`, `yc`, `q`).
package instruction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oakwood-commons/ijqrs/pkg/logger"
)

const (
	// DefaultOutFile receives the output pane for a bare `w`.
	DefaultOutFile = "ijqrs.out"
	// DefaultCmdFile receives the query text for a bare `wc`.
	DefaultCmdFile = "ijqrs.cmd"
)

// ErrUnknownCommand is wrapped by Execute for unrecognised command words.
// The message is shown to the user verbatim, hence the capital letter.
var ErrUnknownCommand = errors.New("Unknown command") //nolint:staticcheck

// Kind enumerates the internal commands.
type Kind int

const (
	Unknown Kind = iota
	Rerun
	WriteOut
	WriteCmd
	YankOut
	YankCmd
	Quit
)

var kindsByWord = map[string]Kind{
	"r":  Rerun,
	"w":  WriteOut,
	"wc": WriteCmd,
	"y":  YankOut,
	"yc": YankCmd,
	"q":  Quit,
}

// Instruction is one parsed command line.
type Instruction struct {
	Kind Kind
	Word string
	Arg  string
}

// Parse splits line into a command word and an optional argument. A leading
// `:` is accepted and ignored.
func Parse(line string) Instruction {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimPrefix(line, ":"))
	word, arg, _ := strings.Cut(line, " ")
	in := Instruction{Word: word, Arg: strings.TrimSpace(arg)}
	if k, ok := kindsByWord[word]; ok {
		in.Kind = k
	}
	return in
}

// Host is the session state an instruction reads from and acts on.
type Host interface {
	// Output returns the result pane content.
	Output() string
	// Query returns the query line text.
	Query() string
	// Rerun evaluates the current query again.
	Rerun(ctx context.Context) error
	// Quit ends the session.
	Quit()
}

// Execute parses line and runs it against h. It returns a short status
// message on success. An empty line does nothing.
func Execute(ctx context.Context, line string, h Host) (string, error) {
	in := Parse(line)
	if in.Word == "" {
		return "", nil
	}
	lgr := logger.FromContext(ctx)
	lgr.V(1).Info("internal command", "word", in.Word, "arg", in.Arg)

	switch in.Kind {
	case Rerun:
		if err := h.Rerun(ctx); err != nil {
			return "", err
		}
		return "query re-run", nil
	case WriteOut:
		return write(orDefault(in.Arg, DefaultOutFile), h.Output())
	case WriteCmd:
		return write(orDefault(in.Arg, DefaultCmdFile), h.Query())
	case YankOut:
		return yank("output", h.Output())
	case YankCmd:
		return yank("query", h.Query())
	case Quit:
		h.Quit()
		return "", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, in.Word)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func write(name, content string) (string, error) {
	if err := writeFileFn(name, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return fmt.Sprintf("wrote %d bytes to %s", len(content), name), nil
}

func yank(what, content string) (string, error) {
	if err := copyToClipboardFn(content); err != nil {
		return "", fmt.Errorf("copy %s: %w", what, err)
	}
	return fmt.Sprintf("copied %s to clipboard", what), nil
}
