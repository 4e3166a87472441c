// Package engine runs queries through an external jq-compatible binary.
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/oakwood-commons/ijqrs/pkg/logger"
)

// DefaultBinary is the engine used when none is configured.
const DefaultBinary = "jq"

// ErrStart is returned when the engine process could not be launched.
var ErrStart = errors.New("failed to start query engine")

// Result holds the captured output of one engine invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Display returns stdout, or stderr when stdout is empty. A failing query
// therefore shows the engine's diagnostic in place of a result.
func (r Result) Display() string {
	if r.Stdout != "" {
		return r.Stdout
	}
	return r.Stderr
}

// Runner evaluates query against the document at sourcePath.
type Runner interface {
	Run(ctx context.Context, query, sourcePath string) (Result, error)
}

// Exec is a Runner backed by a subprocess invoked as
// `<Binary> <Args...> <query> <sourcePath>`.
type Exec struct {
	Binary string
	Args   []string
}

// New returns an Exec runner. An empty binary selects DefaultBinary.
func New(binary string, args ...string) *Exec {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Exec{Binary: binary, Args: args}
}

// Run executes the engine and waits for it. A non-zero exit status is not an
// error; only a failure to start the process is.
func (e *Exec) Run(ctx context.Context, query, sourcePath string) (Result, error) {
	lgr := logger.FromContext(ctx)
	argv := make([]string, 0, len(e.Args)+2)
	argv = append(argv, e.Args...)
	argv = append(argv, query, sourcePath)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Binary, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		lgr.Error(err, "engine did not start", "binary", e.Binary)
		return Result{}, fmt.Errorf("%w %q: %w", ErrStart, e.Binary, err)
	}

	lgr.V(1).Info("query evaluated",
		logger.QueryKey, query,
		logger.SourceKey, sourcePath,
		"exit_code", res.ExitCode,
		logger.DurationKey, time.Since(start).String(),
	)
	return res, nil
}
