// Package source loads the document under inspection. Piped input is
// materialized into a temporary file so the query engine can read it by path.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// TempPattern names the temporary file created for piped input.
const TempPattern = "ijqrs-*.json"

// ErrNoInput is returned when neither a file nor piped input is available.
var ErrNoInput = errors.New("no input: pass a file or pipe a document on stdin")

// Document is the loaded source text and the path the engine reads it from.
type Document struct {
	Path    string
	Content string
	temp    bool
}

// Temporary reports whether Path was created for piped input.
func (d *Document) Temporary() bool { return d.temp }

// Cleanup removes the temporary file created for piped input. It is a no-op
// for documents loaded from a user file.
func (d *Document) Cleanup() error {
	if !d.temp {
		return nil
	}
	d.temp = false
	if err := os.Remove(d.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", d.Path, err)
	}
	return nil
}

// FromFile reads the document at path.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", path, err)
	}
	return &Document{Path: path, Content: string(data)}, nil
}

// FromReader reads r line by line, joins the lines with newlines and writes
// the result to a fresh temp file in dir (os.TempDir when empty).
func FromReader(r io.Reader, dir string) (*Document, error) {
	content, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	f, err := os.CreateTemp(dir, TempPattern)
	if err != nil {
		return nil, fmt.Errorf("creating temp source: %w", err)
	}
	doc := &Document{Path: f.Name(), Content: content, temp: true}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = doc.Cleanup()
		return nil, fmt.Errorf("writing temp source: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = doc.Cleanup()
		return nil, fmt.Errorf("closing temp source: %w", err)
	}
	return doc, nil
}

// Load picks the file when path is set, otherwise piped stdin. piped tells
// whether stdin carries data rather than a terminal.
func Load(path string, stdin io.Reader, piped bool) (*Document, error) {
	switch {
	case path != "":
		return FromFile(path)
	case piped && stdin != nil:
		return FromReader(stdin, "")
	default:
		return nil, ErrNoInput
	}
}

func readLines(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}
