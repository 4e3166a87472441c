// Package settings provides build metadata, per-run options and the
// per-user configuration directory shared by the ijqrs command and its
// internal packages.
package settings

import (
	"errors"
	"os"
	"path/filepath"
)

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "ijqrs"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// ErrNoConfigDir is returned when neither XDG_CONFIG_HOME nor a home
// directory is available.
var ErrNoConfigDir = errors.New("no per-user configuration directory available")

// SourceSettings describes where the document being queried comes from.
type SourceSettings struct {
	FromStdin bool
	Path      string
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options of a single dashboard session.
type Run struct {
	MinLogLevel int8
	LogFile     string
	Source      SourceSettings
	NoColor     bool
	ExitOnError bool
}

// NewCliParams returns the defaults used by the command line entry point.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
		ExitOnError: true,
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/ijqrs, falling back to ~/.config/ijqrs.
// The directory is not created.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, CliBinaryName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(home, ".config", CliBinaryName), nil
}

// ConfigFile joins name onto ConfigDir.
func ConfigFile(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
