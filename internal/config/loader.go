package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/ijqrs/pkg/settings"
)

// FileName is the user config file name inside the per-user config dir.
const FileName = "config.yaml"

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid configuration")

// ResolvePath returns explicit when set, otherwise the per-user config file
// if it exists, otherwise "".
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate, err := settings.ConfigFile(FileName)
	if err != nil {
		return ""
	}
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

// Load returns the embedded defaults overlaid with the file at path. An empty
// path yields the defaults alone.
func Load(path string) (Config, error) {
	cfg, err := EmbeddedDefault()
	if err != nil {
		return cfg, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("config file %s: %w", path, err)
			}
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeInto(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports missing required values.
func (c Config) Validate() error {
	if c.Engine.Binary == "" {
		return fmt.Errorf("%w: engine.binary is empty", ErrInvalid)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
