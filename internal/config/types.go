// Package config loads the YAML configuration: an embedded default document
// overlaid with an optional user file.
package config

// Config is the merged configuration.
type Config struct {
	Engine    EngineConfig    `yaml:"engine"`
	Query     QueryConfig     `yaml:"query"`
	Bookmarks BookmarksConfig `yaml:"bookmarks"`
	UI        UIConfig        `yaml:"ui"`
}

// EngineConfig selects the query engine process.
type EngineConfig struct {
	Binary string   `yaml:"binary"`
	Args   []string `yaml:"args"`
}

// QueryConfig holds query line defaults.
type QueryConfig struct {
	Initial string `yaml:"initial"`
}

// BookmarksConfig locates the bookmark file.
type BookmarksConfig struct {
	File string `yaml:"file"`
}

// UIConfig holds rendering options.
type UIConfig struct {
	NoColor bool        `yaml:"no_color"`
	Theme   ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds ANSI-256 or hex colour strings.
type ThemeConfig struct {
	Border       string `yaml:"border"`
	BorderActive string `yaml:"border_active"`
	Title        string `yaml:"title"`
	HighlightFG  string `yaml:"highlight_fg"`
	HighlightBG  string `yaml:"highlight_bg"`
	Error        string `yaml:"error"`
	Success      string `yaml:"success"`
}
