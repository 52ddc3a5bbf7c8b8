// Package config loads the TOML document that configures a terminal
// window: geometry, font, colors, and the connection parameters for
// TELNET and raw-socket sessions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the recognized top-level keys. Every field has a usable
// default applied by Default, matching mvt_worker_open_terminal's
// built-in defaults when no config file is present.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	SaveLines int `toml:"save-lines"`

	FontName string  `toml:"font-name"`
	FontSize float64 `toml:"font-size"`

	ForegroundColor       string `toml:"foreground-color"`
	BackgroundColor       string `toml:"background-color"`
	ScrollForegroundColor string `toml:"scroll-foreground-color"`
	ScrollBackgroundColor string `toml:"scroll-background-color"`

	TerminalType     string `toml:"terminal-type"`
	Username         string `toml:"username"`
	XDisplayLocation string `toml:"x-display-location"`

	Hostname string `toml:"hostname"`
	Port     int    `toml:"port"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Width:        80,
		Height:       24,
		SaveLines:    64,
		FontSize:     13,
		TerminalType: "xterm-256color",
	}
}

// Path returns the config file location, $XDG_CONFIG_HOME/mvt/mvt.toml
// falling back to ~/.config/mvt/mvt.toml.
func Path() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mvt", "mvt.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mvt.toml"
	}
	return filepath.Join(home, ".config", "mvt", "mvt.toml")
}

// Load reads and parses the config file at Path, returning Default if it
// does not exist.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads and parses the TOML document at path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero-valued fields that must never be zero at
// runtime, for files that only set a handful of keys.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.SaveLines == 0 {
		c.SaveLines = d.SaveLines
	}
	if c.FontSize == 0 {
		c.FontSize = d.FontSize
	}
	if c.TerminalType == "" {
		c.TerminalType = d.TerminalType
	}
}

// Save writes cfg to path as TOML, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
