package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsDefault(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("LoadFile(missing) = %+v, want %+v", cfg, want)
	}
}

func TestLoadFileParsesRecognizedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvt.toml")
	body := `
width = 100
height = 30
save-lines = 500
font-name = "DejaVu Sans Mono"
font-size = 14.5
foreground-color = "#f0f0f0"
background-color = "#101020"
terminal-type = "vt100"
hostname = "example.org"
port = 23
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 30 {
		t.Errorf("geometry = %dx%d, want 100x30", cfg.Width, cfg.Height)
	}
	if cfg.SaveLines != 500 {
		t.Errorf("SaveLines = %d, want 500", cfg.SaveLines)
	}
	if cfg.FontName != "DejaVu Sans Mono" || cfg.FontSize != 14.5 {
		t.Errorf("font = %q %v, want DejaVu Sans Mono 14.5", cfg.FontName, cfg.FontSize)
	}
	if cfg.TerminalType != "vt100" {
		t.Errorf("TerminalType = %q, want vt100", cfg.TerminalType)
	}
	if cfg.Hostname != "example.org" || cfg.Port != 23 {
		t.Errorf("socket = %s:%d, want example.org:23", cfg.Hostname, cfg.Port)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvt.toml")
	if err := os.WriteFile(path, []byte(`hostname = "raven.example"`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 24 || cfg.SaveLines != 64 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Hostname != "raven.example" {
		t.Errorf("Hostname = %q, want raven.example", cfg.Hostname)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mvt.toml")
	cfg := Default()
	cfg.Hostname = "bbs.example"
	cfg.Port = 6023
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
