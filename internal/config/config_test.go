package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Theme != "classic" || cfg.UI.CharLimit != 200 || cfg.Log.Level != "info" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "todos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[ui]\ntheme = \"neon\"\ngroup = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Theme != "neon" || !cfg.UI.Group {
		t.Fatalf("expected neon grouped, got %+v", cfg.UI)
	}
	if cfg.UI.CharLimit != 200 {
		t.Fatalf("expected default char limit, got %d", cfg.UI.CharLimit)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestParse_ExplicitZeroCharLimit(t *testing.T) {
	cfg, err := Parse("c.toml", "[ui]\nchar-limit = 0\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.UI.CharLimit != 0 {
		t.Fatalf("expected explicit 0 to stick, got %d", cfg.UI.CharLimit)
	}
}

func TestParse_Log(t *testing.T) {
	cfg, err := Parse("c.toml", "[log]\nfile = \" todos.log \"\nlevel = \"debug\"\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Log.File != "todos.log" {
		t.Fatalf("expected trimmed file, got %q", cfg.Log.File)
	}
	level, err := ParseLevel(cfg.Log.Level)
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v (%v)", level, err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"syntax":        "[ui\n",
		"unknown theme": "[ui]\ntheme = \"pink\"\n",
		"unknown level": "[log]\nlevel = \"loud\"\n",
		"unknown key":   "[ui]\ncolour = true\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse("c.toml", data); err == nil {
				t.Fatalf("expected error for %q", data)
			}
		})
	}
}
