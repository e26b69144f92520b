package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WORDTILES_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Words.Sentence != DefaultSentence {
		t.Fatalf("sentence mismatch: %q", cfg.Words.Sentence)
	}
	if cfg.Layout.ItemSpacing != 1 || cfg.Layout.LineSpacing != 1 || cfg.Layout.GhostLines != 2 {
		t.Fatalf("layout defaults mismatch: %+v", cfg.Layout)
	}
	if !cfg.UI.AltScreen || cfg.UI.Help {
		t.Fatalf("ui defaults mismatch: %+v", cfg.UI)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "wordtiles.toml")
	content := `
[words]
sentence = "one two three"

[layout]
item_spacing = 3
line_spacing = -2

[ui]
alt_screen = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WORDTILES_LAYOUT_GHOST_LINES", "5")
	t.Setenv("WORDTILES_UI_HELP", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Words.Sentence != "one two three" {
		t.Fatalf("sentence mismatch: %q", cfg.Words.Sentence)
	}
	if cfg.Layout.ItemSpacing != 3 {
		t.Fatalf("item spacing mismatch: %d", cfg.Layout.ItemSpacing)
	}
	if cfg.Layout.LineSpacing != 0 {
		t.Fatalf("negative line spacing should clamp to 0, got %d", cfg.Layout.LineSpacing)
	}
	if cfg.Layout.GhostLines != 5 {
		t.Fatalf("env override ignored: %d", cfg.Layout.GhostLines)
	}
	if cfg.UI.AltScreen || !cfg.UI.Help {
		t.Fatalf("ui mismatch: %+v", cfg.UI)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "wordtiles")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[words]\nfile = \"seed.json\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Words.File != "seed.json" {
		t.Fatalf("file mismatch: %q", cfg.Words.File)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(filepath.Join(dir, "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}
