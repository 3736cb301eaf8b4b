package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load of missing config should yield defaults: %v", err)
	}
	if cfg.CrossrefMailto != "" {
		t.Errorf("default mailto = %q, want empty", cfg.CrossrefMailto)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(QcrefPath(root), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{CrossrefMailto: "researcher@example.org"}
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CrossrefMailto != cfg.CrossrefMailto {
		t.Errorf("mailto = %q, want %q", loaded.CrossrefMailto, cfg.CrossrefMailto)
	}
}

func TestFindProject(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(QcrefPath(root), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindProject(nested)
	if err != nil {
		t.Fatalf("FindProject: %v", err)
	}
	// Resolve symlinks so the comparison works on macOS /tmp.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(found)
	if gotResolved != wantResolved {
		t.Errorf("FindProject = %q, want %q", found, root)
	}
}

func TestFindProjectNotFound(t *testing.T) {
	if _, err := FindProject(t.TempDir()); err == nil {
		t.Error("FindProject outside any project should fail")
	}
}

func TestMailtoEnvOverride(t *testing.T) {
	t.Setenv("CROSSREF_MAILTO", "env@example.org")
	cfg := &Config{CrossrefMailto: "file@example.org"}
	if got := cfg.Mailto(); got != "env@example.org" {
		t.Errorf("Mailto = %q, want env override", got)
	}

	t.Setenv("CROSSREF_MAILTO", "")
	if got := cfg.Mailto(); got != "file@example.org" {
		t.Errorf("Mailto = %q, want file value", got)
	}
}
