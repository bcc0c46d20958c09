package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"qbtime/config"
)

func TestResolveConfigPath(t *testing.T) {
	path, err := resolveConfigPath("./custom.yaml", "/home/user/.qbtime.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "./custom.yaml" {
		t.Fatalf("expected flag value to win, got %q", path)
	}

	path, err = resolveConfigPath("", "/home/user/.qbtime.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/home/user/.qbtime.yaml" {
		t.Fatalf("expected loaded config path, got %q", path)
	}

	path, err = resolveConfigPath("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != ".qbtime.yaml" {
		t.Fatalf("expected home default, got %q", path)
	}
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", ".qbtime.yaml")

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created config: %v", err)
	}
	if string(content) != config.ExampleYAML() {
		t.Fatalf("expected example template content, got %q", string(content))
	}

	created, err = ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be kept")
	}
}
