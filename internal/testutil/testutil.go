// Package testutil provides test helpers shared by velac tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content under dir, creating
// parent directories as needed. Returns the absolute path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteProject lays out a Vela project in a fresh temp directory: the
// given manifest as vela.cue plus one file per entry in files, keyed
// by project-relative path. Returns the project directory.
func WriteProject(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "vela.cue", manifest)
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
	return dir
}
