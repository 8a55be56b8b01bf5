// Package e2e provides end-to-end tests for the velac CLI.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var velacBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "velac-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	velacBinary = filepath.Join(tmpDir, "velac")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", velacBinary, "../../cmd/velac")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build velac binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runVelac runs the velac binary with the given arguments and returns
// its output. The user config is pointed into the work directory so the
// developer's real configuration never leaks into a test.
func runVelac(t *testing.T, workDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, velacBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"VELAC_CONFIG="+filepath.Join(workDir, ".velac-test-config.yaml"))

	stdoutBytes, err := cmd.Output()
	var stderrBytes []byte
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderrBytes = exitErr.Stderr
	}

	return string(stdoutBytes), string(stderrBytes), err
}

// backdateSources pushes every .vela file an hour into the past so the
// outputs of the next build are unambiguously newer.
func backdateSources(t *testing.T, dir string) {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".vela" {
			return err
		}
		return os.Chtimes(path, past, past)
	})
	require.NoError(t, err)
}

func TestE2E_Init(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runVelac(t, tmpDir, "init", "my-app")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(tmpDir, "my-app", "vela.cue"))
	assert.FileExists(t, filepath.Join(tmpDir, "my-app", "src", "Main.vela"))
	assert.FileExists(t, filepath.Join(tmpDir, "my-app", ".gitignore"))
}

func TestE2E_Init_CustomDir(t *testing.T) {
	tmpDir := t.TempDir()
	customDir := filepath.Join(tmpDir, "custom", "path", "my-app")

	_, stderr, err := runVelac(t, tmpDir, "init", "my-app", "--dir", customDir)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(customDir, "vela.cue"))
	assert.FileExists(t, filepath.Join(customDir, "src", "Main.vela"))
}

func TestE2E_Init_ExistingDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "my-app"), 0o755))

	_, _, err := runVelac(t, tmpDir, "init", "my-app")
	assert.Error(t, err)

	// Check exit code is 2 (validation error)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 2, exitErr.ExitCode(), "expected exit code 2 for validation error")
	}
}

func TestE2E_Build(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runVelac(t, tmpDir, "init", "my-app")
	require.NoError(t, err, "init failed: %s", stderr)

	projectDir := filepath.Join(tmpDir, "my-app")
	stdout, stderr, err := runVelac(t, tmpDir, "build", projectDir)
	require.NoError(t, err, "build failed: %s", stderr)
	assert.Contains(t, stdout, "compiled")

	out := filepath.Join(projectDir, "output")
	assert.FileExists(t, filepath.Join(out, "Main", "Main.c"))
	assert.FileExists(t, filepath.Join(out, "Main", "Main.h"))
	assert.FileExists(t, filepath.Join(out, "Main", "externs.json"))
	assert.FileExists(t, filepath.Join(out, "Makefile"))
	assert.FileExists(t, filepath.Join(out, "runtime", "vela.h"))
}

func TestE2E_Build_Incremental(t *testing.T) {
	tmpDir := t.TempDir()

	_, stderr, err := runVelac(t, tmpDir, "init", "my-app")
	require.NoError(t, err, "init failed: %s", stderr)

	projectDir := filepath.Join(tmpDir, "my-app")
	backdateSources(t, projectDir)

	_, stderr, err = runVelac(t, tmpDir, "build", projectDir)
	require.NoError(t, err, "first build failed: %s", stderr)

	stdout, stderr, err := runVelac(t, tmpDir, "build", projectDir)
	require.NoError(t, err, "second build failed: %s", stderr)
	assert.Contains(t, stdout, "fresh")
}

func TestE2E_Build_NoProject(t *testing.T) {
	tmpDir := t.TempDir()

	_, _, err := runVelac(t, tmpDir, "build")
	assert.Error(t, err)

	// Check exit code is 4 (not found)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		assert.Equal(t, 4, exitErr.ExitCode(), "expected exit code 4 for missing project")
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, stderr, err := runVelac(t, t.TempDir(), "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "velac")
}
