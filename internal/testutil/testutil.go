// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that build script
// trees on disk, reducing boilerplate and ensuring consistent error
// handling.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// MustWriteScript writes an executable script fixture into dir, creating
// parent directories as needed, and returns its path. The execute bit is
// set explicitly because WriteFile permissions are masked by the umask,
// and the execute bit is what makes a script visible to discovery. The
// test fails immediately if the write fails.
func MustWriteScript(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := mustPrepare(t, dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatalf("failed to chmod script %s: %v", name, err)
	}
	return path
}

// MustWriteFile writes a non-executable file fixture into dir, creating
// parent directories as needed, and returns its path. Use this for sidecar
// files and for files that must stay invisible to discovery. The test
// fails immediately if the write fails.
func MustWriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := mustPrepare(t, dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
	return path
}

func mustPrepare(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", name, err)
	}
	return path
}

// MustMkdirAll creates a directory along with any necessary parents and
// returns its path. The test fails immediately if the operation fails.
func MustMkdirAll(t testing.TB, elem ...string) string {
	t.Helper()
	path := filepath.Join(elem...)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", path, err)
	}
	return path
}

// SetHomeDir points the platform's home directory variable at dir for the
// duration of the test.
//
// Platform handling:
//   - Windows: sets USERPROFILE
//   - Linux/macOS: sets HOME
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("USERPROFILE", dir)
	default:
		t.Setenv("HOME", dir)
	}
}
