// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustWriteScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteScript(t, dir, "deploy.sh", "#!/bin/sh\nexit 0\n")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected script at %s: %v", path, err)
	}
	if info.Mode()&0o111 == 0 {
		t.Errorf("script mode %v is not executable", info.Mode())
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteFile(t, dir, "notes.txt", "not a script\n")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
	if info.Mode()&0o111 != 0 {
		t.Errorf("file mode %v must not be executable", info.Mode())
	}
}

func TestMustMkdirAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustMkdirAll(t, dir, "cluster", "tools")

	if want := filepath.Join(dir, "cluster", "tools"); path != want {
		t.Errorf("MustMkdirAll() = %q, want %q", path, want)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory at %s: %v", path, err)
	}
}

func TestSetHomeDir(t *testing.T) {
	dir := t.TempDir()
	SetHomeDir(t, dir)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() returned error: %v", err)
	}
	if home != dir {
		t.Errorf("UserHomeDir() = %q, want %q", home, dir)
	}
}
