// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/k15r/shutl/internal/config"
)

// Tests in this file redirect the config directory and must not run in
// parallel with anything else touching the config package state.

func TestShowConfig_PlainOutput(t *testing.T) {
	config.Reset()
	config.SetConfigDirOverride(t.TempDir())
	defer config.Reset()
	t.Setenv(config.ScriptsDirEnvVar, "")
	t.Setenv("EDITOR", "nano")

	var buf bytes.Buffer
	if err := showConfig(&buf); err != nil {
		t.Fatalf("showConfig() returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"scripts_dir = ~/" + config.ScriptsDirName + " (default)",
		"editor = nano",
		"script_type = zsh",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowConfig_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	config.Reset()
	config.SetConfigDirOverride(dir)
	defer config.Reset()
	t.Setenv(config.ScriptsDirEnvVar, "")

	content := "scripts_dir = \"/opt/scripts\"\neditor = \"code\"\nscript_type = \"python\"\n"
	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	var buf bytes.Buffer
	if err := showConfig(&buf); err != nil {
		t.Fatalf("showConfig() returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"scripts_dir = /opt/scripts",
		"editor = code",
		"script_type = python",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInitConfigFile(t *testing.T) {
	dir := t.TempDir()
	config.Reset()
	config.SetConfigDirOverride(dir)
	defer config.Reset()

	if err := initConfigFile(false); err != nil {
		t.Fatalf("initConfigFile() returned error: %v", err)
	}

	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	if cfg.ScriptType != config.ScriptTypeZsh {
		t.Errorf("ScriptType = %q, want %q", cfg.ScriptType, config.ScriptTypeZsh)
	}

	err = initConfigFile(false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want refusal to overwrite", err)
	}

	if err := initConfigFile(true); err != nil {
		t.Errorf("forced init returned error: %v", err)
	}
}
