// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestScriptType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value ScriptType
		valid bool
	}{
		{name: "zsh", value: ScriptTypeZsh, valid: true},
		{name: "bash", value: ScriptTypeBash, valid: true},
		{name: "python", value: ScriptTypePython, valid: true},
		{name: "ruby", value: ScriptTypeRuby, valid: true},
		{name: "node", value: ScriptTypeNode, valid: true},
		{name: "empty", value: ScriptType(""), valid: false},
		{name: "unknown", value: ScriptType("perl"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.value.IsValid()
			if valid != tt.valid {
				t.Errorf("IsValid() = %v, want %v", valid, tt.valid)
			}
			if !tt.valid {
				if len(errs) != 1 {
					t.Fatalf("expected one validation error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidScriptType) {
					t.Errorf("expected error to wrap ErrInvalidScriptType, got %v", errs[0])
				}
			}
		})
	}
}

func TestScriptType_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ScriptType
		want  string
	}{
		{value: ScriptTypeZsh, want: ".sh"},
		{value: ScriptTypeBash, want: ".sh"},
		{value: ScriptTypePython, want: ".py"},
		{value: ScriptTypeRuby, want: ".rb"},
		{value: ScriptTypeNode, want: ".js"},
	}

	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.value.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptType_Shebang(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ScriptType
		want  string
	}{
		{value: ScriptTypeZsh, want: "#!/bin/zsh"},
		{value: ScriptTypeBash, want: "#!/bin/bash"},
		{value: ScriptTypePython, want: "#!/usr/bin/env python3"},
		{value: ScriptTypeRuby, want: "#!/usr/bin/env ruby"},
		{value: ScriptTypeNode, want: "#!/usr/bin/env node"},
	}

	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.value.Shebang(); got != tt.want {
				t.Errorf("Shebang() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		if valid, errs := cfg.IsValid(); !valid {
			t.Errorf("IsValid() = false, errors: %v", errs)
		}
	})

	t.Run("invalid script type", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{ScriptType: "fortran"}
		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("IsValid() = true, want false")
		}
		if len(errs) != 1 {
			t.Fatalf("expected one error, got %d", len(errs))
		}
		if !errors.Is(errs[0], ErrInvalidConfig) {
			t.Errorf("expected error to wrap ErrInvalidConfig, got %v", errs[0])
		}
		var cfgErr *InvalidConfigError
		if !errors.As(errs[0], &cfgErr) {
			t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
		}
		if len(cfgErr.FieldErrors) != 1 {
			t.Errorf("expected one field error, got %d", len(cfgErr.FieldErrors))
		}
	})
}
