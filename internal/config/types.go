// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ScriptTypeZsh scaffolds a zsh script.
	ScriptTypeZsh ScriptType = "zsh"
	// ScriptTypeBash scaffolds a bash script.
	ScriptTypeBash ScriptType = "bash"
	// ScriptTypePython scaffolds a Python script.
	ScriptTypePython ScriptType = "python"
	// ScriptTypeRuby scaffolds a Ruby script.
	ScriptTypeRuby ScriptType = "ruby"
	// ScriptTypeNode scaffolds a Node.js script.
	ScriptTypeNode ScriptType = "node"
)

var (
	// ErrInvalidScriptType is returned when a ScriptType value is not recognized.
	ErrInvalidScriptType = errors.New("invalid script type")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ScriptType selects the template used by the scaffolding command.
	ScriptType string

	// InvalidScriptTypeError is returned when a ScriptType value is not recognized.
	// It wraps ErrInvalidScriptType for errors.Is() compatibility.
	InvalidScriptTypeError struct {
		Value ScriptType
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// ScriptsDir overrides the scripts directory (default: ~/.shutl)
		ScriptsDir string `toml:"scripts_dir" mapstructure:"scripts_dir"`
		// Editor is the editor command for new/edit (default: $EDITOR, then vim)
		Editor string `toml:"editor" mapstructure:"editor"`
		// ScriptType is the default template type for new scripts
		ScriptType ScriptType `toml:"script_type" mapstructure:"script_type"`
	}
)

// DefaultConfig returns the configuration defaults applied when no config
// file is present.
func DefaultConfig() *Config {
	return &Config{
		ScriptsDir: "",
		Editor:     "",
		ScriptType: ScriptTypeZsh,
	}
}

// ScriptTypes lists all recognized script types in display order.
func ScriptTypes() []ScriptType {
	return []ScriptType{ScriptTypeZsh, ScriptTypeBash, ScriptTypePython, ScriptTypeRuby, ScriptTypeNode}
}

// String returns the string representation of the ScriptType.
func (t ScriptType) String() string { return string(t) }

// IsValid returns whether the ScriptType is one of the defined types,
// and a list of validation errors if it is not.
func (t ScriptType) IsValid() (bool, []error) {
	switch t {
	case ScriptTypeZsh, ScriptTypeBash, ScriptTypePython, ScriptTypeRuby, ScriptTypeNode:
		return true, nil
	default:
		return false, []error{&InvalidScriptTypeError{Value: t}}
	}
}

// Extension returns the filename extension for scripts of this type,
// including the leading dot.
func (t ScriptType) Extension() string {
	switch t {
	case ScriptTypePython:
		return ".py"
	case ScriptTypeRuby:
		return ".rb"
	case ScriptTypeNode:
		return ".js"
	default:
		return ".sh"
	}
}

// Shebang returns the interpreter line for scripts of this type,
// without the trailing newline.
func (t ScriptType) Shebang() string {
	switch t {
	case ScriptTypeZsh:
		return "#!/bin/zsh"
	case ScriptTypePython:
		return "#!/usr/bin/env python3"
	case ScriptTypeRuby:
		return "#!/usr/bin/env ruby"
	case ScriptTypeNode:
		return "#!/usr/bin/env node"
	default:
		return "#!/bin/bash"
	}
}

// Error implements the error interface for InvalidScriptTypeError.
func (e *InvalidScriptTypeError) Error() string {
	return fmt.Sprintf("invalid script type %q (valid: zsh, bash, python, ruby, node)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidScriptTypeError) Unwrap() error { return ErrInvalidScriptType }

// IsValid returns whether the Config has valid fields.
// It delegates to ScriptType.IsValid(); string fields need no validation
// because empty values fall back to defaults at resolution time.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ScriptType.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
