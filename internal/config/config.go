// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "shutl"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// ScriptsDirName is the default scripts directory under the user's home.
	ScriptsDirName = ".shutl"
	// ScriptsDirEnvVar overrides the scripts directory when set.
	ScriptsDirEnvVar = "SHUTL_DIR"

	// DefaultEditor is used when neither the config nor $EDITOR names one.
	DefaultEditor = "vim"
)

// ConfigDir returns the shutl configuration directory using platform-specific
// conventions: Windows uses %AppData%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// ConfigFilePath returns the full path of the config file, whether or not
// it exists.
func ConfigFilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	cfgDir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(cfgDir, 0o755)
}

// Load reads the configuration, layering sources by precedence: the
// SHUTL_DIR environment variable, then the config file, then defaults.
// A missing config file is not an error; a malformed or invalid one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("scripts_dir", defaults.ScriptsDir)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("script_type", defaults.ScriptType)

	// Env override beats any file value for the scripts directory.
	if err := v.BindEnv("scripts_dir", ScriptsDirEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", ScriptsDirEnvVar, err)
	}

	cfgPath, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	if fileExists(cfgPath) {
		v.SetConfigFile(cfgPath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if valid, errs := cfg.IsValid(); !valid {
		return nil, errs[0]
	}

	return &cfg, nil
}

// ResolveScriptsDir returns the directory holding the script tree. An
// explicitly configured directory (via SHUTL_DIR or the config file) is
// used as-is; the ~/.shutl fallback is created on first use.
func (c *Config) ResolveScriptsDir() (string, error) {
	if c.ScriptsDir != "" {
		return c.ScriptsDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ScriptsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts directory: %w", err)
	}
	return dir, nil
}

// ResolveEditor returns the editor command, preferring the config value,
// then $EDITOR, then vim.
func (c *Config) ResolveEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
