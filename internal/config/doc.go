// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/shutl/config.toml (or the XDG equivalent on Linux,
// ~/Library/Application Support/shutl/config.toml on macOS, %AppData%\shutl\config.toml on
// Windows). A missing config file is not an error; defaults apply. The SHUTL_DIR environment
// variable overrides the configured scripts directory.
package config
