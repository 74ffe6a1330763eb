// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/config"
)

// newConfigCommand creates the `shutl config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shutl configuration",
		Long: `Manage shutl configuration.

Configuration is stored in:
  - Linux: ~/.config/shutl/config.toml
  - macOS: ~/Library/Application Support/shutl/config.toml
  - Windows: %AppData%\shutl\config.toml

The SHUTL_DIR environment variable overrides the configured scripts
directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout())
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile(force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cfgCmd
}

// showConfig prints the effective configuration: a styled table on a
// terminal, plain key/value lines otherwise.
func showConfig(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	scriptsDir := cfg.ScriptsDir
	if scriptsDir == "" {
		scriptsDir = "~/" + config.ScriptsDirName + " (default)"
	}

	rows := [][]string{
		{"scripts_dir", scriptsDir},
		{"editor", cfg.ResolveEditor()},
		{"script_type", cfg.ScriptType.String()},
	}

	if !writerIsTerminal(out) {
		for _, row := range rows {
			fmt.Fprintf(out, "%s = %s\n", row[0], row[1])
		}
		return nil
	}

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		fmt.Fprintln(out, SubtitleStyle.Render("Config file: ")+CmdStyle.Render(cfgPath))
	} else {
		fmt.Fprintln(out, SubtitleStyle.Render("Config file: (using defaults)"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows))
	return nil
}

// initConfigFile writes the default configuration, refusing to clobber an
// existing file unless forced.
func initConfigFile(force bool) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	data, err := toml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println(SuccessStyle.Render("✓") + " Created default configuration at " + CmdStyle.Render(path))
	return nil
}
