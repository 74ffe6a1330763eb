// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/config"
	"github.com/k15r/shutl/internal/discovery"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// logLevelEnvVar selects the log verbosity (debug, info, warn, error).
const logLevelEnvVar = "SHUTL_LOG"

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newRootCommand builds the root command with the static subcommands
// attached. Script commands are registered separately because they depend
// on the invocation's command path.
func newRootCommand(cfg *config.Config, disc *discovery.Discovery) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shutl",
		Short: "Your scripts, organized as a CLI",
		Long: TitleStyle.Render("shutl") + SubtitleStyle.Render(" - your scripts, organized as a CLI") + `

shutl exposes a directory tree of executable scripts as nested
subcommands: each subdirectory becomes a command group, each executable
file a command. Scripts declare their interface in leading comment
annotations, and declared arguments reach the script as environment
variables.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Drop an executable script into ` + CmdStyle.Render("~/.shutl") + `
  2. Annotate it (see: shutl docs)
  3. Run it with: shutl <script-name>

` + SubtitleStyle.Render("Examples:") + `
  shutl                     List all available commands
  shutl cluster status      Run the 'status' script from ~/.shutl/cluster
  shutl new backup          Scaffold a new script
  shutl edit backup         Open an existing script in your editor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			_ = cmd.Help()
			return &ExitError{Code: 1}
		},
	}

	rootCmd.AddCommand(newNewCommand(cfg, disc))
	rootCmd.AddCommand(newEditCommand(cfg, disc))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// Execute resolves the scripts directory, registers the commands for this
// invocation's path, and runs the CLI. This is called by main.main().
func Execute() {
	applyLogLevel()

	cfg := loadConfigOrDefaults()

	scriptsDir, err := cfg.ResolveScriptsDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
	disc := discovery.New(scriptsDir)

	rootCmd := newRootCommand(cfg, disc)
	if err := registerScriptCommands(rootCmd, disc, scriptPathComponents(os.Args[1:])); err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithErrorHandler(exitCodeErrorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// exitCodeErrorHandler suppresses error rendering for bare exit-code
// mirroring: a script that exits non-zero already said whatever it had to
// say. Everything else gets the standard styled output.
func exitCodeErrorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// scriptPathComponents returns the argv tokens the script tree resolution
// should see. In completion mode the shell invokes the hidden __complete
// command with the real command line after it, so that marker is skipped.
func scriptPathComponents(args []string) []string {
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return args[1:]
	}
	return args
}

// loadConfigOrDefaults loads the configuration, falling back to defaults
// with a warning when the config file is unreadable.
func loadConfigOrDefaults() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return config.DefaultConfig()
	}
	return cfg
}

// applyLogLevel configures the global logger from the environment.
// Unset or unparsable values keep the default (info, so Debug is silent).
func applyLogLevel() {
	lvl := os.Getenv(logLevelEnvVar)
	if lvl == "" {
		return
	}
	parsed, err := log.ParseLevel(lvl)
	if err != nil {
		return
	}
	log.SetLevel(parsed)
}
