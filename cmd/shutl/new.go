// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/config"
	"github.com/k15r/shutl/internal/discovery"
	"github.com/k15r/shutl/pkg/annotation"
)

// newNewCommand creates the `shutl new` command.
func newNewCommand(cfg *config.Config, disc *discovery.Discovery) *cobra.Command {
	var (
		scriptType string
		editor     string
		noEdit     bool
	)

	cmd := &cobra.Command{
		Use:   "new [location] <name>",
		Short: "Create a new script",
		Long: `Create a new script under the scripts directory.

With one argument the script is created at the top level; with two, the
first is a subdirectory path (created as needed) and the second the
script name. The script starts from a template matching its type, is
marked executable, and opens in an editor unless --no-edit is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := ""
			name := args[0]
			if len(args) == 2 {
				location = args[0]
				name = args[1]
			}
			return createScript(cfg, disc, location, name, config.ScriptType(scriptType), editor, noEdit)
		},
	}

	cmd.Flags().StringVarP(&scriptType, "type", "t", cfg.ScriptType.String(), "Type of script (e.g., bash, python)")
	cmd.Flags().StringVarP(&editor, "editor", "e", "", "Editor to use (defaults to $EDITOR or 'vim')")
	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "Don't open the script in an editor")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		types := config.ScriptTypes()
		values := make([]string, len(types))
		for i, t := range types {
			values[i] = t.String()
		}
		return values, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// createScript scaffolds a script file under the scripts root and opens
// it in the resolved editor unless noEdit is set.
func createScript(cfg *config.Config, disc *discovery.Discovery, location, name string, scriptType config.ScriptType, editor string, noEdit bool) error {
	if valid, errs := scriptType.IsValid(); !valid {
		return errs[0]
	}

	dir := disc.Root()
	if location != "" {
		dir = filepath.Join(dir, filepath.FromSlash(location))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create script directory: %w", err)
	}

	filename := name
	if !strings.HasSuffix(filename, scriptType.Extension()) {
		filename += scriptType.Extension()
	}
	path := filepath.Join(dir, filename)

	template := scriptTemplate(strings.TrimSuffix(name, scriptType.Extension()), scriptType, path)
	if err := os.WriteFile(path, []byte(template), 0o755); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	// WriteFile permissions are masked by the umask; the execute bit is
	// what makes the script discoverable, so set it explicitly.
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("failed to mark script executable: %w", err)
	}

	if !noEdit {
		if err := openEditor(resolveEditor(cfg, editor), path); err != nil {
			return err
		}
	}

	fmt.Println(SuccessStyle.Render("Created script: ") + CmdStyle.Render(path))
	return nil
}

// scriptTemplate renders the starter content: the type's shebang plus an
// annotation header the new script can grow from.
func scriptTemplate(name string, scriptType config.ScriptType, path string) string {
	prefix := annotation.CommentPrefix(path)
	return strings.Join([]string{
		scriptType.Shebang(),
		prefix + "description: " + name,
		prefix + "arg:input - Input file",
		prefix + "flag:verbose - Enable verbose output",
		"",
	}, "\n")
}

// resolveEditor picks the editor: the flag wins, then the configured
// chain (config file, $EDITOR, vim).
func resolveEditor(cfg *config.Config, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.ResolveEditor()
}

// openEditor opens path in the given editor, attached to the terminal.
func openEditor(editor, path string) error {
	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor %s: %w", editor, err)
	}
	return nil
}
