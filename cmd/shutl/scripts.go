// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/discovery"
	"github.com/k15r/shutl/pkg/annotation"
)

// registerScriptCommands resolves the tree for this invocation's command
// path and attaches the resulting commands to the root. Static subcommands
// are registered first, so a script sharing a name with a built-in is
// shadowed by it.
func registerScriptCommands(root *cobra.Command, disc *discovery.Discovery, components []string) error {
	nodes, err := disc.Build(components)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		root.AddCommand(commandForNode(node))
	}
	return nil
}

// commandForNode lowers one resolved node into a Cobra command.
func commandForNode(n *discovery.Node) *cobra.Command {
	if n.IsLeaf() {
		return newLeafCommand(n)
	}
	return newGroupCommand(n)
}

// newGroupCommand lowers a directory node. Invoking a group bare prints
// its help and exits 1, matching the root command's behavior.
func newGroupCommand(n *discovery.Node) *cobra.Command {
	cmd := &cobra.Command{
		Use:   n.Name,
		Short: n.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			_ = cmd.Help()
			return &ExitError{Code: 1}
		},
	}
	for _, child := range n.Children {
		cmd.AddCommand(commandForNode(child))
	}
	return cmd
}

// newLeafCommand lowers a script node: the declared positionals shape the
// usage line and the argument validator, the declared flags become Cobra
// flags, and RunE hands off to the runtime.
func newLeafCommand(n *discovery.Node) *cobra.Command {
	meta := n.Meta
	if meta == nil {
		meta = &annotation.Metadata{}
	}
	scriptPath := n.Path

	cmd := &cobra.Command{
		Use:   buildScriptUseString(n.Name, meta),
		Short: meta.Description,
		Long:  buildScriptLong(n.Name, scriptPath, meta),
		Args:  scriptArgsValidator(meta),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args, scriptPath, meta)
		},
	}

	registerScriptFlags(cmd, meta)
	return cmd
}

// buildScriptUseString renders the usage line: required positionals in
// angle brackets, defaulted ones in square brackets, the catch-all last.
func buildScriptUseString(name string, meta *annotation.Metadata) string {
	parts := []string{name}
	for _, p := range meta.Positionals() {
		if p.HasDefault {
			parts = append(parts, fmt.Sprintf("[%s]", p.Name))
		} else {
			parts = append(parts, fmt.Sprintf("<%s>", p.Name))
		}
	}
	if ca := meta.CatchAll(); ca != nil {
		parts = append(parts, fmt.Sprintf("[%s]...", ca.Name))
	}
	return strings.Join(parts, " ")
}

// buildScriptLong renders the long help: where the script lives, plus a
// line per declared positional.
func buildScriptLong(name, path string, meta *annotation.Metadata) string {
	long := fmt.Sprintf("Run the '%s' script from %s", name, path)
	if docs := buildArgsDocumentation(meta); docs != "" {
		long += "\n\nArguments:\n" + docs
	}
	return long
}

// buildArgsDocumentation describes the declared positionals, one per line.
func buildArgsDocumentation(meta *annotation.Metadata) string {
	var lines []string
	for _, p := range meta.Positionals() {
		status := "(required)"
		if p.HasDefault {
			status = fmt.Sprintf("(default: %q)", p.Default)
		}
		lines = append(lines, fmt.Sprintf("  %s %s: %s", p.Name, status, p.Description))
	}
	if ca := meta.CatchAll(); ca != nil {
		lines = append(lines, fmt.Sprintf("  %s (variadic): %s", ca.Name, ca.Description))
	}
	return strings.Join(lines, "\n")
}

// scriptArgsValidator enforces the positional arity: every positional
// without a default must be supplied, and without a catch-all nothing
// beyond the declared positionals is accepted.
func scriptArgsValidator(meta *annotation.Metadata) cobra.PositionalArgs {
	minArgs := 0
	for _, p := range meta.Positionals() {
		if !p.HasDefault {
			minArgs++
		}
	}
	maxArgs := len(meta.Positionals())
	hasCatchAll := meta.CatchAll() != nil

	return func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs {
			return fmt.Errorf("accepts at least %d arg(s), received %d", minArgs, len(args))
		}
		if !hasCatchAll && len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		return nil
	}
}

// registerScriptFlags adds the hidden diagnostic flag and one Cobra flag
// per declaration. Boolean flags get a paired --no-<name> negation; a
// declared default satisfies a required flag, so only flags that are
// required without a default are enforced.
func registerScriptFlags(cmd *cobra.Command, meta *annotation.Metadata) {
	cmd.Flags().Bool(verboseFlagName, false, "Enable verbose output")
	_ = cmd.Flags().MarkHidden(verboseFlagName)

	for _, flag := range meta.Flags() {
		spec := flag
		if spec.IsBool() {
			defaultVal := false
			if spec.HasDefault {
				defaultVal, _ = strconv.ParseBool(spec.Default)
			}
			cmd.Flags().Bool(spec.Name, defaultVal, spec.Description)
			negated := negatedFlagName(spec.Name)
			cmd.Flags().Bool(negated, false, fmt.Sprintf("Disable the '%s' flag", spec.Name))
		} else {
			cmd.Flags().String(spec.Name, spec.Default, spec.Description)
			registerFlagCompletion(cmd, &spec)
		}
		if spec.IsRequiredWithoutDefault() {
			_ = cmd.MarkFlagRequired(spec.Name)
		}
	}
}

// registerFlagCompletion wires shell completion for a value flag:
// enumerated options complete to themselves, directory-kinded flags
// complete to directories (scoped to the declared completion root).
func registerFlagCompletion(cmd *cobra.Command, spec *annotation.ArgSpec) {
	switch {
	case len(spec.Options) > 0:
		options := spec.Options
		_ = cmd.RegisterFlagCompletionFunc(spec.Name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return options, cobra.ShellCompDirectiveNoFileComp
		})
	case spec.GetKind() == annotation.KindDir:
		completionRoot := spec.CompletionRoot
		_ = cmd.RegisterFlagCompletionFunc(spec.Name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			if completionRoot != "" {
				return []string{completionRoot}, cobra.ShellCompDirectiveFilterDirs
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		})
	}
}
