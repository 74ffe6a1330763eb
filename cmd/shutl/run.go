// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/runtime"
	"github.com/k15r/shutl/pkg/annotation"
)

// verboseFlagName is the hidden diagnostic flag every script command
// accepts: dump the computed environment and script path before running.
const verboseFlagName = "shutl-verbose"

// negatedFlagName returns the --no-<name> form paired with a bool flag.
func negatedFlagName(name string) string { return "no-" + name }

// runScript is the RunE behind every leaf command: lift the parsed Cobra
// state into an invocation, spawn the script, and mirror its exit code.
func runScript(cmd *cobra.Command, args []string, path string, meta *annotation.Metadata) error {
	inv, err := buildInvocation(cmd, args, meta)
	if err != nil {
		return err
	}

	result := runtime.Run(path, meta, inv, runtime.Options{})
	if result.Error != nil {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: result.ExitCode, Err: fmt.Errorf("error executing command: %w", result.Error)}
	}
	if result.ExitCode != 0 {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// buildInvocation lifts Cobra's parsed flags and positionals into a
// runtime Invocation. Only flags the user actually changed are recorded;
// defaults are applied later, in one place, when the environment is built.
func buildInvocation(cmd *cobra.Command, args []string, meta *annotation.Metadata) (runtime.Invocation, error) {
	inv := runtime.Invocation{
		Supplied: make(map[string]string),
		BoolSet:  make(map[string]bool),
		Negated:  make(map[string]bool),
	}

	flags := cmd.Flags()
	inv.Verbose, _ = flags.GetBool(verboseFlagName)

	for _, flag := range meta.Flags() {
		spec := flag
		if spec.IsBool() {
			if flags.Changed(spec.Name) {
				inv.BoolSet[spec.Name] = true
			}
			if flags.Changed(negatedFlagName(spec.Name)) {
				inv.Negated[spec.Name] = true
			}
			continue
		}
		if !flags.Changed(spec.Name) {
			continue
		}
		value, err := flags.GetString(spec.Name)
		if err != nil {
			return inv, err
		}
		if err := validateOptionValue(&spec, value); err != nil {
			return inv, err
		}
		inv.Supplied[spec.Name] = value
	}

	positionals := meta.Positionals()
	for i, p := range positionals {
		if i < len(args) {
			inv.Supplied[p.Name] = args[i]
		}
	}
	if len(args) > len(positionals) {
		inv.Extra = append(inv.Extra, args[len(positionals):]...)
	}

	return inv, nil
}

// validateOptionValue rejects a supplied value outside the declared
// option set. Flags without options accept anything.
func validateOptionValue(spec *annotation.ArgSpec, value string) error {
	if len(spec.Options) == 0 {
		return nil
	}
	for _, opt := range spec.Options {
		if value == opt {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for --%s (valid: %s)", value, spec.Name, strings.Join(spec.Options, ", "))
}
