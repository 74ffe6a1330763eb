// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k15r/shutl/internal/config"
	"github.com/k15r/shutl/internal/discovery"
)

// newEditCommand creates the `shutl edit` command. Unlike running a
// script, editing does not require the execute bit, so a half-finished
// script stays reachable.
func newEditCommand(cfg *config.Config, disc *discovery.Discovery) *cobra.Command {
	var editor string

	cmd := &cobra.Command{
		Use:   "edit <command>...",
		Short: "Edit an existing script",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := disc.FindScript(args)
			if err != nil {
				return err
			}
			if err := openEditor(resolveEditor(cfg, editor), path); err != nil {
				return err
			}
			fmt.Println(SuccessStyle.Render("Edited script: ") + CmdStyle.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&editor, "editor", "e", "", "Editor to use (defaults to $EDITOR or 'vim')")

	return cmd
}
