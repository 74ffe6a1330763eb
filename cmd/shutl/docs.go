// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// annotationGuide is the reference shown by `shutl docs`.
const annotationGuide = `# shutl scripts

shutl turns the directory tree under your scripts root (default
` + "`~/.shutl`" + `, override with ` + "`SHUTL_DIR`" + `) into a CLI: each
subdirectory is a command group, each executable file a command. The
` + "`.sh`" + `, ` + "`.py`" + `, ` + "`.rb`" + ` and ` + "`.js`" + ` extensions are trimmed
from command names, and dot-files are ignored. A file literally named
` + "`.shutl`" + ` inside a directory provides that group's description.

## Annotations

A script declares its interface in the comment lines at the very top of
the file (after an optional shebang). Lines start with ` + "`#@`" + ` (` + "`//@`" + `
for ` + "`.js`" + ` scripts) and end at the first line that breaks the pattern:

    #!/bin/bash
    #@description: Deploy a service to an environment
    #@arg:service - Service to deploy
    #@flag:environment - Target environment [options:dev|!staging!|prod]
    #@flag:force - Skip the confirmation prompt [bool]

Declarations:

- ` + "`description: TEXT`" + ` sets the command help text.
- ` + "`arg: NAME - DESC`" + ` declares a positional argument.
- ` + "`flag: NAME - DESC`" + ` declares a ` + "`--NAME`" + ` flag.
- ` + "`bool: NAME - DESC`" + ` is shorthand for a boolean flag.
- ` + "`arg: ... - DESC`" + ` declares a catch-all for extra positional
  arguments.

## Attributes

An attribute list in square brackets refines a declaration. Attributes
are comma-separated and applied left to right:

- ` + "`required`" + ` makes the argument mandatory (a default satisfies it).
- ` + "`bool`" + ` gives a flag boolean semantics, including a paired
  ` + "`--no-NAME`" + ` negation.
- ` + "`default:VALUE`" + ` supplies a value when none is given.
- ` + "`options:A|B|C`" + ` restricts the value to a closed set; wrap one
  option in exclamation marks (` + "`!B!`" + `) to make it the default.
- ` + "`dir`" + `, ` + "`file`" + `, ` + "`path`" + ` hint at filesystem completion;
  ` + "`key:PATH`" + ` scopes directory completion under PATH.

## Environment

Each declared argument reaches the script as an environment variable
named ` + "`CLI_<NAME>`" + ` with the name upper-cased and hyphens turned
into underscores. Boolean flags arrive as ` + "`true`" + ` or ` + "`false`" + `;
the catch-all arrives space-joined in ` + "`CLI_ADDITIONAL_ARGS`" + `.

    #@flag:output-dir - Where to write results
    # ...is read in the script as:
    echo "$CLI_OUTPUT_DIR"

The script runs with your shell streams attached and shutl exits with
the script's exit code. Pass the hidden ` + "`--shutl-verbose`" + ` flag to
print the computed environment and the script path before it runs.
`

// newDocsCommand creates the `shutl docs` command.
func newDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the script annotation reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderDocs(cmd.OutOrStdout())
		},
	}
}

// renderDocs writes the guide: glamour-rendered on a terminal, raw
// markdown otherwise so it stays pipeable.
func renderDocs(out io.Writer) error {
	if !writerIsTerminal(out) {
		_, err := fmt.Fprint(out, annotationGuide)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(annotationGuide)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
