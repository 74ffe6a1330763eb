// SPDX-License-Identifier: MPL-2.0

// shutl exposes a directory tree of annotated scripts as a CLI.
package main

import cmd "github.com/k15r/shutl/cmd/shutl"

func main() {
	cmd.Execute()
}
