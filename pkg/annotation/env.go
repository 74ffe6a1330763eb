// SPDX-License-Identifier: MPL-2.0

package annotation

import "strings"

const (
	// EnvPrefix is prepended to every variable handed to a spawned script.
	EnvPrefix = "CLI_"

	// CatchAllName is the fixed internal name of the catch-all declaration.
	// Its environment variable is therefore CLI_ADDITIONAL_ARGS.
	CatchAllName = "additional-args"
)

// EnvVar converts a declared name to the environment variable the script
// receives. Example: "output-file" -> "CLI_OUTPUT_FILE".
func EnvVar(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
