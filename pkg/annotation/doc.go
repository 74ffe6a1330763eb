// SPDX-License-Identifier: MPL-2.0

// Package annotation parses the comment header through which a script
// declares its command-line interface.
//
// A header is a run of strictly consecutive comment lines at the top of a
// script (after an optional shebang), each starting with the comment prefix
// for the script's extension (`#@` by default, `//@` for .js):
//
//	#!/bin/bash
//	#@description: Deploy the application
//	#@arg: target - Deployment target [required]
//	#@flag: dry-run - Print the plan only [bool]
//
// The parsed result is a Metadata value: a description plus an ordered list
// of ArgSpec declarations. Declared names later become environment variables
// in the spawned script's process (see EnvVar).
//
// File organization:
//   - annotation.go: Metadata, ArgSpec and the Role/Kind enums
//   - parse.go: header scanning and attribute-list evaluation
//   - env.go: declared-name to environment-variable mapping
package annotation
