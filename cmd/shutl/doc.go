// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for shutl.
//
// This package implements the Cobra command hierarchy: the static
// subcommands (new, edit, config, docs, completion) plus the dynamic
// commands resolved from the scripts directory for each invocation. The
// dynamic side is split into two adapters: scripts.go lowers resolved
// tree nodes into Cobra commands, and run.go lifts parsed Cobra state
// back into an invocation the runtime can spawn.
package cmd
