// SPDX-License-Identifier: MPL-2.0

// Package runtime turns a resolved leaf invocation into a child process.
//
// The declared arguments of a script become environment variables in the
// child: CLI_<NAME> (upper-snake) per declaration, with supplied values,
// declared defaults and boolean negation resolved here, in one place. The
// script file itself is spawned directly; its shebang and execute bit do
// the interpreting. Standard streams are inherited and the child's exit
// code is reported back untouched.
//
// File organization:
//   - env.go: Invocation, EnvVar and the value-resolution rules
//   - run.go: child process spawning and exit-code mapping
//   - result.go: Result constructors
package runtime
