// SPDX-License-Identifier: MPL-2.0

// Package discovery maps a directory tree of executable scripts onto a
// command tree.
//
// Every subdirectory of the scripts root is a command group; every visible
// file (not dot-prefixed, regular, executable) is a leaf command backed by
// that file. Resolution is lazy: Build narrows along the requested
// components and only lists a directory when the components run out, so
// resolving one invocation never walks unrelated branches.
//
// File organization:
//   - node.go: the Node tree value (group or leaf)
//   - names.go: visible-entry listing, clean names, collision handling
//   - discovery.go: Discovery, Build (lazy narrowing) and FindScript
package discovery
